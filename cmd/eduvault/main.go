package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"eduvault/internal/app"
	"eduvault/internal/config"
	"eduvault/internal/logger"
	"eduvault/internal/session"
	"eduvault/internal/store"
)

func main() {
	configPath := flag.String("config", config.ConfigPath, "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	sessionTTL, err := config.ParseSessionTTL(cfg.SessionTTL)
	if err != nil {
		log.Fatalf("failed to parse session TTL: %v", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	var st *store.MemoryStore
	if cfg.Seed {
		st = store.NewSeededStore()
	} else {
		st = store.NewMemoryStore()
	}
	core := app.New(st)

	slot := session.NewRedisSlot(cfg.RedisAddr, cfg.RedisPassword, cfg.SessionKey, sessionTTL)
	sessions := session.NewManager(st, slot)

	if id, ok, err := sessions.Restore(); err != nil {
		zap.L().Warn("session restore failed", zap.Error(err))
	} else if ok {
		zap.L().Info("session restored",
			zap.Int("userId", id.ID),
			zap.String("username", id.Username),
			zap.String("role", string(id.Role)))
	}

	ov := core.Overview()
	zap.L().Info("store ready",
		zap.Int("users", ov.TotalUsers),
		zap.Int("resources", ov.TotalResources),
		zap.Int("downloads", ov.TotalDownloads),
		zap.Int("announcements", len(core.Announcements())))
}
