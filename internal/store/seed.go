package store

import (
	"time"

	"eduvault/internal/domain"
)

func seedTime(value string) time.Time {
	t, err := time.ParseInLocation(domain.TimeLayout, value, time.Local)
	if err != nil {
		panic("store: bad seed timestamp " + value)
	}
	return t
}

func seedDate(value string) time.Time {
	t, err := time.ParseInLocation(domain.DateLayout, value, time.Local)
	if err != nil {
		panic("store: bad seed date " + value)
	}
	return t
}

// NewSeededStore returns a store loaded with the fixture data: 5 users,
// 6 resources, 5 announcements, and 10 download records with IDs 1..N.
func NewSeededStore() *MemoryStore {
	m := NewMemoryStore()
	m.users = seedUsers()
	m.resources = seedResources()
	m.announcements = seedAnnouncements()
	m.downloads = seedDownloads()
	for _, r := range m.resources {
		for _, c := range r.Comments {
			if c.ID >= m.nextCommentID {
				m.nextCommentID = c.ID + 1
			}
			for _, rp := range c.Replies {
				if rp.ID >= m.nextReplyID {
					m.nextReplyID = rp.ID + 1
				}
			}
		}
	}
	return m
}

func seedUsers() []domain.User {
	return []domain.User{
		{
			ID:         1,
			Username:   "admin",
			Password:   "admin123",
			Email:      "admin@example.com",
			Role:       domain.RoleAdmin,
			Avatar:     "https://zos.alipayobjects.com/rmsportal/ODTLcjxAfvqbxHnVXCYX.png",
			Name:       "系统管理员",
			Department: "信息技术部",
			Status:     domain.StatusActive,
			CreatedAt:  seedDate("2023-01-01"),
			LastLogin:  seedTime("2023-11-01 08:30:45"),
		},
		{
			ID:         2,
			Username:   "teacher1",
			Password:   "teacher123",
			Email:      "teacher1@example.com",
			Role:       domain.RoleTeacher,
			Avatar:     "https://gw.alipayobjects.com/zos/rmsportal/BiazfanxmamNRoxxVxka.png",
			Name:       "张教授",
			Department: "计算机科学系",
			Status:     domain.StatusActive,
			CreatedAt:  seedDate("2023-02-15"),
			LastLogin:  seedTime("2023-11-01 09:12:30"),
		},
		{
			ID:         3,
			Username:   "teacher2",
			Password:   "teacher123",
			Email:      "teacher2@example.com",
			Role:       domain.RoleTeacher,
			Avatar:     "https://gw.alipayobjects.com/zos/rmsportal/BiazfanxmamNRoxxVxka.png",
			Name:       "李教授",
			Department: "数学系",
			Status:     domain.StatusActive,
			CreatedAt:  seedDate("2023-03-10"),
			LastLogin:  seedTime("2023-10-30 14:25:10"),
		},
		{
			ID:         4,
			Username:   "student1",
			Password:   "student123",
			Email:      "student1@example.com",
			StudentID:  "20230001",
			Role:       domain.RoleStudent,
			Avatar:     "https://gw.alipayobjects.com/zos/rmsportal/BiazfanxmamNRoxxVxka.png",
			Name:       "王同学",
			Department: "计算机科学系",
			Status:     domain.StatusActive,
			CreatedAt:  seedDate("2023-02-20"),
			LastLogin:  seedTime("2023-11-01 10:05:22"),
		},
		{
			ID:         5,
			Username:   "student2",
			Password:   "student123",
			Email:      "student2@example.com",
			StudentID:  "20230002",
			Role:       domain.RoleStudent,
			Avatar:     "https://gw.alipayobjects.com/zos/rmsportal/BiazfanxmamNRoxxVxka.png",
			Name:       "陈同学",
			Department: "数学系",
			Status:     domain.StatusActive,
			CreatedAt:  seedDate("2023-02-22"),
			LastLogin:  seedTime("2023-10-31 16:42:15"),
		},
	}
}

func seedResources() []domain.Resource {
	return []domain.Resource{
		{
			ID:          1,
			Title:       "高等数学第一章课件",
			Description: "包含高等数学第一章的详细讲解和习题解答",
			Subject:     "数学",
			Type:        domain.TypeCourseware,
			Format:      "PPT",
			URL:         "/files/math_chapter1.ppt",
			Size:        "5.2MB",
			Uploader:    2,
			UploadTime:  seedTime("2023-06-10 09:30:12"),
			Views:       256,
			Downloads:   120,
			Rating:      4.7,
			Tags:        []string{"高等数学", "微积分", "函数极限"},
			Comments: []domain.Comment{
				{
					ID:      1,
					UserID:  4,
					Content: "这个课件讲解很清晰，对我理解极限概念很有帮助",
					Time:    seedTime("2023-06-12 14:20:30"),
					Replies: []domain.Reply{
						{
							ID:      1,
							UserID:  2,
							Content: "谢谢你的反馈，如有不懂的地方可以随时提问",
							Time:    seedTime("2023-06-12 16:05:22"),
						},
					},
				},
			},
		},
		{
			ID:          2,
			Title:       "C++编程基础教程",
			Description: "适合初学者的C++编程教程，包含基础语法和简单实例",
			Subject:     "计算机科学",
			Type:        domain.TypeLessonPlan,
			Format:      "PDF",
			URL:         "/files/cpp_basics.pdf",
			Size:        "3.8MB",
			Uploader:    2,
			UploadTime:  seedTime("2023-05-20 15:22:40"),
			Views:       342,
			Downloads:   180,
			Rating:      4.5,
			Tags:        []string{"C++", "编程基础", "计算机科学"},
		},
		{
			ID:          3,
			Title:       "英语语法精讲视频",
			Description: "详细讲解英语核心语法知识点",
			Subject:     "英语",
			Type:        domain.TypeVideo,
			Format:      "MP4",
			URL:         "/files/english_grammar.mp4",
			Size:        "120MB",
			Uploader:    3,
			UploadTime:  seedTime("2023-07-05 10:15:30"),
			Views:       189,
			Downloads:   95,
			Rating:      4.8,
			Tags:        []string{"英语", "语法", "学习资料"},
		},
		{
			ID:          4,
			Title:       "物理力学期中测试题",
			Description: "大学物理力学部分期中测试题及答案解析",
			Subject:     "物理",
			Type:        domain.TypeTest,
			Format:      "DOC",
			URL:         "/files/physics_midterm.doc",
			Size:        "1.2MB",
			Uploader:    3,
			UploadTime:  seedTime("2023-04-18 13:40:20"),
			Views:       276,
			Downloads:   220,
			Rating:      4.6,
			Tags:        []string{"物理", "力学", "测试题"},
		},
		{
			ID:          5,
			Title:       "数据结构与算法分析",
			Description: "详细介绍了常见数据结构和算法，并进行了复杂度分析",
			Subject:     "计算机科学",
			Type:        domain.TypeCourseware,
			Format:      "PDF",
			URL:         "/files/data_structures.pdf",
			Size:        "8.5MB",
			Uploader:    2,
			UploadTime:  seedTime("2023-08-12 11:20:45"),
			Views:       312,
			Downloads:   170,
			Rating:      4.9,
			Tags:        []string{"数据结构", "算法", "计算机科学"},
		},
		{
			ID:          6,
			Title:       "文学作品赏析课程",
			Description: "中国古代文学作品赏析",
			Subject:     "文学",
			Type:        domain.TypeCourseware,
			Format:      "PPT",
			URL:         "/files/literature_analysis.ppt",
			Size:        "4.3MB",
			Uploader:    3,
			UploadTime:  seedTime("2023-09-05 14:10:30"),
			Views:       178,
			Downloads:   85,
			Rating:      4.4,
			Tags:        []string{"文学", "古代文学", "作品赏析"},
		},
	}
}

func seedAnnouncements() []domain.Announcement {
	return []domain.Announcement{
		{
			ID:          1,
			Title:       "系统更新通知",
			Content:     "亲爱的用户，我们将于本周六凌晨2点至4点进行系统维护，期间系统将暂停访问。请提前做好准备，由此带来的不便敬请谅解。",
			Publisher:   1,
			PublishTime: seedTime("2023-10-15 10:30:00"),
			Importance:  domain.ImportanceHigh,
			Views:       325,
			IsActive:    true,
		},
		{
			ID:          2,
			Title:       "高等数学期末考试重点提示",
			Content:     "各位同学注意，高等数学期末考试将重点考察微积分、级数等内容，请认真复习课件中的相关章节。有任何问题可在评论区提问。",
			Publisher:   2,
			PublishTime: seedTime("2023-10-20 14:15:20"),
			Importance:  domain.ImportanceMedium,
			Views:       278,
			IsActive:    true,
		},
		{
			ID:          3,
			Title:       "计算机科学系学术讲座",
			Content:     "定于下周三下午2点在主教学楼301教室举行\"人工智能与未来教育\"主题讲座，欢迎各位师生参加。",
			Publisher:   2,
			PublishTime: seedTime("2023-10-25 09:20:15"),
			Importance:  domain.ImportanceMedium,
			Views:       156,
			IsActive:    true,
		},
		{
			ID:          4,
			Title:       "新增教学资源通知",
			Content:     "数学系已上传最新版微积分教程，包含丰富的例题和习题解答，请同学们及时查看下载。",
			Publisher:   3,
			PublishTime: seedTime("2023-10-30 16:45:30"),
			Importance:  domain.ImportanceNormal,
			Views:       203,
			IsActive:    true,
		},
		{
			ID:          5,
			Title:       "教学资源系统使用指南",
			Content:     "为帮助大家更好地使用教学资源系统，我们编写了详细的使用指南，请点击查看完整内容。",
			Publisher:   1,
			PublishTime: seedTime("2023-09-25 11:10:40"),
			Importance:  domain.ImportanceNormal,
			Views:       418,
			IsActive:    true,
		},
	}
}

func seedDownloads() []domain.Download {
	return []domain.Download{
		{ID: 1, ResourceID: 1, UserID: 4, DownloadTime: seedTime("2023-10-01 09:30:45"), IP: "192.168.1.101"},
		{ID: 2, ResourceID: 1, UserID: 5, DownloadTime: seedTime("2023-10-02 14:25:10"), IP: "192.168.1.102"},
		{ID: 3, ResourceID: 2, UserID: 4, DownloadTime: seedTime("2023-10-05 16:40:22"), IP: "192.168.1.101"},
		{ID: 4, ResourceID: 3, UserID: 5, DownloadTime: seedTime("2023-10-10 10:15:38"), IP: "192.168.1.102"},
		{ID: 5, ResourceID: 4, UserID: 4, DownloadTime: seedTime("2023-10-12 11:05:50"), IP: "192.168.1.101"},
		{ID: 6, ResourceID: 1, UserID: 5, DownloadTime: seedTime("2023-10-15 15:22:30"), IP: "192.168.1.102"},
		{ID: 7, ResourceID: 5, UserID: 4, DownloadTime: seedTime("2023-10-18 09:10:15"), IP: "192.168.1.101"},
		{ID: 8, ResourceID: 2, UserID: 5, DownloadTime: seedTime("2023-10-20 16:35:42"), IP: "192.168.1.102"},
		{ID: 9, ResourceID: 6, UserID: 4, DownloadTime: seedTime("2023-10-25 13:45:58"), IP: "192.168.1.101"},
		{ID: 10, ResourceID: 3, UserID: 5, DownloadTime: seedTime("2023-10-30 08:55:20"), IP: "192.168.1.102"},
	}
}
