package domain

import "testing"

func TestValidateRoleVariants(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{"admin", NewAdmin("a", "pw", "a@example.com", "A", "d"), nil},
		{"teacher", NewTeacher("t", "pw", "t@example.com", "T", "d"), nil},
		{"student", NewStudent("s", "pw", "s@example.com", "S", "d", "20230001"), nil},
		{"student without id", NewStudent("s", "pw", "s@example.com", "S", "d", ""), ErrStudentIDRequired},
		{"missing username", NewAdmin("", "pw", "a@example.com", "A", "d"), ErrUsernameRequired},
		{"missing password", NewAdmin("a", "", "a@example.com", "A", "d"), ErrPasswordRequired},
		{"missing email", NewAdmin("a", "pw", "", "A", "d"), ErrEmailRequired},
	}
	for _, tt := range tests {
		if err := tt.user.Validate(); err != tt.wantErr {
			t.Fatalf("%s: Validate() = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateRejectsStudentIDOnStaff(t *testing.T) {
	u := NewTeacher("t", "pw", "t@example.com", "T", "d")
	u.StudentID = "20239999"
	if err := u.Validate(); err != ErrStudentIDOnly {
		t.Fatalf("Validate() = %v, want ErrStudentIDOnly", err)
	}
}

func TestValidateUnknownRole(t *testing.T) {
	u := NewAdmin("a", "pw", "a@example.com", "A", "d")
	u.Role = "superuser"
	if err := u.Validate(); err != ErrUnknownRole {
		t.Fatalf("Validate() = %v, want ErrUnknownRole", err)
	}
}

func TestIdentityOfStripsPassword(t *testing.T) {
	u := NewStudent("s", "secret", "s@example.com", "S", "d", "20230001")
	u.ID = 9
	id := IdentityOf(u)
	if id.ID != 9 || id.Username != "s" || id.StudentID != "20230001" {
		t.Fatalf("identity = %+v", id)
	}
}

func TestRolePermissions(t *testing.T) {
	if !RoleAdmin.CanPublish() || !RoleTeacher.CanPublish() || RoleStudent.CanPublish() {
		t.Fatalf("CanPublish: admin=%v teacher=%v student=%v",
			RoleAdmin.CanPublish(), RoleTeacher.CanPublish(), RoleStudent.CanPublish())
	}
	if !RoleAdmin.CanManageUsers() || RoleTeacher.CanManageUsers() || RoleStudent.CanManageUsers() {
		t.Fatalf("CanManageUsers: admin=%v teacher=%v student=%v",
			RoleAdmin.CanManageUsers(), RoleTeacher.CanManageUsers(), RoleStudent.CanManageUsers())
	}
}
