package testutil

import (
	"testing"

	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/user"
	dummygw "github.com/trezcool/darasa/storage/gateway/dummy"
)

func CreateUser(t *testing.T, db *dummygw.DB, uname, email, pwd, role string) user.User {
	usr, err := db.CreateUser(user.NewUser{
		Username: uname,
		Email:    email,
		Password: pwd,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateStudent(t *testing.T, db *dummygw.DB, adminID int, first, last, studentID string, parentID int) student.Student {
	std, err := db.CreateStudent(adminID, student.NewStudent{
		FirstName:    first,
		LastName:     last,
		StudentID:    studentID,
		ParentUserID: parentID,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return std
}

func CreateResult(t *testing.T, db *dummygw.DB, adminID, studentID int, subject, grade string, score float64, date string) student.Result {
	res, err := db.CreateResult(adminID, studentID, student.NewResult{
		Subject: subject,
		Grade:   grade,
		Score:   score,
		Date:    date,
	})
	if err != nil {
		t.Fatalf("CreateResult() failed: %v", err)
	}
	return res
}

func CreateAttendance(t *testing.T, db *dummygw.DB, adminID, studentID int, date, status, reason string) student.Attendance {
	att, err := db.CreateAttendance(adminID, studentID, student.NewAttendance{
		Date:   date,
		Status: status,
		Reason: reason,
	})
	if err != nil {
		t.Fatalf("CreateAttendance() failed: %v", err)
	}
	return att
}

// NopLogger discards everything; it keeps test output clean.
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Fatal(string, ...interface{}) {}
