package main

import (
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/user"
	dummygw "github.com/trezcool/darasa/storage/gateway/dummy"
)

// seed populates the store with a workable data set for local development.
func seed(db *dummygw.DB) error {
	admin, err := db.CreateUser(user.NewUser{
		Username: "head_admin", Password: "LocalDev1!", Email: "admin@darasa.local", Role: user.RoleAdmin,
	})
	if err != nil {
		return err
	}
	parent, err := db.CreateUser(user.NewUser{
		Username: "jane_doe", Password: "LocalDev1!", Email: "jane@darasa.local", Role: user.RoleParent,
	})
	if err != nil {
		return err
	}

	st, err := db.CreateStudent(admin.ID, student.NewStudent{
		FirstName: "John", LastName: "Doe", StudentID: "STU-001", ParentUserID: parent.ID,
	})
	if err != nil {
		return err
	}
	if _, err := db.CreateResult(admin.ID, st.ID, student.NewResult{
		Subject: "Mathematics", Grade: "A", Score: 92, Date: "06-14-2026", StudentID: st.ID,
	}); err != nil {
		return err
	}
	if _, err := db.CreateAttendance(admin.ID, st.ID, student.NewAttendance{
		Date: "06-15-2026", Status: "PRESENT", StudentID: st.ID,
	}); err != nil {
		return err
	}
	return nil
}
