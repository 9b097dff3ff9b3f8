package session

import (
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/news"
	"github.com/trezcool/darasa/core/reactive"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/core/view"
)

// AdminDashboard exposes the administrator list views: users, students
// and the flattened result/attendance records, each searchable and
// paginated. Mutations reload the owning collection wholesale.
type AdminDashboard struct {
	sess *Session

	Users      *view.List[user.User]
	Students   *view.List[student.Student]
	Results    *view.List[student.Result]
	Attendance *view.List[student.Attendance]
}

func newAdminDashboard(s *Session) *AdminDashboard {
	d := &AdminDashboard{sess: s}
	size := s.conf.PageSize

	d.Users = view.NewList(s.Store.Users, size, func(u user.User) []string {
		return []string{u.Username, u.Email, u.Role}
	})

	// student rows project the parent's username, so the user roster
	// is an input of this view as well
	roster := reactive.Derive(func() []student.Student {
		return s.Store.Students.Get()
	}, s.Store.Students, s.Store.Users)
	d.Students = view.NewList[student.Student](roster, size, func(st student.Student) []string {
		return []string{st.FirstName, st.LastName, st.StudentID, d.parentName(st.ParentUserID)}
	})

	// results and attendance are flattenings of the student roster,
	// recomputed whenever it changes; no duplicate storage
	allResults := reactive.Derive(func() []student.Result {
		return student.AllResults(s.Store.Students.Get())
	}, s.Store.Students)
	d.Results = view.NewList[student.Result](allResults, size, func(r student.Result) []string {
		return []string{d.studentName(r.StudentID), r.Subject, r.Grade}
	})

	allAttendance := reactive.Derive(func() []student.Attendance {
		return student.AllAttendance(s.Store.Students.Get())
	}, s.Store.Students)
	d.Attendance = view.NewList[student.Attendance](allAttendance, size, func(a student.Attendance) []string {
		return []string{d.studentName(a.StudentID), a.Status, a.Reason}
	})

	return d
}

func (d *AdminDashboard) studentName(studentID int) string {
	return student.DisplayNameFor(d.sess.Store.Students.Get(), studentID)
}

func (d *AdminDashboard) parentName(parentUserID int) string {
	for _, u := range d.sess.Store.Users.Get() {
		if u.ID == parentUserID {
			return u.Username
		}
	}
	return "Unknown Parent"
}

// ParentUsers returns the roster subset holding the PARENT role, for
// populating the new-student form.
func (d *AdminDashboard) ParentUsers() []user.User {
	users := d.sess.Store.Users.Get()
	out := make([]user.User, 0, len(users))
	for _, u := range users {
		if u.IsParent() {
			out = append(out, u)
		}
	}
	return out
}

// LoadUsers replaces the user collection and resets its page cursor.
func (d *AdminDashboard) LoadUsers() error {
	users, err := d.sess.userSvc.All()
	if err != nil {
		d.sess.log.Error("loading users failed", err)
		return errors.Wrap(err, "failed to load users")
	}
	d.sess.Store.Users.Set(users)
	d.Users.ResetPage()
	return nil
}

// LoadStudents replaces the student collection and resets the cursors
// of every view it backs (students, results, attendance).
func (d *AdminDashboard) LoadStudents() error {
	students, err := d.sess.studentSvc.All()
	if err != nil {
		d.sess.log.Error("loading students failed", err)
		return errors.Wrap(err, "failed to load student data")
	}
	d.sess.Store.Students.Set(students)
	d.Students.ResetPage()
	d.Results.ResetPage()
	d.Attendance.ResetPage()
	return nil
}

func (d *AdminDashboard) AddUser(nu user.NewUser) error {
	if _, err := d.sess.userSvc.Create(nu); err != nil {
		d.sess.log.Error("adding user failed", err)
		return errors.Wrap(err, "failed to add user")
	}
	return d.LoadUsers()
}

func (d *AdminDashboard) UpdateUser(id int, uu user.UpdateUser) error {
	if _, err := d.sess.userSvc.Update(id, uu); err != nil {
		d.sess.log.Error("updating user failed", err)
		return errors.Wrap(err, "failed to update user")
	}
	return d.LoadUsers()
}

func (d *AdminDashboard) DeleteUser(id int) error {
	if err := d.sess.userSvc.Delete(id); err != nil {
		d.sess.log.Error("deleting user failed", err)
		return errors.Wrap(err, "failed to delete user")
	}
	return d.LoadUsers()
}

func (d *AdminDashboard) AddStudent(ns student.NewStudent) error {
	if _, err := d.sess.studentSvc.Create(d.sess.CurrentUser.Get(), ns); err != nil {
		d.sess.log.Error("adding student failed", err)
		return errors.Wrap(err, "failed to add student")
	}
	return d.LoadStudents()
}

func (d *AdminDashboard) UpdateStudent(id int, us student.UpdateStudent) error {
	if _, err := d.sess.studentSvc.Update(d.sess.CurrentUser.Get(), id, us); err != nil {
		d.sess.log.Error("updating student failed", err)
		return errors.Wrap(err, "failed to update student")
	}
	return d.LoadStudents()
}

func (d *AdminDashboard) DeleteStudent(id int) error {
	if err := d.sess.studentSvc.Delete(d.sess.CurrentUser.Get(), id); err != nil {
		d.sess.log.Error("deleting student failed", err)
		return errors.Wrap(err, "failed to delete student")
	}
	return d.LoadStudents()
}

func (d *AdminDashboard) AddResult(studentID int, nr student.NewResult) error {
	if _, err := d.sess.studentSvc.AddResult(d.sess.CurrentUser.Get(), studentID, nr); err != nil {
		d.sess.log.Error("adding result failed", err)
		return errors.Wrap(err, "failed to add result")
	}
	return d.LoadStudents()
}

func (d *AdminDashboard) DeleteResult(resultID int) error {
	if err := d.sess.studentSvc.DeleteResult(d.sess.CurrentUser.Get(), resultID); err != nil {
		d.sess.log.Error("deleting result failed", err)
		return errors.Wrap(err, "failed to delete result")
	}
	return d.LoadStudents()
}

func (d *AdminDashboard) AddAttendance(studentID int, na student.NewAttendance) error {
	if _, err := d.sess.studentSvc.AddAttendance(d.sess.CurrentUser.Get(), studentID, na); err != nil {
		d.sess.log.Error("adding attendance failed", err)
		return errors.Wrap(err, "failed to add attendance")
	}
	return d.LoadStudents()
}

func (d *AdminDashboard) DeleteAttendance(attendanceID int) error {
	if err := d.sess.studentSvc.DeleteAttendance(d.sess.CurrentUser.Get(), attendanceID); err != nil {
		d.sess.log.Error("deleting attendance failed", err)
		return errors.Wrap(err, "failed to delete attendance record")
	}
	return d.LoadStudents()
}

// PostNews publishes a news item authored by the current user.
func (d *AdminDashboard) PostNews(nn news.NewNews) error {
	cur := d.sess.CurrentUser.Get()
	if cur == nil {
		return ErrNotLoggedIn
	}
	if _, err := d.sess.newsSvc.Post(cur.ID, nn); err != nil {
		d.sess.log.Error("posting news failed", err, *cur)
		return errors.Wrap(err, "failed to post news")
	}
	return nil
}
