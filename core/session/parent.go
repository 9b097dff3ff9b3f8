package session

import (
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/payment"
	"github.com/trezcool/darasa/core/reactive"
	"github.com/trezcool/darasa/core/student"
)

// ParentDashboard exposes the parent's own children, the performance
// records of the selected child, and the fee payment history.
type ParentDashboard struct {
	sess *Session

	// SelectedStudentID is 0 when no child is selected.
	SelectedStudentID *reactive.Cell[int]
	StudentResults    *reactive.Cell[[]student.Result]
	StudentAttendance *reactive.Cell[[]student.Attendance]
}

func newParentDashboard(s *Session) *ParentDashboard {
	return &ParentDashboard{
		sess:              s,
		SelectedStudentID: reactive.NewCell(0),
		StudentResults:    reactive.NewCell[[]student.Result](nil),
		StudentAttendance: reactive.NewCell[[]student.Attendance](nil),
	}
}

// LoadStudents replaces the student collection with the current
// parent's children.
func (d *ParentDashboard) LoadStudents() error {
	cur := d.sess.CurrentUser.Get()
	if cur == nil {
		return ErrNotLoggedIn
	}
	students, err := d.sess.studentSvc.ByParent(cur.ID)
	if err != nil {
		d.sess.log.Error("loading students failed", err, *cur)
		return errors.Wrap(err, "failed to load student data")
	}
	d.sess.Store.Students.Set(students)
	return nil
}

// SelectStudent fetches the performance records of the selected child;
// id 0 clears the selection.
func (d *ParentDashboard) SelectStudent(id int) error {
	d.SelectedStudentID.Set(id)
	if id == 0 {
		d.StudentResults.Set(nil)
		d.StudentAttendance.Set(nil)
		return nil
	}
	results, err := d.sess.studentSvc.Results(id)
	if err != nil {
		d.sess.log.Error("loading student results failed", err)
		return errors.Wrap(err, "failed to load performance data for selected student")
	}
	attendance, err := d.sess.studentSvc.Attendance(id)
	if err != nil {
		d.sess.log.Error("loading student attendance failed", err)
		return errors.Wrap(err, "failed to load performance data for selected student")
	}
	d.StudentResults.Set(results)
	d.StudentAttendance.Set(attendance)
	return nil
}

// LoadPayments replaces the payment history of the current parent.
func (d *ParentDashboard) LoadPayments() error {
	cur := d.sess.CurrentUser.Get()
	if cur == nil {
		return ErrNotLoggedIn
	}
	payments, err := d.sess.paymentSvc.ByParent(cur.ID)
	if err != nil {
		d.sess.log.Error("loading payments failed", err, *cur)
		return errors.Wrap(err, "failed to load payment history")
	}
	d.sess.Store.Payments.Set(payments)
	return nil
}

// PayFees initiates a payment on behalf of the current parent and
// reloads the payment history.
func (d *ParentDashboard) PayFees(np payment.NewPayment) error {
	cur := d.sess.CurrentUser.Get()
	if cur == nil {
		return ErrNotLoggedIn
	}
	if _, err := d.sess.paymentSvc.Pay(cur.ID, np); err != nil {
		d.sess.log.Error("paying fees failed", err, *cur)
		return errors.Wrap(err, "failed to process payment")
	}
	return d.LoadPayments()
}

// StudentName resolves a child's display name from the loaded roster.
func (d *ParentDashboard) StudentName(studentID int) string {
	return student.DisplayNameFor(d.sess.Store.Students.Get(), studentID)
}
