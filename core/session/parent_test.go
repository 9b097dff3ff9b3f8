package session

import (
	"testing"

	"github.com/trezcool/darasa/core/news"
	"github.com/trezcool/darasa/core/payment"
	"github.com/trezcool/darasa/core/user"
	testutil "github.com/trezcool/darasa/tests"
)

func loginParent(t *testing.T) (*Session, adminFixture) {
	sess, fix := loginAdmin(t)
	sess.Logout()
	if _, err := sess.Login("jane@test.cd", "secret"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	return sess, fix
}

func TestParentDashboard_students(t *testing.T) {
	sess, fix := loginParent(t)
	parent := sess.Parent

	if err := parent.LoadStudents(); err != nil {
		t.Fatalf("LoadStudents() failed: %v", err)
	}
	roster := sess.Store.Students.Get()
	if len(roster) != 1 || roster[0].ID != fix.student.ID {
		t.Fatalf("students = %v, want the parent's single child", roster)
	}
	if got := parent.StudentName(fix.student.ID); got != "Amina Okoye" {
		t.Errorf("StudentName() = %s, want Amina Okoye", got)
	}
}

func TestParentDashboard_selectStudent(t *testing.T) {
	sess, fix := loginParent(t)
	parent := sess.Parent
	if err := parent.LoadStudents(); err != nil {
		t.Fatalf("LoadStudents() failed: %v", err)
	}

	if err := parent.SelectStudent(fix.student.ID); err != nil {
		t.Fatalf("SelectStudent() failed: %v", err)
	}
	if got := len(parent.StudentResults.Get()); got != 1 {
		t.Errorf("len(StudentResults) = %d, want 1", got)
	}
	if got := len(parent.StudentAttendance.Get()); got != 1 {
		t.Errorf("len(StudentAttendance) = %d, want 1", got)
	}

	// deselect clears the performance records
	if err := parent.SelectStudent(0); err != nil {
		t.Fatalf("SelectStudent(0) failed: %v", err)
	}
	if parent.StudentResults.Get() != nil || parent.StudentAttendance.Get() != nil {
		t.Error("SelectStudent(0) left performance records")
	}
}

func TestParentDashboard_payments(t *testing.T) {
	sess, fix := loginParent(t)
	parent := sess.Parent

	if err := parent.LoadPayments(); err != nil {
		t.Fatalf("LoadPayments() failed: %v", err)
	}
	if got := len(sess.Store.Payments.Get()); got != 0 {
		t.Fatalf("len(payments) = %d, want 0", got)
	}

	np := payment.NewPayment{StudentID: fix.student.ID, Amount: 150.00, Description: "Term 2 fees"}
	if err := parent.PayFees(np); err != nil {
		t.Fatalf("PayFees() failed: %v", err)
	}
	payments := sess.Store.Payments.Get()
	if len(payments) != 1 {
		t.Fatalf("len(payments) = %d, want 1", len(payments))
	}
	pmt := payments[0]
	if pmt.ParentUserID != fix.parent.ID {
		t.Errorf("ParentUserID = %d, want %d", pmt.ParentUserID, fix.parent.ID)
	}
	if pmt.Status == "" || pmt.TransactionID == "" {
		t.Error("PayFees() payment missing server-minted status or transaction id")
	}

	if err := parent.PayFees(payment.NewPayment{StudentID: fix.student.ID, Amount: -5, Description: "lol"}); err == nil {
		t.Error("PayFees() accepted a non-positive amount")
	}
}

func TestParentDashboard_requiresLogin(t *testing.T) {
	sess, _ := setup(t)

	if err := sess.Parent.LoadStudents(); err != ErrNotLoggedIn {
		t.Errorf("LoadStudents() error = %v, want ErrNotLoggedIn", err)
	}
	if err := sess.Parent.LoadPayments(); err != ErrNotLoggedIn {
		t.Errorf("LoadPayments() error = %v, want ErrNotLoggedIn", err)
	}
}

func TestAdminDashboard_postNews(t *testing.T) {
	sess, db := setup(t)
	testutil.CreateUser(t, db, "admin", "admin@test.cd", "secret", user.RoleAdmin)
	if _, err := sess.Login("admin@test.cd", "secret"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	if err := sess.Admin.PostNews(news.NewNews{Title: "Sports day", Content: "Friday at 9am.", Category: "Events"}); err != nil {
		t.Fatalf("PostNews() failed: %v", err)
	}
	if err := sess.LoadNews(); err != nil {
		t.Fatalf("LoadNews() failed: %v", err)
	}
	items := sess.Store.News.Get()
	if len(items) != 1 {
		t.Fatalf("len(news) = %d, want 1", len(items))
	}
	if items[0].AuthorUsername != "admin" {
		t.Errorf("AuthorUsername = %s, want admin", items[0].AuthorUsername)
	}

	sess.Logout()
	if err := sess.Admin.PostNews(news.NewNews{Title: "Sports day", Content: "Friday at 9am.", Category: "Events"}); err != ErrNotLoggedIn {
		t.Errorf("PostNews() error = %v, want ErrNotLoggedIn", err)
	}
}
