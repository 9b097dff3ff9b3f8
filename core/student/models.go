package student

import (
	"time"

	"github.com/trezcool/darasa/core"
)

type Student struct {
	ID                int          `json:"id"`
	FirstName         string       `json:"firstName"`
	LastName          string       `json:"lastName"`
	StudentID         string       `json:"studentId"` // external school identifier, e.g. "STU-042"
	ParentUserID      int          `json:"parentUserId"`
	Results           []Result     `json:"results"`
	AttendanceRecords []Attendance `json:"attendanceRecords"`
}

func (s Student) DisplayName() string {
	return s.FirstName + " " + s.LastName
}

type Result struct {
	ID        int     `json:"id"`
	Subject   string  `json:"subject"`
	Grade     string  `json:"grade"`
	Score     float64 `json:"score"`
	Date      string  `json:"date"`
	StudentID int     `json:"studentId"`
}

type Attendance struct {
	ID        int    `json:"id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	StudentID int    `json:"studentId"`
}

// DisplayNameFor resolves a student's display name from a roster.
func DisplayNameFor(students []Student, studentID int) string {
	for _, s := range students {
		if s.ID == studentID {
			return s.DisplayName()
		}
	}
	return "Unknown Student"
}

// AllResults flattens every student's results, in roster order.
func AllResults(students []Student) []Result {
	out := make([]Result, 0, len(students))
	for _, s := range students {
		out = append(out, s.Results...)
	}
	return out
}

// AllAttendance flattens every student's attendance records, in roster order.
func AllAttendance(students []Student) []Attendance {
	out := make([]Attendance, 0, len(students))
	for _, s := range students {
		out = append(out, s.AttendanceRecords...)
	}
	return out
}

// FormatDate converts an ISO date (YYYY-MM-DD) to the MM-DD-YYYY form
// the gateway expects.
func FormatDate(iso string) (string, error) {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", err
	}
	return t.Format("01-02-2006"), nil
}

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	StudentID    string `json:"studentId" validate:"required"`
	ParentUserID int    `json:"parentUserId" validate:"required"`
}

func (ns *NewStudent) Validate() error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.StudentID = core.CleanString(ns.StudentID)
	return core.Validate.Struct(ns)
}

type UpdateStudent struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	StudentID    string `json:"studentId" validate:"required"`
	ParentUserID int    `json:"parentUserId" validate:"required"`
}

func (us *UpdateStudent) Validate() error {
	us.FirstName = core.CleanString(us.FirstName)
	us.LastName = core.CleanString(us.LastName)
	us.StudentID = core.CleanString(us.StudentID)
	return core.Validate.Struct(us)
}

// NewResult records an academic result for a student. Date is ISO
// (YYYY-MM-DD) on input and converted on submission.
type NewResult struct {
	Subject   string  `json:"subject" validate:"required"`
	Grade     string  `json:"grade" validate:"required"`
	Score     float64 `json:"score" validate:"required"`
	Date      string  `json:"date" validate:"required"`
	StudentID int     `json:"studentId"`
}

func (nr *NewResult) Validate() error {
	nr.Subject = core.CleanString(nr.Subject)
	nr.Grade = core.CleanString(nr.Grade)
	if err := core.Validate.Struct(nr); err != nil {
		return err
	}
	date, err := FormatDate(nr.Date)
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "date", Error: "invalid date, expected YYYY-MM-DD"})
	}
	nr.Date = date
	return nil
}

type NewAttendance struct {
	Date      string `json:"date" validate:"required"`
	Status    string `json:"status" validate:"required"`
	Reason    string `json:"reason"`
	StudentID int    `json:"studentId"`
}

func (na *NewAttendance) Validate() error {
	na.Status = core.CleanString(na.Status)
	na.Reason = core.CleanString(na.Reason)
	if err := core.Validate.Struct(na); err != nil {
		return err
	}
	date, err := FormatDate(na.Date)
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "date", Error: "invalid date, expected YYYY-MM-DD"})
	}
	na.Date = date
	return nil
}
