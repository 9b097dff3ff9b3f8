package student

import (
	"errors"

	"github.com/trezcool/darasa/core/user"
)

var (
	ErrNotFound = errors.New("student not found")
	// ErrAdminRequired is a client-side presence check only; the
	// gateway enforces the actual authorization.
	ErrAdminRequired = errors.New("action requires ADMIN role")
)

type (
	// Gateway is the remote data-access contract for students and
	// their nested records. Mutations carry the acting admin's id;
	// the gateway scopes them server-side.
	Gateway interface {
		QueryAllStudents() ([]Student, error)
		QueryStudentsByParent(parentID int) ([]Student, error)
		QueryStudentResults(studentID int) ([]Result, error)
		QueryStudentAttendance(studentID int) ([]Attendance, error)
		CreateStudent(actingAdminID int, ns NewStudent) (Student, error)
		UpdateStudent(actingAdminID, id int, us UpdateStudent) (Student, error)
		DeleteStudent(actingAdminID, id int) error
		CreateResult(actingAdminID, studentID int, nr NewResult) (Result, error)
		DeleteResult(actingAdminID, resultID int) error
		CreateAttendance(actingAdminID, studentID int, na NewAttendance) (Attendance, error)
		DeleteAttendance(actingAdminID, attendanceID int) error
	}

	Service struct {
		gw Gateway
	}
)

func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

func (svc *Service) All() ([]Student, error) {
	return svc.gw.QueryAllStudents()
}

func (svc *Service) ByParent(parentID int) ([]Student, error) {
	return svc.gw.QueryStudentsByParent(parentID)
}

func (svc *Service) Results(studentID int) ([]Result, error) {
	return svc.gw.QueryStudentResults(studentID)
}

func (svc *Service) Attendance(studentID int) ([]Attendance, error) {
	return svc.gw.QueryStudentAttendance(studentID)
}

// adminID returns the acting user's id iff they hold the ADMIN role.
func adminID(acting *user.User) (int, error) {
	if acting == nil || !acting.IsAdmin() {
		return 0, ErrAdminRequired
	}
	return acting.ID, nil
}

func (svc *Service) Create(acting *user.User, ns NewStudent) (Student, error) {
	id, err := adminID(acting)
	if err != nil {
		return Student{}, err
	}
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	return svc.gw.CreateStudent(id, ns)
}

func (svc *Service) Update(acting *user.User, studentID int, us UpdateStudent) (Student, error) {
	id, err := adminID(acting)
	if err != nil {
		return Student{}, err
	}
	if err := us.Validate(); err != nil {
		return Student{}, err
	}
	return svc.gw.UpdateStudent(id, studentID, us)
}

func (svc *Service) Delete(acting *user.User, studentID int) error {
	id, err := adminID(acting)
	if err != nil {
		return err
	}
	return svc.gw.DeleteStudent(id, studentID)
}

func (svc *Service) AddResult(acting *user.User, studentID int, nr NewResult) (Result, error) {
	id, err := adminID(acting)
	if err != nil {
		return Result{}, err
	}
	nr.StudentID = studentID
	if err := nr.Validate(); err != nil {
		return Result{}, err
	}
	return svc.gw.CreateResult(id, studentID, nr)
}

func (svc *Service) DeleteResult(acting *user.User, resultID int) error {
	id, err := adminID(acting)
	if err != nil {
		return err
	}
	return svc.gw.DeleteResult(id, resultID)
}

func (svc *Service) AddAttendance(acting *user.User, studentID int, na NewAttendance) (Attendance, error) {
	id, err := adminID(acting)
	if err != nil {
		return Attendance{}, err
	}
	na.StudentID = studentID
	if err := na.Validate(); err != nil {
		return Attendance{}, err
	}
	return svc.gw.CreateAttendance(id, studentID, na)
}

func (svc *Service) DeleteAttendance(acting *user.User, attendanceID int) error {
	id, err := adminID(acting)
	if err != nil {
		return err
	}
	return svc.gw.DeleteAttendance(id, attendanceID)
}
