package dummygw

import (
	"sort"

	"github.com/trezcool/darasa/core/student"
)

var _ student.Gateway = (*DB)(nil)

// copyStudent deep-copies the nested record slices so callers never
// alias table state.
func copyStudent(st *student.Student) student.Student {
	out := *st
	out.Results = append([]student.Result(nil), st.Results...)
	out.AttendanceRecords = append([]student.Attendance(nil), st.AttendanceRecords...)
	return out
}

// queryStudents returns students sorted by id. Callers must hold db.mu.
func (db *DB) queryStudents() []student.Student {
	students := make([]student.Student, 0, len(db.students))
	for _, st := range db.students {
		students = append(students, copyStudent(st))
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students
}

func (db *DB) QueryAllStudents() ([]student.Student, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.queryStudents(), nil
}

func (db *DB) QueryStudentsByParent(parentID int) ([]student.Student, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	students := make([]student.Student, 0)
	for _, st := range db.queryStudents() {
		if st.ParentUserID == parentID {
			students = append(students, st)
		}
	}
	return students, nil
}

func (db *DB) QueryStudentResults(studentID int) ([]student.Result, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	st, ok := db.students[studentID]
	if !ok {
		return nil, student.ErrNotFound
	}
	return append([]student.Result(nil), st.Results...), nil
}

func (db *DB) QueryStudentAttendance(studentID int) ([]student.Attendance, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	st, ok := db.students[studentID]
	if !ok {
		return nil, student.ErrNotFound
	}
	return append([]student.Attendance(nil), st.AttendanceRecords...), nil
}

func (db *DB) CreateStudent(actingAdminID int, ns student.NewStudent) (student.Student, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.requireAdmin(actingAdminID); err != nil {
		return student.Student{}, err
	}

	db.studentPK++
	st := &student.Student{
		ID:           db.studentPK,
		FirstName:    ns.FirstName,
		LastName:     ns.LastName,
		StudentID:    ns.StudentID,
		ParentUserID: ns.ParentUserID,
	}
	db.students[st.ID] = st
	return copyStudent(st), nil
}

func (db *DB) UpdateStudent(actingAdminID, id int, us student.UpdateStudent) (student.Student, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.requireAdmin(actingAdminID); err != nil {
		return student.Student{}, err
	}
	st, ok := db.students[id]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	st.FirstName = us.FirstName
	st.LastName = us.LastName
	st.StudentID = us.StudentID
	st.ParentUserID = us.ParentUserID
	return copyStudent(st), nil
}

func (db *DB) DeleteStudent(actingAdminID, id int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.requireAdmin(actingAdminID); err != nil {
		return err
	}
	if _, ok := db.students[id]; !ok {
		return student.ErrNotFound
	}
	// associated records go with the student
	delete(db.students, id)
	return nil
}

func (db *DB) CreateResult(actingAdminID, studentID int, nr student.NewResult) (student.Result, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.requireAdmin(actingAdminID); err != nil {
		return student.Result{}, err
	}
	st, ok := db.students[studentID]
	if !ok {
		return student.Result{}, student.ErrNotFound
	}

	db.resultPK++
	res := student.Result{
		ID:        db.resultPK,
		Subject:   nr.Subject,
		Grade:     nr.Grade,
		Score:     nr.Score,
		Date:      nr.Date,
		StudentID: studentID,
	}
	st.Results = append(st.Results, res)
	return res, nil
}

func (db *DB) DeleteResult(actingAdminID, resultID int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.requireAdmin(actingAdminID); err != nil {
		return err
	}
	for _, st := range db.students {
		for i, res := range st.Results {
			if res.ID == resultID {
				st.Results = append(st.Results[:i], st.Results[i+1:]...)
				return nil
			}
		}
	}
	return student.ErrNotFound
}

func (db *DB) CreateAttendance(actingAdminID, studentID int, na student.NewAttendance) (student.Attendance, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.requireAdmin(actingAdminID); err != nil {
		return student.Attendance{}, err
	}
	st, ok := db.students[studentID]
	if !ok {
		return student.Attendance{}, student.ErrNotFound
	}

	db.attendancePK++
	att := student.Attendance{
		ID:        db.attendancePK,
		Date:      na.Date,
		Status:    na.Status,
		Reason:    na.Reason,
		StudentID: studentID,
	}
	st.AttendanceRecords = append(st.AttendanceRecords, att)
	return att, nil
}

func (db *DB) DeleteAttendance(actingAdminID, attendanceID int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.requireAdmin(actingAdminID); err != nil {
		return err
	}
	for _, st := range db.students {
		for i, att := range st.AttendanceRecords {
			if att.ID == attendanceID {
				st.AttendanceRecords = append(st.AttendanceRecords[:i], st.AttendanceRecords[i+1:]...)
				return nil
			}
		}
	}
	return student.ErrNotFound
}
