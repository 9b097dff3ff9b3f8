package gateway

import (
	"fmt"
	"net/http"

	"github.com/trezcool/darasa/core/student"
)

var _ student.Gateway = (*Client)(nil)

func (c *Client) QueryAllStudents() ([]student.Student, error) {
	var students []student.Student
	if err := c.get("/api/students", &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *Client) QueryStudentsByParent(parentID int) ([]student.Student, error) {
	var students []student.Student
	if err := c.get(fmt.Sprintf("/api/students/byParent/%d", parentID), &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *Client) QueryStudentResults(studentID int) ([]student.Result, error) {
	var results []student.Result
	if err := c.get(fmt.Sprintf("/api/students/%d/results", studentID), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) QueryStudentAttendance(studentID int) ([]student.Attendance, error) {
	var records []student.Attendance
	if err := c.get(fmt.Sprintf("/api/students/%d/attendance", studentID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) CreateStudent(actingAdminID int, ns student.NewStudent) (student.Student, error) {
	var st student.Student
	if err := c.post(fmt.Sprintf("/api/students/%d", actingAdminID), ns, &st); err != nil {
		return student.Student{}, err
	}
	return st, nil
}

func (c *Client) UpdateStudent(actingAdminID, id int, us student.UpdateStudent) (student.Student, error) {
	var st student.Student
	if err := c.put(fmt.Sprintf("/api/students/%d/%d", actingAdminID, id), us, &st); err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, err
	}
	return st, nil
}

func (c *Client) DeleteStudent(actingAdminID, id int) error {
	return c.delete(fmt.Sprintf("/api/students/%d/%d", actingAdminID, id))
}

func (c *Client) CreateResult(actingAdminID, studentID int, nr student.NewResult) (student.Result, error) {
	var res student.Result
	if err := c.post(fmt.Sprintf("/api/students/%d/%d/results", actingAdminID, studentID), nr, &res); err != nil {
		return student.Result{}, err
	}
	return res, nil
}

func (c *Client) DeleteResult(actingAdminID, resultID int) error {
	return c.delete(fmt.Sprintf("/api/students/%d/results/%d", actingAdminID, resultID))
}

func (c *Client) CreateAttendance(actingAdminID, studentID int, na student.NewAttendance) (student.Attendance, error) {
	var att student.Attendance
	if err := c.post(fmt.Sprintf("/api/students/%d/%d/attendance", actingAdminID, studentID), na, &att); err != nil {
		return student.Attendance{}, err
	}
	return att, nil
}

func (c *Client) DeleteAttendance(actingAdminID, attendanceID int) error {
	return c.delete(fmt.Sprintf("/api/students/%d/attendance/%d", actingAdminID, attendanceID))
}
