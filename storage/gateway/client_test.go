package gateway

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/darasa/apps/gateway/echoapi"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/chat"
	"github.com/trezcool/darasa/core/news"
	"github.com/trezcool/darasa/core/payment"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/user"
	dummygw "github.com/trezcool/darasa/storage/gateway/dummy"
	testutil "github.com/trezcool/darasa/tests"
)

// setup runs the client against a real gateway instance, so these
// tests cover the wire contract end to end.
func setup(t *testing.T) (*Client, *dummygw.DB) {
	db, err := dummygw.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	srv := echoapi.NewServer(&echoapi.Options{
		DisableReqLogs: true,
		DB:             db,
		Logger:         testutil.NopLogger{},
		Config:         &core.Config{Env: "TEST", TestMode: true},
	})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	client := NewClient(&core.Config{GatewayBaseURL: ts.URL, RequestTimeout: 5 * time.Second})
	return client, db
}

func TestClient_users(t *testing.T) {
	client, _ := setup(t)

	created, err := client.CreateUser(user.NewUser{Username: "admin", Password: "secret", Email: "admin@test.cd", Role: user.RoleAdmin})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	users, err := client.QueryAllUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 1)

	fetched, err := client.GetUserByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created, fetched)

	_, err = client.GetUserByID(99)
	assert.Equal(t, user.ErrNotFound, err)

	updated, err := client.UpdateUser(created.ID, user.UpdateUser{Username: "superadmin", Email: "admin@test.cd", Role: user.RoleAdmin})
	assert.NoError(t, err)
	assert.Equal(t, "superadmin", updated.Username)

	assert.NoError(t, client.DeleteUser(created.ID))
	users, err = client.QueryAllUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 0)
}

func TestClient_users_apiError(t *testing.T) {
	client, db := setup(t)
	testutil.CreateUser(t, db, "admin", "admin@test.cd", "secret", user.RoleAdmin)

	_, err := client.CreateUser(user.NewUser{Username: "admin2", Password: "secret", Email: "admin@test.cd", Role: user.RoleAdmin})
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, dummygw.ErrEmailExists.Error(), apiErr.Message)
}

func TestClient_students(t *testing.T) {
	client, db := setup(t)
	admin := testutil.CreateUser(t, db, "admin", "admin@test.cd", "secret", user.RoleAdmin)
	parent := testutil.CreateUser(t, db, "jane", "jane@test.cd", "secret", user.RoleParent)

	created, err := client.CreateStudent(admin.ID, student.NewStudent{
		FirstName: "Amina", LastName: "Okoye", StudentID: "STU-001", ParentUserID: parent.ID,
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	// the backend rejects a non-admin actor
	_, err = client.CreateStudent(parent.ID, student.NewStudent{
		FirstName: "Ben", LastName: "Carter", StudentID: "STU-002", ParentUserID: parent.ID,
	})
	assert.Error(t, err)

	res, err := client.CreateResult(admin.ID, created.ID, student.NewResult{Subject: "Math", Grade: "A", Score: 92.5, Date: "03-15-2026"})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, res.StudentID)

	att, err := client.CreateAttendance(admin.ID, created.ID, student.NewAttendance{Date: "02-01-2026", Status: "Absent", Reason: "sick"})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, att.StudentID)

	students, err := client.QueryAllStudents()
	assert.NoError(t, err)
	assert.Len(t, students, 1)
	assert.Len(t, students[0].Results, 1)
	assert.Len(t, students[0].AttendanceRecords, 1)

	byParent, err := client.QueryStudentsByParent(parent.ID)
	assert.NoError(t, err)
	assert.Len(t, byParent, 1)

	results, err := client.QueryStudentResults(created.ID)
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	records, err := client.QueryStudentAttendance(created.ID)
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	assert.NoError(t, client.DeleteResult(admin.ID, res.ID))
	assert.NoError(t, client.DeleteAttendance(admin.ID, att.ID))
	assert.NoError(t, client.DeleteStudent(admin.ID, created.ID))

	_, err = client.UpdateStudent(admin.ID, created.ID, student.UpdateStudent{
		FirstName: "Amina", LastName: "Okoye", StudentID: "STU-001", ParentUserID: parent.ID,
	})
	assert.Equal(t, student.ErrNotFound, err)
}

func TestClient_payments(t *testing.T) {
	client, db := setup(t)
	admin := testutil.CreateUser(t, db, "admin", "admin@test.cd", "secret", user.RoleAdmin)
	parent := testutil.CreateUser(t, db, "jane", "jane@test.cd", "secret", user.RoleParent)
	std := testutil.CreateStudent(t, db, admin.ID, "Amina", "Okoye", "STU-001", parent.ID)

	pmt, err := client.CreatePayment(payment.NewPayment{
		StudentID: std.ID, ParentUserID: parent.ID, Amount: 150, Description: "Term 2 fees",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, pmt.TransactionID)
	assert.NotEmpty(t, pmt.Status)

	payments, err := client.QueryPaymentsByParent(parent.ID)
	assert.NoError(t, err)
	assert.Len(t, payments, 1)

	payments, err = client.QueryPaymentsByParent(admin.ID)
	assert.NoError(t, err)
	assert.Len(t, payments, 0)
}

func TestClient_news(t *testing.T) {
	client, db := setup(t)
	admin := testutil.CreateUser(t, db, "admin", "admin@test.cd", "secret", user.RoleAdmin)

	item, err := client.CreateNews(news.NewNews{Title: "Sports day", Content: "Friday at 9am.", Category: "Events", AuthorID: admin.ID})
	assert.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "admin", item.AuthorUsername)

	items, err := client.QueryAllNews()
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestClient_chat(t *testing.T) {
	client, db := setup(t)
	admin := testutil.CreateUser(t, db, "admin", "admin@test.cd", "secret", user.RoleAdmin)
	parent := testutil.CreateUser(t, db, "jane", "jane@test.cd", "secret", user.RoleParent)

	conv, err := client.CreateConversation(chat.NewConversation{Participant1ID: admin.ID, Participant2ID: parent.ID})
	assert.NoError(t, err)
	assert.NotEmpty(t, conv.ID)
	assert.Equal(t, "admin", conv.Participant1Username)

	// the backend keeps one conversation per pair, either ordering
	dup, err := client.CreateConversation(chat.NewConversation{Participant1ID: parent.ID, Participant2ID: admin.ID})
	assert.NoError(t, err)
	assert.Equal(t, conv.ID, dup.ID)

	msg, err := client.CreateMessage(conv.ID, chat.NewMessage{SenderID: admin.ID, Content: "Hello Jane"})
	assert.NoError(t, err)
	assert.Equal(t, "admin", msg.SenderUsername)

	// collection entries are summaries; the full history comes from a
	// fetch by id
	convs, err := client.QueryConversationsByParticipant(parent.ID)
	assert.NoError(t, err)
	assert.Len(t, convs, 1)
	assert.Empty(t, convs[0].Messages)

	full, err := client.GetConversation(conv.ID)
	assert.NoError(t, err)
	assert.Len(t, full.Messages, 1)

	_, err = client.GetConversation("lol")
	assert.Equal(t, chat.ErrNotFound, err)
}
