package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/user"
	dummygw "github.com/trezcool/darasa/storage/gateway/dummy"
	testutil "github.com/trezcool/darasa/tests"
)

func setup(t *testing.T) (Server, *dummygw.DB) {
	db, err := dummygw.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	srv := NewServer(&Options{
		DisableReqLogs: true,
		DB:             db,
		Logger:         testutil.NopLogger{},
		Config:         &core.Config{Env: "TEST", TestMode: true},
	})
	return srv, db
}

func doRequest(srv Server, method, path string, data interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if data != nil {
		_ = json.NewEncoder(&body).Encode(data)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestUserAPI(t *testing.T) {
	srv, db := setup(t)
	existing := testutil.CreateUser(t, db, "admin", "admin@test.cd", "secret", user.RoleAdmin)

	t.Run("query", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/api/users", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var users []user.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		assert.Len(t, users, 1)
		assert.Equal(t, existing.Username, users[0].Username)
	})

	t.Run("create", func(t *testing.T) {
		rec := doRequest(srv, http.MethodPost, "/api/users", user.NewUser{
			Username: "jane", Password: "secret", Email: "jane@test.cd", Role: user.RoleParent,
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var usr user.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usr))
		assert.NotZero(t, usr.ID)
		assert.Equal(t, user.RoleParent, usr.Role)
	})

	t.Run("create: validation error", func(t *testing.T) {
		rec := doRequest(srv, http.MethodPost, "/api/users", user.NewUser{
			Username: "jo", Password: "secret", Email: "lol", Role: "TEACHER",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var fldErrs map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
		assert.Contains(t, fldErrs, "username")
		assert.Contains(t, fldErrs, "email")
		assert.Contains(t, fldErrs, "role")
	})

	t.Run("create: duplicate email", func(t *testing.T) {
		rec := doRequest(srv, http.MethodPost, "/api/users", user.NewUser{
			Username: "admin2", Password: "secret", Email: "admin@test.cd", Role: user.RoleAdmin,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), dummygw.ErrEmailExists.Error())
	})

	t.Run("retrieve", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/api/users/1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var usr user.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usr))
		assert.Equal(t, existing.ID, usr.ID)
	})

	t.Run("retrieve: not found", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/api/users/99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), user.ErrNotFound.Error())
	})

	t.Run("retrieve: bad id", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/api/users/lol", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		rec := doRequest(srv, http.MethodPut, "/api/users/1", user.UpdateUser{
			Username: "superadmin", Email: "admin@test.cd", Role: user.RoleAdmin,
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		var usr user.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usr))
		assert.Equal(t, "superadmin", usr.Username)
	})

	t.Run("destroy", func(t *testing.T) {
		tmp := testutil.CreateUser(t, db, "temp", "temp@test.cd", "secret", user.RoleParent)

		rec := doRequest(srv, http.MethodDelete, "/api/users/"+strconv.Itoa(tmp.ID), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doRequest(srv, http.MethodDelete, "/api/users/"+strconv.Itoa(tmp.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
