package session

import (
	"testing"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/user"
	dummygw "github.com/trezcool/darasa/storage/gateway/dummy"
	testutil "github.com/trezcool/darasa/tests"
)

func setup(t *testing.T) (*Session, *dummygw.DB) {
	db, err := dummygw.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	conf := &core.Config{Env: "TEST", TestMode: true, PageSize: 5}
	return New(conf, testutil.NopLogger{}, db), db
}

func TestSession_Login(t *testing.T) {
	sess, db := setup(t)
	testutil.CreateUser(t, db, "admin", "admin@test.cd", "secret", user.RoleAdmin)
	testutil.CreateUser(t, db, "jane", "jane@test.cd", "secret", user.RoleParent)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
		wantUser string
	}{
		{name: "ok", email: "admin@test.cd", password: "secret", wantUser: "admin"},
		{name: "email is case insensitive", email: "Admin@Test.CD", password: "secret", wantUser: "admin"},
		{name: "unknown email", email: "nobody@test.cd", password: "secret", wantErr: true},
		{name: "missing email", email: "", password: "secret", wantErr: true},
		{name: "missing password", email: "admin@test.cd", password: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess.Logout()

			usr, err := sess.Login(tt.email, tt.password)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Login() expected an error")
				}
				if sess.IsLoggedIn() {
					t.Error("Login() installed a user on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() failed: %v", err)
			}
			if usr.Username != tt.wantUser {
				t.Errorf("Login() user = %s, want %s", usr.Username, tt.wantUser)
			}
			if !sess.IsLoggedIn() || !sess.IsAdmin() {
				t.Error("Login() did not install the admin session")
			}
			// login loads the chat data
			if got := len(sess.Store.Users.Get()); got != 2 {
				t.Errorf("len(users) = %d, want 2", got)
			}
		})
	}
}

func TestSession_Logout(t *testing.T) {
	sess, db := setup(t)
	testutil.CreateUser(t, db, "admin", "admin@test.cd", "secret", user.RoleAdmin)
	parent := testutil.CreateUser(t, db, "jane", "jane@test.cd", "secret", user.RoleParent)

	if _, err := sess.Login("admin@test.cd", "secret"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if _, err := sess.Chat.OpenWith(parent); err != nil {
		t.Fatalf("OpenWith() failed: %v", err)
	}

	sess.Logout()
	if sess.IsLoggedIn() {
		t.Error("Logout() left a user")
	}
	if sess.Chat.Resolver.Selected.Get() != nil {
		t.Error("Logout() left a selected conversation")
	}
	if sess.Store.Users.Get() != nil || sess.Store.Conversations.Get() != nil {
		t.Error("Logout() left loaded collections")
	}
}

func TestSession_roleChecks(t *testing.T) {
	sess, db := setup(t)
	testutil.CreateUser(t, db, "jane", "jane@test.cd", "secret", user.RoleParent)

	if sess.IsAdmin() || sess.IsParent() {
		t.Error("role checks true while logged out")
	}
	if _, err := sess.Login("jane@test.cd", "secret"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if !sess.IsParent() || sess.IsAdmin() {
		t.Error("role checks wrong for a PARENT")
	}
}
