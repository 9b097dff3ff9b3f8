package user

import (
	"testing"

	"github.com/trezcool/darasa/core"
)

func TestChatPartnerRole(t *testing.T) {
	tests := []struct {
		role        string
		wantPartner string
		wantOK      bool
	}{
		{role: RoleAdmin, wantPartner: RoleParent, wantOK: true},
		{role: RoleParent, wantPartner: RoleAdmin, wantOK: true},
		{role: "TEACHER", wantPartner: "", wantOK: false},
		{role: "", wantPartner: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			partner, ok := ChatPartnerRole(tt.role)
			if partner != tt.wantPartner || ok != tt.wantOK {
				t.Errorf("ChatPartnerRole(%q) = (%q, %v), want (%q, %v)", tt.role, partner, ok, tt.wantPartner, tt.wantOK)
			}
		})
	}
}

func TestNewUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		nu      NewUser
		wantErr bool
	}{
		{name: "ok", nu: NewUser{Username: "jane01", Password: "secret", Email: "jane@test.cd", Role: RoleParent}},
		{name: "email is lowered", nu: NewUser{Username: "jane01", Password: "secret", Email: "JANE@Test.CD", Role: RoleParent}},
		{name: "username too short", nu: NewUser{Username: "ja", Password: "secret", Email: "jane@test.cd", Role: RoleParent}, wantErr: true},
		{name: "bad email", nu: NewUser{Username: "jane01", Password: "secret", Email: "lol", Role: RoleParent}, wantErr: true},
		{name: "unknown role", nu: NewUser{Username: "jane01", Password: "secret", Email: "jane@test.cd", Role: "TEACHER"}, wantErr: true},
		{name: "missing password", nu: NewUser{Username: "jane01", Email: "jane@test.cd", Role: RoleParent}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.nu.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.nu.Email != core.CleanString(tt.nu.Email, true) {
				t.Errorf("Validate() did not lower the email: %q", tt.nu.Email)
			}
		})
	}
}

func TestUser_roles(t *testing.T) {
	if !(User{Role: RoleAdmin}).IsAdmin() {
		t.Error("IsAdmin() = false for an ADMIN")
	}
	if !(User{Role: RoleParent}).IsParent() {
		t.Error("IsParent() = false for a PARENT")
	}
	if (User{Role: RoleParent}).IsAdmin() {
		t.Error("IsAdmin() = true for a PARENT")
	}
}
