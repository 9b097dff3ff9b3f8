package user

import (
	"github.com/trezcool/darasa/core"
)

// Roles
const (
	RoleAdmin  = "ADMIN"
	RoleParent = "PARENT"
)

var AllRoles = []string{RoleAdmin, RoleParent}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u User) IsAdmin() bool  { return u.Role == RoleAdmin }
func (u User) IsParent() bool { return u.Role == RoleParent }

// ChatPartnerRole returns the role a user of `role` may chat with:
// admins talk to parents and parents talk to admins. ok is false for
// any other role; such users have no chat partners.
func ChatPartnerRole(role string) (partner string, ok bool) {
	switch role {
	case RoleAdmin:
		return RoleParent, true
	case RoleParent:
		return RoleAdmin, true
	}
	return "", false
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Username string `json:"username" validate:"required,min=3,alphanum_"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,role"`
}

func (nu *NewUser) Validate() error {
	nu.Username = core.CleanString(nu.Username)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	return core.Validate.Struct(nu)
}

// UpdateUser defines what information may be provided to modify an existing User.
type UpdateUser struct {
	Username string `json:"username" validate:"required,min=3,alphanum_"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,role"`
}

func (uu *UpdateUser) Validate() error {
	uu.Username = core.CleanString(uu.Username)
	uu.Email = core.CleanString(uu.Email, true /* lower */)
	return core.Validate.Struct(uu)
}
