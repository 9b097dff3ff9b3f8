package user

import (
	"errors"
)

var ErrNotFound = errors.New("user not found")

type (
	// Gateway is the slice of the remote data-access contract this
	// package consumes. Admin scoping of mutations is the gateway's
	// concern; see Service for the client-side presence check.
	Gateway interface {
		QueryAllUsers() ([]User, error)
		GetUserByID(id int) (User, error)
		CreateUser(nu NewUser) (User, error)
		UpdateUser(id int, uu UpdateUser) (User, error)
		DeleteUser(id int) error
	}

	Service struct {
		gw Gateway
	}
)

func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

func (svc *Service) All() ([]User, error) {
	return svc.gw.QueryAllUsers()
}

func (svc *Service) GetByID(id int) (User, error) {
	return svc.gw.GetUserByID(id)
}

func (svc *Service) Create(nu NewUser) (User, error) {
	if err := nu.Validate(); err != nil {
		return User{}, err
	}
	return svc.gw.CreateUser(nu)
}

func (svc *Service) Update(id int, uu UpdateUser) (User, error) {
	if err := uu.Validate(); err != nil {
		return User{}, err
	}
	return svc.gw.UpdateUser(id, uu)
}

func (svc *Service) Delete(id int) error {
	return svc.gw.DeleteUser(id)
}
