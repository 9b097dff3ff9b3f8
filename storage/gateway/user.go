package gateway

import (
	"fmt"
	"net/http"

	"github.com/trezcool/darasa/core/user"
)

var _ user.Gateway = (*Client)(nil)

func (c *Client) QueryAllUsers() ([]user.User, error) {
	var users []user.User
	if err := c.get("/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUserByID(id int) (user.User, error) {
	var usr user.User
	if err := c.get(fmt.Sprintf("/api/users/%d", id), &usr); err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func (c *Client) CreateUser(nu user.NewUser) (user.User, error) {
	var usr user.User
	if err := c.post("/api/users", nu, &usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (c *Client) UpdateUser(id int, uu user.UpdateUser) (user.User, error) {
	var usr user.User
	if err := c.put(fmt.Sprintf("/api/users/%d", id), uu, &usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (c *Client) DeleteUser(id int) error {
	return c.delete(fmt.Sprintf("/api/users/%d", id))
}
