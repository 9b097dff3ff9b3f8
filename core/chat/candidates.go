package chat

import (
	"github.com/trezcool/darasa/core/user"
)

// Candidates returns the users eligible to chat with current: those
// holding the partner role (admin↔parent). The current user, same-role
// users and users with an unknown role are never candidates; a missing
// or unknown current role yields no candidates at all. Roster order is
// preserved.
func Candidates(users []user.User, current *user.User) []user.User {
	if current == nil {
		return nil
	}
	partnerRole, ok := user.ChatPartnerRole(current.Role)
	if !ok {
		return nil
	}
	out := make([]user.User, 0, len(users))
	for _, u := range users {
		if u.Role == partnerRole && u.ID != current.ID {
			out = append(out, u)
		}
	}
	return out
}
