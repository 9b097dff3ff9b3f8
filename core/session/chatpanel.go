package session

import (
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/chat"
	"github.com/trezcool/darasa/core/reactive"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/core/view"
)

// ChatPanel is the global chat surface: open/closed state, the
// searchable chat-partner list and the conversation resolver.
type ChatPanel struct {
	sess *Session
	gw   chat.Gateway

	Open     *reactive.Cell[bool]
	Resolver *chat.Resolver

	// Partners lists the users the current user may chat with
	// (admins see parents and vice versa), searchable by username.
	Partners *view.List[user.User]
}

func newChatPanel(s *Session, gw chat.Gateway) *ChatPanel {
	p := &ChatPanel{
		sess:     s,
		gw:       gw,
		Open:     reactive.NewCell(false),
		Resolver: chat.NewResolver(gw, s.Store.Conversations, s.CurrentUser),
	}
	candidates := reactive.Derive(func() []user.User {
		return chat.Candidates(s.Store.Users.Get(), s.CurrentUser.Get())
	}, s.Store.Users, s.CurrentUser)
	p.Partners = view.NewList[user.User](candidates, s.conf.PageSize, func(u user.User) []string {
		return []string{u.Username}
	})
	return p
}

// Load fetches the user roster and the current user's conversations.
func (p *ChatPanel) Load() error {
	cur := p.sess.CurrentUser.Get()
	if cur == nil {
		return ErrNotLoggedIn
	}
	users, err := p.sess.userSvc.All()
	if err != nil {
		return errors.Wrap(err, "failed to load chat data")
	}
	convs, err := p.gw.QueryConversationsByParticipant(cur.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load chat data")
	}
	p.sess.Store.Users.Set(users)
	p.sess.Store.Conversations.Set(convs)
	return nil
}

func (p *ChatPanel) Toggle() {
	p.Open.Update(func(open bool) bool { return !open })
}

// Close shuts the panel and clears the selection and compose input.
func (p *ChatPanel) Close() {
	p.Open.Set(false)
	p.Resolver.Reset()
}

// OpenWith resolves (or creates) the conversation with the given
// partner and selects it.
func (p *ChatPanel) OpenWith(partner user.User) (*chat.Conversation, error) {
	conv, err := p.Resolver.Resolve(partner)
	if err != nil {
		p.sess.log.Error("resolving conversation failed", err)
		return nil, err
	}
	return conv, nil
}

// Send posts the compose input to the selected conversation.
func (p *ChatPanel) Send() (chat.Message, error) {
	msg, err := p.Resolver.Send()
	if err != nil {
		return chat.Message{}, err
	}
	return msg, nil
}
