package chat

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/reactive"
	"github.com/trezcool/darasa/core/user"
)

var (
	ErrNotFound       = errors.New("conversation not found")
	ErrNotLoggedIn    = errors.New("no user is logged in")
	ErrNoConversation = errors.New("no conversation is selected")
	ErrEmptyMessage   = errors.New("message content is empty")
)

type (
	// Gateway is the remote data-access contract for conversations.
	Gateway interface {
		QueryConversationsByParticipant(participantID int) ([]Conversation, error)
		GetConversation(id string) (Conversation, error)
		CreateConversation(nc NewConversation) (Conversation, error)
		CreateMessage(conversationID string, nm NewMessage) (Message, error)
	}

	// Resolver finds or creates the unique conversation between the
	// current user and a chat partner, and owns the selected
	// conversation and the compose input.
	Resolver struct {
		gw            Gateway
		conversations *reactive.Cell[[]Conversation]
		currentUser   *reactive.Cell[*user.User]

		Selected *reactive.Cell[*Conversation]
		Compose  *reactive.Cell[string]
	}
)

// NewResolver wires the resolver onto the session's conversation
// collection and current-user cells.
func NewResolver(gw Gateway, conversations *reactive.Cell[[]Conversation], currentUser *reactive.Cell[*user.User]) *Resolver {
	return &Resolver{
		gw:            gw,
		conversations: conversations,
		currentUser:   currentUser,
		Selected:      reactive.NewCell[*Conversation](nil),
		Compose:       reactive.NewCell(""),
	}
}

// Resolve selects the conversation between the current user and other,
// creating it when none exists. For a stable snapshot of the
// collection it is idempotent: repeated calls for the same pair (in
// either order) select a conversation with the same id, and the
// collection holds exactly one entry for the pair. On failure the
// previously selected conversation is left untouched.
func (r *Resolver) Resolve(other user.User) (*Conversation, error) {
	cur := r.currentUser.Get()
	if cur == nil {
		return nil, ErrNotLoggedIn
	}
	key := NewPairKey(cur.ID, other.ID)

	for _, conv := range r.conversations.Get() {
		if conv.Key() == key {
			// collection entries are summaries; fetch the full message history
			full, err := r.gw.GetConversation(conv.ID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to open conversation")
			}
			r.Selected.Set(&full)
			return &full, nil
		}
	}

	created, err := r.gw.CreateConversation(NewConversation{
		Participant1ID: cur.ID,
		Participant2ID: other.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start conversation")
	}
	r.conversations.Update(func(convs []Conversation) []Conversation {
		return append(convs, created)
	})
	r.Selected.Set(&created)
	return &created, nil
}

// Send posts the compose content to the selected conversation. Empty
// (after trimming) content, a missing selection or a missing session
// are rejected locally, before any gateway call. On success the
// message is appended to the selected conversation in place and the
// compose input is cleared.
func (r *Resolver) Send() (Message, error) {
	cur := r.currentUser.Get()
	if cur == nil {
		return Message{}, ErrNotLoggedIn
	}
	sel := r.Selected.Get()
	if sel == nil {
		return Message{}, ErrNoConversation
	}
	content := strings.TrimSpace(r.Compose.Get())
	if content == "" {
		return Message{}, ErrEmptyMessage
	}

	msg, err := r.gw.CreateMessage(sel.ID, NewMessage{SenderID: cur.ID, Content: content})
	if err != nil {
		return Message{}, errors.Wrap(err, "failed to send message")
	}
	if msg.SenderUsername == "" {
		msg.SenderUsername = cur.Username
	}
	// append in place, preserving the identity of the conversation
	// being displayed; sent messages arrive in chronological order
	sel.Messages = append(sel.Messages, msg)
	r.Selected.Set(sel)
	r.Compose.Set("")
	return msg, nil
}

// Reset clears the selection and compose input (logout, chat closed).
func (r *Resolver) Reset() {
	r.Selected.Set(nil)
	r.Compose.Set("")
}

// PartnerName names the other participant of the selected
// conversation, or "" when nothing is selected.
func (r *Resolver) PartnerName() string {
	cur := r.currentUser.Get()
	sel := r.Selected.Get()
	if cur == nil || sel == nil {
		return ""
	}
	return sel.PartnerName(cur.ID)
}
