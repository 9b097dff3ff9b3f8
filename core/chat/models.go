package chat

import (
	"time"
)

// Message is append-only: the gateway returns messages in send order,
// which is chronological order, and nothing re-sorts or edits them.
type Message struct {
	ID             string    `json:"id"`
	SenderID       int       `json:"senderId"`
	SenderUsername string    `json:"senderUsername"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}

// Conversation between two participants. The collection-level objects
// carry summary data only; Messages is populated when a conversation
// is fetched by id.
type Conversation struct {
	ID                   string    `json:"id"`
	Participant1ID       int       `json:"participant1Id"`
	Participant2ID       int       `json:"participant2Id"`
	Participant1Username string    `json:"participant1Username"`
	Participant2Username string    `json:"participant2Username"`
	CreatedAt            time.Time `json:"createdAt"`
	LastUpdatedAt        time.Time `json:"lastUpdatedAt"`
	Messages             []Message `json:"messages"`
}

// Key returns the conversation's unordered participant pair.
func (c Conversation) Key() PairKey {
	return NewPairKey(c.Participant1ID, c.Participant2ID)
}

// PartnerName returns the username of the participant other than userID.
func (c Conversation) PartnerName(userID int) string {
	if c.Participant1ID == userID {
		return c.Participant2Username
	}
	return c.Participant1Username
}

// PairKey identifies a conversation by its two participants regardless
// of order: NewPairKey(a, b) == NewPairKey(b, a). At most one
// conversation exists per key; the Resolver maintains that invariant
// client-side.
type PairKey struct {
	lo, hi int
}

func NewPairKey(a, b int) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{lo: a, hi: b}
}

// NewConversation contains the participant pair to open a conversation for.
type NewConversation struct {
	Participant1ID int `json:"participant1Id"`
	Participant2ID int `json:"participant2Id"`
}

// NewMessage is an outgoing message payload.
type NewMessage struct {
	SenderID int    `json:"senderId"`
	Content  string `json:"content"`
}
