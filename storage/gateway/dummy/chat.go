package dummygw

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/chat"
)

var _ chat.Gateway = (*DB)(nil)

// summary strips the message history, as the backend's list endpoints do.
func summary(conv *chat.Conversation) chat.Conversation {
	out := *conv
	out.Messages = nil
	return out
}

func (db *DB) QueryConversationsByParticipant(participantID int) ([]chat.Conversation, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	convs := make([]chat.Conversation, 0)
	for _, conv := range db.chats {
		if conv.Participant1ID == participantID || conv.Participant2ID == participantID {
			convs = append(convs, summary(conv))
		}
	}
	sort.Slice(convs, func(i, j int) bool { return convs[i].CreatedAt.Before(convs[j].CreatedAt) })
	return convs, nil
}

func (db *DB) GetConversation(id string) (chat.Conversation, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	conv, ok := db.chats[id]
	if !ok {
		return chat.Conversation{}, chat.ErrNotFound
	}
	out := *conv
	out.Messages = append([]chat.Message(nil), conv.Messages...)
	return out, nil
}

func (db *DB) CreateConversation(nc chat.NewConversation) (chat.Conversation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	// one conversation per participant pair; concurrent clients may
	// both request creation, the second gets the existing one
	key := chat.NewPairKey(nc.Participant1ID, nc.Participant2ID)
	for _, conv := range db.chats {
		if conv.Key() == key {
			return summary(conv), nil
		}
	}

	now := time.Now().UTC()
	conv := &chat.Conversation{
		ID:             uuid.NewString(),
		Participant1ID: nc.Participant1ID,
		Participant2ID: nc.Participant2ID,
		CreatedAt:      now,
		LastUpdatedAt:  now,
	}
	if rec, ok := db.users[nc.Participant1ID]; ok {
		conv.Participant1Username = rec.Username
	}
	if rec, ok := db.users[nc.Participant2ID]; ok {
		conv.Participant2Username = rec.Username
	}
	db.chats[conv.ID] = conv
	return summary(conv), nil
}

func (db *DB) CreateMessage(conversationID string, nm chat.NewMessage) (chat.Message, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	conv, ok := db.chats[conversationID]
	if !ok {
		return chat.Message{}, chat.ErrNotFound
	}

	now := time.Now().UTC()
	msg := chat.Message{
		ID:        uuid.NewString(),
		SenderID:  nm.SenderID,
		Content:   nm.Content,
		Timestamp: now,
	}
	if rec, ok := db.users[nm.SenderID]; ok {
		msg.SenderUsername = rec.Username
	}
	conv.Messages = append(conv.Messages, msg)
	conv.LastUpdatedAt = now
	return msg, nil
}
