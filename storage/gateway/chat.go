package gateway

import (
	"fmt"
	"net/http"

	"github.com/trezcool/darasa/core/chat"
)

var _ chat.Gateway = (*Client)(nil)

func (c *Client) QueryConversationsByParticipant(participantID int) ([]chat.Conversation, error) {
	var convs []chat.Conversation
	if err := c.get(fmt.Sprintf("/api/communication/chats/byParticipant/%d", participantID), &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

func (c *Client) GetConversation(id string) (chat.Conversation, error) {
	var conv chat.Conversation
	if err := c.get("/api/communication/chats/"+id, &conv); err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			return chat.Conversation{}, chat.ErrNotFound
		}
		return chat.Conversation{}, err
	}
	return conv, nil
}

func (c *Client) CreateConversation(nc chat.NewConversation) (chat.Conversation, error) {
	var conv chat.Conversation
	if err := c.post("/api/communication/chats", nc, &conv); err != nil {
		return chat.Conversation{}, err
	}
	return conv, nil
}

func (c *Client) CreateMessage(conversationID string, nm chat.NewMessage) (chat.Message, error) {
	var msg chat.Message
	if err := c.post("/api/communication/chats/"+conversationID+"/messages", nm, &msg); err != nil {
		return chat.Message{}, err
	}
	return msg, nil
}
