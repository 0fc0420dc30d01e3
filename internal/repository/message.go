package repository

import (
	"fmt"
	"slices"

	"example/storefront/internal/kvstore"
	"example/storefront/internal/logger"
	"example/storefront/internal/models"
)

// Message store operations

// GetAllMessages returns every message
func GetAllMessages(s *kvstore.Store) []models.Message {
	return kvstore.GetCollection[models.Message](s, MessagesKey)
}

// SaveMessages replaces the message collection
func SaveMessages(s *kvstore.Store, messages []models.Message) {
	kvstore.SetCollection(s, MessagesKey, messages)
}

// SendMessage stores an unread message and notifies the recipient, naming
// the sender when it can be resolved.
func SendMessage(s *kvstore.Store, fromUserID, toUserID, content string) models.Message {
	msg := models.Message{
		ID:         newID(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Content:    content,
		Timestamp:  now(),
	}
	SaveMessages(s, append(GetAllMessages(s), msg))
	logger.Log.Infow("Message sent", "message_id", msg.ID, "from_user_id", fromUserID, "to_user_id", toUserID)

	sender := UnknownUserName
	if u, ok := GetUserByID(s, fromUserID); ok {
		sender = u.Name
	}
	CreateNotification(s, toUserID, models.NotificationMessage,
		"New Message",
		fmt.Sprintf("You have a new message from %s", sender))

	return msg
}

// MarkMessageRead flags a message as read. Unknown IDs are ignored.
func MarkMessageRead(s *kvstore.Store, id string) {
	messages := GetAllMessages(s)
	for i := range messages {
		if messages[i].ID == id {
			messages[i].Read = true
			SaveMessages(s, messages)
			return
		}
	}
}

// GetConversation returns the messages exchanged between two users in
// either direction, oldest first. Equal timestamps keep insertion order.
func GetConversation(s *kvstore.Store, userA, userB string) []models.Message {
	var conversation []models.Message
	for _, m := range GetAllMessages(s) {
		if (m.FromUserID == userA && m.ToUserID == userB) || (m.FromUserID == userB && m.ToUserID == userA) {
			conversation = append(conversation, m)
		}
	}
	slices.SortStableFunc(conversation, func(a, b models.Message) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return conversation
}

// GetConversationPartners lists the users userID has exchanged messages
// with, most recent conversation first
func GetConversationPartners(s *kvstore.Store, userID string) []string {
	messages := GetAllMessages(s)
	slices.SortStableFunc(messages, func(a, b models.Message) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	var partners []string
	for _, m := range messages {
		var other string
		switch userID {
		case m.FromUserID:
			other = m.ToUserID
		case m.ToUserID:
			other = m.FromUserID
		default:
			continue
		}
		if !slices.Contains(partners, other) {
			partners = append(partners, other)
		}
	}
	return partners
}

// GetUnreadMessageCount counts the unread messages addressed to userID
func GetUnreadMessageCount(s *kvstore.Store, userID string) int {
	count := 0
	for _, m := range GetAllMessages(s) {
		if m.ToUserID == userID && !m.Read {
			count++
		}
	}
	return count
}
