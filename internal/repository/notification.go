package repository

import (
	"slices"

	"example/storefront/internal/kvstore"
	"example/storefront/internal/logger"
	"example/storefront/internal/models"
)

// Notification store operations

// GetAllNotifications returns every notification for every user
func GetAllNotifications(s *kvstore.Store) []models.Notification {
	return kvstore.GetCollection[models.Notification](s, NotificationsKey)
}

// SaveNotifications replaces the notification collection
func SaveNotifications(s *kvstore.Store, notifications []models.Notification) {
	kvstore.SetCollection(s, NotificationsKey, notifications)
}

// CreateNotification appends an unread notification for userID. Orders and
// messages are the only callers; nothing else produces notifications.
func CreateNotification(s *kvstore.Store, userID string, typ models.NotificationType, title, message string) models.Notification {
	n := models.Notification{
		ID:        newID(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		Timestamp: now(),
	}
	SaveNotifications(s, append(GetAllNotifications(s), n))
	logger.Log.Debugw("Notification created", "notification_id", n.ID, "user_id", userID, "type", typ)
	return n
}

// MarkNotificationRead flags a notification as read. Unknown IDs are ignored.
func MarkNotificationRead(s *kvstore.Store, id string) {
	notifications := GetAllNotifications(s)
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			SaveNotifications(s, notifications)
			return
		}
	}
}

// MarkAllNotificationsRead flags every notification of userID as read
func MarkAllNotificationsRead(s *kvstore.Store, userID string) {
	notifications := GetAllNotifications(s)
	changed := false
	for i := range notifications {
		if notifications[i].UserID == userID && !notifications[i].Read {
			notifications[i].Read = true
			changed = true
		}
	}
	if changed {
		SaveNotifications(s, notifications)
	}
}

// GetNotificationsForUser returns the notifications of userID, newest first.
// Notifications with equal timestamps keep their insertion order.
func GetNotificationsForUser(s *kvstore.Store, userID string) []models.Notification {
	var result []models.Notification
	for _, n := range GetAllNotifications(s) {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	slices.SortStableFunc(result, func(a, b models.Notification) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return result
}

// GetUnreadNotificationCount counts the unread notifications of userID
func GetUnreadNotificationCount(s *kvstore.Store, userID string) int {
	count := 0
	for _, n := range GetAllNotifications(s) {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}
