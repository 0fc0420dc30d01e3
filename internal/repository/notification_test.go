package repository

import (
	"testing"
	"time"

	"example/storefront/internal/models"
)

func TestNotificationsNewestFirst(t *testing.T) {
	s := setupTestStore(t)
	stepClock(t, epoch, time.Minute)

	t1 := CreateNotification(s, "u", models.NotificationGeneral, "one", "first")
	CreateNotification(s, "other", models.NotificationGeneral, "x", "not mine")
	t2 := CreateNotification(s, "u", models.NotificationGeneral, "two", "second")
	t3 := CreateNotification(s, "u", models.NotificationGeneral, "three", "third")

	got := GetNotificationsForUser(s, "u")
	if len(got) != 3 {
		t.Fatalf("Expected 3 notifications, got %d", len(got))
	}
	for i, want := range []string{t3.ID, t2.ID, t1.ID} {
		if got[i].ID != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
}

func TestNotificationTiesKeepInsertionOrder(t *testing.T) {
	s := setupTestStore(t)
	frozenClock(t, epoch)

	a := CreateNotification(s, "u", models.NotificationGeneral, "a", "a")
	b := CreateNotification(s, "u", models.NotificationGeneral, "b", "b")

	got := GetNotificationsForUser(s, "u")
	if got[0].ID != a.ID || got[1].ID != b.ID {
		t.Errorf("Expected insertion order on equal timestamps, got %+v", got)
	}
}

func TestMarkNotificationRead(t *testing.T) {
	s := setupTestStore(t)

	n := CreateNotification(s, "u", models.NotificationGeneral, "t", "m")
	CreateNotification(s, "u", models.NotificationGeneral, "t", "m")
	CreateNotification(s, "v", models.NotificationGeneral, "t", "m")

	MarkNotificationRead(s, n.ID)
	MarkNotificationRead(s, "missing")
	if c := GetUnreadNotificationCount(s, "u"); c != 1 {
		t.Errorf("Expected 1 unread for u, got %d", c)
	}

	MarkAllNotificationsRead(s, "u")
	if c := GetUnreadNotificationCount(s, "u"); c != 0 {
		t.Errorf("Expected 0 unread for u, got %d", c)
	}
	if c := GetUnreadNotificationCount(s, "v"); c != 1 {
		t.Errorf("Expected v untouched, got %d", c)
	}
}
