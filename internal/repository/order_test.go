package repository

import (
	"strings"
	"testing"
	"time"

	"example/storefront/internal/kvstore"
	"example/storefront/internal/models"
)

func TestCreateOrder(t *testing.T) {
	s := setupTestStore(t)

	items := []models.CartItem{{ProductID: "1", Quantity: 2, Price: 100}}
	order := CreateOrder(s, "U", items, "1 Main St", "express")

	if order.Total != 200 {
		t.Errorf("Expected total 200, got %v", order.Total)
	}
	if order.Status != models.StatusPending {
		t.Errorf("Expected status pending, got %q", order.Status)
	}
	if order.ID == "" || order.CreatedAt.IsZero() {
		t.Errorf("Expected id and created_at, got %+v", order)
	}

	stored, ok := GetOrderByID(s, order.ID)
	if !ok || stored.ShippingMethod != "express" || len(stored.Items) != 1 {
		t.Errorf("Expected order persisted, got %+v (%v)", stored, ok)
	}

	notifications := GetNotificationsForUser(s, "U")
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifications))
	}
	if notifications[0].Type != models.NotificationOrderStatus || notifications[0].Read {
		t.Errorf("Unexpected notification %+v", notifications[0])
	}
	if len(GetAllNotifications(s)) != 1 {
		t.Error("Expected no notifications for anyone else")
	}
}

func TestCreateOrderTotalNotRecomputed(t *testing.T) {
	s := setupTestStore(t)

	items := []models.CartItem{{ProductID: "1", Quantity: 1, Price: 10}, {ProductID: "2", Quantity: 3, Price: 2.5}}
	order := CreateOrder(s, "U", items, "addr", "")
	if order.Total != 17.5 {
		t.Fatalf("Expected total 17.5, got %v", order.Total)
	}

	// caller mutating its slice afterwards must not affect the stored order
	items[0].Price = 1000
	UpdateOrderStatus(s, order.ID, models.StatusShipped)

	stored, _ := GetOrderByID(s, order.ID)
	if stored.Total != 17.5 || stored.Items[0].Price != 10 {
		t.Errorf("Expected stored order untouched, got %+v", stored)
	}
}

func TestUpdateOrderStatusNotifiesOnChangeOnly(t *testing.T) {
	s := setupTestStore(t)
	stepClock(t, epoch, time.Second)
	order := CreateOrder(s, "U", []models.CartItem{{ProductID: "1", Quantity: 1, Price: 5}}, "addr", "")

	before := len(GetAllNotifications(s))
	if !UpdateOrderStatus(s, order.ID, models.StatusPending) {
		t.Fatal("Expected update to find the order")
	}
	if got := len(GetAllNotifications(s)); got != before {
		t.Errorf("Expected %d notifications after same-status update, got %d", before, got)
	}

	if !UpdateOrderStatus(s, order.ID, models.StatusProcessing) {
		t.Fatal("Expected update to find the order")
	}
	if got := len(GetAllNotifications(s)); got != before+1 {
		t.Errorf("Expected %d notifications after status change, got %d", before+1, got)
	}

	stored, _ := GetOrderByID(s, order.ID)
	if stored.Status != models.StatusProcessing {
		t.Errorf("Expected status processing, got %q", stored.Status)
	}

	latest := GetNotificationsForUser(s, "U")[0]
	if !strings.Contains(latest.Message, "processing") {
		t.Errorf("Expected notification to describe the transition, got %q", latest.Message)
	}
}

func TestUpdateOrderStatusSameStatusStillWrites(t *testing.T) {
	s := setupTestStore(t)
	order := CreateOrder(s, "U", nil, "addr", "")

	// pad the stored encoding; only a fresh write drops the padding
	s.Set(OrdersKey, "  "+rawValue(t, s, OrdersKey))

	UpdateOrderStatus(s, order.ID, models.StatusPending)

	raw := rawValue(t, s, OrdersKey)
	if strings.HasPrefix(raw, " ") {
		t.Error("Expected same-status update to rewrite the collection")
	}
	if stored, _ := GetOrderByID(s, order.ID); stored.Status != models.StatusPending {
		t.Errorf("Expected status pending, got %q", stored.Status)
	}
}

func TestUpdateOrderStatusMissing(t *testing.T) {
	s := setupTestStore(t)

	if UpdateOrderStatus(s, "nope", models.StatusShipped) {
		t.Error("Expected update of unknown order to fail")
	}
	if len(GetAllNotifications(s)) != 0 {
		t.Error("Expected no notification for unknown order")
	}
}

func TestGetOrdersByUserID(t *testing.T) {
	s := setupTestStore(t)
	stepClock(t, epoch, time.Minute)

	first := CreateOrder(s, "U", nil, "a", "")
	CreateOrder(s, "V", nil, "b", "")
	second := CreateOrder(s, "U", nil, "c", "")

	orders := GetOrdersByUserID(s, "U")
	if len(orders) != 2 || orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Errorf("Expected U's orders newest first, got %+v", orders)
	}
}

func rawValue(t *testing.T, s *kvstore.Store, name string) string {
	t.Helper()
	v, ok := s.Get(name)
	if !ok {
		t.Fatalf("Expected key %q to be present", name)
	}
	return v
}
