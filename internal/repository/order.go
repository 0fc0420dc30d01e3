package repository

import (
	"fmt"
	"slices"

	"example/storefront/internal/kvstore"
	"example/storefront/internal/logger"
	"example/storefront/internal/models"
)

// Order store operations

// GetAllOrders returns every order
func GetAllOrders(s *kvstore.Store) []models.Order {
	return kvstore.GetCollection[models.Order](s, OrdersKey)
}

// SaveOrders replaces the order collection
func SaveOrders(s *kvstore.Store, orders []models.Order) {
	kvstore.SetCollection(s, OrdersKey, orders)
}

// GetOrderByID looks up the order with the specified ID
func GetOrderByID(s *kvstore.Store, id string) (models.Order, bool) {
	for _, o := range GetAllOrders(s) {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// GetOrdersByUserID returns the orders placed by userID, newest first
func GetOrdersByUserID(s *kvstore.Store, userID string) []models.Order {
	var orders []models.Order
	for _, o := range GetAllOrders(s) {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	slices.SortStableFunc(orders, func(a, b models.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return orders
}

// CreateOrder records a pending order for userID and notifies the user that
// it was placed. The total is computed from the items once, here.
func CreateOrder(s *kvstore.Store, userID string, items []models.CartItem, shippingAddress, shippingMethod string) models.Order {
	order := models.Order{
		ID:              newID(),
		UserID:          userID,
		Items:           slices.Clone(items),
		Total:           itemsTotal(items),
		Status:          models.StatusPending,
		CreatedAt:       now(),
		ShippingAddress: shippingAddress,
		ShippingMethod:  shippingMethod,
	}
	if order.Items == nil {
		order.Items = []models.CartItem{}
	}

	SaveOrders(s, append(GetAllOrders(s), order))
	logger.Log.Infow("Order created", "order_id", order.ID, "user_id", userID, "items", len(items), "total", order.Total)

	CreateNotification(s, userID, models.NotificationOrderStatus,
		"Order Placed",
		fmt.Sprintf("Your order #%s has been placed successfully.", shortID(order.ID)))

	return order
}

// UpdateOrderStatus sets the status of an order. The order is written back
// even when the status is unchanged, but the owner is only notified when the
// status actually changes. It returns false if there is no such order.
func UpdateOrderStatus(s *kvstore.Store, orderID string, status models.OrderStatus) bool {
	orders := GetAllOrders(s)
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}

		previous := orders[i].Status
		orders[i].Status = status
		SaveOrders(s, orders)

		if previous != status {
			logger.Log.Infow("Order status changed", "order_id", orderID, "from", previous, "to", status)
			CreateNotification(s, orders[i].UserID, models.NotificationOrderStatus,
				"Order Status Updated",
				fmt.Sprintf("Your order #%s status changed from %s to %s.", shortID(orderID), previous, status))
		}
		return true
	}
	logger.Log.Warnw("Order not found for status update", "order_id", orderID)
	return false
}

// shortID abbreviates an ID for display in notification text
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
