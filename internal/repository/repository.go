// Package repository holds the entity repositories of the storefront. Each
// operation reads the full collection from the key/value store, computes the
// new state and writes the full collection back; nothing is cached between
// calls.
package repository

import (
	"time"

	"github.com/google/uuid"
)

// Persisted collection names. The store prefixes them with its namespace.
const (
	UsersKey         = "users"
	CurrentUserKey   = "current_user"
	CategoriesKey    = "categories"
	ProductsKey      = "products"
	CartKey          = "cart"
	OrdersKey        = "orders"
	MessagesKey      = "messages"
	NotificationsKey = "notifications"
)

// UnknownUserName stands in for a user id that no longer resolves
const UnknownUserName = "Unknown"

var (
	newID = uuid.NewString
	now   = func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
)
