package repository

import (
	"example/storefront/internal/kvstore"
	"example/storefront/internal/models"
)

// Cart store operations. There is a single cart per store.

// GetCart returns the items in the cart
func GetCart(s *kvstore.Store) []models.CartItem {
	return kvstore.GetCollection[models.CartItem](s, CartKey)
}

// SaveCart replaces the cart contents
func SaveCart(s *kvstore.Store, items []models.CartItem) {
	kvstore.SetCollection(s, CartKey, items)
}

// AddToCart adds quantity units of a product. A product already in the cart
// keeps the price it was first added at; only its quantity grows.
func AddToCart(s *kvstore.Store, productID string, price float64, quantity int) {
	items := GetCart(s)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			SaveCart(s, items)
			return
		}
	}
	SaveCart(s, append(items, models.CartItem{ProductID: productID, Quantity: quantity, Price: price}))
}

// RemoveFromCart drops the line for productID
func RemoveFromCart(s *kvstore.Store, productID string) {
	items := GetCart(s)
	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	SaveCart(s, kept)
}

// UpdateCartQuantity sets the quantity of the line for productID. A quantity
// of zero or less removes the line.
func UpdateCartQuantity(s *kvstore.Store, productID string, quantity int) {
	if quantity <= 0 {
		RemoveFromCart(s, productID)
		return
	}
	items := GetCart(s)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			SaveCart(s, items)
			return
		}
	}
}

// ClearCart empties the cart
func ClearCart(s *kvstore.Store) {
	SaveCart(s, nil)
}

// GetCartTotal sums price times quantity over the cart
func GetCartTotal(s *kvstore.Store) float64 {
	return itemsTotal(GetCart(s))
}

// GetCartCount sums the quantities in the cart
func GetCartCount(s *kvstore.Store) int {
	count := 0
	for _, item := range GetCart(s) {
		count += item.Quantity
	}
	return count
}

func itemsTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
