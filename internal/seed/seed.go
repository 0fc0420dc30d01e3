// Package seed fills an empty store with the default admin account,
// category list and product catalog.
package seed

import (
	"example/storefront/internal/kvstore"
	"example/storefront/internal/logger"
	"example/storefront/internal/models"
	"example/storefront/internal/repository"
)

// Result reports which collections Initialize populated
type Result struct {
	Users      bool
	Categories bool
	Products   bool
}

// Initialize seeds each of users, categories and products independently,
// and only when that collection is empty. Collections holding data are never
// written, so calling it again is harmless.
func Initialize(s *kvstore.Store) Result {
	var res Result

	if len(repository.GetAllUsers(s)) == 0 {
		repository.SaveUsers(s, []models.User{defaultAdmin()})
		res.Users = true
	}
	if len(repository.GetAllCategories(s)) == 0 {
		repository.SaveCategories(s, defaultCategories())
		res.Categories = true
	}
	if len(repository.GetAllProducts(s)) == 0 {
		repository.SaveProducts(s, defaultProducts())
		res.Products = true
	}

	logger.Log.Infow("Store bootstrap finished",
		"users_seeded", res.Users,
		"categories_seeded", res.Categories,
		"products_seeded", res.Products)
	return res
}
