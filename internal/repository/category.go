package repository

import (
	"example/storefront/internal/kvstore"
	"example/storefront/internal/models"
)

// GetAllCategories returns the category list
func GetAllCategories(s *kvstore.Store) []models.Category {
	return kvstore.GetCollection[models.Category](s, CategoriesKey)
}

// SaveCategories replaces the category list
func SaveCategories(s *kvstore.Store, categories []models.Category) {
	kvstore.SetCollection(s, CategoriesKey, categories)
}

// GetCategoryByID looks up the category with the specified ID
func GetCategoryByID(s *kvstore.Store, id string) (models.Category, bool) {
	for _, c := range GetAllCategories(s) {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}
