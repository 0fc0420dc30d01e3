package repository

import (
	"example/storefront/internal/kvstore"
	"example/storefront/internal/logger"
	"example/storefront/internal/models"
)

// Product store operations

// GetAllProducts returns the whole catalog
func GetAllProducts(s *kvstore.Store) []models.Product {
	return kvstore.GetCollection[models.Product](s, ProductsKey)
}

// SaveProducts replaces the whole catalog
func SaveProducts(s *kvstore.Store, products []models.Product) {
	kvstore.SetCollection(s, ProductsKey, products)
}

// GetProductByID looks up the product with the specified ID
func GetProductByID(s *kvstore.Store, id string) (models.Product, bool) {
	for _, p := range GetAllProducts(s) {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// GetProductsByCategory returns the products whose category matches
func GetProductsByCategory(s *kvstore.Store, categoryID string) []models.Product {
	products := []models.Product{}
	for _, p := range GetAllProducts(s) {
		if p.CategoryID == categoryID {
			products = append(products, p)
		}
	}
	return products
}

// GetFeaturedProducts returns the products flagged as featured
func GetFeaturedProducts(s *kvstore.Store) []models.Product {
	products := []models.Product{}
	for _, p := range GetAllProducts(s) {
		if p.Featured {
			products = append(products, p)
		}
	}
	return products
}

// AddProduct appends a product to the catalog under a fresh ID and returns
// the stored record
func AddProduct(s *kvstore.Store, p models.Product) models.Product {
	p.ID = newID()
	SaveProducts(s, append(GetAllProducts(s), p))
	logger.Log.Infow("Product created", "product_id", p.ID, "name", p.Name, "price", p.Price)
	return p
}

// UpdateProduct merges the set fields of update into the product with the
// specified ID. It returns false if there is no such product.
func UpdateProduct(s *kvstore.Store, id string, update models.ProductUpdate) bool {
	products := GetAllProducts(s)
	for i := range products {
		if products[i].ID != id {
			continue
		}
		applyProductUpdate(&products[i], update)
		SaveProducts(s, products)
		logger.Log.Infow("Product updated", "product_id", id)
		return true
	}
	logger.Log.Warnw("Product not found for update", "product_id", id)
	return false
}

func applyProductUpdate(p *models.Product, u models.ProductUpdate) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.CategoryID != nil {
		p.CategoryID = *u.CategoryID
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.Specs != nil {
		p.Specs = u.Specs
	}
	if u.InStock != nil {
		p.InStock = *u.InStock
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
}

// DeleteProduct removes the product with the specified ID. Orders and carts
// that reference it are left alone. It returns false if nothing was removed.
func DeleteProduct(s *kvstore.Store, id string) bool {
	products := GetAllProducts(s)
	kept := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		logger.Log.Warnw("Product not found for delete", "product_id", id)
		return false
	}
	SaveProducts(s, kept)
	logger.Log.Infow("Product deleted", "product_id", id)
	return true
}
