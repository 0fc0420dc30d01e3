package seed

import (
	"time"

	"example/storefront/internal/models"

	"github.com/google/uuid"
)

// Default administrator credentials
const (
	AdminEmail    = "admin@store.com"
	AdminPassword = "admin123"
)

func defaultAdmin() models.User {
	return models.User{
		ID:        uuid.NewString(),
		Email:     AdminEmail,
		Password:  AdminPassword,
		Name:      "Administrator",
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// Categories and products carry fixed ids so that either collection can be
// reseeded on its own without breaking product category references.
func defaultCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "CPU", Description: "Desktop processors"},
		{ID: "2", Name: "GPU", Description: "Graphics cards for gaming and compute"},
		{ID: "3", Name: "RAM", Description: "Desktop memory kits"},
		{ID: "4", Name: "Storage", Description: "SSDs and hard drives"},
		{ID: "5", Name: "Motherboard", Description: "Boards for Intel and AMD sockets"},
		{ID: "6", Name: "PSU", Description: "Power supplies"},
	}
}

func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "AMD Ryzen 7 7800X3D",
			Description: "8-core gaming processor with 3D V-Cache",
			Price:       449,
			CategoryID:  "1",
			ImageURL:    "https://images.unsplash.com/photo-1591799264318-7e6ef8ddb7ea",
			Specs: models.NewSpecs(
				models.Spec{Key: "Cores", Value: "8"},
				models.Spec{Key: "Threads", Value: "16"},
				models.Spec{Key: "Boost Clock", Value: "5.0 GHz"},
				models.Spec{Key: "Socket", Value: "AM5"},
			),
			InStock:  20,
			Featured: true,
		},
		{
			ID:          "2",
			Name:        "Intel Core i5-14600K",
			Description: "14-core processor for gaming and productivity",
			Price:       319,
			CategoryID:  "1",
			ImageURL:    "https://images.unsplash.com/photo-1555617981-dac3880eac6e",
			Specs: models.NewSpecs(
				models.Spec{Key: "Cores", Value: "14 (6P + 8E)"},
				models.Spec{Key: "Boost Clock", Value: "5.3 GHz"},
				models.Spec{Key: "Socket", Value: "LGA1700"},
			),
			InStock: 35,
		},
		{
			ID:          "3",
			Name:        "GeForce RTX 4070 Super",
			Description: "1440p graphics card with DLSS 3",
			Price:       599.99,
			CategoryID:  "2",
			ImageURL:    "https://images.unsplash.com/photo-1591488320449-011701bb6704",
			Specs: models.NewSpecs(
				models.Spec{Key: "VRAM", Value: "12 GB GDDR6X"},
				models.Spec{Key: "TDP", Value: "220 W"},
				models.Spec{Key: "Outputs", Value: "3x DP 1.4a, 1x HDMI 2.1"},
			),
			InStock:  12,
			Featured: true,
		},
		{
			ID:          "4",
			Name:        "Radeon RX 7800 XT",
			Description: "16 GB graphics card for high refresh gaming",
			Price:       499.99,
			CategoryID:  "2",
			ImageURL:    "https://images.unsplash.com/photo-1587202372634-32705e3bf49c",
			Specs: models.NewSpecs(
				models.Spec{Key: "VRAM", Value: "16 GB GDDR6"},
				models.Spec{Key: "TDP", Value: "263 W"},
			),
			InStock: 9,
		},
		{
			ID:          "5",
			Name:        "DDR5-6000 32 GB Kit",
			Description: "2x16 GB low-latency memory kit",
			Price:       109.99,
			CategoryID:  "3",
			ImageURL:    "https://images.unsplash.com/photo-1562976540-1502c2145186",
			Specs: models.NewSpecs(
				models.Spec{Key: "Capacity", Value: "32 GB (2x16 GB)"},
				models.Spec{Key: "Speed", Value: "6000 MT/s"},
				models.Spec{Key: "Latency", Value: "CL30"},
			),
			InStock: 60,
		},
		{
			ID:          "6",
			Name:        "2 TB NVMe SSD",
			Description: "PCIe 4.0 M.2 solid state drive",
			Price:       149.5,
			CategoryID:  "4",
			ImageURL:    "https://images.unsplash.com/photo-1597872200969-2b65d56bd16b",
			Specs: models.NewSpecs(
				models.Spec{Key: "Capacity", Value: "2 TB"},
				models.Spec{Key: "Interface", Value: "PCIe 4.0 x4"},
				models.Spec{Key: "Read", Value: "7000 MB/s"},
			),
			InStock:  40,
			Featured: true,
		},
		{
			ID:          "7",
			Name:        "B650 ATX Motherboard",
			Description: "AM5 board with Wi-Fi 6E and PCIe 5.0 M.2",
			Price:       189.99,
			CategoryID:  "5",
			ImageURL:    "https://images.unsplash.com/photo-1518770660439-4636190af475",
			Specs: models.NewSpecs(
				models.Spec{Key: "Socket", Value: "AM5"},
				models.Spec{Key: "Form Factor", Value: "ATX"},
				models.Spec{Key: "Memory Slots", Value: "4x DDR5"},
			),
			InStock: 18,
		},
		{
			ID:          "8",
			Name:        "850 W Gold PSU",
			Description: "Fully modular ATX 3.0 power supply",
			Price:       124.99,
			CategoryID:  "6",
			ImageURL:    "https://images.unsplash.com/photo-1600348712270-5a9d0d9b6a1d",
			Specs: models.NewSpecs(
				models.Spec{Key: "Wattage", Value: "850 W"},
				models.Spec{Key: "Efficiency", Value: "80+ Gold"},
				models.Spec{Key: "Modular", Value: "Fully"},
			),
			InStock:  25,
			Featured: true,
		},
	}
}
