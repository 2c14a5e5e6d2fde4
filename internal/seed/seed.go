// Package seed loads the fixed sample inventory used for demos and local
// development.
package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mvolkov/inventory_app/internal/models"
)

// Items is the fixed sample data set.
func Items() []models.Item {
	return []models.Item{
		{Name: "Laptop", Description: "Lenovo ThinkPad X1", Quantity: 5, Price: 1200.00},
		{Name: "Mouse", Description: "Logitech MX Master 3", Quantity: 15, Price: 85.99},
		{Name: "Keyboard", Description: "Mechanical Keyboard", Quantity: 10, Price: 150.50},
		{Name: "Monitor", Description: "Dell 24-inch FHD", Quantity: 7, Price: 200.00},
		{Name: "Smartphone", Description: "Samsung Galaxy S21", Quantity: 12, Price: 999.99},
		{Name: "Webcam", Description: "1080p HD Webcam", Quantity: 20, Price: 59.90},
		{Name: "USB-C Cable", Description: "1m charging cable", Quantity: 30, Price: 9.99},
		{Name: "External HDD", Description: "2TB USB 3.0 drive", Quantity: 8, Price: 75.25},
		{Name: "Headphones", Description: "Sony WH-1000XM4", Quantity: 6, Price: 299.00},
		{Name: "Office Chair", Description: "Ergonomic mesh chair", Quantity: 4, Price: 180.00},
	}
}

// Run bulk-inserts the sample items.
func Run(ctx context.Context, db *gorm.DB) error {
	items := Items()
	if err := db.WithContext(ctx).Create(&items).Error; err != nil {
		return fmt.Errorf("seeding items: %w", err)
	}
	return nil
}
