package main

import (
	"log"

	"go-parts-store/internal/model"
	"go-parts-store/pkg/database"

	"github.com/joho/godotenv"
)

func salePrice(v float64) *float64 { return &v }

// One-shot bootstrap script: seeds the catalog with starter categories and
// products so a fresh deployment has something on the shelf.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	db := database.Connect()
	if err := db.AutoMigrate(&model.Category{}, &model.Product{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	categories := []model.Category{
		{Name: "Engine", Description: "Engine components and rebuild parts"},
		{Name: "Brakes", Description: "Pads, rotors, calipers and lines"},
		{Name: "Suspension", Description: "Shocks, struts, springs and bushings"},
		{Name: "Electrical", Description: "Batteries, alternators, sensors and wiring"},
	}

	for i := range categories {
		var existing model.Category
		if err := db.Where("name = ?", categories[i].Name).First(&existing).Error; err == nil {
			categories[i] = existing
			continue
		}
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", categories[i].Name, err)
		}
	}
	log.Printf("Seeded %d categories", len(categories))

	products := []model.Product{
		{SKU: "ENG-0001", Name: "Oil Filter", Description: "Spin-on oil filter", Price: 12.99, Stock: 120, CategoryID: &categories[0].ID, IsActive: true},
		{SKU: "ENG-0002", Name: "Timing Belt Kit", Description: "Belt, tensioner and idler", Price: 89.50, SalePrice: salePrice(74.99), Stock: 35, CategoryID: &categories[0].ID, IsActive: true, IsFeatured: true},
		{SKU: "BRK-0001", Name: "Ceramic Brake Pads", Description: "Front axle set", Price: 45.00, Stock: 80, CategoryID: &categories[1].ID, IsActive: true},
		{SKU: "BRK-0002", Name: "Brake Rotor", Description: "Vented front rotor", Price: 62.75, Stock: 44, CategoryID: &categories[1].ID, IsActive: true},
		{SKU: "SUS-0001", Name: "Gas Strut", Description: "Front gas-charged strut", Price: 110.00, SalePrice: salePrice(95.00), Stock: 18, CategoryID: &categories[2].ID, IsActive: true},
		{SKU: "ELE-0001", Name: "AGM Battery", Description: "12V 70Ah AGM battery", Price: 159.99, Stock: 25, CategoryID: &categories[3].ID, IsActive: true, IsFeatured: true},
	}

	seeded := 0
	for i := range products {
		var existing model.Product
		if err := db.Where("sku = ?", products[i].SKU).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", products[i].SKU, err)
		}
		seeded++
	}
	log.Printf("Seeded %d products", seeded)
}
