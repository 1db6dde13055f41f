package main

import (
	"log"

	"github.com/handyhub/marketplace-api/internal/config"
	dbpkg "github.com/handyhub/marketplace-api/internal/db"
	"github.com/handyhub/marketplace-api/internal/models"
)

// Canonical catalog shipped with the mobile client.
var categories = []models.Category{
	{Name: "Plumbing", Icon: "🚰", Description: "Fix leaks, pipes, and drains"},
	{Name: "Electrical", Icon: "⚡", Description: "Wiring, outlets, and repairs"},
	{Name: "Cleaning", Icon: "🧹", Description: "Houses, offices, and windows"},
	{Name: "Gardening", Icon: "🌳", Description: "Lawn care and landscaping"},
	{Name: "AC Repair", Icon: "❄️", Description: "Cooling and heating maintenance"},
	{Name: "Carpentry", Icon: "🔨", Description: "Woodwork and furniture repair"},
	{Name: "Painting", Icon: "🎨", Description: "Interior and exterior painting"},
	{Name: "Moving", Icon: "📦", Description: "Relocation and transport"},
}

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	for _, cat := range categories {
		var count int64
		db.Model(&models.Category{}).Where("name = ?", cat.Name).Count(&count)
		if count > 0 {
			log.Printf("skipping %s, already present", cat.Name)
			continue
		}

		if err := db.Create(&cat).Error; err != nil {
			log.Printf("failed to seed %s: %v", cat.Name, err)
			continue
		}
		log.Printf("seeded %s", cat.Name)
	}

	log.Println("seeding finished")
}
