package utils

import (
	"github.com/vamshikittu22/Wanderlusttrails-sub001/config"
	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
)

func SeedDummyPackages() {
	packages := []models.Package{
		{
			Name:        "Parisian Escape",
			Description: "Seven days of museums, cafes and the Seine.",
			Location:    "Paris, France",
			Price:       120.00,
			ImageURL:    "/assets/packages/paris.jpg",
		},
		{
			Name:        "Bali Beach Retreat",
			Description: "Beachfront villas and temple tours in Ubud.",
			Location:    "Bali, Indonesia",
			Price:       95.00,
			ImageURL:    "/assets/packages/bali.jpg",
		},
		{
			Name:        "Swiss Alps Adventure",
			Description: "Hiking, rail journeys and alpine lakes.",
			Location:    "Interlaken, Switzerland",
			Price:       150.00,
			ImageURL:    "/assets/packages/alps.jpg",
		},
	}

	for _, p := range packages {
		var existing models.Package
		if err := config.DB.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			config.DB.Create(&p)
		}
	}
}
