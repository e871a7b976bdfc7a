package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/config"
	"github.com/vamshikittu22/Wanderlusttrails-sub001/jobs"
	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
	"github.com/vamshikittu22/Wanderlusttrails-sub001/routes"
	"github.com/vamshikittu22/Wanderlusttrails-sub001/utils"
)

func main() {
	config.ConnectDatabase()
	db := config.DB

	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	utils.SeedDummyPackages()

	scheduler := &jobs.ReminderScheduler{DB: db, Send: utils.SendEmail}
	stop := make(chan struct{})
	go scheduler.Start(stop)
	defer close(stop)

	r := routes.SetupRouter(db)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	log.Printf("server running on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{}, &models.RefreshToken{}, &models.Package{},
		&models.Booking{}, &models.Payment{}, &models.Review{},
		&models.Comment{}, &models.Todo{},
	)
}
