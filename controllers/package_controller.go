package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
)

func GetAllPackages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var packages []models.Package
		if err := db.Find(&packages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch packages"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK", "data": packages})
	}
}

func GetPackageDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var pkg models.Package
		if err := db.First(&pkg, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Package not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK", "data": pkg})
	}
}

// Admin: add package
func AdminAddPackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg models.Package
		if err := c.ShouldBind(&pkg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if strings.TrimSpace(pkg.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name is required"})
			return
		}
		if pkg.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "price must be positive"})
			return
		}

		if err := db.Create(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create package"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Package created", "data": pkg})
	}
}

// Admin: edit package
func AdminEditPackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var pkg models.Package
		if err := db.First(&pkg, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Package not found"})
			return
		}

		var payload struct {
			Name        string  `json:"name"`
			Description string  `json:"description"`
			Location    string  `json:"location"`
			Price       float64 `json:"price"`
			ImageURL    string  `json:"image_url"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		if payload.Name != "" {
			pkg.Name = payload.Name
		}
		if payload.Description != "" {
			pkg.Description = payload.Description
		}
		if payload.Location != "" {
			pkg.Location = payload.Location
		}
		if payload.Price > 0 {
			pkg.Price = payload.Price
		}
		if payload.ImageURL != "" {
			pkg.ImageURL = payload.ImageURL
		}

		if err := db.Save(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update package"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Package updated", "data": pkg})
	}
}

// Admin: delete package (soft delete; existing bookings keep the name snapshot)
func AdminDeletePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var pkg models.Package
		if err := db.First(&pkg, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Package not found"})
			return
		}

		if err := db.Delete(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete package"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Package deleted"})
	}
}
