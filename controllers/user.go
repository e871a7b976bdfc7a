package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
)

// GetAllUsers - Admin fetch all users with optional name/email search
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		search := c.Query("search")

		query := db.Model(&models.User{}).Preload("Bookings")

		if search != "" {
			query = query.Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
				"%"+search+"%", "%"+search+"%", "%"+search+"%")
		}

		if err := query.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}

		for i := range users {
			users[i].BookingsCount = int64(len(users[i].Bookings))
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK", "data": users})
	}
}

// UpdateUserRole - Admin change a user's role. Only the two known roles pass.
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var body struct {
			Role models.Role `json:"role"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Role == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
			return
		}
		if !models.ValidRole(body.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown role"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		if err := db.Model(&user).Update("role", body.Role).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update role"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Role updated"})
	}
}

// DeleteUser - Admin remove a user and their bookings.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		if err := tx.Where("user_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user bookings"})
			return
		}
		if err := tx.Delete(&user).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user"})
			return
		}
		tx.Commit()

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
	}
}
