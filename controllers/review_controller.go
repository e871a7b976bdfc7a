package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
)

// isReviewable reports whether a confirmed booking with this id exists and
// belongs to the user.
func isReviewable(db *gorm.DB, bookingID, userID uint) bool {
	var count int64
	db.Model(&models.Booking{}).
		Where("id = ? AND user_id = ? AND status = ?", bookingID, userID, models.BookingConfirmed).
		Count(&count)
	return count > 0
}

func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			BookingID uint   `json:"booking_id"`
			Rating    int    `json:"rating"`
			Title     string `json:"title"`
			Body      string `json:"body"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid review data"})
			return
		}

		userID := c.GetUint(ctxUserID)

		if req.Rating < 1 || req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "rating must be between 1 and 5"})
			return
		}

		if !isReviewable(db, req.BookingID, userID) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Only confirmed bookings you own can be reviewed"})
			return
		}

		review := models.Review{
			UserID:    userID,
			BookingID: req.BookingID,
			Rating:    req.Rating,
			Title:     req.Title,
			Body:      req.Body,
		}

		// The unique (user_id, booking_id) index catches the duplicate even if
		// two submissions race past this point.
		var existing models.Review
		if err := db.Where("user_id = ? AND booking_id = ?", userID, req.BookingID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "You already reviewed this booking"})
			return
		}

		if err := db.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "You already reviewed this booking"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create review"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Review created", "data": review})
	}
}

// EditReview updates a review owned by the caller. Ownership is enforced in
// the WHERE clause; zero rows affected means not found or not owned.
func EditReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetUint(ctxUserID)

		var req struct {
			Rating int    `json:"rating"`
			Title  string `json:"title"`
			Body   string `json:"body"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid review data"})
			return
		}
		if req.Rating < 1 || req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "rating must be between 1 and 5"})
			return
		}

		result := db.Model(&models.Review{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(map[string]interface{}{
				"rating": req.Rating,
				"title":  req.Title,
				"body":   req.Body,
			})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Review not found or not yours"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review updated"})
	}
}

// AddComment replies to a review or to another comment on the same review.
func AddComment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetUint(ctxUserID)

		var req struct {
			Body     string `json:"body" binding:"required"`
			ParentID *uint  `json:"parent_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid comment data"})
			return
		}

		var review models.Review
		if err := db.First(&review, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Review not found"})
			return
		}

		if req.ParentID != nil {
			var parent models.Comment
			if err := db.First(&parent, *req.ParentID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Parent comment not found"})
				return
			}
			// Replies stay inside their review's thread.
			if parent.ReviewID != review.ID {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Parent comment belongs to a different review"})
				return
			}
		}

		comment := models.Comment{
			ReviewID: review.ID,
			UserID:   userID,
			ParentID: req.ParentID,
			Body:     req.Body,
		}
		if err := db.Create(&comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add comment"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Comment added", "data": comment})
	}
}

func GetAllReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Preload("User").Preload("Booking").Preload("Comments").
			Order("created_at desc").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK", "data": reviews})
	}
}

func GetUserReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(ctxUserID)

		var reviews []models.Review
		if err := db.Preload("Booking").Preload("Comments").
			Where("user_id = ?", userID).
			Order("created_at desc").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK", "data": reviews})
	}
}
