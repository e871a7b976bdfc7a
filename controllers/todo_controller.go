package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/jobs"
	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
	"github.com/vamshikittu22/Wanderlusttrails-sub001/utils"
)

func GetTodos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(ctxUserID)

		var todos []models.Todo
		if err := db.Where("user_id = ?", userID).Order("due_date asc").Find(&todos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch todos"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK", "data": todos})
	}
}

func CreateTodo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(ctxUserID)

		var req struct {
			Title   string `json:"title" binding:"required"`
			DueDate string `json:"due_date" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid todo data"})
			return
		}

		due, err := time.Parse(dateLayout, req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid due_date, expected YYYY-MM-DD"})
			return
		}

		todo := models.Todo{
			UserID:  userID,
			Title:   req.Title,
			DueDate: due,
		}
		if err := db.Create(&todo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create todo"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Todo created", "data": todo})
	}
}

// ToggleTodo flips the completion flag of the caller's todo.
func ToggleTodo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetUint(ctxUserID)

		var todo models.Todo
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&todo).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Todo not found"})
			return
		}

		if err := db.Model(&todo).Update("completed", !todo.Completed).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update todo"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Todo updated"})
	}
}

func DeleteTodo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetUint(ctxUserID)

		result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Todo{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete todo"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Todo not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Todo deleted"})
	}
}

// SendTodoReminder triggers the reminder email for one todo right now.
func SendTodoReminder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetUint(ctxUserID)

		var todo models.Todo
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&todo).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Todo not found"})
			return
		}

		if err := jobs.RemindTodo(db, utils.SendEmail, todo.ID, userID); err != nil {
			if errors.Is(err, jobs.ErrAlreadySent) {
				c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reminder was already sent"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send reminder"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reminder sent"})
	}
}
