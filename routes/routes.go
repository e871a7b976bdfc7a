package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/controllers"
	"github.com/vamshikittu22/Wanderlusttrails-sub001/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Public API Routes

	api := r.Group("/api")
	{
		api.POST("/signup", controllers.SignupHandler(db))
		api.POST("/login", controllers.LoginHandler(db))
		api.POST("/forgot-password", controllers.ForgotPasswordHandler(db))
		api.POST("/reset-password", controllers.ResetPasswordHandler(db))
		api.POST("/refresh", controllers.RefreshTokenHandler(db))
		api.POST("/logout", controllers.LogoutHandler(db))

		api.GET("/packages", controllers.GetAllPackages(db))
		api.GET("/packages/:id", controllers.GetPackageDetails(db))
		api.GET("/reviews", controllers.GetAllReviews(db))
	}

	// Protected User Routes (Require Login)

	user := r.Group("/api/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile(db))
		user.PUT("/profile", controllers.UpdateProfile(db))

		user.POST("/bookings", controllers.CreateBooking(db))
		user.GET("/bookings", controllers.GetUserBookings(db))
		user.GET("/bookings/:id", controllers.GetBookingDetails(db))
		user.PUT("/bookings/:id/changes", controllers.StageBookingChanges(db))
		user.PUT("/bookings/:id/cancel", controllers.CancelBooking(db))
		user.GET("/bookings/:id/payments", controllers.GetBookingPayments(db))

		user.POST("/payments", controllers.CreatePayment(db))
		user.PUT("/payments/:transactionId/status", controllers.UpdatePaymentStatus(db))

		user.POST("/reviews", controllers.CreateReview(db))
		user.GET("/reviews", controllers.GetUserReviews(db))
		user.PUT("/reviews/:id", controllers.EditReview(db))
		user.POST("/reviews/:id/comments", controllers.AddComment(db))

		user.GET("/todos", controllers.GetTodos(db))
		user.POST("/todos", controllers.CreateTodo(db))
		user.PUT("/todos/:id/toggle", controllers.ToggleTodo(db))
		user.DELETE("/todos/:id", controllers.DeleteTodo(db))
		user.POST("/todos/:id/remind", controllers.SendTodoReminder(db))

		user.GET("/stats", (&controllers.StatsController{DB: db}).GetTravelSummary)
	}

	// Admin Routes (Require Admin Access)

	admin := r.Group("/api/admin")
	admin.Use(middlewares.AdminMiddleware())
	{
		admin.POST("/packages", controllers.AdminAddPackage(db))
		admin.PUT("/packages/:id", controllers.AdminEditPackage(db))
		admin.DELETE("/packages/:id", controllers.AdminDeletePackage(db))

		admin.GET("/bookings", controllers.GetAllBookings(db))
		admin.GET("/bookings/export", controllers.ExportBookings(db))
		admin.PUT("/bookings/:id/status", controllers.UpdateBookingStatus(db))
		admin.POST("/bookings/:id/changes/confirm", controllers.ConfirmBookingChanges(db))
		admin.DELETE("/bookings/:id", controllers.DeleteBooking(db))

		admin.GET("/users", controllers.GetAllUsers(db))
		admin.PUT("/users/:id/role", controllers.UpdateUserRole(db))
		admin.DELETE("/users/:id", controllers.DeleteUser(db))

		admin.GET("/stats", (&controllers.StatsController{DB: db}).GetBusinessOverview)
	}

	// Fallback for Unknown Routes

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "message": "page not found"})
	})

	return r
}
