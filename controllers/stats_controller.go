package controllers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
)

type StatsController struct {
	DB *gorm.DB
}

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type typeCount struct {
	BookingType string `json:"booking_type"`
	Count       int64  `json:"count"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GetBusinessOverview is the admin dashboard rollup. The payment breakdown is
// computed in its own query over payments only: joining bookings to payments
// would fan out (or drop) rows for bookings with several (or zero) payments
// and skew the success rate.
func (sc *StatsController) GetBusinessOverview(c *gin.Context) {
	db := sc.DB

	var totalUsers int64
	db.Model(&models.User{}).Count(&totalUsers)

	var totalBookings int64
	db.Model(&models.Booking{}).Count(&totalBookings)

	var byStatus []statusCount
	db.Model(&models.Booking{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&byStatus)

	var byType []typeCount
	db.Model(&models.Booking{}).
		Select("booking_type, COUNT(*) as count").
		Group("booking_type").
		Scan(&byType)

	var confirmedRevenue float64
	db.Model(&models.Booking{}).
		Where("status = ?", models.BookingConfirmed).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&confirmedRevenue)

	// Payment breakdown, deliberately independent of the booking aggregate.
	var payTotals struct {
		Total     int64
		Completed int64
		Failed    int64
		Pending   int64
		Revenue   float64
	}
	db.Model(&models.Payment{}).
		Select(
			"COUNT(*) as total, "+
				"COUNT(CASE WHEN status = ? THEN 1 END) as completed, "+
				"COUNT(CASE WHEN status = ? THEN 1 END) as failed, "+
				"COUNT(CASE WHEN status = ? THEN 1 END) as pending, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN amount END), 0) as revenue",
			models.PaymentCompleted, models.PaymentFailed, models.PaymentPending, models.PaymentCompleted,
		).
		Scan(&payTotals)

	successRate := 0.0
	if payTotals.Total > 0 {
		successRate = round2(float64(payTotals.Completed) / float64(payTotals.Total) * 100)
	}

	// Revenue run rate since the first booking.
	var firstBooking models.Booking
	dailyRevenue := 0.0
	if err := db.Order("created_at asc").First(&firstBooking).Error; err == nil {
		days := time.Since(firstBooking.CreatedAt).Hours() / 24
		if days < 1 {
			days = 1
		}
		dailyRevenue = round2(payTotals.Revenue / days)
	}
	monthlyRevenue := round2(dailyRevenue * 30)

	var insights []gin.H
	if payTotals.Total > 0 {
		switch {
		case successRate < 70:
			insights = append(insights, gin.H{
				"level":   "warning",
				"message": "Payment success rate is below 70%, investigate failing transactions",
			})
		case successRate >= 80:
			insights = append(insights, gin.H{
				"level":   "success",
				"message": "Payment success rate is healthy",
			})
		}
	}
	var pendingCount, confirmedCount int64
	for _, s := range byStatus {
		switch models.BookingStatus(s.Status) {
		case models.BookingPending:
			pendingCount = s.Count
		case models.BookingConfirmed:
			confirmedCount = s.Count
		}
	}
	if pendingCount > confirmedCount && totalBookings > 0 {
		insights = append(insights, gin.H{
			"level":   "warning",
			"message": "More pending than confirmed bookings, follow up on unconfirmed reservations",
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OK",
		"data": gin.H{
			"total_users":        totalUsers,
			"total_bookings":     totalBookings,
			"bookings_by_status": byStatus,
			"bookings_by_type":   byType,
			"confirmed_revenue":  round2(confirmedRevenue),
			"payments": gin.H{
				"total":        payTotals.Total,
				"completed":    payTotals.Completed,
				"failed":       payTotals.Failed,
				"pending":      payTotals.Pending,
				"revenue":      round2(payTotals.Revenue),
				"success_rate": successRate,
			},
			"daily_revenue_estimate":   dailyRevenue,
			"monthly_revenue_estimate": monthlyRevenue,
			"insights":                 insights,
		},
	})
}

// GetTravelSummary is the personal rollup for the logged-in user. The
// insurance breakdown reads booking.insurance_type only; there is no second
// source of insurance data.
func (sc *StatsController) GetTravelSummary(c *gin.Context) {
	db := sc.DB
	userID := c.GetUint(ctxUserID)

	var totalTrips int64
	db.Model(&models.Booking{}).Where("user_id = ?", userID).Count(&totalTrips)

	var byStatus []statusCount
	db.Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&byStatus)

	var byType []typeCount
	db.Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Select("booking_type, COUNT(*) as count").
		Group("booking_type").
		Scan(&byType)

	var companions struct {
		Solo   int64
		Couple int64
		Group  int64
	}
	db.Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Select(
			"COUNT(CASE WHEN persons = 1 THEN 1 END) as solo, " +
				"COUNT(CASE WHEN persons = 2 THEN 1 END) as couple, " +
				"COUNT(CASE WHEN persons > 2 THEN 1 END) as " + `"group"`,
		).
		Scan(&companions)

	var spend struct {
		Total   float64
		Average float64
	}
	db.Model(&models.Booking{}).
		Where("user_id = ? AND status = ?", userID, models.BookingConfirmed).
		Select("COALESCE(SUM(total_price), 0) as total, COALESCE(AVG(total_price), 0) as average").
		Scan(&spend)

	type tierCount struct {
		InsuranceType string `json:"insurance_type"`
		Count         int64  `json:"count"`
	}
	var insurance []tierCount
	db.Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Select("insurance_type, COUNT(*) as count").
		Group("insurance_type").
		Scan(&insurance)

	var uniqueDestinations int64
	db.Model(&models.Booking{}).
		Where("user_id = ? AND package_name <> ''", userID).
		Distinct("package_name").
		Count(&uniqueDestinations)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OK",
		"data": gin.H{
			"total_trips":     totalTrips,
			"trips_by_status": byStatus,
			"trips_by_type":   byType,
			"companions": gin.H{
				"solo":   companions.Solo,
				"couple": companions.Couple,
				"group":  companions.Group,
			},
			"total_spent":         round2(spend.Total),
			"average_trip_spend":  round2(spend.Average),
			"insurance_breakdown": insurance,
			"unique_destinations": uniqueDestinations,
		},
	})
}
