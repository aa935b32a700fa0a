package dashboard

import (
	"net/http"
	"time"

	"SMARTATTEND/helper"
	"SMARTATTEND/models"

	"github.com/gin-gonic/gin"
)

// GetDashboard composes the landing-screen payload: today's marks, the user
// headcount, the ten most recent marks overall and the derived daily counters.
// Absent is headcount minus marks today; there is no daily roll call.
func GetDashboard(c *gin.Context) {
	start, end := helper.TodayWindow(time.Now())

	var today []models.Attendance
	if err := models.DB.Where("timestamp >= ? AND timestamp < ?", start, end).
		Order("timestamp desc").Find(&today).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	var totalUsers int64
	if err := models.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	var recent []models.Attendance
	if err := models.DB.Order("timestamp desc").Limit(10).Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	var present, late int
	for _, record := range today {
		switch record.Status {
		case "present":
			present++
		case "late":
			late++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"todayAttendance":  today,
		"totalUsers":       totalUsers,
		"recentAttendance": recent,
		"todayStats": gin.H{
			"total":   len(today),
			"present": present,
			"late":    late,
			"absent":  totalUsers - int64(len(today)),
		},
	})
}
