package attendance

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"SMARTATTEND/helper"
	"SMARTATTEND/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MarkPayload struct {
	EmployeeId string `json:"employeeId" binding:"required"`
	Name       string `json:"name"`
	Method     string `json:"method" binding:"required,oneof=face qr card manual"`
	Status     string `json:"status" binding:"required,oneof=present late absent"`
	Location   string `json:"location"`
	IpAddress  string `json:"ipAddress"`
}

// MarkAttendance records one attendance row per employee per local calendar
// day. The existence check below lets the conflict response carry the record
// that already won the day; the compound unique index on (employee_id, day)
// keeps the insert itself atomic when two requests race past that check.
func MarkAttendance(c *gin.Context) {
	var payload MarkPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := models.DB.Where("employee_id = ?", payload.EmployeeId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	now := time.Now()
	start, end := helper.TodayWindow(now)

	var existing models.Attendance
	err := models.DB.Where("employee_id = ? AND timestamp >= ? AND timestamp < ?",
		payload.EmployeeId, start, end).First(&existing).Error
	switch {
	case err == nil:
		c.JSON(http.StatusBadRequest, gin.H{
			"message":    "Attendance already marked for today",
			"attendance": existing,
		})
		return
	case !errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	name := payload.Name
	if name == "" {
		name = user.Name
	}

	record := models.Attendance{
		EmployeeId: payload.EmployeeId,
		Name:       name,
		Timestamp:  now,
		Method:     payload.Method,
		Status:     payload.Status,
		Location:   payload.Location,
		IpAddress:  payload.IpAddress,
	}
	if err := models.DB.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent mark; report the winner.
			if models.DB.Where("employee_id = ? AND timestamp >= ? AND timestamp < ?",
				payload.EmployeeId, start, end).First(&existing).Error == nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"message":    "Attendance already marked for today",
					"attendance": existing,
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// Best-effort: a failed lastLogin update must not undo the mark.
	if err := models.DB.Model(&models.User{}).
		Where("employee_id = ?", payload.EmployeeId).
		Update("last_login", now).Error; err != nil {
		log.Printf("lastLogin update failed for %s: %v", payload.EmployeeId, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Attendance marked successfully",
		"attendance": record,
	})
}

// GetAttendance lists records newest first, optionally filtered by employee
// and by an inclusive date range. The range only applies when both bounds are
// present.
func GetAttendance(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	q := models.DB.Model(&models.Attendance{})
	if employeeId := c.Query("employeeId"); employeeId != "" {
		q = q.Where("employee_id = ?", employeeId)
	}

	startRaw, endRaw := c.Query("startDate"), c.Query("endDate")
	if startRaw != "" && endRaw != "" {
		start, err := parseDateBound(startRaw, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		end, err := parseDateBound(endRaw, true)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		q = q.Where("timestamp >= ? AND timestamp <= ?", start, end)
	}

	var records []models.Attendance
	if err := q.Order("timestamp desc").Limit(limit).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// parseDateBound accepts either a bare date or an RFC 3339 timestamp. A bare
// date used as the end of a range covers that entire local day.
func parseDateBound(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		if endOfDay {
			return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
		}
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

type statsRow struct {
	TotalDays   int
	PresentDays int
	LateDays    int
	AbsentDays  int
}

// GetAttendanceStats aggregates records since the period cutoff in a single
// grouped query, mirroring the conditional-sum pipeline of the original.
func GetAttendanceStats(c *gin.Context) {
	now := time.Now()
	var start time.Time
	switch c.DefaultQuery("period", "month") {
	case "week":
		start = now.AddDate(0, 0, -7)
	case "quarter":
		start = now.AddDate(0, -3, 0)
	case "year":
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, -1, 0)
	}

	q := models.DB.Model(&models.Attendance{}).Where("timestamp >= ?", start)
	if employeeId := c.Query("employeeId"); employeeId != "" {
		q = q.Where("employee_id = ?", employeeId)
	}

	var row statsRow
	err := q.Select(`COUNT(*) AS total_days,
		COALESCE(SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END), 0) AS present_days,
		COALESCE(SUM(CASE WHEN status = 'late' THEN 1 ELSE 0 END), 0) AS late_days,
		COALESCE(SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END), 0) AS absent_days`).
		Scan(&row).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	rate := 0
	if row.TotalDays > 0 {
		rate = int(math.Round(float64(row.PresentDays) / float64(row.TotalDays) * 100))
	}

	c.JSON(http.StatusOK, gin.H{
		"totalDays":      row.TotalDays,
		"presentDays":    row.PresentDays,
		"lateDays":       row.LateDays,
		"absentDays":     row.AbsentDays,
		"attendanceRate": rate,
	})
}
