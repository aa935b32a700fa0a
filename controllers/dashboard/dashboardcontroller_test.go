package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SMARTATTEND/helper"
	"SMARTATTEND/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Attendance{}))
	models.DB = db
}

func TestGetDashboard(t *testing.T) {
	setupTestDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/dashboard", GetDashboard)

	for _, u := range []models.User{
		{Name: "Ada Lovelace", EmployeeId: "EMP001", Email: "ada@x.com", Role: "employee"},
		{Name: "Grace Hopper", EmployeeId: "EMP002", Email: "grace@x.com", Role: "employee"},
		{Name: "Edsger Dijkstra", EmployeeId: "EMP003", Email: "edsger@x.com", Role: "employee"},
	} {
		require.NoError(t, models.DB.Create(&u).Error)
	}

	start, _ := helper.TodayWindow(time.Now())
	marks := []models.Attendance{
		{EmployeeId: "EMP001", Name: "Ada Lovelace", Timestamp: start.Add(9 * time.Hour), Method: "qr", Status: "present"},
		{EmployeeId: "EMP002", Name: "Grace Hopper", Timestamp: start.Add(10 * time.Hour), Method: "face", Status: "late"},
	}
	// older history to exercise the recent-10 cut
	for i := 1; i <= 11; i++ {
		marks = append(marks, models.Attendance{
			EmployeeId: "EMP003", Name: "Edsger Dijkstra",
			Timestamp: start.Add(time.Duration(-24*i)*time.Hour + 9*time.Hour),
			Method:    "card", Status: "present",
		})
	}
	for i := range marks {
		require.NoError(t, models.DB.Create(&marks[i]).Error)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TodayAttendance  []models.Attendance `json:"todayAttendance"`
		TotalUsers       int64               `json:"totalUsers"`
		RecentAttendance []models.Attendance `json:"recentAttendance"`
		TodayStats       struct {
			Total   int   `json:"total"`
			Present int   `json:"present"`
			Late    int   `json:"late"`
			Absent  int64 `json:"absent"`
		} `json:"todayStats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Equal(t, int64(3), body.TotalUsers)
	require.Len(t, body.TodayAttendance, 2)
	require.Equal(t, "EMP002", body.TodayAttendance[0].EmployeeId)

	require.Len(t, body.RecentAttendance, 10)
	require.Equal(t, "EMP002", body.RecentAttendance[0].EmployeeId)
	for i := 1; i < len(body.RecentAttendance); i++ {
		require.False(t, body.RecentAttendance[i-1].Timestamp.Before(body.RecentAttendance[i].Timestamp))
	}

	require.Equal(t, 2, body.TodayStats.Total)
	require.Equal(t, 1, body.TodayStats.Present)
	require.Equal(t, 1, body.TodayStats.Late)
	require.Equal(t, int64(1), body.TodayStats.Absent)
}
