package routes

import (
	"SMARTATTEND/controllers/attendance"
	"SMARTATTEND/controllers/auth"
	"SMARTATTEND/controllers/dashboard"
	"SMARTATTEND/controllers/face"
	"SMARTATTEND/controllers/users"
	"SMARTATTEND/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup builds the engine with the full API surface and the static shell.
func Setup() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		api.GET("/users", users.GetAllUsers)
		api.POST("/users", users.RegisterUser)
		api.GET("/users/:employeeId", users.GetUserByEmployeeId)

		api.POST("/attendance", attendance.MarkAttendance)
		api.GET("/attendance", attendance.GetAttendance)
		api.GET("/attendance/stats", attendance.GetAttendanceStats)

		api.GET("/dashboard", dashboard.GetDashboard)
		api.POST("/face/recognize", face.RecognizeFace)

		api.POST("/auth/session", auth.CreateSession)
		api.GET("/auth/me", middleware.RequireAuth, auth.Me)
	}

	// Everything else falls through to the application shell.
	r.NoRoute(func(c *gin.Context) {
		c.File("./public/index.html")
	})

	return r
}
