package users

import (
	"errors"
	"net/http"

	"SMARTATTEND/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterPayload struct {
	Name       string `json:"name" binding:"required"`
	EmployeeId string `json:"employeeId" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	FaceData   string `json:"faceData"`
}

// GetAllUsers lists every user without the stored face image.
func GetAllUsers(c *gin.Context) {
	var list []models.User
	if err := models.DB.Omit("face_data").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func RegisterUser(c *gin.Context) {
	var payload RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	// Same pre-check the original performed; the unique indexes below remain
	// the backstop for a concurrent registration.
	var existing models.User
	err := models.DB.Where("employee_id = ? OR email = ?", payload.EmployeeId, payload.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User with this employee ID or email already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	user := models.User{
		Name:       payload.Name,
		EmployeeId: payload.EmployeeId,
		Email:      payload.Email,
		FaceData:   payload.FaceData,
		Role:       "employee",
	}
	if err := models.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User with this employee ID or email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"name":       user.Name,
			"employeeId": user.EmployeeId,
			"email":      user.Email,
		},
	})
}

func GetUserByEmployeeId(c *gin.Context) {
	var user models.User
	err := models.DB.Where("employee_id = ?", c.Param("employeeId")).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
