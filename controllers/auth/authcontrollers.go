package auth

import (
	"errors"
	"net/http"
	"time"

	"SMARTATTEND/config"
	"SMARTATTEND/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

const sessionTTL = 12 * time.Hour

type SessionPayload struct {
	EmployeeId string `json:"employeeId" binding:"required"`
	Email      string `json:"email" binding:"required"`
}

// CreateSession issues a kiosk session token. There are no passwords in this
// system; the registered employeeId+email pair is the credential.
func CreateSession(c *gin.Context) {
	var payload SessionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	err := models.DB.Where("employee_id = ? AND email = ?", payload.EmployeeId, payload.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Employee ID and email do not match a registered user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	expiresAt := time.Now().Add(sessionTTL)
	claims := config.JWTClaims{
		EmployeeId: user.EmployeeId,
		Role:       user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWT_KEY)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     signed,
		"expiresAt": expiresAt,
	})
}

// Me returns the user behind the bearer token set by the auth middleware.
func Me(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid session"})
		return
	}
	c.JSON(http.StatusOK, userData.(models.User))
}
