package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"SMARTATTEND/config"
	"SMARTATTEND/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// RequireAuth validates the bearer session token and loads the matching user
// into the context under "currentUser".
func RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing bearer token"})
		return
	}

	claims := &config.JWTClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return config.JWT_KEY, nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired session"})
		return
	}

	var user models.User
	if err := models.DB.Where("employee_id = ?", claims.EmployeeId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session user no longer exists"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Set("currentUser", user)
	c.Next()
}
