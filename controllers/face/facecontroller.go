package face

import (
	"net/http"

	"SMARTATTEND/helper"
	"SMARTATTEND/models"

	"github.com/gin-gonic/gin"
)

type RecognizePayload struct {
	FaceData string `json:"faceData" binding:"required"`
}

// RecognizeFace is the placeholder matcher: the capture payload is hashed
// deterministically and reduced onto the first five registered users, so the
// same faceData always resolves to the same user. Not a biometric algorithm.
func RecognizeFace(c *gin.Context) {
	var payload RecognizePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	var candidates []models.User
	if err := models.DB.Order("id asc").Limit(5).Find(&candidates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if len(candidates) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "No face recognized",
		})
		return
	}

	matched := candidates[helper.MatchIndex(helper.FaceHash(payload.FaceData), len(candidates))]

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"name":       matched.Name,
			"employeeId": matched.EmployeeId,
		},
		"confidence": helper.Confidence(),
	})
}
