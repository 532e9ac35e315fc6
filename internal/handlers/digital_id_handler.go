package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yatra-labs/yatra-server/internal/helpers"
	"github.com/yatra-labs/yatra-server/internal/models"
	"github.com/yatra-labs/yatra-server/internal/services"
)

func IssueDigitalID(ds *services.DigitalIDService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		var record models.DigitalID
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		issued, err := ds.IssueDigitalID(c.Request.Context(), userId, &record, accessToken)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(issued, "Digital ID issued"))
	}
}

func GetMyDigitalID(ds *services.DigitalIDService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		accessToken, _ := c.Cookie("access_token")

		record, err := ds.GetDigitalID(c.Request.Context(), userId, accessToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		if record == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("no digital ID on record"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(record, ""))
	}
}

func DeleteMyDigitalID(ds *services.DigitalIDService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		accessToken, _ := c.Cookie("access_token")

		if err := ds.DeleteDigitalID(c.Request.Context(), userId, accessToken); err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "Digital ID deleted"))
	}
}

// VerifyDigitalID checks both the display ID format and the signed credential
// stored against it. Public so verifiers don't need an account.
func VerifyDigitalID(ds *services.DigitalIDService) gin.HandlerFunc {
	return func(c *gin.Context) {
		displayId := helpers.StringTrim(c.Param("displayId"))

		if !models.IsValidDisplayID(displayId) {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid digital ID format"))
			return
		}

		record, err := ds.VerifyDigitalID(c.Request.Context(), displayId)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"valid": false, "reason": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"valid":      true,
			"display_id": record.DisplayID,
			"id_type":    record.IDType,
			"issued_at":  record.IssuedAt,
		})
	}
}
