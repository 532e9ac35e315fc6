package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yatra-labs/yatra-server/internal/helpers"
	"github.com/yatra-labs/yatra-server/internal/services"
)

func ListCities(cs *services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cities, err := cs.ListCities(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(cities, ""))
	}
}

func GetCityPage(cs *services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cityName := strings.TrimSpace(c.Param("name"))
		if cityName == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("city name is required"))
			return
		}

		page, err := cs.GetCityPage(c.Request.Context(), cityName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		if page == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("city not found"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(page, ""))
	}
}
