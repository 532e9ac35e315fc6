package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yatra-labs/yatra-server/internal/helpers"
	"github.com/yatra-labs/yatra-server/internal/services"
)

func GetWeather(ws *services.WeatherService) gin.HandlerFunc {
	return func(c *gin.Context) {
		city := strings.TrimSpace(c.Param("city"))
		if city == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("city is required"))
			return
		}

		weather, err := ws.GetWeather(c.Request.Context(), city)
		if err != nil {
			c.JSON(http.StatusBadGateway, helpers.ErrorResponse(err.Error()))
			return
		}
		if weather == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("no weather data for "+city))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(weather, ""))
	}
}

func SearchImages(is *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("search query is required"))
			return
		}

		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

		results, err := is.Search(c.Request.Context(), query, perPage)
		if err != nil {
			c.JSON(http.StatusBadGateway, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(results, ""))
	}
}

func ListCurrencies(cs *services.CurrencyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, helpers.SuccessResponse(cs.SupportedCurrencies(), ""))
	}
}

func ConvertCurrency(cs *services.CurrencyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		amountStr := c.Query("amount")
		from := strings.ToUpper(strings.TrimSpace(c.Query("from")))
		to := strings.ToUpper(strings.TrimSpace(c.DefaultQuery("to", "INR")))

		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil || amount < 0 {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid amount"))
			return
		}
		if from == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("from currency is required"))
			return
		}

		converted, err := cs.Convert(amount, from, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{
			"amount":    amount,
			"from":      from,
			"to":        to,
			"converted": converted,
		}, ""))
	}
}
