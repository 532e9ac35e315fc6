package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/yatra-labs/yatra-server/internal/services"
)

func frontendURL() string {
	if u := os.Getenv("FRONTEND_URL"); u != "" {
		return u
	}
	if os.Getenv("GIN_MODE") == "production" {
		return "https://yatra.example.com"
	}
	return "http://localhost:3000"
}

// GoogleAuth initiates Google OAuth flow via Supabase
func GoogleAuth(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		redirectTo := c.Query("redirect_to")
		if redirectTo == "" {
			redirectTo = frontendURL() + "/auth/callback"
		}

		authURL, err := u.GetGoogleAuthURL(redirectTo)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to generate Google auth URL",
				"message": err.Error(),
			})
			return
		}

		c.Redirect(http.StatusTemporaryRedirect, authURL)
	}
}

// GoogleAuthCallback handles the callback from Google OAuth.
// Supabase sends tokens as URL fragments which are handled client-side;
// this endpoint exists for error handling.
func GoogleAuthCallback() gin.HandlerFunc {
	return func(c *gin.Context) {
		oauthError := c.Query("error")
		errorDescription := c.Query("error_description")

		if oauthError != "" {
			redirectURL := fmt.Sprintf("%s/auth/signin?error=%s&error_description=%s",
				frontendURL(), oauthError, errorDescription)
			c.Redirect(http.StatusTemporaryRedirect, redirectURL)
			return
		}

		c.Redirect(http.StatusTemporaryRedirect, frontendURL()+"/auth/callback")
	}
}

// RefreshSession exchanges the refresh token cookie for a new token pair.
// The middleware also refreshes transparently; this endpoint lets clients
// refresh eagerly.
func RefreshSession(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie("refresh_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token not found"})
			return
		}

		refreshResponse, err := u.RefreshToken(refreshToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh failed"})
			return
		}

		tokenRes, ok := refreshResponse.(*types.TokenResponse)
		if !ok || tokenRes.AccessToken == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid refresh response"})
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie("access_token", tokenRes.AccessToken, tokenRes.ExpiresIn, "/", "", isProduction, true)
		c.SetCookie("refresh_token", tokenRes.RefreshToken, 3600*24*30, "/", "", isProduction, true)

		c.JSON(http.StatusOK, gin.H{"user": tokenRes.User})
	}
}

// Logout handler
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"

		// Clear all auth cookies
		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)
		c.SetCookie("refresh_token", "", -1, "/", "", isProduction, true)
		c.SetCookie("session_id", "", -1, "/", "", false, true)

		c.JSON(http.StatusOK, gin.H{
			"message": "Logged out successfully",
		})
	}
}
