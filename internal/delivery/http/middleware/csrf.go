package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"go-hr-website/pkg/apperror"
	"go-hr-website/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is checked for XHR requests
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is checked for regular form posts
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenKey is the gin context key exposing the token to templates
	CSRFTokenKey = "CSRFToken"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern.
//
// Every response carries a csrf_token cookie; pages embed the same token
// in a hidden form field. State-changing requests must echo it back in
// the csrf_token form field or the X-CSRF-Token header.
func CSRFMiddleware(secure bool, secLog *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || token == "" {
			token, err = generateCSRFToken()
			if err != nil {
				c.Error(apperror.Internal(err))
				c.Abort()
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CSRFTokenCookieName, token, int(CSRFTokenExpiry.Seconds()), "/", "", secure, true)
		}
		c.Set(CSRFTokenKey, token)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		sent := c.GetHeader(CSRFTokenHeaderName)
		if sent == "" {
			sent = c.PostForm(CSRFTokenFormField)
		}
		if sent == "" || subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
			secLog.LogCSRFRejected(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), c.FullPath())
			c.Error(apperror.Forbidden("Your form has expired. Please reload the page and try again."))
			c.Abort()
			return
		}

		c.Next()
	}
}
