package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	cartSessionKey    = "cart_session"
	cartSessionMaxAge = 30 * 24 * time.Hour
)

// CartSession makes sure every request belongs to a cart session, issuing a
// new session cookie on first contact.
func CartSession(cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := ""
			if cookie, err := c.Cookie(cookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     cookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(cartSessionMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(cartSessionKey, sessionID)
			return next(c)
		}
	}
}

func CartSessionID(c echo.Context) string {
	sessionID, _ := c.Get(cartSessionKey).(string)
	return sessionID
}
