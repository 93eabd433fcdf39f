package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const memberIDKey = "member_id"

// Authenticator resolves a session token to a member id.
type Authenticator interface {
	Authenticate(token string) (string, error)
}

// Member attaches the signed in member to the request when a valid bearer
// token is present. Requests without one are passed through anonymously.
func Member(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if ok {
				if memberID, err := auth.Authenticate(token); err == nil {
					c.Set(memberIDKey, memberID)
				}
			}
			return next(c)
		}
	}
}

// MemberID is empty for anonymous requests.
func MemberID(c echo.Context) string {
	memberID, _ := c.Get(memberIDKey).(string)
	return memberID
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
