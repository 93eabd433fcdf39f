package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator map[string]string

func (s stubAuthenticator) Authenticate(token string) (string, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", errors.New("bad token")
}

func serve(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = mw(func(c echo.Context) error { return nil })(c)
	return rec, c
}

func TestCartSessionIssuesCookie(t *testing.T) {
	rec, c := serve(CartSession("cart"), httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "cart", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, cookies[0].Value, CartSessionID(c))
}

func TestCartSessionReusesCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "cart", Value: "0b8e3b3e-8f5e-4a53-9a43-6f3f1f8d2c11"})

	rec, c := serve(CartSession("cart"), req)

	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, "0b8e3b3e-8f5e-4a53-9a43-6f3f1f8d2c11", CartSessionID(c))
}

func TestCartSessionReplacesForeignCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "cart", Value: "../../etc"})

	rec, c := serve(CartSession("cart"), req)

	require.Len(t, rec.Result().Cookies(), 1)
	assert.NotEqual(t, "../../etc", CartSessionID(c))
}

func TestMemberMiddleware(t *testing.T) {
	auth := stubAuthenticator{"good": "member-1"}

	tests := []struct {
		header string
		want   string
	}{
		{"Bearer good", "member-1"},
		{"bearer good", "member-1"},
		{"Bearer bad", ""},
		{"Basic good", ""},
		{"Bearer ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set(echo.HeaderAuthorization, tt.header)
		}

		_, c := serve(Member(auth), req)
		assert.Equal(t, tt.want, MemberID(c), tt.header)
	}
}
