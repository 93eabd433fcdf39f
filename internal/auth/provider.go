package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredential  = errors.New("invalid credential")
	ErrUnsupportedMethod  = errors.New("unsupported login method")
	ErrInvalidSession     = errors.New("invalid session token")
	errMissingIdentitySub = errors.New("identity token has no subject")
)

type Method string

const (
	MethodGoogle   Method = "google"
	MethodFacebook Method = "facebook"
	MethodLine     Method = "line"
)

func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodGoogle, MethodFacebook, MethodLine:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
}

// Identity is what a provider knows about the person who signed in.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
	PhoneNumber string
	Method      Method
}

type Provider interface {
	Name() string
	SignIn(ctx context.Context, method Method, credential string) (*Identity, error)
}

// NewProvider picks the login backend once. A configured identity provider
// secret selects token verification, otherwise logins are simulated.
func NewProvider(idpSecret string) Provider {
	if idpSecret != "" {
		return NewTokenProvider([]byte(idpSecret))
	}
	return NewDemoProvider()
}

type identityClaims struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Picture     string `json:"picture"`
	PhoneNumber string `json:"phone_number"`
	Provider    string `json:"provider"`
	jwt.RegisteredClaims
}

type tokenProvider struct {
	secret []byte
}

func NewTokenProvider(secret []byte) Provider {
	return &tokenProvider{secret: secret}
}

func (p *tokenProvider) Name() string { return "token" }

func (p *tokenProvider) SignIn(ctx context.Context, method Method, credential string) (*Identity, error) {
	claims := &identityClaims{}
	_, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, errMissingIdentitySub)
	}
	if claims.Provider != "" && Method(claims.Provider) != method {
		return nil, fmt.Errorf("%w: token issued for %s", ErrInvalidCredential, claims.Provider)
	}

	return &Identity{
		UID:         claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
		PhoneNumber: claims.PhoneNumber,
		Method:      method,
	}, nil
}

type demoProvider struct{}

func NewDemoProvider() Provider {
	return demoProvider{}
}

func (demoProvider) Name() string { return "demo" }

// SignIn accepts any credential and makes up a demo identity.
func (demoProvider) SignIn(ctx context.Context, method Method, credential string) (*Identity, error) {
	name := string(method)
	return &Identity{
		UID:         "demo_" + uuid.NewString(),
		Email:       name + "_user@example.com",
		DisplayName: "Demo " + strings.ToUpper(name[:1]) + name[1:] + " User",
		Method:      method,
	}, nil
}

// IssueIdentityToken signs an identity token the way the token provider
// expects one. Used by tests and local tooling.
func IssueIdentityToken(secret []byte, identity *Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &identityClaims{
		Email:       identity.Email,
		Name:        identity.DisplayName,
		Picture:     identity.PhotoURL,
		PhoneNumber: identity.PhoneNumber,
		Provider:    string(identity.Method),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
