package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"aquarium-storefront/internal/auth"
	"aquarium-storefront/internal/dto"
	"aquarium-storefront/internal/model"
	"aquarium-storefront/internal/repository"

	"gorm.io/gorm"
)

type MemberService interface {
	ProviderName() string
	Login(ctx context.Context, method, credential string) (*dto.LoginResponse, error)
	// Authenticate resolves a session token to a member id.
	Authenticate(token string) (string, error)
	Profile(ctx context.Context, memberID string) (*model.Member, error)
}

type memberServiceImpl struct {
	provider   auth.Provider
	sessions   *auth.Sessions
	memberRepo repository.MemberRepository
}

func NewMemberService(
	provider auth.Provider,
	sessions *auth.Sessions,
	memberRepo repository.MemberRepository,
) MemberService {
	return &memberServiceImpl{
		provider:   provider,
		sessions:   sessions,
		memberRepo: memberRepo,
	}
}

func (s *memberServiceImpl) ProviderName() string {
	return s.provider.Name()
}

func (s *memberServiceImpl) Login(ctx context.Context, method, credential string) (*dto.LoginResponse, error) {
	m, err := auth.ParseMethod(method)
	if err != nil {
		return nil, err
	}

	identity, err := s.provider.SignIn(ctx, m, credential)
	if err != nil {
		return nil, fmt.Errorf("sign in with %s: %w", m, err)
	}

	member := &model.Member{
		UID:         identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
		PhoneNumber: identity.PhoneNumber,
		ProviderID:  string(identity.Method),
	}
	if err := s.memberRepo.Upsert(ctx, member); err != nil {
		return nil, persistenceError("save member", err)
	}

	stored, err := s.memberRepo.Get(ctx, member.UID)
	if err != nil {
		return nil, persistenceError("load member", err)
	}

	token, err := s.sessions.Issue(stored.UID)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	slog.InfoContext(ctx, "member signed in",
		"uid", stored.UID,
		"method", m,
		"provider", s.provider.Name(),
	)

	return &dto.LoginResponse{
		Token:    token,
		Provider: s.provider.Name(),
		Member:   stored,
	}, nil
}

func (s *memberServiceImpl) Authenticate(token string) (string, error) {
	return s.sessions.Verify(token)
}

func (s *memberServiceImpl) Profile(ctx context.Context, memberID string) (*model.Member, error) {
	if memberID == "" {
		return nil, ErrNotLoggedIn
	}

	member, err := s.memberRepo.Get(ctx, memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, persistenceError("load member", err)
	}
	return member, nil
}
