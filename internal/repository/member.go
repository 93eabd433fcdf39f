package repository

import (
	"context"
	"time"

	"aquarium-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository interface {
	Upsert(ctx context.Context, member *model.Member) error
	Get(ctx context.Context, uid string) (*model.Member, error)
}

type memberRepoImpl struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepoImpl{
		db: db,
	}
}

// Upsert keeps the original created_at of a returning member.
func (r *memberRepoImpl) Upsert(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"email":        member.Email,
			"display_name": member.DisplayName,
			"photo_url":    member.PhotoURL,
			"phone_number": member.PhoneNumber,
			"provider_id":  member.ProviderID,
			"updated_at":   time.Now(),
		}),
	}).Create(member).Error
}

func (r *memberRepoImpl) Get(ctx context.Context, uid string) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&member).Error
	if err != nil {
		return nil, err
	}

	return &member, nil
}
