package repository

import (
	"context"

	"aquarium-storefront/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, record *model.NotificationRecord) error
	FindAll(ctx context.Context) ([]*model.NotificationRecord, error)
	FindByOrderID(ctx context.Context, orderID string) ([]*model.NotificationRecord, error)
}

type notificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepoImpl{db: db}
}

func (r *notificationRepoImpl) Create(ctx context.Context, record *model.NotificationRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *notificationRepoImpl) FindAll(ctx context.Context) ([]*model.NotificationRecord, error) {
	var records []*model.NotificationRecord
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *notificationRepoImpl) FindByOrderID(ctx context.Context, orderID string) ([]*model.NotificationRecord, error) {
	var records []*model.NotificationRecord
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}
