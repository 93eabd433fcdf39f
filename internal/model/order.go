package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type Customer struct {
	Name           string `gorm:"size:64;not null" json:"name"`
	Phone          string `gorm:"size:32;not null" json:"phone"`
	Address        string `gorm:"size:256;not null" json:"address"`
	LineID         string `gorm:"size:64" json:"lineId,omitempty"`
	ShippingMethod string `gorm:"size:32" json:"shippingMethod"`
	PaymentMethod  string `gorm:"size:32" json:"paymentMethod"`
	Note           string `json:"note,omitempty"`
}

// Order is written once at checkout and never updated by the storefront.
type Order struct {
	ID          string          `gorm:"primaryKey;size:64;not null" json:"id"`
	MemberID    string          `gorm:"size:64;index" json:"memberId,omitempty"`
	Items       []CartItem      `gorm:"serializer:json;not null" json:"items"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	ShippingFee decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"shippingFee"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Customer    Customer        `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Status      OrderStatus     `gorm:"size:32;index;not null" json:"status"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
}

// OrderPlaced is published to the message broker after an order is stored.
type OrderPlaced struct {
	OrderID  string          `json:"order_id"`
	MemberID string          `json:"member_id,omitempty"`
	Items    []CartItem      `json:"items"`
	Total    decimal.Decimal `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}

func (e OrderPlaced) EventType() string { return "OrderPlaced" }
