package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"aquarium-storefront/internal/model"

	"github.com/shopspring/decimal"
)

type AddCartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Delta int `json:"delta"`
}

type CartResponse struct {
	Items  []model.CartItem `json:"items"`
	Count  int              `json:"count"`
	Total  decimal.Decimal  `json:"total"`
	Notice *model.Notice    `json:"notice,omitempty"`
}

type CartTotalResponse struct {
	Total decimal.Decimal `json:"total"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

type CheckoutRequest struct {
	Name           string          `json:"name" validate:"required,max=64"`
	Phone          string          `json:"phone" validate:"required,max=32"`
	Address        string          `json:"address" validate:"required,max=256"`
	LineID         string          `json:"lineId" validate:"max=64"`
	ShippingMethod string          `json:"shippingMethod" validate:"max=32"`
	PaymentMethod  string          `json:"paymentMethod" validate:"max=32"`
	Note           string          `json:"note" validate:"max=1000"`
	ShippingFee    json.RawMessage `json:"shippingFee,omitempty"`
}

func (r *CheckoutRequest) Customer() model.Customer {
	return model.Customer{
		Name:           strings.TrimSpace(r.Name),
		Phone:          strings.TrimSpace(r.Phone),
		Address:        strings.TrimSpace(r.Address),
		LineID:         strings.TrimSpace(r.LineID),
		ShippingMethod: r.ShippingMethod,
		PaymentMethod:  r.PaymentMethod,
		Note:           strings.TrimSpace(r.Note),
	}
}

// ShippingFeeOrZero accepts the fee as a JSON number or numeric string.
// Absent, malformed and negative fees count as zero.
func (r *CheckoutRequest) ShippingFeeOrZero() decimal.Decimal {
	raw := bytes.TrimSpace(r.ShippingFee)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero
	}

	s := strings.Trim(string(raw), `"`)
	fee, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || fee.IsNegative() {
		return decimal.Zero
	}

	return fee
}

type CreateOrderResponse struct {
	Order   *model.Order  `json:"order"`
	LineURL string        `json:"lineUrl,omitempty"`
	Notice  *model.Notice `json:"notice,omitempty"`
}

type LoginRequest struct {
	Credential string `json:"credential"`
}

type LoginResponse struct {
	Token    string        `json:"token"`
	Provider string        `json:"provider"`
	Member   *model.Member `json:"member"`
}

type ErrorResponse struct {
	Notice *model.Notice `json:"notice"`
}
