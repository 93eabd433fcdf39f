package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"aquarium-storefront/internal/model"
)

const lineLinkBase = "https://line.me/R/ti/p/@"

var shippingMethodLabels = map[string]string{
	"blackcat-prepay": "黑貓宅急便 (先付款)",
	"blackcat-cod":    "黑貓宅急便 (貨到付款)",
	"post-office":     "郵局/大榮物流",
}

var paymentMethodLabels = map[string]string{
	"linepay": "LINE Pay",
	"atm":     "銀行轉帳",
	"cod":     "貨到付款",
	"credit":  "信用卡",
}

var orderStatusLabels = map[model.OrderStatus]string{
	model.OrderPending:   "待處理",
	model.OrderConfirmed: "已確認",
	model.OrderShipped:   "已出貨",
	model.OrderCompleted: "已完成",
	model.OrderCancelled: "已取消",
}

// FormatOrderMessage renders the order summary sent to the shop owner.
func FormatOrderMessage(order *model.Order, settings *model.Settings, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	c := order.Customer

	var b strings.Builder
	fmt.Fprintf(&b, "🐟 %s 新訂單通知\n\n", settings.Site.Name)
	fmt.Fprintf(&b, "📋 訂單編號: %s\n", order.ID)
	fmt.Fprintf(&b, "📅 時間: %s\n\n", formatTaiwanTime(order.CreatedAt.In(loc)))

	b.WriteString("👤 顧客資料:\n")
	fmt.Fprintf(&b, "- 姓名: %s\n", c.Name)
	fmt.Fprintf(&b, "- 電話: %s\n", c.Phone)
	fmt.Fprintf(&b, "- 地址: %s\n", c.Address)
	fmt.Fprintf(&b, "- LINE ID: %s\n\n", orDefault(c.LineID, "未提供"))

	fmt.Fprintf(&b, "🚚 配送方式: %s\n", lookupLabel(shippingMethodLabels, c.ShippingMethod))
	fmt.Fprintf(&b, "💳 付款方式: %s\n\n", lookupLabel(paymentMethodLabels, c.PaymentMethod))

	b.WriteString("📦 訂單內容:\n")
	lines := make([]string, len(order.Items))
	for i, item := range order.Items {
		lines[i] = fmt.Sprintf("- %s x %d = $%s", item.Name, item.Quantity, item.LineTotal().String())
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")

	b.WriteString("💰 費用:\n")
	fmt.Fprintf(&b, "- 商品小計: $%s\n", order.Subtotal.String())
	fmt.Fprintf(&b, "- 運費: $%s\n", order.ShippingFee.String())
	fmt.Fprintf(&b, "- 總金額: $%s\n\n", order.Total.String())

	fmt.Fprintf(&b, "📝 備註: %s\n\n", orDefault(c.Note, "無"))

	status, ok := orderStatusLabels[order.Status]
	if !ok {
		status = string(order.Status)
	}
	fmt.Fprintf(&b, "狀態: %s\n", status)

	return b.String()
}

// BuildLineLink points at the LINE chat of handle with message prefilled.
func BuildLineLink(handle, message string) string {
	handle = strings.TrimPrefix(handle, "@")
	return lineLinkBase + url.PathEscape(handle) + "?" + encodeURIComponent(message)
}

var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes like JavaScript's encodeURIComponent: spaces
// become %20 and !'()* are left as is.
func encodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}

// formatTaiwanTime matches the zh-TW locale, e.g. 2026/2/5 下午3:04:05.
func formatTaiwanTime(t time.Time) string {
	period := "上午"
	if t.Hour() >= 12 {
		period = "下午"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d/%d/%d %s%d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), period, hour, t.Minute(), t.Second())
}

func lookupLabel(labels map[string]string, code string) string {
	if label, ok := labels[code]; ok {
		return label
	}
	return "未選擇"
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
