package service

import (
	"fmt"
	"strings"
	"time"

	"deal_market/internal/domain/entity"
	"deal_market/internal/domain/value"
)

// Badge возвращает стиль бейджа предложения для UI.
func Badge(deal *entity.Deal) value.BadgeStyle {
	return value.BadgeForPriority(deal.Priority)
}

// RenderMessage собирает текст исходящего сообщения в фиксированном порядке:
// заголовок, товар, описание, ценовые пороги, строки истечения, оплата,
// ограничения вариантов. Функция чистая; обратный отсчёт пересчитывает
// вызывающий код со своим интервалом.
func RenderMessage(deal *entity.Deal, productName string, now time.Time) string {
	var b strings.Builder

	badge := Badge(deal)

	if badge.Tier == value.BadgeHot {
		fmt.Fprintf(&b, "%s <b>%s</b>\n", badge.Icon, deal.Title)
	} else {
		fmt.Fprintf(&b, "%s %s\n", badge.Icon, deal.Title)
	}

	if productName != "" {
		fmt.Fprintf(&b, "🎁 %s\n", productName)
	}

	if deal.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", deal.Description)
	}

	if len(deal.Tiers) > 0 {
		b.WriteString("\n")

		for _, tier := range deal.Tiers {
			fmt.Fprintf(&b, "💰 %d+ pcs — %s each\n", tier.MinQuantity, tier.UnitPrice)
		}
	}

	writeExpirationLines(&b, deal, now)
	writePaymentLines(&b, deal)
	writeConstraintLines(&b, deal)

	return strings.TrimRight(b.String(), "\n")
}

func writeExpirationLines(b *strings.Builder, deal *entity.Deal, now time.Time) {
	if deal.HasDeadline() && now.Before(*deal.ExpiresAt) {
		fmt.Fprintf(b, "\n⏳ Ends in %s\n", formatCountdown(deal.ExpiresAt.Sub(now)))
	}

	if deal.HasCapacity() {
		remaining := *deal.MaxQuantity - deal.SoldQuantity
		if remaining < 0 {
			remaining = 0
		}

		fmt.Fprintf(b, "📦 %d of %d left\n", remaining, *deal.MaxQuantity)
	}
}

func writePaymentLines(b *strings.Builder, deal *entity.Deal) {
	methods := deal.PaymentMethods
	if len(methods) == 0 {
		methods = value.AllPaymentMethods()
	}

	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, paymentLabel(m))
	}

	fmt.Fprintf(b, "\n💳 Payment: %s\n", strings.Join(names, ", "))

	if deal.PaymentNotes != "" {
		fmt.Fprintf(b, "📝 %s\n", deal.PaymentNotes)
	}
}

func writeConstraintLines(b *strings.Builder, deal *entity.Deal) {
	if len(deal.AllowedColors) > 0 {
		fmt.Fprintf(b, "🎨 Colors: %s\n", strings.Join(deal.AllowedColors, ", "))
	}

	if deal.IsESIM {
		b.WriteString("📶 eSIM only\n")
	}

	if deal.RequiredImporter != "" {
		fmt.Fprintf(b, "🛃 Importer: %s\n", deal.RequiredImporter)
	}
}

func paymentLabel(method value.PaymentMethod) string {
	switch method {
	case value.PaymentCash:
		return "cash"
	case value.PaymentBankTransfer:
		return "bank transfer"
	case value.PaymentCheckWeek:
		return "check (week)"
	case value.PaymentCheckMonth:
		return "check (month)"
	}

	return method.String()
}

// formatCountdown форматирует остаток времени целыми днями/часами/минутами,
// с округлением вниз.
func formatCountdown(left time.Duration) string {
	if left < 0 {
		left = 0
	}

	days := int(left.Hours()) / 24
	hours := int(left.Hours()) % 24
	minutes := int(left.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
