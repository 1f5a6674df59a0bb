package notifier

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/aarikaaura/storefront/internal/contact/mailer"
	"github.com/aarikaaura/storefront/kafka"
	"github.com/aarikaaura/storefront/pkg/logger"
)

// Notifier reacts to order placed events by mailing the customer an
// order confirmation.
type Notifier struct {
	mailer mailer.Mailer
}

func New(m mailer.Mailer) *Notifier {
	return &Notifier{mailer: m}
}

// HandleOrderPlaced sends the confirmation mail for one event. Events
// without a customer email are skipped.
func (n *Notifier) HandleOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error {
	if event.Email == "" {
		logger.Warn(ctx).
			Str("order_id", event.OrderID).
			Msg("Order placed event without customer email, skipping confirmation")
		return nil
	}

	shortID := event.OrderID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	mail := mailer.Mail{
		To:       event.Email,
		Subject:  fmt.Sprintf("Your Aarika Aura order %s is confirmed", shortID),
		HTMLBody: BuildOrderConfirmationBody(event),
	}
	if err := n.mailer.Send(ctx, mail); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}

	logger.Info(ctx).
		Str("order_id", event.OrderID).
		Str("email", event.Email).
		Msg("Order confirmation sent")
	return nil
}

// BuildOrderConfirmationBody builds the HTML body for the order
// confirmation email.
func BuildOrderConfirmationBody(event kafka.OrderPlacedEvent) string {
	var rows strings.Builder
	for _, line := range event.Lines {
		name := line.Name
		if line.Size != "" {
			name = fmt.Sprintf("%s (%s)", name, line.Size)
		}
		rows.WriteString(fmt.Sprintf(
			`<tr>
				<td style="padding: 12px; border-bottom: 1px solid #eee;">%s</td>
				<td style="padding: 12px; border-bottom: 1px solid #eee; text-align: center;">%d</td>
				<td style="padding: 12px; border-bottom: 1px solid #eee; text-align: right;">$%.2f</td>
				<td style="padding: 12px; border-bottom: 1px solid #eee; text-align: right;">$%.2f</td>
			</tr>`,
			html.EscapeString(name),
			line.Quantity,
			line.UnitPrice,
			line.UnitPrice*float64(line.Quantity),
		))
	}

	customer := event.Name
	if customer == "" {
		customer = "customer"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background: linear-gradient(135deg, #7c3aed, #ec4899); padding: 30px; border-radius: 10px 10px 0 0;">
		<h1 style="color: white; margin: 0; font-size: 24px;">Thank you for your order!</h1>
	</div>
	<div style="background: #fff; padding: 30px; border: 1px solid #eee; border-top: none; border-radius: 0 0 10px 10px;">
		<p style="margin-top: 0;">Dear <strong>%s</strong>, your items are on the way!</p>
		<div style="background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
			<p style="margin: 0; font-size: 14px; color: #666;">Order number</p>
			<p style="margin: 5px 0 0 0; font-size: 18px; font-weight: bold; font-family: monospace;">%s</p>
		</div>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background: #f8f9fa;">
					<th style="padding: 12px; text-align: left;">Item</th>
					<th style="padding: 12px; text-align: center;">Qty</th>
					<th style="padding: 12px; text-align: right;">Unit</th>
					<th style="padding: 12px; text-align: right;">Amount</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>
		<table style="width: 100%%; margin: 20px 0;">
			<tr><td style="text-align: right; color: #666;">Subtotal</td><td style="text-align: right; width: 100px;">$%.2f</td></tr>
			<tr><td style="text-align: right; color: #666;">Tax</td><td style="text-align: right;">$%.2f</td></tr>
			<tr><td style="text-align: right; color: #666;">Shipping</td><td style="text-align: right;">$%.2f</td></tr>
			<tr><td style="text-align: right; font-weight: bold; color: #7c3aed;">Total</td><td style="text-align: right; font-weight: bold; color: #7c3aed;">$%.2f</td></tr>
		</table>
		<p style="font-size: 12px; color: #999; margin-bottom: 0;">
			This email was sent automatically. If you have any questions, please contact support.
		</p>
	</div>
</body>
</html>`,
		html.EscapeString(customer),
		html.EscapeString(event.OrderID),
		rows.String(),
		event.Subtotal,
		event.Tax,
		event.ShippingFee,
		event.Total,
	)
}
