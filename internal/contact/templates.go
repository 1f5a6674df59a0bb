package contact

import (
	"fmt"
	"html"
	"strings"

	"github.com/aarikaaura/storefront/internal/contact/domain"
)

func htmlBody(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}

// BuildBusinessNotificationBody builds the HTML body for the mail sent
// to the business address.
func BuildBusinessNotificationBody(msg domain.Message) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto;">
	<div style="background: linear-gradient(135deg, #7c3aed, #ec4899); color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
		<h1>New Contact Form Submission</h1>
		<p>Aarika Aura Website</p>
	</div>
	<div style="background: #f8fafc; padding: 20px; border-radius: 0 0 8px 8px;">
		<div style="margin-bottom: 15px;"><span style="font-weight: bold; color: #7c3aed;">Name:</span> %s</div>
		<div style="margin-bottom: 15px;"><span style="font-weight: bold; color: #7c3aed;">Email:</span> <a href="mailto:%s">%s</a></div>
		<div style="margin-bottom: 15px;"><span style="font-weight: bold; color: #7c3aed;">Subject:</span> %s</div>
		<div style="margin-bottom: 15px;">
			<span style="font-weight: bold; color: #7c3aed;">Message:</span>
			<div style="background: white; padding: 15px; border-radius: 4px; margin-top: 10px; border-left: 4px solid #7c3aed;">%s</div>
		</div>
		<div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #e2e8f0; font-size: 12px; color: #64748b;">
			<p>This email was sent from your website contact form.</p>
			<p>You can reply directly to this email to respond to %s.</p>
		</div>
	</div>
</body>
</html>`,
		htmlBody(msg.Name),
		htmlBody(msg.Email), htmlBody(msg.Email),
		htmlBody(msg.Subject),
		htmlBody(msg.Body),
		htmlBody(msg.Name),
	)
}

// BuildConfirmationBody builds the HTML body for the confirmation mail
// sent back to the submitter.
func BuildConfirmationBody(msg domain.Message) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto;">
	<div style="background: linear-gradient(135deg, #7c3aed, #ec4899); color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
		<h1>Thank You for Contacting Us!</h1>
	</div>
	<div style="background: #f8fafc; padding: 20px; border-radius: 0 0 8px 8px;">
		<p>Dear <strong>%s</strong>,</p>
		<p>Thank you for reaching out to Aarika Aura! We have received your message and will get back to you within 24 hours.</p>
		<div style="background: white; padding: 15px; border-radius: 4px; margin: 15px 0; border-left: 4px solid #7c3aed;">
			<strong>Your Message:</strong><br>%s
		</div>
		<p><strong>What happens next?</strong></p>
		<ul>
			<li>Our team will review your inquiry</li>
			<li>We'll respond to %s within 24 hours</li>
		</ul>
		<div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #e2e8f0; font-size: 12px; color: #64748b;">
			<p>Best regards,<br>The Aarika Aura Team</p>
			<p><em>This is an automated confirmation. Please do not reply to this email.</em></p>
		</div>
	</div>
</body>
</html>`,
		htmlBody(msg.Name),
		htmlBody(msg.Body),
		htmlBody(msg.Email),
	)
}
