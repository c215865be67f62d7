package email

import (
	"fmt"
)

// InquiryData contains the fields rendered into the inquiry email templates.
type InquiryData struct {
	Name       string
	Email      string
	Phone      string
	Service    string
	Message    string
	ReceivedAt string
}

// BuildOwnerNotificationEmail creates the message sent to the business owner
// when a new inquiry is accepted.
func BuildOwnerNotificationEmail(cfg Config, data InquiryData) Message {
	business := cfg.BusinessName

	subject := fmt.Sprintf("New Inquiry from %s - %s", data.Name, data.Service)

	textBody := fmt.Sprintf(`You have received a new inquiry from your website:

Name: %s
Email: %s
Phone: %s
Service: %s

Message:
%s

Received: %s

This is an automated message from the %s website.`,
		data.Name, data.Email, data.Phone, data.Service, data.Message, data.ReceivedAt, business)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #2C5F4E 0%%, #1A3A2E 100%%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
        <h1>&#127968; New Inquiry Received!</h1>
    </div>
    <div style="background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
        <p>You have received a new inquiry from your website:</p>
        <p><strong style="color: #2C5F4E;">Name:</strong> %s</p>
        <p><strong style="color: #2C5F4E;">Email:</strong> %s</p>
        <p><strong style="color: #2C5F4E;">Phone:</strong> %s</p>
        <p><strong style="color: #2C5F4E;">Service:</strong> %s</p>
        <p><strong style="color: #2C5F4E;">Message:</strong></p>
        <div style="background: white; padding: 15px; border-radius: 5px;">%s</div>
        <p><strong style="color: #2C5F4E;">Received:</strong> %s</p>
    </div>
    <div style="text-align: center; margin-top: 20px; color: #888; font-size: 12px;">
        <p>This is an automated message from the %s website.</p>
    </div>
</body>
</html>`,
		data.Name, data.Email, data.Phone, data.Service, data.Message, data.ReceivedAt, business)

	return Message{
		To:       []string{cfg.Owner()},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildCustomerConfirmationEmail creates the thank-you message sent back to
// the visitor after their inquiry is accepted.
func BuildCustomerConfirmationEmail(cfg Config, data InquiryData) Message {
	business := cfg.BusinessName

	subject := fmt.Sprintf("Thank You for Your Inquiry - %s", business)

	textBody := fmt.Sprintf(`Dear %s,

Thank you for your interest in %s. We have received your inquiry and our team will review it shortly.

We typically respond to inquiries within 24 hours during business days. One of our representatives will contact you soon to discuss your project requirements.

Our Contact Information:
Phone: %s
Email: %s
Address: %s

We look forward to working with you!

Best regards,
%s Team

This is an automated confirmation message. Please do not reply to this email.`,
		data.Name, business, cfg.BusinessPhone, cfg.BusinessEmail, cfg.BusinessAddress, business)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #D4A574 0%%, #B8936F 100%%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
        <div style="font-size: 24px; font-weight: bold; margin-bottom: 10px;">&#127968; %s</div>
        <h2>Thank You for Contacting Us!</h2>
    </div>
    <div style="background: #FAF8F5; padding: 30px; border-radius: 0 0 10px 10px;">
        <p>Dear %s,</p>
        <p>Thank you for your interest in %s. We have received your inquiry and our team will review it shortly.</p>
        <p>We typically respond to inquiries within 24 hours during business days. One of our representatives will contact you soon to discuss your project requirements.</p>
        <div style="background: white; padding: 20px; border-radius: 5px; margin-top: 20px;">
            <h3 style="color: #2C5F4E; margin-top: 0;">Our Contact Information:</h3>
            <div style="margin: 10px 0;">&#128222; Phone: %s</div>
            <div style="margin: 10px 0;">&#9993;&#65039; Email: %s</div>
            <div style="margin: 10px 0;">&#128205; Address: %s</div>
        </div>
        <p style="margin-top: 20px;">We look forward to working with you!</p>
        <p style="color: #2C5F4E; font-weight: bold;">Best regards,<br>%s Team</p>
    </div>
    <div style="text-align: center; margin-top: 20px; color: #888; font-size: 12px;">
        <p>This is an automated confirmation message. Please do not reply to this email.</p>
    </div>
</body>
</html>`,
		business, data.Name, business, cfg.BusinessPhone, cfg.BusinessEmail, cfg.BusinessAddress, business)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
