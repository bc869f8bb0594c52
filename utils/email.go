package utils

import (
	"fmt"
	"log"
	"os"

	"galaxi-backend/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
)

// EmailService sends courtesy emails through SendGrid. All sends are
// best-effort and never affect the HTTP response.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
// Without SENDGRID_API_KEY the service is disabled and every send is a
// no-op.
func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY is not set. Emails are disabled.")
		return &EmailService{}
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es == nil || es.client == nil {
		return nil
	}

	from := mail.NewEmail("Galaxi", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	response, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded with status %d", response.StatusCode)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation to the buyer
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.ConfirmedOrder) {
	subject := "Order Confirmation - Galaxi"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>Thank you for your purchase! Your order has been confirmed.<br><br>Transaction ID: <strong>%s</strong><br>Total Amount: <strong>$%.2f</strong><br><br>Thank you for shopping with us!",
		order.PurchaseDetails.TransactionID,
		order.PurchaseDetails.TotalAmount,
	)

	if err := es.SendEmail(toEmail, subject, htmlContent); err != nil {
		log.Printf("Failed to send order confirmation to %s: %v", toEmail, err)
	}
}

// SendContactEmail relays a contact-form submission to the shop inbox
// configured in CONTACT_INBOX
func (es *EmailService) SendContactEmail(message bson.M) {
	inbox := os.Getenv("CONTACT_INBOX")
	if inbox == "" {
		return
	}

	subject := "New contact message - Galaxi"
	htmlContent := "<strong>A new contact message was received:</strong><br><br>"
	for key, value := range message {
		htmlContent += fmt.Sprintf("%s: %v<br>", key, value)
	}

	if err := es.SendEmail(inbox, subject, htmlContent); err != nil {
		log.Printf("Failed to relay contact message: %v", err)
	}
}

// SendWelcomeEmail greets a new newsletter subscriber
func (es *EmailService) SendWelcomeEmail(toEmail string) {
	subject := "Welcome to the Galaxi newsletter"
	htmlContent := "<strong>Thank you for subscribing!</strong><br><br>You will now receive updates about new products and offers."

	if err := es.SendEmail(toEmail, subject, htmlContent); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", toEmail, err)
	}
}
