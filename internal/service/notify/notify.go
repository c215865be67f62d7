package notify

import (
	"context"

	"github.com/kvbuilders/app/internal/model"
	"github.com/kvbuilders/app/pkg/email"
)

// Service dispatches the two inquiry emails. Both calls are synchronous
// here; the submission gate decides whether to detach them.
type Service interface {
	// NotifyOwner tells the business owner about a new inquiry.
	NotifyOwner(ctx context.Context, inq *model.Inquiry) error

	// ConfirmCustomer thanks the visitor and echoes the business contact
	// details.
	ConfirmCustomer(ctx context.Context, inq *model.Inquiry) error
}

type notifyService struct {
	client *email.Client
	cfg    email.Config
}

func New(client *email.Client, cfg email.Config) Service {
	return &notifyService{client: client, cfg: cfg}
}

func (s *notifyService) NotifyOwner(ctx context.Context, inq *model.Inquiry) error {
	msg := email.BuildOwnerNotificationEmail(s.cfg, inquiryData(inq))
	return s.client.Send(ctx, msg)
}

func (s *notifyService) ConfirmCustomer(ctx context.Context, inq *model.Inquiry) error {
	msg := email.BuildCustomerConfirmationEmail(s.cfg, inquiryData(inq))
	return s.client.Send(ctx, msg)
}

func inquiryData(inq *model.Inquiry) email.InquiryData {
	phone := inq.Phone
	if phone == "" {
		phone = "Not provided"
	}
	return email.InquiryData{
		Name:       inq.Name,
		Email:      inq.Email,
		Phone:      phone,
		Service:    inq.Service,
		Message:    inq.Message,
		ReceivedAt: inq.Timestamp.Format("2006-01-02 15:04:05 MST"),
	}
}
