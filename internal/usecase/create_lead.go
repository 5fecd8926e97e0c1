package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/xavierca1/brandleads/internal/entity"
	"github.com/xavierca1/brandleads/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Repo          LeadRepositoryInterface
	Mail          MailProducerInterface
	OperatorInbox string
}

func NewCreateLeadUseCase(
	repo LeadRepositoryInterface,
	mail MailProducerInterface,
	operatorInbox string,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:          repo,
		Mail:          mail,
		OperatorInbox: operatorInbox,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	lead, err := entity.NewLead(input.BrandName, input.Phone, input.Email, input.Plan, input.Requirements)
	if err != nil {
		return nil, err
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	// Mail is outbox-only: a publish failure never fails the capture.
	uc.publish(ctx, queue.MailJob{
		ID:        uuid.New().String(),
		Type:      queue.MailLeadAlert,
		To:        uc.OperatorInbox,
		LeadID:    lead.ID,
		BrandName: lead.BrandName,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Plan:      lead.Plan,
	})
	uc.publish(ctx, queue.MailJob{
		ID:        uuid.New().String(),
		Type:      queue.MailLeadWelcome,
		To:        lead.Email,
		LeadID:    lead.ID,
		BrandName: lead.BrandName,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Plan:      lead.Plan,
	})

	log.Printf("🚀 Lead #%d captured for %s", lead.ID, lead.BrandName)
	return lead, nil
}

func (uc *CreateLeadUseCase) publish(ctx context.Context, job queue.MailJob) {
	if uc.Mail == nil {
		return
	}
	if err := uc.Mail.PublishMail(ctx, job); err != nil {
		log.Printf("⚠️ Lead saved, but mail job %s failed to queue: %v", job.Type, err)
	}
}
