package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/brandleads/internal/entity"
	"github.com/xavierca1/brandleads/internal/infra/queue"
)

type DescriptionUpdateUseCase struct {
	Repo          LeadRepositoryInterface
	Notifications NotificationSinkInterface
	Mail          MailProducerInterface
	OperatorInbox string
}

func NewDescriptionUpdateUseCase(
	repo LeadRepositoryInterface,
	notifications NotificationSinkInterface,
	mail MailProducerInterface,
	operatorInbox string,
) *DescriptionUpdateUseCase {
	return &DescriptionUpdateUseCase{
		Repo:          repo,
		Notifications: notifications,
		Mail:          mail,
		OperatorInbox: operatorInbox,
	}
}

// Request appends a Pending description-change request to the lead and tells
// the operator about it (notification + outbox mail, both best-effort).
func (uc *DescriptionUpdateUseCase) Request(ctx context.Context, leadID int, input RequestDescriptionUpdateInput) (*entity.DescriptionUpdateRequest, error) {
	text := strings.TrimSpace(input.RequestedText)
	if text == "" {
		return nil, ErrEmptyDescriptionRequest
	}

	var request entity.DescriptionUpdateRequest

	lead, err := uc.Repo.Update(ctx, leadID, func(l *entity.Lead) error {
		snapshot := input.CurrentDescription
		if snapshot == "" {
			snapshot = l.Description
		}

		request = entity.DescriptionUpdateRequest{
			ID:                  newRequestID(),
			RequestedAt:         time.Now(),
			RequestedText:       text,
			PreviousDescription: snapshot,
			Status:              entity.RemarkPending,
		}
		l.DescriptionUpdates = append(l.DescriptionUpdates, request)
		return nil
	})
	if err != nil {
		return nil, err
	}

	n := entity.NewNotification(entity.NotificationDescriptionUpdate, lead.ID, lead.BrandName, lead.Email,
		[]string{fmt.Sprintf("Requested description: %s", text)})
	if err := uc.Notifications.Create(ctx, n); err != nil {
		log.Printf("⚠️ Description request saved for lead #%d, but notification failed: %v", lead.ID, err)
	}

	if uc.Mail != nil {
		job := queue.MailJob{
			ID:            uuid.New().String(),
			Type:          queue.MailDescriptionRequest,
			To:            uc.OperatorInbox,
			LeadID:        lead.ID,
			BrandName:     lead.BrandName,
			Email:         lead.Email,
			RequestedText: text,
		}
		if err := uc.Mail.PublishMail(ctx, job); err != nil {
			log.Printf("⚠️ Description request saved for lead #%d, but mail job failed to queue: %v", lead.ID, err)
		}
	}

	return &request, nil
}

// Resolve stamps a request with the caller-supplied status. Resolution is
// terminal; the requested text never auto-applies to the description, the
// operator does that through a field update.
func (uc *DescriptionUpdateUseCase) Resolve(ctx context.Context, leadID int, requestID, status string) (*entity.DescriptionUpdateRequest, error) {
	if strings.TrimSpace(status) == "" {
		return nil, ValidationErrors{{"status", "is required"}}
	}

	var resolved entity.DescriptionUpdateRequest

	_, err := uc.Repo.Update(ctx, leadID, func(l *entity.Lead) error {
		req := l.FindDescriptionRequest(requestID)
		if req == nil {
			return entity.ErrDescriptionRequestNotFound
		}
		now := time.Now()
		req.Status = status
		req.ResolvedAt = &now
		resolved = *req
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resolved, nil
}

func newRequestID() string {
	return fmt.Sprintf("REQ%d", time.Now().UnixNano())
}
