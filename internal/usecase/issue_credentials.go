package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/xavierca1/brandleads/internal/entity"
	"github.com/xavierca1/brandleads/internal/infra/queue"
)

type IssueCredentialsUseCase struct {
	Repo   LeadRepositoryInterface
	Hasher PasswordHasher
	Mail   MailProducerInterface
}

func NewIssueCredentialsUseCase(
	repo LeadRepositoryInterface,
	hasher PasswordHasher,
	mail MailProducerInterface,
) *IssueCredentialsUseCase {
	return &IssueCredentialsUseCase{
		Repo:   repo,
		Hasher: hasher,
		Mail:   mail,
	}
}

// Execute issues client-portal credentials for an approved lead. The
// password is bcrypt-hashed before persisting; the plaintext appears only in
// the returned output and the credentials email.
func (uc *IssueCredentialsUseCase) Execute(ctx context.Context, leadID int, input IssueCredentialsInput) (*IssueCredentialsOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ValidationErrors{{"username", "is required"}}
	}
	if input.Password == "" {
		return nil, ValidationErrors{{"password", "is required"}}
	}

	taken, err := uc.Repo.UsernameTaken(ctx, username, leadID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateUsername
	}

	hash, err := uc.Hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	lead, err := uc.Repo.Update(ctx, leadID, func(l *entity.Lead) error {
		if l.Remark != entity.RemarkApproved {
			return ErrNotApproved
		}
		l.Username = username
		l.PasswordHash = hash
		return nil
	})
	if err != nil {
		return nil, err
	}

	if to := strings.TrimSpace(input.Email); to != "" && uc.Mail != nil {
		job := queue.MailJob{
			ID:        uuid.New().String(),
			Type:      queue.MailCredentials,
			To:        to,
			LeadID:    lead.ID,
			BrandName: lead.BrandName,
			Email:     lead.Email,
			Username:  username,
			Password:  input.Password,
		}
		if err := uc.Mail.PublishMail(ctx, job); err != nil {
			log.Printf("⚠️ Credentials issued for lead #%d, but mail job failed to queue: %v", lead.ID, err)
		}
	}

	return &IssueCredentialsOutput{
		Username: username,
		Password: input.Password,
	}, nil
}
