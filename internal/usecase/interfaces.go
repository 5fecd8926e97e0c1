package usecase

import (
	"context"

	"github.com/xavierca1/brandleads/internal/entity"
	"github.com/xavierca1/brandleads/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id int) (*entity.Lead, error)
	FindByUsername(ctx context.Context, username string) (*entity.Lead, error)
	List(ctx context.Context) ([]entity.Lead, error)
	// Update runs mutate against the stored lead under the collection lock,
	// recomputes the payment ledger totals and persists the whole collection.
	// A mutate error aborts without saving.
	Update(ctx context.Context, id int, mutate func(*entity.Lead) error) (*entity.Lead, error)
	Delete(ctx context.Context, id int) error
	UsernameTaken(ctx context.Context, username string, excludeID int) (bool, error)
}

// NotificationSinkInterface records admin-facing workflow events. Callers
// treat failures as non-fatal; the sink's persistence never blocks a lead
// mutation.
type NotificationSinkInterface interface {
	Create(ctx context.Context, n *entity.Notification) error
}

type MailProducerInterface interface {
	PublishMail(ctx context.Context, job queue.MailJob) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
