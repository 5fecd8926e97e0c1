package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/brandleads/internal/entity"
	"github.com/xavierca1/brandleads/internal/infra/database"
	"github.com/xavierca1/brandleads/internal/infra/queue"
)

// MockMailProducer
type MockMailProducer struct {
	mock.Mock
}

func (m *MockMailProducer) PublishMail(ctx context.Context, job queue.MailJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

// MockNotificationSink
type MockNotificationSink struct {
	mock.Mock
}

func (m *MockNotificationSink) Create(ctx context.Context, n *entity.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// newTestRepo backs the use cases with a real JSON store in a temp dir, so
// the tests cover the whole load-mutate-save cycle.
func newTestRepo(t *testing.T) *database.LeadRepository {
	t.Helper()
	store, err := database.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return database.NewLeadRepository(store)
}

func seedLead(t *testing.T, repo *database.LeadRepository, brand string) *entity.Lead {
	t.Helper()
	lead, err := entity.NewLead(brand, "+1 (555) 010-2030", "owner@acme.coffee", "Starter", "")
	if err != nil {
		t.Fatalf("failed to build lead: %v", err)
	}
	if err := repo.Create(context.Background(), lead); err != nil {
		t.Fatalf("failed to seed lead: %v", err)
	}
	return lead
}
