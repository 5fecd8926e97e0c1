package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/brandleads/internal/entity"
)

func newLeadRepo(t *testing.T) (*LeadRepository, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return NewLeadRepository(store), dir
}

func makeLead(t *testing.T, brand string) *entity.Lead {
	t.Helper()
	lead, err := entity.NewLead(brand, "+1 (555) 010-2030", "owner@acme.coffee", "Starter", "logo refresh")
	if err != nil {
		t.Fatalf("failed to build lead: %v", err)
	}
	return lead
}

func TestLeadRepositoryCreateFindRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newLeadRepo(t)

	lead := makeLead(t, "Acme")
	lead.Payments = []entity.Payment{{TransactionID: "TXN1", Amount: 100, Method: "UPI"}}
	lead.DescriptionUpdates = []entity.DescriptionUpdateRequest{{
		ID:            "REQ1",
		RequestedText: "new description",
		Status:        entity.RemarkPending,
	}}

	assert.NoError(t, repo.Create(ctx, lead))
	assert.Equal(t, 1, lead.ID)

	got, err := repo.FindByID(ctx, lead.ID)
	assert.NoError(t, err)
	assert.Equal(t, lead.BrandName, got.BrandName)
	assert.Equal(t, lead.Phone, got.Phone)
	assert.Equal(t, lead.Email, got.Email)
	assert.Equal(t, lead.Remark, got.Remark)
	assert.Equal(t, lead.Payments, got.Payments)
	assert.Equal(t, lead.DescriptionUpdates, got.DescriptionUpdates)
	assert.Equal(t, 100.0, got.PaidAmount)
}

func TestLeadRepositoryIDsStayMonotonicAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newLeadRepo(t)

	first := makeLead(t, "First")
	second := makeLead(t, "Second")
	assert.NoError(t, repo.Create(ctx, first))
	assert.NoError(t, repo.Create(ctx, second))

	// Deleting the latest lead must not free its id
	assert.NoError(t, repo.Delete(ctx, second.ID))

	third := makeLead(t, "Third")
	assert.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, second.ID+1, third.ID)
}

func TestLeadRepositorySeedsCounterFromLegacyFile(t *testing.T) {
	ctx := context.Background()
	repo, dir := newLeadRepo(t)

	// A file written before the counter existed: leads but no lastId
	legacy := `{"leads":[{"id":7,"brandName":"Legacy","phone":"555010","email":"a@b.co","remark":"Pending","plan":"Not specified","planStartDate":null,"planEndDate":null,"paidAmount":0,"remainingAmount":null,"payments":[],"descriptionUpdates":[],"createdAt":"2025-01-01T00:00:00Z","updatedAt":"2025-01-01T00:00:00Z"}]}`
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "leads.json"), []byte(legacy), 0o644))

	lead := makeLead(t, "New")
	assert.NoError(t, repo.Create(ctx, lead))
	assert.Equal(t, 8, lead.ID)
}

func TestLeadRepositoryDeleteMissingLeavesCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	repo, dir := newLeadRepo(t)

	lead := makeLead(t, "Acme")
	assert.NoError(t, repo.Create(ctx, lead))

	before, err := os.ReadFile(filepath.Join(dir, "leads.json"))
	assert.NoError(t, err)

	err = repo.Delete(ctx, 999)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)

	after, err := os.ReadFile(filepath.Join(dir, "leads.json"))
	assert.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLeadRepositoryUpdateAbortsWithoutSaving(t *testing.T) {
	ctx := context.Background()
	repo, _ := newLeadRepo(t)

	lead := makeLead(t, "Acme")
	assert.NoError(t, repo.Create(ctx, lead))

	_, err := repo.Update(ctx, lead.ID, func(l *entity.Lead) error {
		l.BrandName = "Mutated"
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	got, err := repo.FindByID(ctx, lead.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Acme", got.BrandName)
}

func TestLeadRepositoryUpdateRecomputesTotals(t *testing.T) {
	ctx := context.Background()
	repo, _ := newLeadRepo(t)

	lead := makeLead(t, "Acme")
	assert.NoError(t, repo.Create(ctx, lead))

	total := 300.0
	updated, err := repo.Update(ctx, lead.ID, func(l *entity.Lead) error {
		l.TotalAmount = &total
		l.Payments = append(l.Payments, entity.Payment{TransactionID: "TXN1", Amount: 120})
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 120.0, updated.PaidAmount)
	assert.Equal(t, 180.0, *updated.RemainingAmount)
}

func TestLeadRepositoryUsernameTaken(t *testing.T) {
	ctx := context.Background()
	repo, _ := newLeadRepo(t)

	first := makeLead(t, "First")
	second := makeLead(t, "Second")
	assert.NoError(t, repo.Create(ctx, first))
	assert.NoError(t, repo.Create(ctx, second))

	_, err := repo.Update(ctx, first.ID, func(l *entity.Lead) error {
		l.Username = "acme"
		return nil
	})
	assert.NoError(t, err)

	taken, err := repo.UsernameTaken(ctx, "ACME", second.ID)
	assert.NoError(t, err)
	assert.True(t, taken)

	// The holder itself is excluded
	taken, err = repo.UsernameTaken(ctx, "acme", first.ID)
	assert.NoError(t, err)
	assert.False(t, taken)

	got, err := repo.FindByUsername(ctx, "Acme")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestLeadRepositoryFindMissing(t *testing.T) {
	ctx := context.Background()
	repo, _ := newLeadRepo(t)

	_, err := repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}
