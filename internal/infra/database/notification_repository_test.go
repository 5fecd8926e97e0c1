package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/brandleads/internal/entity"
)

func newNotificationRepo(t *testing.T) *NotificationRepository {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return NewNotificationRepository(store)
}

func TestNotificationLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newNotificationRepo(t)

	n := entity.NewNotification(entity.NotificationProfileUpdate, 1, "Acme", "a@b.co",
		[]string{"Phone: 555 → 556"})
	assert.NoError(t, repo.Create(ctx, n))
	assert.False(t, n.Read)

	list, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, n.ID, list[0].ID)

	assert.NoError(t, repo.MarkRead(ctx, n.ID))
	list, _ = repo.List(ctx)
	assert.True(t, list[0].Read)

	assert.NoError(t, repo.Delete(ctx, n.ID))
	list, _ = repo.List(ctx)
	assert.Empty(t, list)
}

func TestNotificationMarkAllRead(t *testing.T) {
	ctx := context.Background()
	repo := newNotificationRepo(t)

	a := entity.NewNotification(entity.NotificationProfileUpdate, 1, "A", "a@b.co", nil)
	b := entity.NewNotification(entity.NotificationDescriptionUpdate, 2, "B", "b@c.co", nil)
	assert.NoError(t, repo.Create(ctx, a))
	assert.NoError(t, repo.Create(ctx, b))

	assert.NoError(t, repo.MarkAllRead(ctx))

	list, err := repo.List(ctx)
	assert.NoError(t, err)
	for _, n := range list {
		assert.True(t, n.Read)
	}
}

func TestNotificationMissingID(t *testing.T) {
	ctx := context.Background()
	repo := newNotificationRepo(t)

	assert.ErrorIs(t, repo.MarkRead(ctx, "nope"), entity.ErrNotificationNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "nope"), entity.ErrNotificationNotFound)
}
