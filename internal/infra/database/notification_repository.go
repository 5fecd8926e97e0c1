package database

import (
	"context"

	"github.com/xavierca1/brandleads/internal/entity"
)

const notificationsCollection = "notifications"

type notificationDocument struct {
	Notifications []entity.Notification `json:"notifications"`
}

// NotificationRepository owns the notifications collection. Ids are
// time-based, so no counter is persisted here.
type NotificationRepository struct {
	Store *Store
}

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{Store: store}
}

func (r *NotificationRepository) load() (notificationDocument, error) {
	var doc notificationDocument
	if err := r.Store.Load(notificationsCollection, &doc); err != nil {
		return doc, err
	}
	if doc.Notifications == nil {
		doc.Notifications = []entity.Notification{}
	}
	return doc, nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	return r.Store.WithLock(notificationsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}
		doc.Notifications = append(doc.Notifications, *n)
		return r.Store.Save(notificationsCollection, doc)
	})
}

func (r *NotificationRepository) List(ctx context.Context) ([]entity.Notification, error) {
	var notifications []entity.Notification

	err := r.Store.WithLock(notificationsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}
		notifications = doc.Notifications
		return nil
	})
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	return r.Store.WithLock(notificationsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}

		for i := range doc.Notifications {
			if doc.Notifications[i].ID == id {
				doc.Notifications[i].Read = true
				return r.Store.Save(notificationsCollection, doc)
			}
		}

		return entity.ErrNotificationNotFound
	})
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	return r.Store.WithLock(notificationsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}

		for i := range doc.Notifications {
			doc.Notifications[i].Read = true
		}

		return r.Store.Save(notificationsCollection, doc)
	})
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	return r.Store.WithLock(notificationsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}

		filtered := doc.Notifications[:0:0]
		for _, n := range doc.Notifications {
			if n.ID != id {
				filtered = append(filtered, n)
			}
		}

		// Absence is detected by comparing lengths before and after the filter.
		if len(filtered) == len(doc.Notifications) {
			return entity.ErrNotificationNotFound
		}

		doc.Notifications = filtered
		return r.Store.Save(notificationsCollection, doc)
	})
}
