package database

import (
	"context"
	"strings"
	"time"

	"github.com/xavierca1/brandleads/internal/entity"
)

const leadsCollection = "leads"

// leadDocument is the on-disk shape: the collection array plus a persisted
// monotonic counter. Deleting a lead never frees its id.
type leadDocument struct {
	Leads  []entity.Lead `json:"leads"`
	LastID int           `json:"lastId"`
}

type LeadRepository struct {
	Store *Store
}

func NewLeadRepository(store *Store) *LeadRepository {
	return &LeadRepository{Store: store}
}

func (r *LeadRepository) load() (leadDocument, error) {
	var doc leadDocument
	if err := r.Store.Load(leadsCollection, &doc); err != nil {
		return doc, err
	}
	if doc.Leads == nil {
		doc.Leads = []entity.Lead{}
	}

	// Files written before the counter existed carry lastId=0; seed it from
	// the highest stored id so ids stay monotonic.
	if doc.LastID == 0 {
		for _, l := range doc.Leads {
			if l.ID > doc.LastID {
				doc.LastID = l.ID
			}
		}
	}

	return doc, nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return r.Store.WithLock(leadsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}

		doc.LastID++
		lead.ID = doc.LastID
		lead.RecomputeTotals()
		doc.Leads = append(doc.Leads, *lead)

		return r.Store.Save(leadsCollection, doc)
	})
}

func (r *LeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	var found *entity.Lead

	err := r.Store.WithLock(leadsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}
		for i := range doc.Leads {
			if doc.Leads[i].ID == id {
				lead := doc.Leads[i]
				found = &lead
				return nil
			}
		}
		return entity.ErrLeadNotFound
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (r *LeadRepository) FindByUsername(ctx context.Context, username string) (*entity.Lead, error) {
	var found *entity.Lead

	err := r.Store.WithLock(leadsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}
		for i := range doc.Leads {
			if doc.Leads[i].Username != "" && strings.EqualFold(doc.Leads[i].Username, username) {
				lead := doc.Leads[i]
				found = &lead
				return nil
			}
		}
		return entity.ErrLeadNotFound
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	var leads []entity.Lead

	err := r.Store.WithLock(leadsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}
		leads = doc.Leads
		return nil
	})
	if err != nil {
		return nil, err
	}

	return leads, nil
}

// Update runs mutate against the stored lead under the collection lock. The
// ledger totals are recomputed on every mutation, so paidAmount always equals
// the sum of the entries the moment the file hits disk. A mutate error aborts
// without saving.
func (r *LeadRepository) Update(ctx context.Context, id int, mutate func(*entity.Lead) error) (*entity.Lead, error) {
	var updated *entity.Lead

	err := r.Store.WithLock(leadsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}

		for i := range doc.Leads {
			if doc.Leads[i].ID != id {
				continue
			}

			if err := mutate(&doc.Leads[i]); err != nil {
				return err
			}

			doc.Leads[i].RecomputeTotals()
			doc.Leads[i].UpdatedAt = time.Now()

			if err := r.Store.Save(leadsCollection, doc); err != nil {
				return err
			}

			lead := doc.Leads[i]
			updated = &lead
			return nil
		}

		return entity.ErrLeadNotFound
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the lead. Related notifications are left alone.
func (r *LeadRepository) Delete(ctx context.Context, id int) error {
	return r.Store.WithLock(leadsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}

		filtered := doc.Leads[:0:0]
		for _, l := range doc.Leads {
			if l.ID != id {
				filtered = append(filtered, l)
			}
		}

		if len(filtered) == len(doc.Leads) {
			return entity.ErrLeadNotFound
		}

		doc.Leads = filtered
		return r.Store.Save(leadsCollection, doc)
	})
}

// UsernameTaken reports whether another lead already holds the username,
// case-insensitively.
func (r *LeadRepository) UsernameTaken(ctx context.Context, username string, excludeID int) (bool, error) {
	taken := false

	err := r.Store.WithLock(leadsCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}
		for i := range doc.Leads {
			l := &doc.Leads[i]
			if l.ID == excludeID || l.Username == "" {
				continue
			}
			if strings.EqualFold(l.Username, username) {
				taken = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return taken, nil
}
