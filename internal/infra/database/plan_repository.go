package database

import (
	"context"
	"time"

	"github.com/xavierca1/brandleads/internal/entity"
)

const plansCollection = "plans"

type planDocument struct {
	Plans  []entity.Plan `json:"plans"`
	LastID int           `json:"lastId"`
}

type PlanRepository struct {
	Store *Store
}

func NewPlanRepository(store *Store) *PlanRepository {
	return &PlanRepository{Store: store}
}

func (r *PlanRepository) load() (planDocument, error) {
	var doc planDocument
	if err := r.Store.Load(plansCollection, &doc); err != nil {
		return doc, err
	}
	if doc.Plans == nil {
		doc.Plans = []entity.Plan{}
	}
	if doc.LastID == 0 {
		for _, p := range doc.Plans {
			if p.ID > doc.LastID {
				doc.LastID = p.ID
			}
		}
	}
	return doc, nil
}

func (r *PlanRepository) Create(ctx context.Context, plan *entity.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	return r.Store.WithLock(plansCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}

		doc.LastID++
		plan.ID = doc.LastID
		plan.CreatedAt = time.Now()
		if plan.Features == nil {
			plan.Features = []string{}
		}
		doc.Plans = append(doc.Plans, *plan)

		return r.Store.Save(plansCollection, doc)
	})
}

func (r *PlanRepository) FindByID(ctx context.Context, id int) (*entity.Plan, error) {
	var found *entity.Plan

	err := r.Store.WithLock(plansCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}
		for i := range doc.Plans {
			if doc.Plans[i].ID == id {
				plan := doc.Plans[i]
				found = &plan
				return nil
			}
		}
		return entity.ErrPlanNotFound
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (r *PlanRepository) List(ctx context.Context) ([]entity.Plan, error) {
	var plans []entity.Plan

	err := r.Store.WithLock(plansCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}
		plans = doc.Plans
		return nil
	})
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *PlanRepository) Update(ctx context.Context, id int, plan *entity.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	return r.Store.WithLock(plansCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}

		for i := range doc.Plans {
			if doc.Plans[i].ID != id {
				continue
			}
			plan.ID = id
			plan.CreatedAt = doc.Plans[i].CreatedAt
			if plan.Features == nil {
				plan.Features = []string{}
			}
			doc.Plans[i] = *plan
			return r.Store.Save(plansCollection, doc)
		}

		return entity.ErrPlanNotFound
	})
}

func (r *PlanRepository) Delete(ctx context.Context, id int) error {
	return r.Store.WithLock(plansCollection, func() error {
		doc, err := r.load()
		if err != nil {
			return err
		}

		filtered := doc.Plans[:0:0]
		for _, p := range doc.Plans {
			if p.ID != id {
				filtered = append(filtered, p)
			}
		}

		if len(filtered) == len(doc.Plans) {
			return entity.ErrPlanNotFound
		}

		doc.Plans = filtered
		return r.Store.Save(plansCollection, doc)
	})
}
