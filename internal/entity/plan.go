package entity

import (
	"errors"
	"time"
)

var ErrPlanNotFound = errors.New("plan not found")

// Plan is one pricing-tier catalog entry shown on the marketing site.
type Plan struct {
	ID             int       `json:"id"`
	Category       string    `json:"category"`
	Tier           string    `json:"tier"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	OriginalRate   float64   `json:"originalRate,omitempty"`
	Discount       string    `json:"discount,omitempty"`
	Description    string    `json:"description"`
	Features       []string  `json:"features"`
	DeliveryTime   string    `json:"deliveryTime,omitempty"`
	TargetAudience string    `json:"targetAudience,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (p *Plan) Validate() error {
	if p.Name == "" {
		return errors.New("plan name is required")
	}
	if p.Price < 0 {
		return errors.New("plan price must not be negative")
	}
	return nil
}
