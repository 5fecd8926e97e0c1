package entity

import (
	"errors"
	"time"
)

// Remark values for the lead review workflow.
const (
	RemarkPending  = "Pending"
	RemarkApproved = "Approved"
	RemarkRejected = "Rejected"
)

var ErrLeadNotFound = errors.New("lead not found")

var ErrDescriptionRequestNotFound = errors.New("description update request not found")

func ValidRemark(r string) bool {
	return r == RemarkPending || r == RemarkApproved || r == RemarkRejected
}

type Lead struct {
	ID        int    `json:"id"`
	BrandName string `json:"brandName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`

	Remark        string  `json:"remark"` // Pending, Approved, Rejected
	ApprovedBy    string  `json:"approvedBy,omitempty"`
	Plan          string  `json:"plan"`
	Requirements  string  `json:"requirements,omitempty"`
	Description   string  `json:"description,omitempty"`
	PlanStartDate *string `json:"planStartDate"`
	PlanEndDate   *string `json:"planEndDate"`

	// Set only by credential issuance. The hash is bcrypt; the plaintext
	// password is never persisted.
	Username     string `json:"username,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`

	TotalAmount     *float64  `json:"totalAmount,omitempty"`
	PaidAmount      float64   `json:"paidAmount"`
	RemainingAmount *float64  `json:"remainingAmount"`
	Payments        []Payment `json:"payments"`

	DescriptionUpdates []DescriptionUpdateRequest `json:"descriptionUpdates"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Payment struct {
	TransactionID  string    `json:"transactionId"`
	Amount         float64   `json:"amount"`
	Method         string    `json:"method,omitempty"`
	Date           string    `json:"date,omitempty"`
	Note           string    `json:"note,omitempty"`
	ScreenshotData string    `json:"screenshotData,omitempty"` // inline data URI
	RecordedAt     time.Time `json:"recordedAt"`
}

type DescriptionUpdateRequest struct {
	ID                  string     `json:"id"`
	RequestedAt         time.Time  `json:"requestedAt"`
	RequestedText       string     `json:"requestedText"`
	PreviousDescription string     `json:"previousDescription"`
	Status              string     `json:"status"` // Pending until resolved
	ResolvedAt          *time.Time `json:"resolvedAt,omitempty"`
}

// Factory
func NewLead(brandName, phone, email, plan, requirements string) (*Lead, error) {
	if plan == "" {
		plan = "Not specified"
	}

	lead := &Lead{
		BrandName:          brandName,
		Phone:              phone,
		Email:              email,
		Plan:               plan,
		Requirements:       requirements,
		Remark:             RemarkPending,
		Payments:           []Payment{},
		DescriptionUpdates: []DescriptionUpdateRequest{},
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.BrandName == "" {
		return errors.New("brand name is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

// RecomputeTotals rebuilds the derived ledger fields from the payment
// entries. paidAmount is always the exact sum of the ledger; remainingAmount
// is nil when no total is set and never negative.
func (l *Lead) RecomputeTotals() {
	var paid float64
	for _, p := range l.Payments {
		paid += p.Amount
	}
	l.PaidAmount = paid

	if l.TotalAmount == nil {
		l.RemainingAmount = nil
		return
	}

	remaining := *l.TotalAmount - paid
	if remaining < 0 {
		remaining = 0
	}
	l.RemainingAmount = &remaining
}

// FindPayment returns the ledger entry with the given transaction id, or nil.
func (l *Lead) FindPayment(transactionID string) *Payment {
	for i := range l.Payments {
		if l.Payments[i].TransactionID == transactionID {
			return &l.Payments[i]
		}
	}
	return nil
}

// FindDescriptionRequest returns the request with the given id, or nil.
func (l *Lead) FindDescriptionRequest(id string) *DescriptionUpdateRequest {
	for i := range l.DescriptionUpdates {
		if l.DescriptionUpdates[i].ID == id {
			return &l.DescriptionUpdates[i]
		}
	}
	return nil
}
