package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/brandleads/internal/entity"
)

// MaxScreenshotChars caps the encoded size of an inline payment screenshot
// (data URI). Roughly a 220 KB image once base64 overhead is counted.
const MaxScreenshotChars = 300000

type RecordPaymentUseCase struct {
	Repo LeadRepositoryInterface
}

func NewRecordPaymentUseCase(repo LeadRepositoryInterface) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{Repo: repo}
}

// Execute appends one entry to the lead's payment ledger and recomputes the
// derived totals. totalAmount may ride along with the payment (the admin form
// submits both together); nil leaves the stored total untouched.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, leadID int, input RecordPaymentInput, totalAmount *float64) (*entity.Lead, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if totalAmount != nil && *totalAmount < 0 {
		return nil, ErrInvalidAmount
	}
	if len(input.ScreenshotData) > MaxScreenshotChars {
		return nil, ErrAttachmentTooLarge
	}

	return uc.Repo.Update(ctx, leadID, func(l *entity.Lead) error {
		txID := strings.TrimSpace(input.TransactionID)
		if txID == "" {
			txID = newTransactionID()
		}
		// Regenerate on collision within this ledger.
		for l.FindPayment(txID) != nil {
			txID = newTransactionID()
		}

		date := input.Date
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		l.Payments = append(l.Payments, entity.Payment{
			TransactionID:  txID,
			Amount:         input.Amount,
			Method:         input.Method,
			Date:           date,
			Note:           input.Note,
			ScreenshotData: input.ScreenshotData,
			RecordedAt:     time.Now(),
		})

		if totalAmount != nil {
			total := *totalAmount
			l.TotalAmount = &total
		}

		// The repository recomputes paidAmount/remainingAmount on save.
		return nil
	})
}

// SetTotalAmount stores or clears the expected total for a lead. nil clears
// it, which also clears remainingAmount.
func (uc *RecordPaymentUseCase) SetTotalAmount(ctx context.Context, leadID int, amount *float64) (*entity.Lead, error) {
	if amount != nil && *amount < 0 {
		return nil, ErrInvalidAmount
	}

	return uc.Repo.Update(ctx, leadID, func(l *entity.Lead) error {
		if amount == nil {
			l.TotalAmount = nil
			return nil
		}
		total := *amount
		l.TotalAmount = &total
		return nil
	})
}

func newTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("TXN%d%s", time.Now().UnixMilli(), suffix)
}
