package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/xavierca1/brandleads/internal/entity"
)

type UpdateLeadUseCase struct {
	Repo          LeadRepositoryInterface
	Notifications NotificationSinkInterface
}

func NewUpdateLeadUseCase(repo LeadRepositoryInterface, notifications NotificationSinkInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{
		Repo:          repo,
		Notifications: notifications,
	}
}

// Execute applies a partial field update. Absent fields are untouched;
// present-and-empty fields are explicit clears where clearing is allowed.
// Every applied change lands in the diff log; a non-empty diff emits a
// profile_update notification.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id int, input UpdateLeadInput) (*entity.Lead, error) {
	var changes []string

	lead, err := uc.Repo.Update(ctx, id, func(l *entity.Lead) error {
		changes = changes[:0]

		if input.BrandName != nil {
			if *input.BrandName == "" {
				return ValidationErrors{{"brandName", "cannot be cleared"}}
			}
			applyChange(&changes, "Brand Name", &l.BrandName, *input.BrandName)
		}

		if input.Phone != nil {
			if *input.Phone == "" {
				return ValidationErrors{{"phone", "cannot be cleared"}}
			}
			if !isValidPhone(*input.Phone) {
				return ValidationErrors{{"phone", "must be a valid phone number"}}
			}
			applyChange(&changes, "Phone", &l.Phone, *input.Phone)
		}

		if input.Email != nil {
			if *input.Email == "" {
				return ValidationErrors{{"email", "cannot be cleared"}}
			}
			if !isValidEmail(*input.Email) {
				return ValidationErrors{{"email", "is invalid"}}
			}
			applyChange(&changes, "Email", &l.Email, *input.Email)
		}

		if input.Plan != nil {
			plan := *input.Plan
			if plan == "" {
				plan = "Not specified"
			}
			applyChange(&changes, "Plan", &l.Plan, plan)
		}

		if input.Requirements != nil {
			applyChange(&changes, "Requirements", &l.Requirements, *input.Requirements)
		}

		if input.Description != nil {
			applyChange(&changes, "Description", &l.Description, *input.Description)
		}

		if err := applyDateChange(&changes, "Plan Start Date", &l.PlanStartDate, input.PlanStartDate); err != nil {
			return err
		}
		if err := applyDateChange(&changes, "Plan End Date", &l.PlanEndDate, input.PlanEndDate); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		n := entity.NewNotification(entity.NotificationProfileUpdate, lead.ID, lead.BrandName, lead.Email, changes)
		if err := uc.Notifications.Create(ctx, n); err != nil {
			log.Printf("⚠️ Lead #%d updated, but notification failed: %v", lead.ID, err)
		}
	}

	return lead, nil
}

// SetRemark moves a lead through the review workflow. Any transition between
// the three values is legal; approvedBy is stored on approval and cleared
// on any move away from it.
func (uc *UpdateLeadUseCase) SetRemark(ctx context.Context, id int, remark, approvedBy string) (*entity.Lead, error) {
	if !entity.ValidRemark(remark) {
		return nil, ErrInvalidRemark
	}

	return uc.Repo.Update(ctx, id, func(l *entity.Lead) error {
		l.Remark = remark
		if remark != entity.RemarkApproved {
			l.ApprovedBy = ""
			return nil
		}
		if approvedBy != "" {
			l.ApprovedBy = approvedBy
		}
		return nil
	})
}

func applyChange(changes *[]string, label string, field *string, value string) {
	if *field == value {
		return
	}
	*changes = append(*changes, diffLine(label, *field, value))
	*field = value
}

func applyDateChange(changes *[]string, label string, field **string, value *string) error {
	if value == nil {
		return nil
	}

	if *value == "" { // explicit clear
		if *field != nil {
			*changes = append(*changes, diffLine(label, **field, ""))
			*field = nil
		}
		return nil
	}

	if !isValidDate(*value) {
		return ValidationErrors{{label, "must be a valid date (YYYY-MM-DD)"}}
	}

	old := ""
	if *field != nil {
		old = **field
	}
	if old == *value {
		return nil
	}
	*changes = append(*changes, diffLine(label, old, *value))
	v := *value
	*field = &v
	return nil
}

func diffLine(label, old, new string) string {
	if old == "" {
		old = "(empty)"
	}
	if new == "" {
		new = "(empty)"
	}
	return fmt.Sprintf("%s: %s → %s", label, old, new)
}
