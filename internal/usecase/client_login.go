package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/xavierca1/brandleads/internal/entity"
)

type ClientLoginUseCase struct {
	Repo   LeadRepositoryInterface
	Hasher PasswordHasher
}

func NewClientLoginUseCase(repo LeadRepositoryInterface, hasher PasswordHasher) *ClientLoginUseCase {
	return &ClientLoginUseCase{
		Repo:   repo,
		Hasher: hasher,
	}
}

// Execute verifies issued client-portal credentials and returns the lead
// profile. A missing username and a wrong password are indistinguishable to
// the caller.
func (uc *ClientLoginUseCase) Execute(ctx context.Context, input ClientLoginInput) (*entity.Lead, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	lead, err := uc.Repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if lead.PasswordHash == "" || !uc.Hasher.Verify(lead.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	return lead, nil
}
