package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/brandleads/internal/entity"
	"github.com/xavierca1/brandleads/internal/infra/queue"
)

func TestCreateLeadSuccess(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	producer := new(MockMailProducer)
	producer.On("PublishMail", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(repo, producer, "ops@brandleads.local")

	lead, err := uc.Execute(ctx, CreateLeadInput{
		BrandName:    "Acme Coffee",
		Phone:        "+1 (555) 010-2030",
		Email:        "owner@acme.coffee",
		Requirements: "full rebrand",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, lead.ID)
	assert.Equal(t, entity.RemarkPending, lead.Remark)
	assert.Equal(t, "Not specified", lead.Plan)

	stored, err := repo.FindByID(ctx, lead.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.RemarkPending, stored.Remark)

	// One alert to the operator, one acknowledgement to the submitter
	producer.AssertNumberOfCalls(t, "PublishMail", 2)
}

func TestCreateLeadAssignsNextID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	producer := new(MockMailProducer)
	producer.On("PublishMail", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(repo, producer, "ops@brandleads.local")

	first, err := uc.Execute(ctx, CreateLeadInput{BrandName: "First", Phone: "555010", Email: "a@b.co"})
	assert.NoError(t, err)
	second, err := uc.Execute(ctx, CreateLeadInput{BrandName: "Second", Phone: "555011", Email: "c@d.co"})
	assert.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)
}

func TestCreateLeadInvalidPhoneNotPersisted(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	producer := new(MockMailProducer)

	uc := NewCreateLeadUseCase(repo, producer, "ops@brandleads.local")

	_, err := uc.Execute(ctx, CreateLeadInput{BrandName: "Acme", Phone: "abc", Email: "a@b.co"})

	var validationErrs ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)

	leads, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, leads)
	producer.AssertNotCalled(t, "PublishMail", mock.Anything, mock.Anything)
}

func TestCreateLeadMailFailureDoesNotFailCapture(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	producer := new(MockMailProducer)
	producer.On("PublishMail", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := NewCreateLeadUseCase(repo, producer, "ops@brandleads.local")

	lead, err := uc.Execute(ctx, CreateLeadInput{BrandName: "Acme", Phone: "555010", Email: "a@b.co"})

	assert.NoError(t, err)
	assert.NotNil(t, lead)

	stored, err := repo.FindByID(ctx, lead.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Acme", stored.BrandName)
}

func TestCreateLeadMailJobTypes(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	producer := new(MockMailProducer)

	var jobs []queue.MailJob
	producer.On("PublishMail", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		jobs = append(jobs, args.Get(1).(queue.MailJob))
	}).Return(nil)

	uc := NewCreateLeadUseCase(repo, producer, "ops@brandleads.local")

	_, err := uc.Execute(ctx, CreateLeadInput{BrandName: "Acme", Phone: "555010", Email: "owner@acme.co"})
	assert.NoError(t, err)

	assert.Len(t, jobs, 2)
	assert.Equal(t, queue.MailLeadAlert, jobs[0].Type)
	assert.Equal(t, "ops@brandleads.local", jobs[0].To)
	assert.Equal(t, queue.MailLeadWelcome, jobs[1].Type)
	assert.Equal(t, "owner@acme.co", jobs[1].To)
}
