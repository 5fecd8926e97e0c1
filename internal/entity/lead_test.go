package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeTotalsSumsLedger(t *testing.T) {
	total := 200.0
	lead := &Lead{
		TotalAmount: &total,
		Payments: []Payment{
			{TransactionID: "a", Amount: 100},
			{TransactionID: "b", Amount: 50},
		},
	}

	lead.RecomputeTotals()

	assert.Equal(t, 150.0, lead.PaidAmount)
	assert.NotNil(t, lead.RemainingAmount)
	assert.Equal(t, 50.0, *lead.RemainingAmount)
}

func TestRecomputeTotalsNeverNegative(t *testing.T) {
	total := 200.0
	lead := &Lead{
		TotalAmount: &total,
		Payments: []Payment{
			{TransactionID: "a", Amount: 100},
			{TransactionID: "b", Amount: 50},
			{TransactionID: "c", Amount: 100},
		},
	}

	lead.RecomputeTotals()

	assert.Equal(t, 250.0, lead.PaidAmount)
	assert.Equal(t, 0.0, *lead.RemainingAmount)
}

func TestRecomputeTotalsWithoutTotalAmount(t *testing.T) {
	lead := &Lead{
		Payments: []Payment{{TransactionID: "a", Amount: 75}},
	}

	lead.RecomputeTotals()

	assert.Equal(t, 75.0, lead.PaidAmount)
	assert.Nil(t, lead.RemainingAmount)
}

func TestNewLeadDefaults(t *testing.T) {
	lead, err := NewLead("Acme Coffee", "+1 (555) 010-2030", "owner@acme.coffee", "", "logo refresh")

	assert.NoError(t, err)
	assert.Equal(t, RemarkPending, lead.Remark)
	assert.Equal(t, "Not specified", lead.Plan)
	assert.NotNil(t, lead.Payments)
	assert.NotNil(t, lead.DescriptionUpdates)
}

func TestNewLeadRequiresContactFields(t *testing.T) {
	_, err := NewLead("", "555", "a@b.co", "", "")
	assert.Error(t, err)

	_, err = NewLead("Acme", "", "a@b.co", "", "")
	assert.Error(t, err)

	_, err = NewLead("Acme", "555123", "", "", "")
	assert.Error(t, err)
}

func TestValidRemark(t *testing.T) {
	assert.True(t, ValidRemark(RemarkPending))
	assert.True(t, ValidRemark(RemarkApproved))
	assert.True(t, ValidRemark(RemarkRejected))
	assert.False(t, ValidRemark("approved"))
	assert.False(t, ValidRemark("Done"))
}
