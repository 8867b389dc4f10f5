package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fintracker/internal/core/domain"
	"fintracker/internal/core/services"
)

func TestSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(100)

	assert.True(t, services.SignedAmount(domain.Income, amount).Equal(decimal.NewFromInt(100)))
	assert.True(t, services.SignedAmount(domain.Expense, amount).Equal(decimal.NewFromInt(-100)))
	assert.True(t, services.SignedAmount(domain.Transfer, amount).Equal(decimal.Zero))
	assert.True(t, services.SignedAmount(domain.TransactionType("UNKNOWN"), amount).Equal(decimal.Zero))
}

func TestTransactionEffectNil(t *testing.T) {
	assert.Nil(t, services.TransactionEffect(nil))
}

func TestRecomputeCreate(t *testing.T) {
	txn := &domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(250),
		Type:      domain.Expense,
	}

	deltas := services.Recompute(nil, services.TransactionEffect(txn))

	assert.Len(t, deltas, 1)
	assert.True(t, deltas["acc-1"].Equal(decimal.NewFromInt(-250)))
}

func TestRecomputeDelete(t *testing.T) {
	txn := &domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(250),
		Type:      domain.Expense,
	}

	deltas := services.Recompute(services.TransactionEffect(txn), nil)

	// Deleting an expense gives the money back.
	assert.Len(t, deltas, 1)
	assert.True(t, deltas["acc-1"].Equal(decimal.NewFromInt(250)))
}

func TestRecomputeUpdateSameAccount(t *testing.T) {
	old := &domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(100),
		Type:      domain.Expense,
	}
	updated := &domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(150),
		Type:      domain.Expense,
	}

	deltas := services.Recompute(services.TransactionEffect(old), services.TransactionEffect(updated))

	// +100 reversal, -150 new effect.
	assert.Len(t, deltas, 1)
	assert.True(t, deltas["acc-1"].Equal(decimal.NewFromInt(-50)))
}

func TestRecomputeUpdateTypeFlip(t *testing.T) {
	old := &domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(100),
		Type:      domain.Expense,
	}
	updated := &domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(100),
		Type:      domain.Income,
	}

	deltas := services.Recompute(services.TransactionEffect(old), services.TransactionEffect(updated))

	// +100 reversal of the expense, +100 for the income.
	assert.True(t, deltas["acc-1"].Equal(decimal.NewFromInt(200)))
}

func TestRecomputeAccountMove(t *testing.T) {
	old := &domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(100),
		Type:      domain.Income,
	}
	updated := &domain.Transaction{
		AccountID: "acc-2",
		Amount:    decimal.NewFromInt(100),
		Type:      domain.Income,
	}

	deltas := services.Recompute(services.TransactionEffect(old), services.TransactionEffect(updated))

	assert.Len(t, deltas, 2)
	assert.True(t, deltas["acc-1"].Equal(decimal.NewFromInt(-100)))
	assert.True(t, deltas["acc-2"].Equal(decimal.NewFromInt(100)))
}

func TestRecomputeTransferHasNoEffect(t *testing.T) {
	txn := &domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(500),
		Type:      domain.Transfer,
	}

	deltas := services.Recompute(nil, services.TransactionEffect(txn))

	assert.Len(t, deltas, 1)
	assert.True(t, deltas["acc-1"].IsZero())
}

func TestRecomputeTransferToExpense(t *testing.T) {
	old := &domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(75),
		Type:      domain.Transfer,
	}
	updated := &domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(75),
		Type:      domain.Expense,
	}

	deltas := services.Recompute(services.TransactionEffect(old), services.TransactionEffect(updated))

	// Transfer reversal is zero; only the new expense counts.
	assert.True(t, deltas["acc-1"].Equal(decimal.NewFromInt(-75)))
}
