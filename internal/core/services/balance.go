package services

import (
	"fintracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// SignedAmount returns the delta a transaction applies to its account's
// balance: +amount for INCOME, -amount for EXPENSE. Any other type, including
// TRANSFER, has no balance effect.
func SignedAmount(txType domain.TransactionType, amount decimal.Decimal) decimal.Decimal {
	switch txType {
	case domain.Income:
		return amount
	case domain.Expense:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}

// Effect describes the impact one transaction has on one account.
type Effect struct {
	AccountID string
	Amount    decimal.Decimal
	Type      domain.TransactionType
}

// TransactionEffect captures a transaction's balance effect. Returns nil for a
// nil transaction so callers can express "no prior state" on create.
func TransactionEffect(t *domain.Transaction) *Effect {
	if t == nil {
		return nil
	}
	return &Effect{AccountID: t.AccountID, Amount: t.Amount, Type: t.Type}
}

// Recompute produces the per-account balance deltas for replacing oldEff with
// newEff: the old effect is reversed by applying the negated old amount with
// the old type, then the new effect is applied with the new amount and type.
// These are two independent single-directional corrections, not one net diff:
// when the account differs between old and new, the old account loses the old
// effect and the new account gains the new effect, each on its own.
//
// A nil oldEff models a create, a nil newEff a delete. The returned map may
// contain zero deltas (e.g. TRANSFER on both sides); the repository skips
// those when applying.
func Recompute(oldEff, newEff *Effect) map[string]decimal.Decimal {
	deltas := make(map[string]decimal.Decimal)
	if oldEff != nil {
		reversal := SignedAmount(oldEff.Type, oldEff.Amount.Neg())
		deltas[oldEff.AccountID] = deltas[oldEff.AccountID].Add(reversal)
	}
	if newEff != nil {
		deltas[newEff.AccountID] = deltas[newEff.AccountID].Add(SignedAmount(newEff.Type, newEff.Amount))
	}
	return deltas
}
