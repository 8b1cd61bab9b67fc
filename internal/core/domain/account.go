package domain

import (
	"fmt"
	"strings"

	"github.com/nkovalev/ledgerbook/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Account is the standard ledger account: the balance never goes
// negative, and every attempted operation — including policy-rejected
// ones — is appended to an immutable history.
//
// Accounts assume a single logical owner; callers in a concurrent
// setting must serialize the read-modify-append sequence themselves.
type Account struct {
	holder  string
	balance decimal.Decimal
	history []Operation
}

// validateAmount is the single amount check shared by both account
// variants: the amount must be strictly positive. A failed check is a
// caller error and never produces a history record.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, amount)
	}
	return nil
}

// normalizeHolder validates and trims the holder name, shared by both
// constructors.
func normalizeHolder(holder string) (string, error) {
	trimmed := strings.TrimSpace(holder)
	if trimmed == "" {
		return "", apperrors.ErrInvalidHolder
	}
	return trimmed, nil
}

// NewAccount creates a standard account. The opening balance must not
// be negative; pass decimal.Zero for an empty account.
func NewAccount(holder string, openingBalance decimal.Decimal) (*Account, error) {
	trimmed, err := normalizeHolder(holder)
	if err != nil {
		return nil, err
	}
	if openingBalance.IsNegative() {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidBalance, openingBalance)
	}
	return &Account{holder: trimmed, balance: openingBalance}, nil
}

// record appends one immutable operation snapshot of the current balance.
func (a *Account) record(opType OperationType, amount decimal.Decimal, status OperationStatus, credit CreditUsage) {
	a.history = append(a.history, newOperation(opType, amount, a.balance, status, credit))
}

// Deposit adds amount to the balance. It fails only on an invalid
// amount, in which case nothing is recorded.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	a.record(Deposit, amount, StatusSuccess, CreditUnset)
	return nil
}

// Withdraw subtracts amount from the balance. A withdrawal exceeding
// the balance is a policy rejection, not an error: the balance stays
// unchanged, a fail record is appended, and ok is false.
func (a *Account) Withdraw(amount decimal.Decimal) (bool, error) {
	if err := validateAmount(amount); err != nil {
		return false, err
	}
	if amount.GreaterThan(a.balance) {
		a.record(Withdraw, amount, StatusFail, CreditUnset)
		return false, nil
	}
	a.balance = a.balance.Sub(amount)
	a.record(Withdraw, amount, StatusSuccess, CreditUnset)
	return true, nil
}

// Holder returns the trimmed holder name.
func (a *Account) Holder() string {
	return a.holder
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// History returns an order-preserving copy of all recorded operations.
// Mutating the returned slice does not affect the account.
func (a *Account) History() []Operation {
	out := make([]Operation, len(a.history))
	copy(out, a.history)
	return out
}
