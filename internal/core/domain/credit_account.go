package domain

import (
	"fmt"

	"github.com/nkovalev/ledgerbook/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CreditAccount is the credit variant: the balance may go negative down
// to -creditLimit, and every operation records whether credit was drawn
// upon. It shares the standard account's holder, balance and history
// handling but replaces the lower bound and the mutating operations.
type CreditAccount struct {
	Account
	creditLimit decimal.Decimal
}

// NewCreditAccount creates a credit account. The credit limit must not
// be negative. The opening balance is checked against this variant's
// own bound, balance >= -creditLimit; a negative opening balance within
// the limit is valid here even though it would not be for NewAccount.
func NewCreditAccount(holder string, openingBalance, creditLimit decimal.Decimal) (*CreditAccount, error) {
	if creditLimit.IsNegative() {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidCreditLimit, creditLimit)
	}
	if openingBalance.LessThan(creditLimit.Neg()) {
		return nil, fmt.Errorf("%w: %s is below -%s", apperrors.ErrInvalidBalance, openingBalance, creditLimit)
	}
	trimmed, err := normalizeHolder(holder)
	if err != nil {
		return nil, err
	}
	return &CreditAccount{
		Account:     Account{holder: trimmed, balance: openingBalance},
		creditLimit: creditLimit,
	}, nil
}

// CreditLimit returns the maximum amount the balance may go negative by.
func (a *CreditAccount) CreditLimit() decimal.Decimal {
	return a.creditLimit
}

// AvailableCredit returns the unused borrowing capacity,
// balance + creditLimit.
func (a *CreditAccount) AvailableCredit() decimal.Decimal {
	return a.balance.Add(a.creditLimit)
}

// Deposit adds amount to the balance. A deposit never itself draws on
// credit, so the record always carries CreditNotUsed even when the
// resulting balance is still negative.
func (a *CreditAccount) Deposit(amount decimal.Decimal) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	a.record(Deposit, amount, StatusSuccess, CreditNotUsed)
	return nil
}

// Withdraw subtracts amount from the balance, allowing it to go
// negative down to -creditLimit. A withdrawal that would breach the
// floor is rejected and recorded with the unchanged balance; its credit
// flag reflects whether the account was already in credit beforehand.
// A successful withdrawal is flagged as using credit when the balance
// was negative before or is negative after the operation.
func (a *CreditAccount) Withdraw(amount decimal.Decimal) (bool, error) {
	if err := validateAmount(amount); err != nil {
		return false, err
	}
	newBalance := a.balance.Sub(amount)
	if newBalance.LessThan(a.creditLimit.Neg()) {
		a.record(Withdraw, amount, StatusFail, creditUsageOf(a.balance.IsNegative()))
		return false, nil
	}
	wasInCredit := a.balance.IsNegative()
	a.balance = newBalance
	a.record(Withdraw, amount, StatusSuccess, creditUsageOf(wasInCredit || a.balance.IsNegative()))
	return true, nil
}
