package services

import (
	"context"

	"github.com/nkovalev/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Ledger is the operation vocabulary shared by both account variants.
type Ledger interface {
	// Deposit adds a positive amount to the balance and records the
	// operation. It fails only on an invalid amount.
	Deposit(amount decimal.Decimal) error
	// Withdraw removes a positive amount from the balance under the
	// variant's bound policy. ok reports whether the withdrawal was
	// applied; a policy rejection is recorded but is not an error.
	Withdraw(amount decimal.Decimal) (ok bool, err error)
	// Balance returns the current balance.
	Balance() decimal.Decimal
	// History returns an order-preserving copy of all recorded operations.
	History() []domain.Operation
}

// LedgerSvc is the session-scoped account registry: it owns account
// instances and dispatches operations by account ID.
type LedgerSvc interface {
	// OpenAccount registers a standard account and returns its ID.
	OpenAccount(ctx context.Context, holder string, openingBalance decimal.Decimal) (string, error)
	// OpenCreditAccount registers a credit account and returns its ID.
	OpenCreditAccount(ctx context.Context, holder string, openingBalance, creditLimit decimal.Decimal) (string, error)
	// Deposit applies a deposit to the identified account.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error
	// Withdraw applies a withdrawal to the identified account.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (bool, error)
	// Balance returns the identified account's current balance.
	Balance(ctx context.Context, accountID string) (decimal.Decimal, error)
	// AvailableCredit returns balance + creditLimit for a credit
	// account; it fails for a standard account.
	AvailableCredit(ctx context.Context, accountID string) (decimal.Decimal, error)
	// History returns a copy of the identified account's operation log.
	History(ctx context.Context, accountID string) ([]domain.Operation, error)
}
