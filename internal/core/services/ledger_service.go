package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/nkovalev/ledgerbook/internal/apperrors"
	"github.com/nkovalev/ledgerbook/internal/core/domain"
	portssvc "github.com/nkovalev/ledgerbook/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// Both account variants satisfy the Ledger port.
var (
	_ portssvc.Ledger = (*domain.Account)(nil)
	_ portssvc.Ledger = (*domain.CreditAccount)(nil)
)

// ledgerServiceImpl keeps all accounts opened during the session in an
// ID-indexed map. The accounts themselves assume a single owner, so the
// service serializes every read-modify-append sequence behind one mutex.
type ledgerServiceImpl struct {
	mu       sync.Mutex
	accounts map[string]portssvc.Ledger
	logger   *slog.Logger
}

// NewLedgerService creates an empty account registry. A nil logger
// falls back to slog.Default.
func NewLedgerService(logger *slog.Logger) portssvc.LedgerSvc {
	if logger == nil {
		logger = slog.Default()
	}
	return &ledgerServiceImpl{
		accounts: make(map[string]portssvc.Ledger),
		logger:   logger,
	}
}

var _ portssvc.LedgerSvc = (*ledgerServiceImpl)(nil)

func (s *ledgerServiceImpl) OpenAccount(ctx context.Context, holder string, openingBalance decimal.Decimal) (string, error) {
	account, err := domain.NewAccount(holder, openingBalance)
	if err != nil {
		s.logger.Error("failed to open account",
			slog.String("error", err.Error()),
			slog.String("holder", holder))
		return "", err
	}

	accountID := uuid.NewString()
	s.mu.Lock()
	s.accounts[accountID] = account
	s.mu.Unlock()

	s.logger.Info("account opened",
		slog.String("account_id", accountID),
		slog.String("holder", account.Holder()),
		slog.String("balance", account.Balance().String()))
	return accountID, nil
}

func (s *ledgerServiceImpl) OpenCreditAccount(ctx context.Context, holder string, openingBalance, creditLimit decimal.Decimal) (string, error) {
	account, err := domain.NewCreditAccount(holder, openingBalance, creditLimit)
	if err != nil {
		s.logger.Error("failed to open credit account",
			slog.String("error", err.Error()),
			slog.String("holder", holder))
		return "", err
	}

	accountID := uuid.NewString()
	s.mu.Lock()
	s.accounts[accountID] = account
	s.mu.Unlock()

	s.logger.Info("credit account opened",
		slog.String("account_id", accountID),
		slog.String("holder", account.Holder()),
		slog.String("balance", account.Balance().String()),
		slog.String("credit_limit", account.CreditLimit().String()))
	return accountID, nil
}

// find must be called with the mutex held.
func (s *ledgerServiceImpl) find(accountID string) (portssvc.Ledger, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
	}
	return account, nil
}

func (s *ledgerServiceImpl) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.find(accountID)
	if err != nil {
		return err
	}
	if err := account.Deposit(amount); err != nil {
		s.logger.Error("deposit rejected",
			slog.String("error", err.Error()),
			slog.String("account_id", accountID))
		return err
	}

	s.logger.Info("deposit applied",
		slog.String("account_id", accountID),
		slog.String("amount", amount.String()),
		slog.String("balance", account.Balance().String()))
	return nil
}

func (s *ledgerServiceImpl) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.find(accountID)
	if err != nil {
		return false, err
	}
	ok, err := account.Withdraw(amount)
	if err != nil {
		s.logger.Error("withdrawal rejected",
			slog.String("error", err.Error()),
			slog.String("account_id", accountID))
		return false, err
	}

	s.logger.Info("withdrawal processed",
		slog.String("account_id", accountID),
		slog.String("amount", amount.String()),
		slog.Bool("applied", ok),
		slog.String("balance", account.Balance().String()))
	return ok, nil
}

func (s *ledgerServiceImpl) Balance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.find(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance(), nil
}

func (s *ledgerServiceImpl) AvailableCredit(ctx context.Context, accountID string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.find(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	creditAccount, ok := account.(*domain.CreditAccount)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrNoCreditFacility, accountID)
	}
	return creditAccount.AvailableCredit(), nil
}

func (s *ledgerServiceImpl) History(ctx context.Context, accountID string) ([]domain.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.find(accountID)
	if err != nil {
		return nil, err
	}
	return account.History(), nil
}
