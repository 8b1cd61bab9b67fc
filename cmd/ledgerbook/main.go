package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/nkovalev/ledgerbook/internal/core/ports/services"
	"github.com/nkovalev/ledgerbook/internal/core/services"
	"github.com/nkovalev/ledgerbook/internal/utils/mapping"
	"github.com/nkovalev/ledgerbook/pkg/config"
	"github.com/shopspring/decimal"
)

// Demonstration driver: exercises a standard and a credit account and
// prints balances and history. Not part of the library contract.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.IsProduction {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := context.Background()
	ledger := services.NewLedgerService(logger)

	if err := run(ctx, ledger); err != nil {
		logger.Error("Demo run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, ledger portssvc.LedgerSvc) error {
	// Standard account: deposit, an over-balance withdrawal that is
	// rejected but recorded, then a covered withdrawal.
	accID, err := ledger.OpenAccount(ctx, "Ivan", decimal.NewFromInt(100))
	if err != nil {
		return err
	}
	if err := ledger.Deposit(ctx, accID, decimal.NewFromInt(50)); err != nil {
		return err
	}
	if _, err := ledger.Withdraw(ctx, accID, decimal.NewFromInt(500)); err != nil {
		return err
	}
	if _, err := ledger.Withdraw(ctx, accID, decimal.NewFromInt(120)); err != nil {
		return err
	}
	if err := printAccount(ctx, ledger, "Account", accID); err != nil {
		return err
	}

	// Credit account: draw into credit, attempt to breach the floor,
	// then repay part of the debt.
	creditID, err := ledger.OpenCreditAccount(ctx, "Petr", decimal.Zero, decimal.NewFromInt(300))
	if err != nil {
		return err
	}
	if _, err := ledger.Withdraw(ctx, creditID, decimal.NewFromInt(100)); err != nil {
		return err
	}
	if _, err := ledger.Withdraw(ctx, creditID, decimal.NewFromInt(250)); err != nil {
		return err
	}
	if err := ledger.Deposit(ctx, creditID, decimal.NewFromInt(80)); err != nil {
		return err
	}

	available, err := ledger.AvailableCredit(ctx, creditID)
	if err != nil {
		return err
	}
	fmt.Printf("Available credit: %s\n", available)

	return printAccount(ctx, ledger, "Credit account", creditID)
}

func printAccount(ctx context.Context, ledger portssvc.LedgerSvc, label, accountID string) error {
	balance, err := ledger.Balance(ctx, accountID)
	if err != nil {
		return err
	}
	ops, err := ledger.History(ctx, accountID)
	if err != nil {
		return err
	}
	history, err := json.MarshalIndent(mapping.ToOperationRows(ops), "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("%s balance: %s\n%s history:\n%s\n", label, balance, label, history)
	return nil
}
