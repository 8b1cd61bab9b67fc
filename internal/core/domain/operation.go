package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType identifies the kind of attempted account operation.
type OperationType string

const (
	Deposit  OperationType = "deposit"
	Withdraw OperationType = "withdraw"
)

// OperationStatus records whether an attempted operation was applied.
type OperationStatus string

const (
	StatusSuccess OperationStatus = "success"
	StatusFail    OperationStatus = "fail"
)

// CreditUsage is the tri-state credit flag carried by an Operation.
// Standard accounts always record CreditUnset; credit accounts always
// record CreditNotUsed or CreditUsed, never CreditUnset.
type CreditUsage int8

const (
	CreditUnset CreditUsage = iota
	CreditNotUsed
	CreditUsed
)

// MarshalJSON renders the flag as null, false or true, matching the
// history row contract.
func (c CreditUsage) MarshalJSON() ([]byte, error) {
	switch c {
	case CreditNotUsed:
		return []byte("false"), nil
	case CreditUsed:
		return []byte("true"), nil
	default:
		return []byte("null"), nil
	}
}

// Bool returns the flag as a nullable boolean: nil for CreditUnset.
func (c CreditUsage) Bool() *bool {
	switch c {
	case CreditNotUsed, CreditUsed:
		b := c == CreditUsed
		return &b
	default:
		return nil
	}
}

// creditUsageOf maps a drawn-on-credit predicate onto the flag.
func creditUsageOf(used bool) CreditUsage {
	if used {
		return CreditUsed
	}
	return CreditNotUsed
}

// Operation is one immutable record of an attempted deposit or withdrawal,
// including rejected attempts. Amount is the requested amount, not the
// applied delta; BalanceAfter snapshots the owning account's balance at
// record creation, so a rejected operation carries the unchanged balance.
type Operation struct {
	Type         OperationType
	Amount       decimal.Decimal
	Timestamp    time.Time
	BalanceAfter decimal.Decimal
	Status       OperationStatus
	CreditUsed   CreditUsage
}

// newOperation captures the creation timestamp; it is the only way
// records enter a history.
func newOperation(opType OperationType, amount, balanceAfter decimal.Decimal, status OperationStatus, credit CreditUsage) Operation {
	return Operation{
		Type:         opType,
		Amount:       amount,
		Timestamp:    time.Now(),
		BalanceAfter: balanceAfter,
		Status:       status,
		CreditUsed:   credit,
	}
}
