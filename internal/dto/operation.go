package dto

import "github.com/shopspring/decimal"

// OperationRow is the externally consumed shape of one history record.
// CreditUsed is null for standard-account records and a real boolean
// for credit-account records.
type OperationRow struct {
	OpType       string          `json:"opType"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    string          `json:"timestamp"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	Status       string          `json:"status"`
	CreditUsed   *bool           `json:"creditUsed"`
}
