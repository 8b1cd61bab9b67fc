package mapping

import (
	"github.com/nkovalev/ledgerbook/internal/core/domain"
	"github.com/nkovalev/ledgerbook/internal/dto"
)

// timestampLayout renders operation timestamps at second precision with
// a space-separated date and time.
const timestampLayout = "2006-01-02 15:04:05"

// ToOperationRow maps a domain operation to its history row shape.
func ToOperationRow(op domain.Operation) dto.OperationRow {
	return dto.OperationRow{
		OpType:       string(op.Type),
		Amount:       op.Amount,
		Timestamp:    op.Timestamp.Format(timestampLayout),
		BalanceAfter: op.BalanceAfter,
		Status:       string(op.Status),
		CreditUsed:   op.CreditUsed.Bool(),
	}
}

// ToOperationRows maps a history slice, preserving order.
func ToOperationRows(ops []domain.Operation) []dto.OperationRow {
	rows := make([]dto.OperationRow, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, ToOperationRow(op))
	}
	return rows
}
