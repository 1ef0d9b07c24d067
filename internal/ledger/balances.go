package ledger

import (
	"context"

	"github.com/mmynk/roommates/internal/calculator"
	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/storage"
)

// PeriodBalances summarizes who paid and who owes within one period.
type PeriodBalances struct {
	Period  *models.ExpensePeriod
	Members []calculator.MemberBalance
	Debts   []calculator.DebtEdge
}

// Balances computes per-person balances and simplified debts for a period.
func Balances(ctx context.Context, tx storage.Tx, periodID int64) (*PeriodBalances, error) {
	period, err := tx.GetExpensePeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	details, err := ListExpenses(ctx, tx, periodID)
	if err != nil {
		return nil, err
	}

	inputs := make([]calculator.ExpenseForBalance, 0, len(details))
	for _, d := range details {
		in := calculator.ExpenseForBalance{PayerID: d.Expense.PayerID, Cost: d.Expense.Cost}
		for _, s := range d.Splits {
			in.Shares = append(in.Shares, calculator.Share{PersonID: s.PersonID, Percentage: s.Percentage})
		}
		inputs = append(inputs, in)
	}

	members, debts := calculator.CalculatePeriodBalances(inputs)
	return &PeriodBalances{Period: period, Members: members, Debts: debts}, nil
}
