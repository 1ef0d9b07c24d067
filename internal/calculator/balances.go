package calculator

import (
	"cmp"
	"slices"
)

// ExpenseForBalance represents an expense with the minimal information needed for balance calculations.
type ExpenseForBalance struct {
	PayerID int64
	Cost    float64
	Shares  []Share
}

// MemberBalance represents the balance information for one roommate.
type MemberBalance struct {
	PersonID   int64
	NetBalance float64 // Positive = owed money, Negative = owes money
	TotalPaid  float64 // Total amount paid across all expenses
	TotalOwed  float64 // Total amount this person owes
}

// DebtEdge represents a debt from one person to another.
type DebtEdge struct {
	From   int64 // Person who owes
	To     int64 // Person who is owed
	Amount float64
}

// epsilon hides floating point noise in settled amounts.
const epsilon = 0.01

// CalculatePeriodBalances computes balances across the expenses of one period.
// It aggregates who paid what and who owes what, returning individual
// balances ordered by person ID and a simplified list of debts.
//
// Algorithm:
// - For each expense: payer contributed +cost, each share owes cost × percentage
// - Aggregate: net_balance = total_paid - total_owed
// - Debts: simplified by greedily matching debtors with creditors
//
// Shares are not required to sum to 1; any unassigned remainder stays with
// the payer.
func CalculatePeriodBalances(expenses []ExpenseForBalance) ([]MemberBalance, []DebtEdge) {
	balances := make(map[int64]*MemberBalance)
	get := func(id int64) *MemberBalance {
		if _, exists := balances[id]; !exists {
			balances[id] = &MemberBalance{PersonID: id}
		}
		return balances[id]
	}

	for _, expense := range expenses {
		get(expense.PayerID).TotalPaid += expense.Cost
		// The payer's own share is still owed, to themselves.
		for _, share := range expense.Shares {
			get(share.PersonID).TotalOwed += ShareAmount(expense.Cost, share.Percentage)
		}
	}

	memberBalances := make([]MemberBalance, 0, len(balances))
	for _, bal := range balances {
		bal.NetBalance = bal.TotalPaid - bal.TotalOwed
		memberBalances = append(memberBalances, *bal)
	}
	slices.SortFunc(memberBalances, func(a, b MemberBalance) int {
		return cmp.Compare(a.PersonID, b.PersonID)
	})

	return memberBalances, simplifyDebts(memberBalances)
}

// simplifyDebts matches debtors with creditors to minimize transactions.
func simplifyDebts(balances []MemberBalance) []DebtEdge {
	var creditors, debtors []MemberBalance
	for _, bal := range balances {
		if bal.NetBalance > epsilon {
			creditors = append(creditors, bal)
		} else if bal.NetBalance < -epsilon {
			debtors = append(debtors, bal)
		}
	}

	// Largest amounts first; ties broken by ID so the result is stable.
	slices.SortStableFunc(creditors, func(a, b MemberBalance) int {
		return cmp.Compare(b.NetBalance, a.NetBalance)
	})
	slices.SortStableFunc(debtors, func(a, b MemberBalance) int {
		return cmp.Compare(a.NetBalance, b.NetBalance)
	})

	debtorBalance := make(map[int64]float64)
	creditorBalance := make(map[int64]float64)
	for _, debtor := range debtors {
		debtorBalance[debtor.PersonID] = -debtor.NetBalance
	}
	for _, creditor := range creditors {
		creditorBalance[creditor.PersonID] = creditor.NetBalance
	}

	var debtEdges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i].PersonID
		creditor := creditors[j].PersonID

		amount := min(debtorBalance[debtor], creditorBalance[creditor])
		if amount > epsilon {
			debtEdges = append(debtEdges, DebtEdge{
				From:   debtor,
				To:     creditor,
				Amount: amount,
			})
		}

		debtorBalance[debtor] -= amount
		creditorBalance[creditor] -= amount

		if debtorBalance[debtor] < epsilon {
			i++
		}
		if creditorBalance[creditor] < epsilon {
			j++
		}
	}

	return debtEdges
}
