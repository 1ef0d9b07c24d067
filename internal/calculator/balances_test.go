package calculator

import (
	"math"
	"testing"
)

func TestCalculatePeriodBalances(t *testing.T) {
	t.Run("two roommates split rent evenly", func(t *testing.T) {
		// Alice pays 1000, each owes 500 -> Bob owes Alice 500
		balances, debts := CalculatePeriodBalances([]ExpenseForBalance{
			{PayerID: 1, Cost: 1000, Shares: []Share{{1, 0.5}, {2, 0.5}}},
		})

		if len(balances) != 2 {
			t.Fatalf("got %d balances, want 2", len(balances))
		}
		alice, bob := balances[0], balances[1]
		if alice.PersonID != 1 || bob.PersonID != 2 {
			t.Fatalf("balances not ordered by person: %+v", balances)
		}
		if math.Abs(alice.NetBalance-500) > 0.01 {
			t.Errorf("Alice net = %v, want 500", alice.NetBalance)
		}
		if math.Abs(bob.NetBalance+500) > 0.01 {
			t.Errorf("Bob net = %v, want -500", bob.NetBalance)
		}

		if len(debts) != 1 {
			t.Fatalf("got %d debts, want 1", len(debts))
		}
		if debts[0].From != 2 || debts[0].To != 1 || math.Abs(debts[0].Amount-500) > 0.01 {
			t.Errorf("debt = %+v, want 2 -> 1 500", debts[0])
		}
	})

	t.Run("offsetting expenses cancel out", func(t *testing.T) {
		_, debts := CalculatePeriodBalances([]ExpenseForBalance{
			{PayerID: 1, Cost: 60, Shares: []Share{{1, 0.5}, {2, 0.5}}},
			{PayerID: 2, Cost: 60, Shares: []Share{{1, 0.5}, {2, 0.5}}},
		})
		if len(debts) != 0 {
			t.Errorf("got %d debts, want 0: %+v", len(debts), debts)
		}
	})

	t.Run("unassigned remainder stays with payer", func(t *testing.T) {
		// Shares sum to 0.4; the payer effectively covers the rest.
		balances, debts := CalculatePeriodBalances([]ExpenseForBalance{
			{PayerID: 1, Cost: 100, Shares: []Share{{2, 0.4}}},
		})
		if math.Abs(balances[0].TotalPaid-100) > 0.01 || balances[0].TotalOwed != 0 {
			t.Errorf("payer balance = %+v", balances[0])
		}
		if len(debts) != 1 || math.Abs(debts[0].Amount-40) > 0.01 {
			t.Errorf("debts = %+v, want one debt of 40", debts)
		}
	})

	t.Run("three roommates simplify to two transfers", func(t *testing.T) {
		third := 1.0 / 3
		balances, debts := CalculatePeriodBalances([]ExpenseForBalance{
			{PayerID: 1, Cost: 90, Shares: []Share{{1, third}, {2, third}, {3, third}}},
		})
		if len(balances) != 3 {
			t.Fatalf("got %d balances, want 3", len(balances))
		}
		if len(debts) != 2 {
			t.Fatalf("got %d debts, want 2", len(debts))
		}
		total := 0.0
		for _, d := range debts {
			if d.To != 1 {
				t.Errorf("debt %+v should go to the payer", d)
			}
			total += d.Amount
		}
		if math.Abs(total-60) > 0.01 {
			t.Errorf("total debts = %v, want 60", total)
		}
	})

	t.Run("no expenses", func(t *testing.T) {
		balances, debts := CalculatePeriodBalances(nil)
		if len(balances) != 0 || len(debts) != 0 {
			t.Errorf("expected empty result, got %+v %+v", balances, debts)
		}
	})
}
