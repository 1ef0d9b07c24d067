package calculator

import (
	"fmt"
)

// Share is one person's fractional share of an expense.
type Share struct {
	PersonID   int64
	Percentage float64
}

// ShareAmount returns what a share of cost comes to.
func ShareAmount(cost, percentage float64) float64 {
	return cost * percentage
}

// EvenShares splits an expense equally among participants.
// The last participant absorbs the rounding remainder so the
// percentages sum to exactly 1.
func EvenShares(participants []int64) ([]Share, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("must have at least one participant")
	}

	each := 1.0 / float64(len(participants))
	shares := make([]Share, len(participants))
	remaining := 1.0
	for i, p := range participants {
		pct := each
		if i == len(participants)-1 {
			pct = remaining
		}
		shares[i] = Share{PersonID: p, Percentage: pct}
		remaining -= each
	}
	return shares, nil
}
