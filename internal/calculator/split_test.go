package calculator

import (
	"math"
	"testing"
)

func TestEvenShares(t *testing.T) {
	tests := []struct {
		name         string
		participants []int64
		wantErr      bool
		validateFunc func(t *testing.T, shares []Share)
	}{
		{
			name:         "no participants should error",
			participants: []int64{},
			wantErr:      true,
		},
		{
			name:         "single participant takes everything",
			participants: []int64{7},
			validateFunc: func(t *testing.T, shares []Share) {
				if len(shares) != 1 || shares[0].PersonID != 7 || shares[0].Percentage != 1.0 {
					t.Errorf("shares = %+v, want [{7 1}]", shares)
				}
			},
		},
		{
			name:         "three people split",
			participants: []int64{1, 2, 3},
			validateFunc: func(t *testing.T, shares []Share) {
				// 1/3 each; the percentages must add back up to 1
				sum := 0.0
				for i, s := range shares {
					if s.PersonID != int64(i+1) {
						t.Errorf("share %d person = %d, want %d", i, s.PersonID, i+1)
					}
					if math.Abs(s.Percentage-1.0/3) > 0.0001 {
						t.Errorf("share %d = %v, want 0.3333", i, s.Percentage)
					}
					sum += s.Percentage
				}
				if math.Abs(sum-1.0) > 1e-12 {
					t.Errorf("sum of shares = %v, want 1", sum)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := EvenShares(tt.participants)
			if (err != nil) != tt.wantErr {
				t.Errorf("EvenShares() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && tt.validateFunc != nil {
				tt.validateFunc(t, shares)
			}
		})
	}
}

func TestShareAmount(t *testing.T) {
	if got := ShareAmount(1200, 0.4); math.Abs(got-480) > 0.01 {
		t.Errorf("ShareAmount(1200, 0.4) = %v, want 480", got)
	}
}
