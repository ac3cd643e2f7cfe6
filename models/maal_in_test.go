package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassifyPayment(t *testing.T) {
	d := decimal.RequireFromString
	cases := []struct {
		paid, total string
		want        PaymentStatus
	}{
		{"0", "1000", PaymentPending},
		{"400", "1000", PaymentPartiallyPaid},
		{"1000", "1000", PaymentPaid},
		{"1200", "1000", PaymentPaid},
		{"0", "0", PaymentPending},
		{"50", "0", PaymentPaid},
	}
	for _, tc := range cases {
		if got := ClassifyPayment(d(tc.paid), d(tc.total)); got != tc.want {
			t.Errorf("ClassifyPayment(%s, %s) = %s, want %s", tc.paid, tc.total, got, tc.want)
		}
	}
}

func TestSumAmounts(t *testing.T) {
	items := []LineItem{
		{Material: "iron", Amount: decimal.RequireFromString("200.10")},
		{Material: "copper", Amount: decimal.RequireFromString("999.90")},
	}
	if got := SumAmounts(items); !got.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("SumAmounts = %s, want 1200", got)
	}
	if got := SumAmounts(nil); !got.IsZero() {
		t.Errorf("SumAmounts(nil) = %s, want 0", got)
	}
}
