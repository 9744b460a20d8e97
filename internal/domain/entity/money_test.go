package entity

import (
	"encoding/json"
	"testing"
)

func TestMoneyFromDecimalRoundsExactly(t *testing.T) {
	cases := []struct {
		in   float64
		want Money
	}{
		{120, 12000},
		{249.99, 24999},
		{0.1, 10},
		{0, 0},
	}
	for _, tc := range cases {
		if got := MoneyFromDecimal(tc.in); got != tc.want {
			t.Errorf("MoneyFromDecimal(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Money(24999))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != "249.99" {
		t.Fatalf("expected decimal rendering, got %s", raw)
	}

	var back Money
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back != 24999 {
		t.Fatalf("round trip lost cents: %d", back)
	}
}

func TestParseMoney(t *testing.T) {
	got, err := ParseMoney(" 120.50 ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got != 12050 {
		t.Fatalf("expected 12050 cents, got %d", got)
	}

	if _, err := ParseMoney("abc"); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}

func TestReceiptRecompute(t *testing.T) {
	r := Receipt{
		Items: []ReceiptItem{
			{Name: "Iced Coffee", UnitPrice: 12000, Quantity: 2},
			{Name: "Matcha", UnitPrice: 16000, Quantity: 1},
		},
		CashAmount: 50000,
		Total:      1, // stale on purpose
	}
	r.Recompute()

	if r.Total != 40000 {
		t.Fatalf("expected total 400.00, got %s", r.Total.Format())
	}
	if r.Balance != 10000 {
		t.Fatalf("expected balance 100.00, got %s", r.Balance.Format())
	}
}
