package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is a monetary amount stored in cents. Keeping amounts integral means
// cart totals, receipt totals and balances are exact; decimals only appear
// at the JSON/render boundary.
type Money int64

// MoneyFromDecimal converts a decimal amount (e.g. 120.50) into cents.
func MoneyFromDecimal(v float64) Money {
	return Money(math.Round(v * 100))
}

// ParseMoney parses a decimal string (e.g. "249.99") into cents.
func ParseMoney(s string) (Money, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return MoneyFromDecimal(v), nil
}

// Decimal returns the amount as a decimal value for display.
func (m Money) Decimal() float64 {
	return float64(m) / 100
}

// Format renders the amount with exactly two decimal places.
func (m Money) Format() string {
	return fmt.Sprintf("%.2f", m.Decimal())
}

// MarshalJSON renders Money as a decimal number, matching the snapshot
// format the mobile app wrote to storage.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal())
}

// UnmarshalJSON accepts a decimal number and stores it as cents.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = MoneyFromDecimal(v)
	return nil
}
