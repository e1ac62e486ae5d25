package domain

import "fmt"

// Money is an amount in minor units (cents) plus an ISO 4217 currency code.
// The zero value means "no amount yet" and is what an empty order totals to.
type Money struct {
	cents    int64
	currency string
}

// NewMoney validates and builds a Money value. Negative amounts and
// currency codes that are not exactly three ASCII uppercase letters are
// rejected.
func NewMoney(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, fmt.Errorf("%w: %d", ErrNegativeAmount, cents)
	}
	if !validCurrency(currency) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	return Money{cents: cents, currency: currency}, nil
}

func validCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

func (m Money) Cents() int64     { return m.cents }
func (m Money) Currency() string { return m.currency }
func (m Money) IsZero() bool     { return m == Money{} }

// Add returns the sum of two amounts. Adding to the zero value adopts the
// other side's currency; otherwise the currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if m.IsZero() {
		return other, nil
	}
	if other.IsZero() {
		return m, nil
	}
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{cents: m.cents + other.cents, currency: m.currency}, nil
}

// Mul scales the amount by a quantity.
func (m Money) Mul(qty int) Money {
	return Money{cents: m.cents * int64(qty), currency: m.currency}
}

func (m Money) Equal(other Money) bool { return m == other }

func (m Money) String() string {
	if m.IsZero() {
		return "0"
	}
	return fmt.Sprintf("%d.%02d %s", m.cents/100, m.cents%100, m.currency)
}
