package kernel

import (
	"fmt"

	"burgerpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in the till currency, kept exact with decimal arithmetic.
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps amount, rejecting negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses values such as "9.99".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times returns m multiplied by a non-negative count.
func (m Money) Times(count int) Money {
	if count <= 0 {
		return Money{}
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(count)))}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
