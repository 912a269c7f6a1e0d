package booking

import "errors"

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is an amount in the currency's minor unit.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Times(n int) Money {
	return Money{amount: m.amount * int64(n)}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}
