package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNegative  = errors.New("money cannot be negative")
	ErrMalformed = errors.New("malformed money amount")
	ErrPrecision = errors.New("money supports at most two fractional digits")
	ErrOverflow  = errors.New("money amount exceeds the supported maximum")
)

// MaxCents is the largest amount a NUMERIC(15,2) column holds.
const MaxCents int64 = 999_999_999_999_999

// Money is a non-negative amount held as integer cents.
type Money struct {
	cents int64
}

func Zero() Money { return Money{} }

func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegative
	}
	if cents > MaxCents {
		return Money{}, ErrOverflow
	}
	return Money{cents: cents}, nil
}

// Parse reads a plain decimal such as "450", "450.5" or "450.00".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrMalformed
	}
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegative
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || !isDigits(whole) || (hasFrac && (frac == "" || !isDigits(frac))) {
		return Money{}, ErrMalformed
	}
	if len(frac) > 2 {
		return Money{}, ErrPrecision
	}
	frac += strings.Repeat("0", 2-len(frac))

	cents, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Money{}, ErrOverflow
		}
		return Money{}, fmt.Errorf("%w: %s", ErrMalformed, err.Error())
	}
	if cents > MaxCents {
		return Money{}, ErrOverflow
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsZero() bool { return m.cents == 0 }

// Times multiplies by a count. Non-positive counts yield zero; a product above
// MaxCents is ErrOverflow.
func (m Money) Times(n int64) (Money, error) {
	if n <= 0 || m.cents == 0 {
		return Money{}, nil
	}
	if m.cents > MaxCents/n {
		return Money{}, ErrOverflow
	}
	return Money{cents: m.cents * n}, nil
}

// String renders two fixed fractional digits, e.g. "90000.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
