package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CLP has no minor units, so every amount in the catalog is a whole number
// and decimal arithmetic on it stays exact.
var clp = currency.MustParseISO("CLP")

var chileanPesos = message.NewPrinter(language.MustParse("es-CL"))

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// CLP builds a Money in Chilean pesos from a whole-peso amount.
func CLP(amount int64) Money {
	return Money{
		Amount:   decimal.NewFromInt(amount),
		Currency: clp,
	}
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency.String() != other.Currency.String() {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}

	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}, nil
}

func (m Money) Mul(quantity int64) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(quantity)),
		Currency: m.Currency,
	}
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

func (m Money) Equal(other Money) bool {
	return m.Currency.String() == other.Currency.String() && m.Amount.Equal(other.Amount)
}

// Display renders the amount the way the storefront shows prices,
// e.g. "$9.990" for 9990 pesos.
func (m Money) Display() string {
	return chileanPesos.Sprintf("$%d", m.Amount.IntPart())
}

type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.Amount,
		Currency: m.Currency.String(),
	})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsedCurrency, err := currency.ParseISO(raw.Currency)
	if err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", raw.Currency, err)
	}

	m.Amount = raw.Amount
	m.Currency = parsedCurrency

	return nil
}
