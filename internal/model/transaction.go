package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the layout used when a Transaction date is rendered as text.
const DateFormat = "2006-01-02"

// Transaction represents one parsed statement line.
type Transaction struct {
	Date        time.Time
	Description string
	Change      decimal.Decimal // negative = withdrawal, positive = deposit
	Balance     decimal.Decimal // as stated on the line, never recomputed
}

// IsWithdrawal reports whether the transaction reduced the balance.
func (t Transaction) IsWithdrawal() bool { return t.Change.IsNegative() }

// IsDeposit reports whether the transaction increased the balance.
func (t Transaction) IsDeposit() bool { return t.Change.IsPositive() }

type transactionJSON struct {
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Change      json.Number `json:"change"`
	Balance     json.Number `json:"balance"`
}

// MarshalJSON encodes amounts as bare JSON numbers and the date as YYYY-MM-DD.
// Descriptions are written without HTML escaping.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(transactionJSON{
		Date:        t.Date.Format(DateFormat),
		Description: t.Description,
		Change:      json.Number(t.Change.String()),
		Balance:     json.Number(t.Balance.String()),
	})
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw transactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := time.Parse(DateFormat, raw.Date)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", raw.Date, err)
	}
	change, err := decimal.NewFromString(raw.Change.String())
	if err != nil {
		return fmt.Errorf("parsing change %q: %w", raw.Change, err)
	}
	balance, err := decimal.NewFromString(raw.Balance.String())
	if err != nil {
		return fmt.Errorf("parsing balance %q: %w", raw.Balance, err)
	}

	*t = Transaction{
		Date:        date,
		Description: raw.Description,
		Change:      change,
		Balance:     balance,
	}
	return nil
}
