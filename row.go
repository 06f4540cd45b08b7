package finance

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Row is a single ledger entry.
//
// Amount is signed and always denominated in Currency: positive amounts are
// inflows (revenue-like) and negative amounts are outflows (expense-like).
// The engine never re-interprets the sign.
type Row struct {
	ID       string          `json:"id"`
	Account  string          `json:"account"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// RowConstructor builds a row with a fresh identifier.
type RowConstructor func(account string, amount decimal.Decimal, currency string) Row

// NewRow returns a new row with a freshly generated ID.
func NewRow(account string, amount decimal.Decimal, currency string) Row {
	return Row{
		ID:       uuid.NewString(),
		Account:  account,
		Amount:   amount,
		Currency: currency,
	}
}

// ShortID returns the first characters of the ID, enough to refer to a row from the command line.
func (r Row) ShortID() string { return shortID(r.ID) }

// MarshalJSON writes the amount as a JSON number.
func (r Row) MarshalJSON() ([]byte, error) {
	type jrow struct {
		ID       string      `json:"id"`
		Account  string      `json:"account"`
		Amount   json.Number `json:"amount"`
		Currency string      `json:"currency"`
	}
	return json.Marshal(jrow{
		ID:       r.ID,
		Account:  r.Account,
		Amount:   json.Number(r.Amount.String()),
		Currency: r.Currency,
	})
}

func cloneRows(rows []Row) []Row {
	if rows == nil {
		return []Row{}
	}
	return append(make([]Row, 0, len(rows)), rows...)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
