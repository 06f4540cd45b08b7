package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CSVHeader is the header line of the import/export format.
const CSVHeader = "account,amount,currency"

// RowsToCSV serializes rows into the import/export format.
//
// Fields are written as is: an account containing a comma is not quoted and
// will not survive a round-trip.
func RowsToCSV(rows []Row) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(row.Account)
		b.WriteString(",")
		b.WriteString(row.Amount.String())
		b.WriteString(",")
		b.WriteString(row.Currency)
	}
	b.WriteString("\n")
	return b.String()
}

// ParseCSV parses rows in the import/export format.
//
// The header line is optional. Fields may be quoted to contain commas. A
// missing or invalid amount defaults to 0, and a missing currency defaults to
// defaultCurrency. Every row is built by newRow, so it gets a fresh ID. No
// line is ever rejected, blank lines are skipped.
func ParseCSV(text string, newRow RowConstructor, defaultCurrency string) []Row {
	rows := make([]Row, 0)
	first := true
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitCSVLine(line)
		if first {
			first = false
			if strings.EqualFold(fields[0], "account") {
				continue
			}
		}

		var account, currency string
		amount := decimal.Zero
		if len(fields) > 0 {
			account = fields[0]
		}
		if len(fields) > 1 {
			if v, err := decimal.NewFromString(fields[1]); err == nil {
				amount = v
			} else if fields[1] != "" {
				logger.WithField("line", line).Debugf("invalid amount %q, using 0", fields[1])
			}
		}
		if len(fields) > 2 {
			currency = fields[2]
		}
		if currency == "" {
			currency = defaultCurrency
		}
		rows = append(rows, newRow(account, amount, currency))
	}
	return rows
}

// splitCSVLine splits a line on commas that are not within double quotes.
// Quotes are dropped and fields are trimmed. It always returns at least one field.
func splitCSVLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false
	for _, c := range line {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(c)
		}
	}
	return append(fields, strings.TrimSpace(field.String()))
}
