package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCSV_RoundTrip(t *testing.T) {
	rows := []Row{
		R("Revenue", 1000, "USD"),
		R("Cost of Goods Sold", -300.25, "EUR"),
		R("Tax", 0, "GBP"),
	}
	got := ParseCSV(RowsToCSV(rows), NewRow, "USD")
	assertRows(t, got, rows, ignoreIDs)

	for i := range got {
		if got[i].ID == rows[i].ID {
			t.Errorf("row %d kept its ID %q, want a fresh one", i, got[i].ID)
		}
	}
}

func TestRowsToCSV(t *testing.T) {
	rows := []Row{R("Revenue", 1000, "USD"), R("Rent, office", -12.5, "EUR")}
	want := "account,amount,currency\nRevenue,1000,USD\nRent, office,-12.5,EUR\n"
	if got := RowsToCSV(rows); got != want {
		t.Errorf("RowsToCSV() = %q, want %q", got, want)
	}
	if got, want := RowsToCSV(nil), "account,amount,currency\n"; got != want {
		t.Errorf("RowsToCSV(nil) = %q, want %q", got, want)
	}
}

func TestParseCSV(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []Row
	}{
		{
			name: "quoted comma",
			text: "account,amount,currency\n\"Rent, office\",-12.5,EUR\n",
			want: []Row{{Account: "Rent, office", Amount: D(-12.5), Currency: "EUR"}},
		},
		{
			name: "missing amount and currency",
			text: "account,amount,currency\nRevenue\n",
			want: []Row{{Account: "Revenue", Amount: decimal.Zero, Currency: "GBP"}},
		},
		{
			name: "empty currency",
			text: "Revenue,12,\n",
			want: []Row{{Account: "Revenue", Amount: D(12), Currency: "GBP"}},
		},
		{
			name: "invalid amount",
			text: "Revenue,abc,USD\n",
			want: []Row{{Account: "Revenue", Amount: decimal.Zero, Currency: "USD"}},
		},
		{
			name: "no header, crlf and blank lines",
			text: "Revenue, 10 , USD\r\n\r\n\nTax,-1,EUR\r\n",
			want: []Row{
				{Account: "Revenue", Amount: D(10), Currency: "USD"},
				{Account: "Tax", Amount: D(-1), Currency: "EUR"},
			},
		},
		{
			name: "header in any case",
			text: "Account,Amount,Currency\nRevenue,1,USD",
			want: []Row{{Account: "Revenue", Amount: D(1), Currency: "USD"}},
		},
		{
			name: "empty",
			text: "",
			want: []Row{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseCSV(tc.text, NewRow, "GBP")
			assertRows(t, got, tc.want, ignoreIDs)
		})
	}
}

func TestParseCSV_UsesConstructor(t *testing.T) {
	n := 0
	ctor := func(account string, amount decimal.Decimal, currency string) Row {
		n++
		return Row{ID: "fixed", Account: account, Amount: amount, Currency: currency}
	}
	rows := ParseCSV("a,1,USD\nb,2,USD\n", ctor, "USD")
	if n != 2 || len(rows) != 2 || rows[0].ID != "fixed" {
		t.Errorf("ParseCSV() called the constructor %d times, got %v", n, rows)
	}
}
