package finance

import "github.com/shopspring/decimal"

// ProfitLoss is a Profit & Loss statement in the base currency.
//
// Expense buckets are expected to hold negative amounts already, so every
// total is a plain sum.
type ProfitLoss struct {
	Revenue           Money
	COGS              Money
	GrossProfit       Money // Revenue + COGS
	OPEX              Money
	Admin             Money
	OperationalProfit Money // GrossProfit + OPEX + Admin
	OtherExpenses     Money
	OtherIncome       Money
	EBT               Money // OperationalProfit + OtherIncome + OtherExpenses
	Taxes             Money
	NetProfit         Money // EBT + Taxes
}

// CalculateProfitLoss classifies and sums the normalized amounts of all rows.
//
// Rows matching no bucket do not contribute; an empty row set yields zeros.
func CalculateProfitLoss(rows []Row, rates Rates) ProfitLoss {
	return calculateProfitLoss(rows, rates, one)
}

func calculateProfitLoss(rows []Row, rates Rates, multiplier decimal.Decimal) ProfitLoss {
	sums := make(map[Bucket]Money, len(Buckets))
	for _, b := range Buckets {
		sums[b] = zero(rates)
	}
	for _, row := range rows {
		amount := Normalize(row, rates).Mul(multiplier)
		for b := range Classify(row.Account, DefaultTable) {
			sums[b] = sums[b].Add(amount)
		}
	}

	pl := ProfitLoss{
		Revenue:       sums[Revenue],
		COGS:          sums[COGS],
		OPEX:          sums[OPEX],
		Admin:         sums[Admin],
		OtherExpenses: sums[OtherExpenses],
		OtherIncome:   sums[OtherIncome],
		Taxes:         sums[Taxes],
	}
	pl.GrossProfit = pl.Revenue.Add(pl.COGS)
	pl.OperationalProfit = pl.GrossProfit.Add(pl.OPEX).Add(pl.Admin)
	pl.EBT = pl.OperationalProfit.Add(pl.OtherIncome).Add(pl.OtherExpenses)
	pl.NetProfit = pl.EBT.Add(pl.Taxes)
	return pl
}

// Currency returns the currency the statement is expressed in.
func (p ProfitLoss) Currency() string { return p.NetProfit.Currency() }

// Series returns the statement lines in statement order.
func (p ProfitLoss) Series() Series {
	return Series{
		{Label: Revenue.Label(), Value: p.Revenue},
		{Label: COGS.Label(), Value: p.COGS},
		{Label: "Gross Profit", Value: p.GrossProfit, Total: true},
		{Label: OPEX.Label(), Value: p.OPEX},
		{Label: Admin.Label(), Value: p.Admin},
		{Label: "Operational Profit", Value: p.OperationalProfit, Total: true},
		{Label: OtherIncome.Label(), Value: p.OtherIncome},
		{Label: OtherExpenses.Label(), Value: p.OtherExpenses},
		{Label: "Earnings Before Taxes", Value: p.EBT, Total: true},
		{Label: Taxes.Label(), Value: p.Taxes},
		{Label: "Net Profit", Value: p.NetProfit, Total: true},
	}
}
