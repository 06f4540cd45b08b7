// Package finance provides the aggregation and currency-normalization engine
// behind a small financial ledger. It is designed to be local-first and
// stateless: every figure it returns is recomputed from the rows it is given.
//
// The core functionalities include:
//   - Ledger Management: holding the canonical list of rows (account, amount,
//     currency), persisted in a key-value [Store].
//   - Currency Normalization: converting each row into a base currency using
//     [Rates], with a rate of 1 for any currency the rates do not know.
//   - Classification: bucketing rows into Profit & Loss line items by a
//     case-insensitive keyword match on the account name.
//   - Aggregation: deriving a [ProfitLoss] statement, summary [Metrics] and
//     chart-ready [Series] from rows, rates and a scenario multiplier.
//   - Snapshots: saving and restoring named copies of the row set.
//   - Import/Export: a lenient CSV round-trip of the rows.
//
// This package serves as the foundational logic for the `fin` command-line
// tool. FX rates are fetched and cached by the [github.com/etnz/finance/fx]
// package.
package finance
