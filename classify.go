package finance

import "strings"

// Bucket is a Profit & Loss line item that rows are classified into.
type Bucket string

const (
	Revenue       Bucket = "revenue"
	COGS          Bucket = "cogs"
	OPEX          Bucket = "opex"
	Admin         Bucket = "admin"
	OtherExpenses Bucket = "otherExpenses"
	OtherIncome   Bucket = "otherIncome"
	Taxes         Bucket = "taxes"
)

// Buckets lists all buckets in statement order.
var Buckets = []Bucket{Revenue, COGS, OPEX, Admin, OtherIncome, OtherExpenses, Taxes}

// Label returns the human readable name of the bucket.
func (b Bucket) Label() string {
	switch b {
	case Revenue:
		return "Revenue"
	case COGS:
		return "Cost of Goods Sold"
	case OPEX:
		return "Operating Expenses"
	case Admin:
		return "Administrative"
	case OtherExpenses:
		return "Other Expenses"
	case OtherIncome:
		return "Other Income"
	case Taxes:
		return "Taxes"
	default:
		return string(b)
	}
}

// Table maps each bucket to the lowercase keywords that select it.
type Table map[Bucket][]string

// DefaultTable is the classification used by the Profit & Loss statement.
var DefaultTable = Table{
	Revenue:       {"revenue"},
	COGS:          {"cogs", "cost of goods sold"},
	OPEX:          {"opex", "operating expenses"},
	Admin:         {"administrative"},
	OtherExpenses: {"other expenses"},
	OtherIncome:   {"other income"},
	Taxes:         {"tax"},
}

// BucketSet is the set of buckets an account belongs to.
type BucketSet map[Bucket]struct{}

// Has reports whether b is in the set.
func (s BucketSet) Has(b Bucket) bool {
	_, ok := s[b]
	return ok
}

// Sorted returns the buckets of the set in statement order.
func (s BucketSet) Sorted() []Bucket {
	res := make([]Bucket, 0, len(s))
	for _, b := range Buckets {
		if s.Has(b) {
			res = append(res, b)
		}
	}
	return res
}

// Classify returns the buckets whose keywords are contained in the account
// text, case-insensitively.
//
// Buckets are not mutually exclusive: an account can match none, one or
// several of them. Several keywords of the same bucket select it once.
func Classify(account string, table Table) BucketSet {
	text := strings.ToLower(account)
	set := make(BucketSet)
	for bucket, keywords := range table {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				set[bucket] = struct{}{}
				break
			}
		}
	}
	return set
}
