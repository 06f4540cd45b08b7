package finance

import (
	"errors"
	"slices"
)

// ErrRowNotFound is returned when a row ID is unknown to the ledger.
var ErrRowNotFound = errors.New("row not found")

// Ledger holds the canonical list of rows and persists it in a Store under
// the key [KeyRows].
//
// Every mutation writes the whole row set back to the store.
type Ledger struct {
	store Store
	rows  []Row
}

// LoadLedger reads the ledger from store.
//
// A missing or corrupt value yields an empty ledger.
func LoadLedger(store Store) *Ledger {
	l := &Ledger{store: store, rows: []Row{}}
	var rows []Row
	if decodeKey(store, KeyRows, &rows) && rows != nil {
		l.rows = rows
	}
	return l
}

// Rows returns a copy of the rows, in insertion order.
func (l *Ledger) Rows() []Row { return cloneRows(l.rows) }

// Len returns the number of rows.
func (l *Ledger) Len() int { return len(l.rows) }

// Row returns the row identified by id, or by a unique prefix of it.
func (l *Ledger) Row(id string) (Row, error) {
	i, err := l.index(id)
	if err != nil {
		return Row{}, err
	}
	return l.rows[i], nil
}

// Add appends rows to the ledger.
func (l *Ledger) Add(rows ...Row) error {
	return l.commit(append(l.Rows(), rows...))
}

// Update replaces the row with the same ID.
func (l *Ledger) Update(row Row) error {
	i, err := l.index(row.ID)
	if err != nil {
		return err
	}
	rows := l.Rows()
	row.ID = rows[i].ID
	rows[i] = row
	return l.commit(rows)
}

// Delete removes the row identified by id, or by a unique prefix of it.
func (l *Ledger) Delete(id string) error {
	i, err := l.index(id)
	if err != nil {
		return err
	}
	return l.commit(slices.Delete(l.Rows(), i, i+1))
}

// Replace replaces all the rows of the ledger.
func (l *Ledger) Replace(rows []Row) error {
	return l.commit(cloneRows(rows))
}

func (l *Ledger) index(id string) (int, error) {
	return resolve(l.rows, func(r Row) string { return r.ID }, id, ErrRowNotFound)
}

// commit persists rows, and only then makes them the ledger content.
func (l *Ledger) commit(rows []Row) error {
	if err := encodeKey(l.store, KeyRows, rows); err != nil {
		return err
	}
	l.rows = rows
	logger.WithField("rows", len(rows)).Debug("ledger saved")
	return nil
}
