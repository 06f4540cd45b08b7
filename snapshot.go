package finance

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

// ErrSnapshotNotFound is returned when a snapshot ID is unknown.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot is an immutable, named and timestamped copy of the row set.
type Snapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Rows      []Row     `json:"rows"`
}

// ShortID returns the first characters of the ID.
func (s Snapshot) ShortID() string { return shortID(s.ID) }

func (s Snapshot) clone() Snapshot {
	s.Rows = cloneRows(s.Rows)
	return s
}

// Snapshots is the collection of snapshots persisted in a Store under the key
// [KeySnapshots].
type Snapshots struct {
	store Store
	list  []Snapshot
}

// LoadSnapshots reads the snapshots from store.
//
// A missing or corrupt value yields an empty collection.
func LoadSnapshots(store Store) *Snapshots {
	s := &Snapshots{store: store}
	var list []Snapshot
	if decodeKey(store, KeySnapshots, &list) {
		s.list = list
	}
	return s
}

// List returns all snapshots in creation order.
func (s *Snapshots) List() []Snapshot {
	res := make([]Snapshot, 0, len(s.list))
	for _, snap := range s.list {
		res = append(res, snap.clone())
	}
	return res
}

// Get returns the snapshot identified by id, or by a unique prefix of it.
func (s *Snapshots) Get(id string) (Snapshot, error) {
	i, err := s.index(id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.list[i].clone(), nil
}

// Save creates a new snapshot of rows.
func (s *Snapshots) Save(name string, rows []Row, at time.Time) (Snapshot, error) {
	snap := Snapshot{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: at,
		Rows:      cloneRows(rows),
	}
	if err := s.commit(append(slices.Clone(s.list), snap)); err != nil {
		return Snapshot{}, err
	}
	return snap.clone(), nil
}

// Delete removes the snapshot identified by id, or by a unique prefix of it.
func (s *Snapshots) Delete(id string) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	return s.commit(slices.Delete(slices.Clone(s.list), i, i+1))
}

// Restore replaces the rows of the ledger with a copy of the snapshot rows.
func (s *Snapshots) Restore(id string, l *Ledger) (Snapshot, error) {
	snap, err := s.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := l.Replace(snap.Rows); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *Snapshots) index(id string) (int, error) {
	return resolve(s.list, func(snap Snapshot) string { return snap.ID }, id, ErrSnapshotNotFound)
}

func (s *Snapshots) commit(list []Snapshot) error {
	if err := encodeKey(s.store, KeySnapshots, list); err != nil {
		return err
	}
	s.list = list
	return nil
}
