package renderer

import (
	"time"

	"github.com/etnz/finance"
)

// SnapshotList is the report listing the saved snapshots.
type SnapshotList struct {
	Title     string         `json:"title"`
	Snapshots []SnapshotLine `json:"snapshots"`
}

// SnapshotLine describes one snapshot.
type SnapshotLine struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	Rows      int    `json:"rows"`
}

// NewSnapshotList builds the snapshots report, in creation order.
func NewSnapshotList(snapshots []finance.Snapshot) *SnapshotList {
	l := &SnapshotList{Title: "Snapshots"}
	for _, s := range snapshots {
		l.Snapshots = append(l.Snapshots, SnapshotLine{
			ID:        s.ShortID(),
			Name:      s.Name,
			Timestamp: s.Timestamp.Local().Format(time.DateTime),
			Rows:      len(s.Rows),
		})
	}
	return l
}

// RenderSnapshotList renders the snapshots report to markdown.
func RenderSnapshotList(l *SnapshotList) string {
	return renderTemplate("snapshots", "snapshots.md", nil, l)
}
