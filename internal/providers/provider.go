package providers

import (
	"context"

	"contribgraph/pkg/models"
)

// Source is implemented by each upstream activity feed. Each source fetches
// its own wire format and maps it into DayRecords; it makes no promise about
// ordering, completeness, or staying inside the trailing year — the graph
// engine normalizes that.
type Source interface {
	Name() string
	Fetch(ctx context.Context, username string) ([]models.DayRecord, error)
}
