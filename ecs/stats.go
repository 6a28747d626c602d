package ecs

import "sort"

// StorageStats summarizes storage contents for diagnostics.
type StorageStats struct {
	EntityCount int
	ColumnCount int
	Columns     []ColumnStats
}

// ColumnStats describes one component column.
type ColumnStats struct {
	Type  string
	Count int
}

// CollectStats gathers entity and per-column counts, with columns sorted by type name.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		EntityCount: s.live,
		ColumnCount: len(s.columns),
		Columns:     make([]ColumnStats, 0, len(s.columns)),
	}

	for _, typ := range s.order {
		stats.Columns = append(stats.Columns, ColumnStats{
			Type:  typ.String(),
			Count: s.columns[typ].Len(),
		})
	}

	sort.Slice(stats.Columns, func(i, j int) bool {
		return stats.Columns[i].Type < stats.Columns[j].Type
	})
	return stats
}
