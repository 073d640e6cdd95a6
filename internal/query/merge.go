package query

import "expense-tracker/internal/models"

// mergeByID unions two store results keyed by record identifier. Primary
// entries keep their order; secondary-only entries are appended after in
// their own order. A record matching both sub-queries appears exactly once,
// positioned as it was in the primary result. Each input is already sorted
// by the store, so no re-sort happens here.
func mergeByID(primary, secondary []models.Record) []models.Record {
	if len(secondary) == 0 {
		return primary
	}

	seen := make(map[models.RecordID]struct{}, len(primary))
	for _, record := range primary {
		seen[record.ID] = struct{}{}
	}

	merged := primary
	for _, record := range secondary {
		if _, ok := seen[record.ID]; ok {
			continue
		}
		merged = append(merged, record)
	}

	return merged
}
