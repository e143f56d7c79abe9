package stats

import (
	"github.com/dgerard42/diarium/internal/model"
)

// basicStat counts truthy entries of a binary habit field.
func basicStat(records []model.Record, fieldName string) BasicStat {
	stats := BasicStat{}
	for _, record := range records {
		if record.Truthy(fieldName) {
			stats.Amount++
		}
	}
	stats.Ratio = ratio(stats.Amount, len(records))
	return stats
}
