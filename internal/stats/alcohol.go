package stats

import (
	"strings"

	"github.com/dgerard42/diarium/internal/model"
)

func alcoholStats(records []model.Record) AlcoholStats {
	stats := AlcoholStats{TopDrinks: NewFreqTable()}

	for _, record := range records {
		list, ok := record.List(model.FieldAlcohol)
		if !ok {
			continue
		}
		drinks := make([]string, 0, len(list))
		for _, drink := range list {
			drink = strings.TrimSpace(drink)
			if drink != "" {
				drinks = append(drinks, drink)
			}
		}
		stats.AmountDrinks += len(drinks)
		if len(drinks) > 0 {
			stats.AmountDays++
		}
		for _, drink := range drinks {
			stats.TopDrinks.Add(normalizeName(drink))
		}
	}

	stats.Ratio = ratio(stats.AmountDays, len(records))
	return stats
}
