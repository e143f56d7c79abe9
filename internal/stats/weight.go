package stats

import (
	"math"

	"github.com/dgerard42/diarium/internal/model"
)

func weightStats(records []model.Record) WeightStats {
	stats := WeightStats{
		Max:    WeightPoint{Date: zeroDate},
		Min:    WeightPoint{Date: zeroDate},
		Points: []WeightPoint{},
	}

	for _, record := range records {
		if !record.Truthy(model.FieldWeight) {
			continue
		}
		weight, ok := record.Number(model.FieldWeight)
		if !ok {
			continue
		}
		stats.Points = append(stats.Points, WeightPoint{Date: record.Date(), Weight: weight})
	}
	if len(stats.Points) == 0 {
		return stats
	}

	sum := 0.0
	maxIdx := 0
	minIdx := 0
	for i, point := range stats.Points {
		sum += point.Weight
		if point.Weight > stats.Points[maxIdx].Weight {
			maxIdx = i
		}
		if point.Weight < stats.Points[minIdx].Weight {
			minIdx = i
		}
	}
	stats.Average = int(math.Round(sum / float64(len(stats.Points))))
	stats.Max = stats.Points[maxIdx]
	stats.Min = stats.Points[minIdx]
	return stats
}
