package summary

import (
	"firewatch-server/internal/fire_monitoring/domain"
	"strconv"
)

type Statistics struct {
	Total         int
	NormalCount   int
	WarningCount  int
	AbnormalCount int
	NormalPct     float64
	WarningPct    float64
	AbnormalPct   float64
}

// ComputeStatistics tallies sensors by status class, so anything that is
// neither normal nor warning counts as abnormal.
func ComputeStatistics(sensors []domain.Sensor) Statistics {
	stats := Statistics{Total: len(sensors)}
	for _, s := range sensors {
		switch s.Status.Class() {
		case domain.SensorStatusNormal:
			stats.NormalCount++
		case domain.SensorStatusWarning:
			stats.WarningCount++
		default:
			stats.AbnormalCount++
		}
	}

	stats.NormalPct = percentage(stats.NormalCount, stats.Total)
	stats.WarningPct = percentage(stats.WarningCount, stats.Total)
	stats.AbnormalPct = percentage(stats.AbnormalCount, stats.Total)
	return stats
}

// percentage is rounded to one decimal place and is 0 for an empty total.
// Exact halves round to even, so 6.25 gives 6.2.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	ratio := float64(count) / float64(total) * 100
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(ratio, 'f', 1, 64), 64)
	return rounded
}
