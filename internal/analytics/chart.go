package analytics

import (
	"time"

	"fxjournal/internal/models"
)

// ChartLabelLayout formats the per-day axis labels.
const ChartLabelLayout = "Jan 02"

// BuildChartData buckets trades by calendar day over the trailing day
// window, sums profit per day and accumulates the running total. Days
// without trades contribute zero. The series spans days+1 points ending
// on now's date, oldest first.
func BuildChartData(trades []models.Trade, days int, now time.Time) models.ChartData {
	if days < 0 {
		days = 0
	}

	byDay := make(map[string]float64)
	for _, t := range trades {
		byDay[t.Date] += t.Profit
	}

	points := days + 1
	cd := models.ChartData{
		Dates:      make([]string, 0, points),
		Daily:      make([]float64, 0, points),
		Cumulative: make([]float64, 0, points),
	}

	var running float64
	for i := days; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		profit := byDay[day.Format(models.DateLayout)]
		running += profit
		cd.Dates = append(cd.Dates, day.Format(ChartLabelLayout))
		cd.Daily = append(cd.Daily, profit)
		cd.Cumulative = append(cd.Cumulative, running)
	}
	return cd
}
