package services

import (
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
)

// chartPoints is the number of most recent records drawn on a stat card
const chartPoints = 8

// listed is a record as seen by the stat cards
type listed struct {
	status    string
	createdAt time.Time
}

// statusStats counts records per status
func statusStats(records []listed) models.StatusStats {
	stats := models.StatusStats{Total: len(records)}
	for _, r := range records {
		switch r.status {
		case models.StatusActive:
			stats.Active++
		case models.StatusInactive:
			stats.Inactive++
		}
	}
	return stats
}

// statCharts plots the most recent records per stat card, oldest first.
// records must be ordered newest first.
func statCharts(records []listed) models.StatCharts {
	charts := models.StatCharts{
		Total:    []models.ChartPoint{},
		Active:   []models.ChartPoint{},
		Inactive: []models.ChartPoint{},
	}
	for _, r := range records {
		if len(charts.Total) < chartPoints {
			charts.Total = append(charts.Total, chartPoint(r))
		}
		switch {
		case r.status == models.StatusActive && len(charts.Active) < chartPoints:
			charts.Active = append(charts.Active, chartPoint(r))
		case r.status == models.StatusInactive && len(charts.Inactive) < chartPoints:
			charts.Inactive = append(charts.Inactive, chartPoint(r))
		}
	}
	reverse(charts.Total)
	reverse(charts.Active)
	reverse(charts.Inactive)
	return charts
}

func chartPoint(r listed) models.ChartPoint {
	return models.ChartPoint{Date: r.createdAt.Format("2006-01-02"), Value: 1}
}

func reverse(points []models.ChartPoint) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
