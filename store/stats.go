package store

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/PrayerVault/models"
)

// Aggregates are recomputed on every call; the data set is small and a
// stats view must never see stale numbers.

// GetTotals returns the count and whole-minute sum over all ended sessions.
// An empty store yields zeros, never NULL.
func (s *Store) GetTotals(ctx context.Context) (models.SessionStats, error) {
	var stats models.SessionStats
	_, err := s.db.From(sessionTable).
		Select(
			goqu.COUNT("*").As("count"),
			goqu.L("COALESCE(SUM(duration) / 60000, 0)").As("total_minutes"),
		).
		Where(goqu.C("duration").IsNotNull()).
		ScanStructContext(ctx, &stats)
	if err != nil {
		return models.SessionStats{}, storageErr("fetch totals", err)
	}
	return stats, nil
}

// GetTotalsByType groups the ended sessions by type.
func (s *Store) GetTotalsByType(ctx context.Context) ([]models.TypeStats, error) {
	var stats []models.TypeStats
	err := s.db.From(sessionTable).
		Select(
			goqu.C("type"),
			goqu.COUNT("*").As("count"),
			goqu.L("SUM(duration) / 60000").As("total_minutes"),
		).
		Where(goqu.C("duration").IsNotNull()).
		GroupBy(goqu.C("type")).
		Order(goqu.C("type").Asc()).
		ScanStructsContext(ctx, &stats)
	if err != nil {
		return nil, storageErr("fetch totals by type", err)
	}
	return stats, nil
}

// GetMonthlyTotals returns minutes per UTC month ("YYYY-MM") for the most
// recent 12 months that have ended sessions, oldest first.
func (s *Store) GetMonthlyTotals(ctx context.Context) ([]models.MonthlyStats, error) {
	monthExpr := goqu.L("strftime('%Y-%m', datetime(startTime / 1000, 'unixepoch'))")

	var stats []models.MonthlyStats
	err := s.db.From(sessionTable).
		Select(
			monthExpr.As("month"),
			goqu.L("SUM(duration) / 60000").As("total_minutes"),
		).
		Where(goqu.C("duration").IsNotNull()).
		GroupBy(monthExpr).
		Order(goqu.C("month").Desc()).
		Limit(12).
		ScanStructsContext(ctx, &stats)
	if err != nil {
		return nil, storageErr("fetch monthly totals", err)
	}

	for i, j := 0, len(stats)-1; i < j; i, j = i+1, j-1 {
		stats[i], stats[j] = stats[j], stats[i]
	}
	return stats, nil
}

// GetDailyTotals returns minutes per local calendar date of startTime,
// oldest first. Grouping happens in Go so that the date bucket follows the
// process time zone, not SQLite's; sessions still running count as zero
// minutes. Totals are rounded to the nearest whole minute per day.
func (s *Store) GetDailyTotals(ctx context.Context) ([]models.DailyStats, error) {
	sessions, err := s.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64)
	for _, session := range sessions {
		date := time.UnixMilli(session.Start_Time).Format("2006-01-02")
		var ms int64
		if session.Duration != nil {
			ms = *session.Duration
		}
		totals[date] += ms
	}

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	stats := make([]models.DailyStats, 0, len(dates))
	for _, date := range dates {
		stats = append(stats, models.DailyStats{
			Date:    date,
			Minutes: int64(math.Round(float64(totals[date]) / 60000)),
		})
	}
	return stats, nil
}
