package queries

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/felixgeelhaar/cadence/internal/insights/domain"
)

// DayFocus is one day of the weekly focus series.
type DayFocus struct {
	Date              string `json:"date"` // YYYY-MM-DD
	FocusScore        int    `json:"focus_score"`
	FocusedMinutes    int    `json:"focused_minutes"`
	DistractedMinutes int    `json:"distracted_minutes"`
}

// HourBlockFocus is one four-hour block of today's focus series.
type HourBlockFocus struct {
	Label      string `json:"label"` // e.g. "8:00"
	FocusScore int    `json:"focus_score"`
	Activities int    `json:"activities"`
}

// FocusReportResult is the full focus view: today's score, the weekly
// series, today's four-hour blocks, and the distraction breakdown.
type FocusReportResult struct {
	TodayScore           int              `json:"today_score"`
	WeeklyAverage        int              `json:"weekly_average"`
	FocusedToday         int              `json:"focused_today"`
	DistractedToday      int              `json:"distracted_today"`
	WeeklySeries         []DayFocus       `json:"weekly_series"`
	TodayBlocks          []HourBlockFocus `json:"today_blocks"`
	DistractionBreakdown map[string]int   `json:"distraction_breakdown"`
}

// GetFocusReportHandler assembles the focus metrics.
type GetFocusReportHandler struct {
	source domain.RecordSource
}

// NewGetFocusReportHandler creates a new GetFocusReportHandler.
func NewGetFocusReportHandler(source domain.RecordSource) *GetFocusReportHandler {
	return &GetFocusReportHandler{source: source}
}

// Handle computes the focus report relative to now.
func (h *GetFocusReportHandler) Handle(ctx context.Context, now time.Time) (*FocusReportResult, error) {
	records, err := h.source.RecentRecords(ctx, recordFetchLimit)
	if err != nil {
		return nil, err
	}

	today := domain.FilterDay(records, now)
	weeklySeries := weeklyFocusSeries(records, now)

	weeklyTotal := 0
	for _, day := range weeklySeries {
		weeklyTotal += day.FocusScore
	}

	return &FocusReportResult{
		TodayScore:           domain.FocusScore(today),
		WeeklyAverage:        int(math.Round(float64(weeklyTotal) / float64(len(weeklySeries)))),
		FocusedToday:         domain.FocusedMinutes(today),
		DistractedToday:      domain.DistractedMinutes(today),
		WeeklySeries:         weeklySeries,
		TodayBlocks:          todayFocusBlocks(today),
		DistractionBreakdown: domain.DistractionBreakdown(today),
	}, nil
}

// weeklyFocusSeries computes per-day focus scores for the trailing week,
// oldest first.
func weeklyFocusSeries(records []domain.Record, now time.Time) []DayFocus {
	series := make([]DayFocus, 0, domain.DefaultWindowDays)
	for i := domain.DefaultWindowDays - 1; i >= 0; i-- {
		day := domain.StartOfDay(now).AddDate(0, 0, -i)
		dayRecords := domain.FilterDay(records, day)
		series = append(series, DayFocus{
			Date:              domain.DateKey(day),
			FocusScore:        domain.FocusScore(dayRecords),
			FocusedMinutes:    domain.FocusedMinutes(dayRecords),
			DistractedMinutes: domain.DistractedMinutes(dayRecords),
		})
	}
	return series
}

// todayFocusBlocks scores today's records in four-hour blocks.
func todayFocusBlocks(today []domain.Record) []HourBlockFocus {
	blocks := make([]HourBlockFocus, 0, 6)
	for start := 0; start < 24; start += 4 {
		var blockRecords []domain.Record
		for _, record := range today {
			hour := record.LoggedAt.Hour()
			if hour >= start && hour < start+4 {
				blockRecords = append(blockRecords, record)
			}
		}
		blocks = append(blocks, HourBlockFocus{
			Label:      fmtBlockLabel(start),
			FocusScore: domain.FocusScore(blockRecords),
			Activities: len(blockRecords),
		})
	}
	return blocks
}

func fmtBlockLabel(hour int) string {
	return fmt.Sprintf("%d:00", hour)
}
