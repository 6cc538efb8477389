package services

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/cadence/internal/insights/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func findInsight(insights []domain.Insight, kind string) *domain.Insight {
	for i := range insights {
		if insights[i].Kind == kind {
			return &insights[i]
		}
	}
	return nil
}

func TestGenerate_EmptyInput(t *testing.T) {
	generator := NewInsightGenerator()

	insights := generator.Generate(nil, testNow)

	// With no coding at all the break ratio defaults to 1, so the burnout
	// detector reports healthy habits; the distraction detector celebrates
	// the empty log. Nothing else has enough data to fire.
	require.Len(t, insights, 2)
	assert.Equal(t, "healthy-habits", insights[0].Kind)
	assert.Equal(t, "focus-master", insights[1].Kind)
}

func TestGenerate_SortedByPriority(t *testing.T) {
	generator := NewInsightGenerator()

	// Heavy coding with almost no breaks over the trailing week triggers the
	// critical burnout insight alongside several lower-priority ones.
	var records []domain.Record
	for i := 0; i < 7; i++ {
		records = append(records, domain.Record{
			Type: "coding", DurationMinutes: 200,
			LoggedAt: testNow.AddDate(0, 0, -i).Add(-2 * time.Hour),
		})
	}

	insights := generator.Generate(records, testNow)

	require.NotEmpty(t, insights)
	for i := 1; i < len(insights); i++ {
		assert.LessOrEqual(t, insights[i-1].Priority.Rank(), insights[i].Priority.Rank())
	}
	assert.Equal(t, domain.PriorityCritical, insights[0].Priority)
}

func TestDetectPeakCodingHours(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 120, LoggedAt: time.Date(2026, 3, 13, 9, 15, 0, 0, time.UTC)},
		{Type: "coding", DurationMinutes: 30, LoggedAt: time.Date(2026, 3, 13, 15, 0, 0, 0, time.UTC)},
	}

	insight := generator.detectPeakCodingHours(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "peak-performance", insight.Kind)
	assert.Contains(t, insight.Message, "9 AM – 11 AM")
	// 60 + 120/10 = 72
	assert.Equal(t, 72, insight.Confidence)
	assert.Equal(t, domain.PriorityHigh, insight.Priority)
}

func TestDetectPeakCodingHours_CapsConfidence(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 1000, LoggedAt: time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC)},
	}

	insight := generator.detectPeakCodingHours(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, 95, insight.Confidence)
}

func TestDetectPeakCodingHours_NoCoding(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "browsing", DurationMinutes: 60, LoggedAt: testNow},
	}

	assert.Nil(t, generator.detectPeakCodingHours(records, testNow))
}

func TestDetectMeetingImpact_NeedsTwoDays(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "meeting", DurationMinutes: 90, LoggedAt: testNow},
		{Type: "coding", DurationMinutes: 30, LoggedAt: testNow},
	}

	assert.Nil(t, generator.detectMeetingImpact(records, testNow))
}

func TestDetectMeetingImpact_NegativeImpact(t *testing.T) {
	generator := NewInsightGenerator()
	heavyDay := time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC)
	lightDay := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	records := []domain.Record{
		{Type: "meeting", DurationMinutes: 90, LoggedAt: heavyDay},
		{Type: "coding", DurationMinutes: 30, LoggedAt: heavyDay},
		{Type: "meeting", DurationMinutes: 20, LoggedAt: lightDay},
		{Type: "coding", DurationMinutes: 200, LoggedAt: lightDay},
	}

	insight := generator.detectMeetingImpact(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "meeting-impact", insight.Kind)
	assert.Equal(t, 78, insight.Confidence)
	assert.Equal(t, domain.PriorityMedium, insight.Priority)
}

func TestDetectMeetingImpact_Balanced(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 100, LoggedAt: time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)},
		{Type: "coding", DurationMinutes: 110, LoggedAt: time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC)},
	}

	insight := generator.detectMeetingImpact(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "meeting-balance", insight.Kind)
	assert.Equal(t, 72, insight.Confidence)
}

func TestDetectBurnoutRisk_UsesSevenDayAverage(t *testing.T) {
	generator := NewInsightGenerator()
	// 200 coding minutes on a single day: break ratio is low, but the daily
	// average over seven days (200/7 ≈ 28.6) stays under every threshold.
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 200, LoggedAt: testNow.Add(-3 * time.Hour)},
		{Type: "break", DurationMinutes: 5, LoggedAt: testNow.Add(-1 * time.Hour)},
	}

	assert.Nil(t, generator.detectBurnoutRisk(records, testNow))
}

func TestDetectBurnoutRisk_Critical(t *testing.T) {
	generator := NewInsightGenerator()
	var records []domain.Record
	for i := 0; i < 7; i++ {
		records = append(records, domain.Record{
			Type: "coding", DurationMinutes: 200,
			LoggedAt: testNow.AddDate(0, 0, -i).Add(-time.Hour),
		})
	}

	insight := generator.detectBurnoutRisk(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "burnout-risk", insight.Kind)
	assert.Equal(t, domain.PriorityCritical, insight.Priority)
	assert.Equal(t, 85, insight.Confidence)
}

func TestDetectBurnoutRisk_Healthy(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 100, LoggedAt: testNow.Add(-4 * time.Hour)},
		{Type: "break", DurationMinutes: 20, LoggedAt: testNow.Add(-2 * time.Hour)},
	}

	insight := generator.detectBurnoutRisk(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "healthy-habits", insight.Kind)
	assert.Equal(t, domain.PriorityLow, insight.Priority)
}

func TestDetectBurnoutRisk_NoCodingIsHealthy(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "break", DurationMinutes: 30, LoggedAt: testNow.Add(-time.Hour)},
	}

	insight := generator.detectBurnoutRisk(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "healthy-habits", insight.Kind)
}

func TestDetectDistractionPattern_FocusMaster(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 60, LoggedAt: testNow},
	}

	insight := generator.detectDistractionPattern(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "focus-master", insight.Kind)
	assert.Equal(t, 90, insight.Confidence)
}

func TestDetectDistractionPattern_PeakHourAndSource(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "youtube", DurationMinutes: 50, LoggedAt: time.Date(2026, 3, 13, 14, 0, 0, 0, time.UTC)},
		{Type: "reddit", DurationMinutes: 10, LoggedAt: time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC)},
	}

	insight := generator.detectDistractionPattern(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "distraction-pattern", insight.Kind)
	assert.Contains(t, insight.Message, "2 PM")
	assert.Contains(t, insight.Message, "youtube")
	assert.Equal(t, domain.PriorityMedium, insight.Priority)
}

func TestDetectProductivityStreak(t *testing.T) {
	generator := NewInsightGenerator()

	var week []domain.Record
	for i := 0; i < 8; i++ {
		week = append(week, domain.Record{
			Type: "coding", DurationMinutes: 30,
			LoggedAt: testNow.AddDate(0, 0, -i),
		})
	}

	achievement := generator.detectProductivityStreak(week, testNow)
	require.NotNil(t, achievement)
	assert.Equal(t, "streak-achievement", achievement.Kind)
	assert.Equal(t, "8-Day Productivity Streak!", achievement.Title)
	assert.Equal(t, 95, achievement.Confidence)

	building := generator.detectProductivityStreak(week[:3], testNow)
	require.NotNil(t, building)
	assert.Equal(t, "streak-building", building.Kind)

	assert.Nil(t, generator.detectProductivityStreak(week[:2], testNow))
}

func TestDetectWeeklyTrend_Improvement(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 150, LoggedAt: testNow.AddDate(0, 0, -2)},
		{Type: "coding", DurationMinutes: 100, LoggedAt: testNow.AddDate(0, 0, -9)},
	}

	insight := generator.detectWeeklyTrend(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "improvement", insight.Kind)
	assert.Contains(t, insight.Message, "50%")
	assert.Equal(t, 88, insight.Confidence)
}

func TestDetectWeeklyTrend_Decline(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 50, LoggedAt: testNow.AddDate(0, 0, -2)},
		{Type: "coding", DurationMinutes: 100, LoggedAt: testNow.AddDate(0, 0, -9)},
	}

	insight := generator.detectWeeklyTrend(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "decline", insight.Kind)
	assert.Contains(t, insight.Message, "50%")
	assert.Equal(t, domain.PriorityMedium, insight.Priority)
}

func TestDetectWeeklyTrend_NoBaseline(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 150, LoggedAt: testNow.AddDate(0, 0, -2)},
	}

	assert.Nil(t, generator.detectWeeklyTrend(records, testNow))
}

func TestDetectWeeklyTrend_Stable(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 100, LoggedAt: testNow.AddDate(0, 0, -2)},
		{Type: "coding", DurationMinutes: 100, LoggedAt: testNow.AddDate(0, 0, -9)},
	}

	insight := generator.detectWeeklyTrend(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "stable", insight.Kind)
}

func TestDetectLearningHabits_Champion(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 100, LoggedAt: testNow},
		{Type: "learning", DurationMinutes: 25, LoggedAt: testNow},
	}

	insight := generator.detectLearningHabits(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "learning-champion", insight.Kind)
}

func TestDetectLearningHabits_Gap(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 400, LoggedAt: testNow},
	}

	insight := generator.detectLearningHabits(records, testNow)

	require.NotNil(t, insight)
	assert.Equal(t, "learning-gap", insight.Kind)
	assert.Equal(t, domain.PriorityMedium, insight.Priority)
}

func TestDetectLearningHabits_NoSignal(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 100, LoggedAt: testNow},
	}

	assert.Nil(t, generator.detectLearningHabits(records, testNow))
}

func TestDetectSessionLength(t *testing.T) {
	generator := NewInsightGenerator()

	session := func(minutes int) domain.Record {
		return domain.Record{Type: "coding", DurationMinutes: minutes, LoggedAt: testNow}
	}

	tests := []struct {
		name     string
		minutes  int
		wantKind string
	}{
		{"long sessions", 150, "long-sessions"},
		{"short sessions", 15, "short-sessions"},
		{"optimal sessions", 60, "optimal-sessions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []domain.Record{
				session(tt.minutes), session(tt.minutes), session(tt.minutes),
				session(tt.minutes), session(tt.minutes),
			}
			insight := generator.detectSessionLength(records, testNow)
			require.NotNil(t, insight)
			assert.Equal(t, tt.wantKind, insight.Kind)
		})
	}
}

func TestDetectSessionLength_NeedsFiveSessions(t *testing.T) {
	generator := NewInsightGenerator()
	records := []domain.Record{
		{Type: "coding", DurationMinutes: 60, LoggedAt: testNow},
		{Type: "coding", DurationMinutes: 60, LoggedAt: testNow},
	}

	assert.Nil(t, generator.detectSessionLength(records, testNow))
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "12 AM", formatHour(0))
	assert.Equal(t, "9 AM", formatHour(9))
	assert.Equal(t, "12 PM", formatHour(12))
	assert.Equal(t, "2 PM", formatHour(14))
	assert.Equal(t, "11 PM", formatHour(23))
	assert.Equal(t, "1 AM", formatHour(25))
}
