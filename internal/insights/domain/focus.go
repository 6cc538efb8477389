package domain

import "math"

// FocusScore computes a 0-100 ratio of focused to focused-plus-distracted
// minutes. When neither focused nor distracted minutes are present the score
// is 100: absence of distraction counts as perfect focus.
func FocusScore(records []Record) int {
	focused := FocusedMinutes(records)
	distracted := DistractedMinutes(records)

	total := focused + distracted
	if total == 0 {
		return 100
	}

	return int(math.Round(float64(focused) / float64(total) * 100))
}

// FocusedMinutes sums the minutes of focused-type records.
func FocusedMinutes(records []Record) int {
	var minutes int
	for _, record := range records {
		if IsFocused(record.Type) {
			minutes += record.Minutes()
		}
	}
	return minutes
}

// DistractedMinutes sums the minutes of distracted-type records.
func DistractedMinutes(records []Record) int {
	var minutes int
	for _, record := range records {
		if IsDistracted(record.Type) {
			minutes += record.Minutes()
		}
	}
	return minutes
}

// DistractionBreakdown sums minutes per distraction source, zero-filled for
// every distracted type.
func DistractionBreakdown(records []Record) map[string]int {
	breakdown := make(map[string]int, len(DistractedTypes))
	for activityType := range DistractedTypes {
		breakdown[activityType] = 0
	}
	for _, record := range records {
		if IsDistracted(record.Type) {
			breakdown[record.Type] += record.Minutes()
		}
	}
	return breakdown
}
