// Package domain contains the pure derived-metrics engine: day bucketing,
// focus scoring, streaks, rewards, and the insight types. Everything here is
// a deterministic transform over a record list and an explicit reference time.
package domain

// Activity type classification. The vocabulary is open: unknown types count
// toward grand totals but never toward classified metrics.
var (
	// FocusedTypes contribute to the focus score numerator.
	FocusedTypes = map[string]bool{
		"coding":   true,
		"learning": true,
		"meeting":  true,
	}

	// DistractedTypes contribute to the focus score denominator only.
	DistractedTypes = map[string]bool{
		"youtube":   true,
		"instagram": true,
		"reddit":    true,
		"browsing":  true,
	}

	// ProductiveTypes drive streaks and week-over-week trends.
	ProductiveTypes = map[string]bool{
		"coding":   true,
		"learning": true,
	}
)

// KnownTypes is the fixed vocabulary recognized by the metrics, used to
// zero-fill day buckets so chart series always have every series key.
var KnownTypes = []string{
	"coding",
	"learning",
	"meeting",
	"break",
	"browsing",
	"youtube",
	"instagram",
	"reddit",
}

// IsFocused reports whether the type counts as focused time.
func IsFocused(activityType string) bool { return FocusedTypes[activityType] }

// IsDistracted reports whether the type counts as distracted time.
func IsDistracted(activityType string) bool { return DistractedTypes[activityType] }

// IsProductive reports whether the type counts toward streaks and trends.
func IsProductive(activityType string) bool { return ProductiveTypes[activityType] }
