package domain

import "math"

// Points weights per activity minute. Breaks and browsing still earn a
// little, to encourage honest logging.
const (
	pointsPerCodingMinute   = 2.0
	pointsPerLearningMinute = 1.5
	pointsPerMeetingMinute  = 1.0
	pointsPerBreakMinute    = 0.5
	pointsPerBrowsingMinute = 0.25
	pointsPerBadge          = 50
)

// Badge is a named achievement predicate over cumulative stats.
type Badge struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Icon        string           `json:"icon"`
	Description string           `json:"description"`
	Earned      func(Stats) bool `json:"-"`
}

// Badges is the fixed badge table, evaluated exhaustively on every call.
var Badges = []Badge{
	{
		ID: "first_step", Name: "First Step", Icon: "🎯",
		Description: "Log your first activity",
		Earned:      func(s Stats) bool { return s.TotalActivities >= 1 },
	},
	{
		ID: "productive_hour", Name: "Productive Hour", Icon: "⏰",
		Description: "Log 60 minutes of coding",
		Earned:      func(s Stats) bool { return s.CodingMinutes >= 60 },
	},
	{
		ID: "coding_master", Name: "Coding Master", Icon: "💻",
		Description: "Log 5 hours of coding",
		Earned:      func(s Stats) bool { return s.CodingMinutes >= 300 },
	},
	{
		ID: "balanced", Name: "Work-Life Balance", Icon: "⚖️",
		Description: "Take at least 30 mins of breaks",
		Earned:      func(s Stats) bool { return s.BreakMinutes >= 30 },
	},
	{
		ID: "learner", Name: "Lifelong Learner", Icon: "📚",
		Description: "Spend 2 hours learning",
		Earned:      func(s Stats) bool { return s.LearningMinutes >= 120 },
	},
	{
		ID: "dedicated", Name: "Dedicated Dev", Icon: "🔥",
		Description: "Log 10+ activities",
		Earned:      func(s Stats) bool { return s.TotalActivities >= 10 },
	},
	{
		ID: "marathon", Name: "Marathon Coder", Icon: "🏃",
		Description: "Log 10 hours total",
		Earned:      func(s Stats) bool { return s.TotalMinutes >= 600 },
	},
	{
		ID: "focus_king", Name: "Focus King", Icon: "👑",
		Description: "80%+ coding ratio",
		Earned: func(s Stats) bool {
			return s.TotalMinutes > 0 && float64(s.CodingMinutes)/float64(s.TotalMinutes) >= 0.8
		},
	},
}

// Level is one entry of the fixed leveling table.
type Level struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	MinPoints int    `json:"min_points"`
}

// Levels is the fixed leveling table, ordered by ascending MinPoints.
var Levels = []Level{
	{Level: 1, Name: "Beginner", Icon: "🌱", MinPoints: 0},
	{Level: 2, Name: "Apprentice", Icon: "🌿", MinPoints: 100},
	{Level: 3, Name: "Developer", Icon: "🌳", MinPoints: 300},
	{Level: 4, Name: "Senior Dev", Icon: "🚀", MinPoints: 600},
	{Level: 5, Name: "Tech Lead", Icon: "⭐", MinPoints: 1000},
	{Level: 6, Name: "Architect", Icon: "🏆", MinPoints: 1500},
	{Level: 7, Name: "Legend", Icon: "👑", MinPoints: 2500},
}

// Rewards is the full rewards evaluation for one stats snapshot.
type Rewards struct {
	Points          int
	Level           Level
	NextLevel       *Level
	ProgressPercent float64 // toward the next level, 100 at the top
	EarnedBadges    []Badge
	LockedBadges    []Badge
}

// ComputeRewards evaluates points, badges, and level for the given stats.
func ComputeRewards(stats Stats) Rewards {
	var earned, locked []Badge
	for _, badge := range Badges {
		if badge.Earned(stats) {
			earned = append(earned, badge)
		} else {
			locked = append(locked, badge)
		}
	}

	points := int(math.Floor(
		float64(stats.CodingMinutes)*pointsPerCodingMinute +
			float64(stats.LearningMinutes)*pointsPerLearningMinute +
			float64(stats.MeetingMinutes)*pointsPerMeetingMinute +
			float64(stats.BreakMinutes)*pointsPerBreakMinute +
			float64(stats.BrowsingMinutes)*pointsPerBrowsingMinute +
			float64(len(earned)*pointsPerBadge),
	))

	level := currentLevel(points)
	next := nextLevel(level)

	progress := 100.0
	if next != nil {
		progress = float64(points-level.MinPoints) / float64(next.MinPoints-level.MinPoints) * 100
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
	}

	return Rewards{
		Points:          points,
		Level:           level,
		NextLevel:       next,
		ProgressPercent: progress,
		EarnedBadges:    earned,
		LockedBadges:    locked,
	}
}

// currentLevel returns the highest level whose threshold is met.
func currentLevel(points int) Level {
	for i := len(Levels) - 1; i >= 0; i-- {
		if points >= Levels[i].MinPoints {
			return Levels[i]
		}
	}
	return Levels[0]
}

// nextLevel returns the entry after the current one, or nil at the top.
func nextLevel(current Level) *Level {
	for i, level := range Levels {
		if level.Level == current.Level && i+1 < len(Levels) {
			next := Levels[i+1]
			return &next
		}
	}
	return nil
}
