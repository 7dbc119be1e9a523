package badge

import "time"

// Badge is a user's copy of one catalog definition plus its progress state.
type Badge struct {
	UserID      string
	BadgeID     int
	Name        string
	Description string
	IconType    string
	Earned      bool
	EarnedDate  *time.Time
	Progress    int
	Total       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Progress   *int
	Earned     *bool
	EarnedDate *time.Time
}

func (p Patch) IsEmpty() bool {
	return p.Progress == nil && p.Earned == nil && p.EarnedDate == nil
}

// Apply returns b with p applied. Progress is an absolute set and is not
// linked to Earned. EarnedDate is assigned earnedAt only when Earned moves
// from false to true.
func Apply(b Badge, p Patch, earnedAt time.Time) Badge {
	out := b
	if p.Progress != nil {
		out.Progress = *p.Progress
	}
	if p.Earned != nil {
		if *p.Earned && !b.Earned {
			at := earnedAt
			out.EarnedDate = &at
		}
		out.Earned = *p.Earned
	}
	return out
}

// EarnedTransition reports whether applying p to b awards the badge.
func EarnedTransition(b Badge, p Patch) bool {
	return p.Earned != nil && *p.Earned && !b.Earned
}

// ApplyIncrement adds delta to the progress counter, clamped to [0, Total].
func ApplyIncrement(b Badge, delta int) Badge {
	out := b
	out.Progress = clamp(b.Progress+delta, 0, b.Total)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if hi >= lo && v > hi {
		return hi
	}
	return v
}
