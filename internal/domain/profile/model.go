package profile

import "time"

// Profile is the learner's public identity and coin wallet.
type Profile struct {
	UserID       string
	Name         string
	ProfileImage string
	Coins        int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Changes lists the fields of a partial profile update.
type Changes struct {
	Name         *string
	ProfileImage *string
	Coins        *int64
}
