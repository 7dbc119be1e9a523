package activity

import "context"

type Repository interface {
	// AddMinutes atomically increments the day's total, creating the row if needed.
	AddMinutes(ctx context.Context, userID, date string, minutes int) (Day, error)
	// ListRange returns days with fromDate <= date <= toDate ordered by date.
	ListRange(ctx context.Context, userID, fromDate, toDate string) ([]Day, error)
}
