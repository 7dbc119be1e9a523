package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/learnquest/internal/domain/activity"
)

type ActivityRepository struct {
	mu    sync.Mutex
	items map[string]map[string]int
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{items: make(map[string]map[string]int)}
}

func (r *ActivityRepository) AddMinutes(_ context.Context, userID, date string, minutes int) (activity.Day, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	days, ok := r.items[userID]
	if !ok {
		days = make(map[string]int)
		r.items[userID] = days
	}
	days[date] += minutes
	return activity.Day{UserID: userID, Date: date, Minutes: days[date]}, nil
}

func (r *ActivityRepository) ListRange(_ context.Context, userID, fromDate, toDate string) ([]activity.Day, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]activity.Day, 0)
	for date, minutes := range r.items[userID] {
		// YYYY-MM-DD compares correctly as a string.
		if date < fromDate || date > toDate {
			continue
		}
		out = append(out, activity.Day{UserID: userID, Date: date, Minutes: minutes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
