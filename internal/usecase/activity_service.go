package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/activity"
)

const maxMinutesPerDay = 24 * 60

type ActivityService struct {
	repo activity.Repository
	now  func() time.Time
}

func NewActivityService(repo activity.Repository) *ActivityService {
	return &ActivityService{
		repo: repo,
		now:  time.Now,
	}
}

type LogStudyTimeInput struct {
	UserID  string
	Date    string
	Minutes int
}

// Log adds study minutes to a day's total. An empty date means today (UTC).
func (s *ActivityService) Log(ctx context.Context, input LogStudyTimeInput) (activity.Day, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.Log", input.UserID)
	defer span.End()

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return activity.Day{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Minutes <= 0 || input.Minutes > maxMinutesPerDay {
		return activity.Day{}, fmt.Errorf("%w: minutes must be between 1 and %d", ErrInvalidInput, maxMinutesPerDay)
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = activity.FormatDate(s.now())
	}
	if _, err := time.Parse(activity.DateLayout, date); err != nil {
		return activity.Day{}, fmt.Errorf("%w: date must use YYYY-MM-DD", ErrInvalidInput)
	}

	day, err := s.repo.AddMinutes(ctx, userID, date, input.Minutes)
	if err != nil {
		return activity.Day{}, fmt.Errorf("add study minutes user=%s date=%s: %w", userID, date, err)
	}

	return day, nil
}

// ListLastYear returns the user's daily totals from one year ago through today.
func (s *ActivityService) ListLastYear(ctx context.Context, userID string) ([]activity.Day, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.ListLastYear", userID)
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	today := s.now().UTC()
	from := activity.FormatDate(today.AddDate(-1, 0, 0))
	to := activity.FormatDate(today)

	days, err := s.repo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list study days user=%s: %w", userID, err)
	}
	return days, nil
}
