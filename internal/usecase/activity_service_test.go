package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/learnquest/internal/infrastructure/repository/memory"
)

func TestActivityService_LogAccumulates(t *testing.T) {
	service := NewActivityService(memory.NewActivityRepository())
	service.now = func() time.Time { return time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC) }

	if _, err := service.Log(t.Context(), LogStudyTimeInput{UserID: "u1", Minutes: 30}); err != nil {
		t.Fatalf("log study time: %v", err)
	}
	day, err := service.Log(t.Context(), LogStudyTimeInput{UserID: "u1", Date: "2025-06-10", Minutes: 15})
	if err != nil {
		t.Fatalf("log study time: %v", err)
	}
	if day.Minutes != 45 || day.Date != "2025-06-10" {
		t.Fatalf("unexpected day: %+v", day)
	}

	days, err := service.ListLastYear(t.Context(), "u1")
	if err != nil {
		t.Fatalf("list study days: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("unexpected day count: %d", len(days))
	}
}

func TestActivityService_LogValidation(t *testing.T) {
	service := NewActivityService(memory.NewActivityRepository())

	cases := []LogStudyTimeInput{
		{Minutes: 10},
		{UserID: "u1", Minutes: 0},
		{UserID: "u1", Minutes: maxMinutesPerDay + 1},
		{UserID: "u1", Date: "10/06/2025", Minutes: 10},
	}
	for _, input := range cases {
		if _, err := service.Log(t.Context(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", input, err)
		}
	}
}
