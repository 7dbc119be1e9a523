package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/learnquest/internal/domain/activity"
	qb "github.com/riskibarqy/learnquest/internal/platform/querybuilder"
)

type studyDayTableModel struct {
	UserID  string `db:"user_id"`
	Day     string `db:"day"`
	Minutes int    `db:"minutes"`
}

type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) AddMinutes(ctx context.Context, userID, date string, minutes int) (activity.Day, error) {
	query, args, err := qb.InsertInto("study_days").
		Columns("user_id", "day", "minutes").
		Values(userID, date, minutes).
		Suffix(`ON CONFLICT (user_id, day)
DO UPDATE SET minutes = study_days.minutes + EXCLUDED.minutes
RETURNING user_id, to_char(day, 'YYYY-MM-DD') AS day, minutes`).
		ToSQL()
	if err != nil {
		return activity.Day{}, fmt.Errorf("build add study minutes query: %w", err)
	}

	var row studyDayTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return activity.Day{}, fmt.Errorf("add study minutes: %w", err)
	}
	return activity.Day{UserID: row.UserID, Date: row.Day, Minutes: row.Minutes}, nil
}

func (r *ActivityRepository) ListRange(ctx context.Context, userID, fromDate, toDate string) ([]activity.Day, error) {
	query, args, err := qb.Select("user_id", "to_char(day, 'YYYY-MM-DD') AS day", "minutes").
		From("study_days").
		Where(
			qb.Eq("user_id", userID),
			qb.Expr("day BETWEEN ?::date AND ?::date", fromDate, toDate),
		).
		OrderBy("study_days.day").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list study days query: %w", err)
	}

	var rows []studyDayTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list study days: %w", err)
	}

	out := make([]activity.Day, 0, len(rows))
	for _, row := range rows {
		out = append(out, activity.Day{UserID: row.UserID, Date: row.Day, Minutes: row.Minutes})
	}
	return out, nil
}
