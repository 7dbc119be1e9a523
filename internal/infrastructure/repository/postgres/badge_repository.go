package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/learnquest/internal/domain/badge"
	qb "github.com/riskibarqy/learnquest/internal/platform/querybuilder"
)

var badgeColumns = []string{
	"user_id",
	"badge_id",
	"name",
	"description",
	"icon_type",
	"earned",
	"earned_date",
	"progress",
	"total",
	"created_at",
	"updated_at",
}

type BadgeRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewBadgeRepository(db *sqlx.DB) *BadgeRepository {
	return &BadgeRepository{db: db, now: time.Now}
}

func (r *BadgeRepository) ListByUser(ctx context.Context, userID string) ([]badge.Badge, error) {
	query, args, err := qb.Select("*").From("user_badges").
		Where(qb.Eq("user_id", userID)).
		OrderBy("badge_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list badges query: %w", err)
	}

	var rows []badgeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}

	out := make([]badge.Badge, 0, len(rows))
	for _, row := range rows {
		out = append(out, badgeFromRow(row))
	}
	return out, nil
}

func (r *BadgeRepository) InsertMany(ctx context.Context, userID string, badges []badge.Badge) error {
	if len(badges) == 0 {
		return nil
	}

	builder := qb.InsertInto("user_badges").Columns(badgeColumns...)
	for _, b := range badges {
		builder.Values(
			userID,
			b.BadgeID,
			b.Name,
			b.Description,
			b.IconType,
			b.Earned,
			timePtrToNullTime(b.EarnedDate),
			b.Progress,
			b.Total,
			b.CreatedAt,
			b.UpdatedAt,
		)
	}
	query, args, err := builder.Suffix("ON CONFLICT (user_id, badge_id) DO NOTHING").ToSQL()
	if err != nil {
		return fmt.Errorf("build insert badges query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert badges: %w", err)
	}
	return nil
}

func (r *BadgeRepository) Get(ctx context.Context, userID string, badgeID int) (badge.Badge, bool, error) {
	query, args, err := qb.Select("*").From("user_badges").
		Where(qb.Eq("user_id", userID), qb.Eq("badge_id", badgeID)).
		ToSQL()
	if err != nil {
		return badge.Badge{}, false, fmt.Errorf("build get badge query: %w", err)
	}

	var row badgeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return badge.Badge{}, false, nil
		}
		return badge.Badge{}, false, fmt.Errorf("get badge: %w", err)
	}
	return badgeFromRow(row), true, nil
}

// ApplyPatch locks the row, applies the patch to the locked state and returns
// that state. Concurrent patches on the same badge are serialized by the lock.
func (r *BadgeRepository) ApplyPatch(ctx context.Context, userID string, badgeID int, patch badge.Patch, earnedAt time.Time) (badge.Badge, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return badge.Badge{}, false, fmt.Errorf("begin tx for badge patch: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lockQuery, lockArgs, err := qb.Select("*").From("user_badges").
		Where(qb.Eq("user_id", userID), qb.Eq("badge_id", badgeID)).
		ToSQL()
	if err != nil {
		return badge.Badge{}, false, fmt.Errorf("build lock badge query: %w", err)
	}

	var row badgeTableModel
	if err := tx.GetContext(ctx, &row, lockQuery+" FOR UPDATE", lockArgs...); err != nil {
		if isNotFound(err) {
			return badge.Badge{}, false, nil
		}
		return badge.Badge{}, false, fmt.Errorf("lock badge: %w", err)
	}

	prior := badgeFromRow(row)
	next := badge.Apply(prior, patch, earnedAt)

	query, args, err := qb.Update("user_badges").
		Set("progress", next.Progress).
		Set("earned", next.Earned).
		Set("earned_date", timePtrToNullTime(next.EarnedDate)).
		Set("updated_at", r.now().UTC()).
		Where(qb.Eq("user_id", userID), qb.Eq("badge_id", badgeID)).
		ToSQL()
	if err != nil {
		return badge.Badge{}, false, fmt.Errorf("build update badge query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return badge.Badge{}, false, fmt.Errorf("update badge: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return badge.Badge{}, false, fmt.Errorf("commit badge patch tx: %w", err)
	}
	return prior, true, nil
}

func (r *BadgeRepository) IncrementProgress(ctx context.Context, userID string, badgeID int, delta int) (badge.Badge, bool, error) {
	query, args, err := qb.Update("user_badges").
		SetExpr("progress", "LEAST(GREATEST(progress + ?, 0), total)", delta).
		Set("updated_at", r.now().UTC()).
		Where(qb.Eq("user_id", userID), qb.Eq("badge_id", badgeID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return badge.Badge{}, false, fmt.Errorf("build increment badge progress query: %w", err)
	}

	var row badgeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return badge.Badge{}, false, nil
		}
		return badge.Badge{}, false, fmt.Errorf("increment badge progress: %w", err)
	}
	return badgeFromRow(row), true, nil
}

func badgeFromRow(row badgeTableModel) badge.Badge {
	return badge.Badge{
		UserID:      row.UserID,
		BadgeID:     row.BadgeID,
		Name:        row.Name,
		Description: row.Description,
		IconType:    row.IconType,
		Earned:      row.Earned,
		EarnedDate:  nullTimeToTimePtr(row.EarnedDate),
		Progress:    row.Progress,
		Total:       row.Total,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}
