package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
	qb "github.com/riskibarqy/learnquest/internal/platform/querybuilder"
)

const (
	defaultRankChunkSize = 500
	defaultRankWorkers   = 4
)

type LeaderboardRepository struct {
	db        *sqlx.DB
	chunkSize int
	workers   int
}

// NewLeaderboardRepository splits rank writes into chunks of chunkSize rows,
// written by up to workers concurrent statements.
func NewLeaderboardRepository(db *sqlx.DB, chunkSize, workers int) *LeaderboardRepository {
	if chunkSize <= 0 {
		chunkSize = defaultRankChunkSize
	}
	if workers <= 0 {
		workers = defaultRankWorkers
	}
	return &LeaderboardRepository{db: db, chunkSize: chunkSize, workers: workers}
}

func (r *LeaderboardRepository) ListAll(ctx context.Context) ([]leaderboard.Entry, error) {
	query, args, err := qb.Select("*").From("leaderboard_entries").OrderBy("created_at", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leaderboard query: %w", err)
	}

	var rows []leaderboardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leaderboard entries: %w", err)
	}

	out := make([]leaderboard.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderboardFromRow(row))
	}
	return out, nil
}

func (r *LeaderboardRepository) BulkWriteRanks(ctx context.Context, updates []leaderboard.RankUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	chunks := chunkRankUpdates(updates, r.chunkSize)
	if len(chunks) == 1 {
		return r.writeRankChunk(ctx, chunks[0])
	}

	pool, err := ants.NewPool(min(r.workers, len(chunks)))
	if err != nil {
		return fmt.Errorf("create rank write pool: %w", err)
	}
	defer pool.Release()

	var (
		workers sync.WaitGroup
		mu      sync.Mutex
		errs    []error
	)
	for _, chunk := range chunks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := r.writeRankChunk(ctx, chunk); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}); err != nil {
			workers.Done()
			mu.Lock()
			errs = append(errs, fmt.Errorf("submit rank chunk: %w", err))
			mu.Unlock()
			break
		}
	}
	workers.Wait()

	return errors.Join(errs...)
}

func (r *LeaderboardRepository) writeRankChunk(ctx context.Context, chunk []leaderboard.RankUpdate) error {
	query, args := buildRankUpdateQuery(chunk)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write %d leaderboard ranks: %w", len(chunk), err)
	}
	return nil
}

func (r *LeaderboardRepository) GetByUserID(ctx context.Context, userID string) (leaderboard.Entry, bool, error) {
	query, args, err := qb.Select("*").From("leaderboard_entries").Where(qb.Eq("user_id", userID)).ToSQL()
	if err != nil {
		return leaderboard.Entry{}, false, fmt.Errorf("build get leaderboard entry query: %w", err)
	}

	var row leaderboardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return leaderboard.Entry{}, false, nil
		}
		return leaderboard.Entry{}, false, fmt.Errorf("get leaderboard entry: %w", err)
	}
	return leaderboardFromRow(row), true, nil
}

func (r *LeaderboardRepository) UpsertCoins(ctx context.Context, entry leaderboard.Entry) (leaderboard.Entry, error) {
	return r.writeCoins(ctx, entry, entry.Coins, coinsSetExpr)
}

func (r *LeaderboardRepository) IncrementCoins(ctx context.Context, entry leaderboard.Entry, delta int64) (leaderboard.Entry, error) {
	return r.writeCoins(ctx, entry, delta, coinsIncrementExpr)
}

const (
	coinsSetExpr       = "EXCLUDED.coins"
	coinsIncrementExpr = "leaderboard_entries.coins + EXCLUDED.coins"
)

func (r *LeaderboardRepository) writeCoins(ctx context.Context, entry leaderboard.Entry, coins int64, coinsExpr string) (leaderboard.Entry, error) {
	insertModel := leaderboardInsertModel{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Name:        entry.Name,
		Coins:       coins,
		LastUpdated: entry.LastUpdated,
	}
	query, args, err := qb.InsertModel("leaderboard_entries", insertModel, coinsConflictSuffix(coinsExpr))
	if err != nil {
		return leaderboard.Entry{}, fmt.Errorf("build leaderboard upsert query: %w", err)
	}

	var row leaderboardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return leaderboard.Entry{}, fmt.Errorf("upsert leaderboard coins user=%s: %w", entry.UserID, err)
	}
	return leaderboardFromRow(row), nil
}

// coinsConflictSuffix resolves the user_id conflict in the same statement so
// concurrent writers never read-modify-write the coin total.
func coinsConflictSuffix(coinsExpr string) string {
	return `ON CONFLICT (user_id)
DO UPDATE SET
    coins = ` + coinsExpr + `,
    name = COALESCE(NULLIF(EXCLUDED.name, ''), leaderboard_entries.name),
    last_updated = EXCLUDED.last_updated
RETURNING *`
}

func leaderboardFromRow(row leaderboardTableModel) leaderboard.Entry {
	return leaderboard.Entry{
		ID:           row.ID,
		UserID:       row.UserID,
		Name:         row.Name,
		Coins:        row.Coins,
		Points:       row.Points,
		PreviousRank: nullInt32ToIntPtr(row.PreviousRank),
		CurrentRank:  nullInt32ToIntPtr(row.CurrentRank),
		RankChange:   leaderboard.RankChange(row.RankChange),
		LastUpdated:  row.LastUpdated.UTC(),
	}
}

func chunkRankUpdates(updates []leaderboard.RankUpdate, size int) [][]leaderboard.RankUpdate {
	chunks := make([][]leaderboard.RankUpdate, 0, (len(updates)+size-1)/size)
	for start := 0; start < len(updates); start += size {
		end := min(start+size, len(updates))
		chunks = append(chunks, updates[start:end])
	}
	return chunks
}

// buildRankUpdateQuery writes a chunk in one statement by joining against a
// VALUES list.
func buildRankUpdateQuery(chunk []leaderboard.RankUpdate) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`UPDATE leaderboard_entries AS l
SET current_rank = v.current_rank,
    previous_rank = v.previous_rank,
    rank_change = v.rank_change
FROM (VALUES `)

	args := make([]any, 0, len(chunk)*4)
	for i, u := range chunk {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 4
		fmt.Fprintf(&sb, "($%d::text, $%d::int, $%d::int, $%d::text)", base+1, base+2, base+3, base+4)
		args = append(args, u.ID, u.CurrentRank, u.PreviousRank, string(u.RankChange))
	}
	sb.WriteString(`) AS v(id, current_rank, previous_rank, rank_change)
WHERE l.id = v.id`)

	return sb.String(), args
}
