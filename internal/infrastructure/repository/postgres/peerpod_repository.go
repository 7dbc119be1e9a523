package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/learnquest/internal/domain/peerpod"
	qb "github.com/riskibarqy/learnquest/internal/platform/querybuilder"
)

type PeerPodRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPeerPodRepository(db *sqlx.DB) *PeerPodRepository {
	return &PeerPodRepository{db: db, now: time.Now}
}

func (r *PeerPodRepository) List(ctx context.Context, page peerpod.PageRequest) ([]peerpod.Post, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM peerpod_posts"); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	query, args, err := qb.Select("*").From("peerpod_posts").
		OrderBy("created_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build list posts query: %w", err)
	}

	var rows []postTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}

	posts, err := r.hydrate(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PeerPodRepository) Create(ctx context.Context, post peerpod.Post) error {
	query, args, err := qb.InsertModel("peerpod_posts", postTableModel{
		ID:         post.ID,
		UserID:     post.UserID,
		UserName:   post.UserName,
		UserImage:  post.UserImage,
		BadgeImage: post.BadgeImage,
		Content:    post.Content,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert post query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PeerPodRepository) GetByID(ctx context.Context, postID string) (peerpod.Post, bool, error) {
	query, args, err := qb.Select("*").From("peerpod_posts").Where(qb.Eq("id", postID)).ToSQL()
	if err != nil {
		return peerpod.Post{}, false, fmt.Errorf("build get post query: %w", err)
	}

	var row postTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return peerpod.Post{}, false, nil
		}
		return peerpod.Post{}, false, fmt.Errorf("get post: %w", err)
	}

	posts, err := r.hydrate(ctx, []postTableModel{row})
	if err != nil {
		return peerpod.Post{}, false, err
	}
	return posts[0], true, nil
}

// Delete removes the post. Likes and comments go with it through ON DELETE CASCADE.
func (r *PeerPodRepository) Delete(ctx context.Context, postID string) error {
	query, args, err := qb.DeleteFrom("peerpod_posts").Where(qb.Eq("id", postID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete post query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (r *PeerPodRepository) ToggleLike(ctx context.Context, postID, userID string) (bool, int, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, 0, false, fmt.Errorf("begin tx for like toggle: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exists, err := lockPost(ctx, tx, postID)
	if err != nil || !exists {
		return false, 0, exists, err
	}

	deleteQuery, deleteArgs, err := qb.DeleteFrom("post_likes").
		Where(qb.Eq("post_id", postID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return false, 0, false, fmt.Errorf("build unlike query: %w", err)
	}
	res, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		return false, 0, false, fmt.Errorf("unlike post: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, 0, false, fmt.Errorf("read unlike result: %w", err)
	}

	liked := removed == 0
	if liked {
		insertQuery, insertArgs, err := qb.InsertModel("post_likes", postLikeTableModel{
			PostID:    postID,
			UserID:    userID,
			CreatedAt: r.now().UTC(),
		}, "")
		if err != nil {
			return false, 0, false, fmt.Errorf("build like query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return false, 0, false, fmt.Errorf("like post: %w", err)
		}
	}

	var count int
	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM post_likes WHERE post_id = $1", postID); err != nil {
		return false, 0, false, fmt.Errorf("count post likes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, 0, false, fmt.Errorf("commit like toggle tx: %w", err)
	}
	return liked, count, true, nil
}

func (r *PeerPodRepository) AddComment(ctx context.Context, postID string, comment peerpod.Comment) (int, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin tx for comment: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exists, err := lockPost(ctx, tx, postID)
	if err != nil || !exists {
		return 0, exists, err
	}

	insertQuery, insertArgs, err := qb.InsertModel("post_comments", postCommentTableModel{
		ID:        comment.ID,
		PostID:    postID,
		UserID:    comment.UserID,
		UserName:  comment.UserName,
		UserImage: comment.UserImage,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}, "")
	if err != nil {
		return 0, false, fmt.Errorf("build insert comment query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return 0, false, fmt.Errorf("insert comment: %w", err)
	}

	touchQuery, touchArgs, err := qb.Update("peerpod_posts").
		Set("updated_at", comment.CreatedAt).
		Where(qb.Eq("id", postID)).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build touch post query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, touchQuery, touchArgs...); err != nil {
		return 0, false, fmt.Errorf("touch post: %w", err)
	}

	var count int
	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM post_comments WHERE post_id = $1", postID); err != nil {
		return 0, false, fmt.Errorf("count post comments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit comment tx: %w", err)
	}
	return count, true, nil
}

func lockPost(ctx context.Context, tx *sqlx.Tx, postID string) (bool, error) {
	var id string
	if err := tx.GetContext(ctx, &id, "SELECT id FROM peerpod_posts WHERE id = $1 FOR UPDATE", postID); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("lock post: %w", err)
	}
	return true, nil
}

// hydrate attaches likes and comments to the given rows, preserving row order.
func (r *PeerPodRepository) hydrate(ctx context.Context, rows []postTableModel) ([]peerpod.Post, error) {
	if len(rows) == 0 {
		return []peerpod.Post{}, nil
	}

	ids := make([]any, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	likesQuery, likesArgs, err := qb.Select("*").From("post_likes").
		Where(qb.In("post_id", ids)).
		OrderBy("created_at", "user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list post likes query: %w", err)
	}
	var likeRows []postLikeTableModel
	if err := r.db.SelectContext(ctx, &likeRows, likesQuery, likesArgs...); err != nil {
		return nil, fmt.Errorf("list post likes: %w", err)
	}

	commentsQuery, commentsArgs, err := qb.Select("*").From("post_comments").
		Where(qb.In("post_id", ids)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list post comments query: %w", err)
	}
	var commentRows []postCommentTableModel
	if err := r.db.SelectContext(ctx, &commentRows, commentsQuery, commentsArgs...); err != nil {
		return nil, fmt.Errorf("list post comments: %w", err)
	}

	likes := make(map[string][]string, len(rows))
	for _, l := range likeRows {
		likes[l.PostID] = append(likes[l.PostID], l.UserID)
	}
	comments := make(map[string][]peerpod.Comment, len(rows))
	for _, c := range commentRows {
		comments[c.PostID] = append(comments[c.PostID], peerpod.Comment{
			ID:        c.ID,
			UserID:    c.UserID,
			UserName:  c.UserName,
			UserImage: c.UserImage,
			Content:   c.Content,
			CreatedAt: c.CreatedAt.UTC(),
		})
	}

	out := make([]peerpod.Post, 0, len(rows))
	for _, row := range rows {
		post := peerpod.Post{
			ID:         row.ID,
			UserID:     row.UserID,
			UserName:   row.UserName,
			UserImage:  row.UserImage,
			BadgeImage: row.BadgeImage,
			Content:    row.Content,
			Likes:      likes[row.ID],
			Comments:   comments[row.ID],
			CreatedAt:  row.CreatedAt.UTC(),
			UpdatedAt:  row.UpdatedAt.UTC(),
		}
		if post.Likes == nil {
			post.Likes = []string{}
		}
		if post.Comments == nil {
			post.Comments = []peerpod.Comment{}
		}
		out = append(out, post)
	}
	return out, nil
}
