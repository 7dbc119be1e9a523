package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/learnquest/internal/domain/peerpod"
	idgen "github.com/riskibarqy/learnquest/internal/platform/id"
)

const (
	defaultPostPageSize = 10
	maxPostPageSize     = 50
	maxPostContentRunes = 5000
)

type PeerPodService struct {
	repo  peerpod.Repository
	idGen idgen.Generator
	now   func() time.Time
}

func NewPeerPodService(repo peerpod.Repository, idGen idgen.Generator) *PeerPodService {
	return &PeerPodService{
		repo:  repo,
		idGen: idGen,
		now:   time.Now,
	}
}

type CreatePostInput struct {
	UserID     string
	UserName   string
	UserImage  string
	BadgeImage string
	Content    string
}

type AddCommentInput struct {
	PostID    string
	UserID    string
	UserName  string
	UserImage string
	Content   string
}

type LikeResult struct {
	Liked     bool
	LikeCount int
}

type CommentResult struct {
	Comment      peerpod.Comment
	CommentCount int
}

// List returns one page of posts, newest first. Zero page or limit fall back to defaults.
func (s *PeerPodService) List(ctx context.Context, page, limit int) (peerpod.Page, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeerPodService.List")
	defer span.End()

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPostPageSize
	}
	if page < 1 {
		return peerpod.Page{}, fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}
	if limit < 1 || limit > maxPostPageSize {
		return peerpod.Page{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxPostPageSize)
	}

	req := peerpod.PageRequest{Page: page, Limit: limit}
	items, total, err := s.repo.List(ctx, req)
	if err != nil {
		return peerpod.Page{}, fmt.Errorf("list posts: %w", err)
	}

	return peerpod.Page{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *PeerPodService) Create(ctx context.Context, input CreatePostInput) (peerpod.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeerPodService.Create")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.UserName = strings.TrimSpace(input.UserName)
	input.Content = strings.TrimSpace(input.Content)
	if input.UserID == "" || input.UserName == "" || input.Content == "" {
		return peerpod.Post{}, fmt.Errorf("%w: user id, user name and content are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(input.Content) > maxPostContentRunes {
		return peerpod.Post{}, fmt.Errorf("%w: content exceeds %d characters", ErrInvalidInput, maxPostContentRunes)
	}

	postID, err := s.idGen.NewID()
	if err != nil {
		return peerpod.Post{}, fmt.Errorf("generate post id: %w", err)
	}

	now := s.now().UTC()
	post := peerpod.Post{
		ID:         postID,
		UserID:     input.UserID,
		UserName:   input.UserName,
		UserImage:  strings.TrimSpace(input.UserImage),
		BadgeImage: strings.TrimSpace(input.BadgeImage),
		Content:    input.Content,
		Likes:      []string{},
		Comments:   []peerpod.Comment{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return peerpod.Post{}, fmt.Errorf("create post: %w", err)
	}

	return post, nil
}

func (s *PeerPodService) Get(ctx context.Context, postID string) (peerpod.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeerPodService.Get")
	defer span.End()

	postID = strings.TrimSpace(postID)
	if postID == "" {
		return peerpod.Post{}, fmt.Errorf("%w: post id is required", ErrInvalidInput)
	}

	post, exists, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return peerpod.Post{}, fmt.Errorf("get post=%s: %w", postID, err)
	}
	if !exists {
		return peerpod.Post{}, fmt.Errorf("%w: post=%s", ErrNotFound, postID)
	}

	return post, nil
}

// Delete removes a post. Only its author may delete it.
func (s *PeerPodService) Delete(ctx context.Context, postID, userID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeerPodService.Delete")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return fmt.Errorf("%w: post=%s is owned by another user", ErrForbidden, post.ID)
	}

	if err := s.repo.Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("delete post=%s: %w", post.ID, err)
	}
	return nil
}

func (s *PeerPodService) ToggleLike(ctx context.Context, postID, userID string) (LikeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeerPodService.ToggleLike")
	defer span.End()

	postID = strings.TrimSpace(postID)
	userID = strings.TrimSpace(userID)
	if postID == "" || userID == "" {
		return LikeResult{}, fmt.Errorf("%w: post id and user id are required", ErrInvalidInput)
	}

	liked, count, exists, err := s.repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return LikeResult{}, fmt.Errorf("toggle like post=%s: %w", postID, err)
	}
	if !exists {
		return LikeResult{}, fmt.Errorf("%w: post=%s", ErrNotFound, postID)
	}

	return LikeResult{Liked: liked, LikeCount: count}, nil
}

func (s *PeerPodService) AddComment(ctx context.Context, input AddCommentInput) (CommentResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeerPodService.AddComment")
	defer span.End()

	input.PostID = strings.TrimSpace(input.PostID)
	input.UserID = strings.TrimSpace(input.UserID)
	input.UserName = strings.TrimSpace(input.UserName)
	input.Content = strings.TrimSpace(input.Content)
	if input.PostID == "" || input.UserID == "" || input.UserName == "" || input.Content == "" {
		return CommentResult{}, fmt.Errorf("%w: post id, user id, user name and content are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(input.Content) > maxPostContentRunes {
		return CommentResult{}, fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, maxPostContentRunes)
	}

	commentID, err := s.idGen.NewID()
	if err != nil {
		return CommentResult{}, fmt.Errorf("generate comment id: %w", err)
	}

	comment := peerpod.Comment{
		ID:        commentID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		UserImage: strings.TrimSpace(input.UserImage),
		Content:   input.Content,
		CreatedAt: s.now().UTC(),
	}
	count, exists, err := s.repo.AddComment(ctx, input.PostID, comment)
	if err != nil {
		return CommentResult{}, fmt.Errorf("add comment post=%s: %w", input.PostID, err)
	}
	if !exists {
		return CommentResult{}, fmt.Errorf("%w: post=%s", ErrNotFound, input.PostID)
	}

	return CommentResult{Comment: comment, CommentCount: count}, nil
}
