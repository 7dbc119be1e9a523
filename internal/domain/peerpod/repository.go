package peerpod

import "context"

type Repository interface {
	List(ctx context.Context, page PageRequest) ([]Post, int64, error)
	Create(ctx context.Context, post Post) error
	GetByID(ctx context.Context, postID string) (Post, bool, error)
	Delete(ctx context.Context, postID string) error
	// ToggleLike adds or removes userID from the post likes in one atomic step.
	ToggleLike(ctx context.Context, postID, userID string) (liked bool, likeCount int, exists bool, err error)
	AddComment(ctx context.Context, postID string, comment Comment) (commentCount int, exists bool, err error)
}
