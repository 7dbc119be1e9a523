package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/learnquest/internal/usecase"
)

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPosts")
	defer span.End()

	page, err := parseOptionalInt(r.URL.Query().Get("page"), "page")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := parseOptionalInt(r.URL.Query().Get("limit"), "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.peerPodService.List(ctx, page, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list posts failed", "page", page, "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	posts := make([]postDTO, 0, len(result.Items))
	for _, post := range result.Items {
		posts = append(posts, postToDTO(ctx, post))
	}

	writeSuccess(ctx, w, http.StatusOK, postPageDTO{
		Posts: posts,
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
		Pages: result.Pages,
	})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePost")
	defer span.End()

	var req createPostRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	post, err := h.peerPodService.Create(ctx, usecase.CreatePostInput{
		UserID:     req.UserID,
		UserName:   req.UserName,
		UserImage:  req.UserImage,
		BadgeImage: req.BadgeImage,
		Content:    req.Content,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create post failed", "user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, postToDTO(ctx, post))
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPost")
	defer span.End()

	postID := strings.TrimSpace(r.PathValue("postID"))
	post, err := h.peerPodService.Get(ctx, postID)
	if err != nil {
		h.logger.WarnContext(ctx, "get post failed", "post_id", postID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, postToDTO(ctx, post))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePost")
	defer span.End()

	postID := strings.TrimSpace(r.PathValue("postID"))
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		var req deletePostRequest
		if err := h.decodeJSON(ctx, r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
		userID = req.UserID
	}

	if err := h.peerPodService.Delete(ctx, postID, userID); err != nil {
		h.logger.WarnContext(ctx, "delete post failed", "post_id", postID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": postID})
}

func (h *Handler) TogglePostLike(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TogglePostLike")
	defer span.End()

	postID := strings.TrimSpace(r.PathValue("postID"))
	var req toggleLikeRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.peerPodService.ToggleLike(ctx, postID, req.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle like failed", "post_id", postID, "user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, likeDTO{Liked: result.Liked, LikeCount: result.LikeCount})
}

func (h *Handler) AddPostComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPostComment")
	defer span.End()

	postID := strings.TrimSpace(r.PathValue("postID"))
	var req addCommentRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.peerPodService.AddComment(ctx, usecase.AddCommentInput{
		PostID:    postID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		UserImage: req.UserImage,
		Content:   req.Content,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add comment failed", "post_id", postID, "user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, commentResultDTO{
		Comment:      commentToDTO(result.Comment),
		CommentCount: result.CommentCount,
	})
}

func parseOptionalInt(raw, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}
