package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/learnquest/internal/domain/peerpod"
)

type PeerPodRepository struct {
	mu    sync.Mutex
	items map[string]peerpod.Post
}

func NewPeerPodRepository() *PeerPodRepository {
	return &PeerPodRepository{items: make(map[string]peerpod.Post)}
}

func (r *PeerPodRepository) List(_ context.Context, page peerpod.PageRequest) ([]peerpod.Post, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]peerpod.Post, 0, len(r.items))
	for _, p := range r.items {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	total := int64(len(all))
	start := page.Offset()
	if start >= len(all) {
		return []peerpod.Post{}, total, nil
	}
	end := min(start+page.Limit, len(all))

	out := make([]peerpod.Post, 0, end-start)
	for _, p := range all[start:end] {
		out = append(out, clonePost(p))
	}
	return out, total, nil
}

func (r *PeerPodRepository) Create(_ context.Context, post peerpod.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[post.ID] = clonePost(post)
	return nil
}

func (r *PeerPodRepository) GetByID(_ context.Context, postID string) (peerpod.Post, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[postID]
	if !ok {
		return peerpod.Post{}, false, nil
	}
	return clonePost(p), true, nil
}

func (r *PeerPodRepository) Delete(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, postID)
	return nil
}

func (r *PeerPodRepository) ToggleLike(_ context.Context, postID, userID string) (bool, int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[postID]
	if !ok {
		return false, 0, false, nil
	}

	liked := !p.LikedBy(userID)
	if liked {
		p.Likes = append(p.Likes, userID)
	} else {
		kept := p.Likes[:0:0]
		for _, id := range p.Likes {
			if id != userID {
				kept = append(kept, id)
			}
		}
		p.Likes = kept
	}
	r.items[postID] = p
	return liked, len(p.Likes), true, nil
}

func (r *PeerPodRepository) AddComment(_ context.Context, postID string, comment peerpod.Comment) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[postID]
	if !ok {
		return 0, false, nil
	}
	p.Comments = append(p.Comments, comment)
	p.UpdatedAt = comment.CreatedAt
	r.items[postID] = p
	return len(p.Comments), true, nil
}

func clonePost(p peerpod.Post) peerpod.Post {
	out := p
	out.Likes = append([]string{}, p.Likes...)
	out.Comments = append([]peerpod.Comment{}, p.Comments...)
	return out
}
