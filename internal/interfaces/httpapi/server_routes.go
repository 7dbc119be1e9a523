package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerGamificationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leaderboard", handler.ListLeaderboard)
	mux.HandleFunc("GET /v1/badges", handler.ListBadges)
	mux.HandleFunc("POST /v1/badges", handler.UpdateBadge)
	mux.HandleFunc("POST /v1/badges/progress", handler.AddBadgeProgress)
	if handler.events != nil {
		mux.Handle("GET /v1/ws/gamification", handler.events)
	}
}

func registerProfileRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/profile", handler.GetProfile)
	mux.HandleFunc("POST /v1/profile", handler.CreateProfile)
	mux.HandleFunc("PUT /v1/profile", handler.UpdateProfile)
	mux.HandleFunc("POST /v1/profile/coins", handler.AwardCoins)
}

func registerPeerPodRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/peerpod/posts", handler.ListPosts)
	mux.HandleFunc("POST /v1/peerpod/posts", handler.CreatePost)
	mux.HandleFunc("GET /v1/peerpod/posts/{postID}", handler.GetPost)
	mux.HandleFunc("DELETE /v1/peerpod/posts/{postID}", handler.DeletePost)
	mux.HandleFunc("POST /v1/peerpod/posts/{postID}/likes", handler.TogglePostLike)
	mux.HandleFunc("POST /v1/peerpod/posts/{postID}/comments", handler.AddPostComment)
}

func registerActivityRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/activity", handler.ListStudyActivity)
	mux.HandleFunc("POST /v1/activity", handler.LogStudyTime)
}
