package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

type Server struct {
	mux *chi.Mux
}

type config struct {
	webhookSecret types.GitHubWebhookSecret
}

type Option func(*config)

// WithWebhookSecret enables signature validation of GitHub webhooks.
func WithWebhookSecret(secret types.GitHubWebhookSecret) Option {
	return func(cfg *config) {
		cfg.webhookSecret = secret
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}
	h := &handler{uc: uc, webhookSecret: cfg.webhookSecret}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "ok"})
	})

	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", h.githubWebhook)
		r.Post("/ci/deployment", h.deploymentWebhook)
		r.Post("/ci/failure", h.deploymentFailureWebhook)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/docker", func(r chi.Router) {
			r.Post("/status", h.containerStatus)
			r.Get("/containers", h.listContainers)
			r.Get("/containers/{name}", h.inspectContainer)
			r.Get("/containers/{name}/logs", h.containerLogs)
			r.Post("/containers/{name}/{op}", h.controlContainer)
		})

		r.Route("/ci/jobs/{job}/builds", func(r chi.Router) {
			r.Post("/", h.triggerBuild)
			r.Get("/last", h.lastBuild)
			r.Get("/{number}", h.buildDetail)
		})

		r.Route("/board/items", func(r chi.Router) {
			r.Get("/", h.listBoardItems)
			r.Post("/{id}/comments", h.commentBoardItem)
		})

		r.Get("/monitors", h.listMonitors)

		r.Route("/github/repos/{owner}/{repo}", func(r chi.Router) {
			r.Get("/", h.getRepository)
			r.Get("/commits/{sha}", h.getCommit)
			r.Get("/pulls/{number}", h.getPullRequest)
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

type handler struct {
	uc            interfaces.UseCase
	webhookSecret types.GitHubWebhookSecret
}
