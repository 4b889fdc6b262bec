// cmd/server/main.go
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ubiqedu/marketing-agent-backend/internal/config"
	"github.com/ubiqedu/marketing-agent-backend/internal/controller"
	"github.com/ubiqedu/marketing-agent-backend/internal/db"
	"github.com/ubiqedu/marketing-agent-backend/internal/handler"
	"github.com/ubiqedu/marketing-agent-backend/internal/llm"
	"github.com/ubiqedu/marketing-agent-backend/internal/logging"
	"github.com/ubiqedu/marketing-agent-backend/internal/queue"
	"github.com/ubiqedu/marketing-agent-backend/internal/repository"
	"github.com/ubiqedu/marketing-agent-backend/internal/service"
	"github.com/ubiqedu/marketing-agent-backend/internal/webhook"
)

func main() {
	logger := logging.NewLoggerWithService("marketing-agent")
	cfg := config.Load(logger)

	db.Init(logger)

	postRepo := &repository.PostRepository{DB: db.DB}
	settingsRepo := &repository.SettingsRepository{DB: db.DB}

	var completer llm.Completer
	if cfg.OpenAIAPIKey != "" {
		completer = llm.NewOpenAIClient(llm.Config{
			APIKey: cfg.OpenAIAPIKey,
			APIURL: cfg.OpenAIAPIURL,
			Model:  cfg.OpenAIModel,
		})
	} else {
		logger.Warn("OPENAI_API_KEY not set, content generation is disabled")
	}

	var notifier queue.Queue
	if cfg.AMQPURL != "" {
		amqpNotifier, err := queue.NewAMQPNotifier(cfg.AMQPURL)
		if err != nil {
			logger.WithError(err).Warn("failed to connect to AMQP, notifications disabled")
		} else {
			defer amqpNotifier.Close()
			notifier = amqpNotifier
		}
	}

	webhookClient := webhook.NewClient(cfg.WebhookContentType)

	campaignService := &service.CampaignService{
		Webhook:    webhookClient,
		PlannerURL: cfg.Webhooks.CampaignPlanner,
		Queue:      notifier,
		Log:        logger,
	}
	contentService := &service.ContentService{
		LLM:   completer,
		Posts: postRepo,
		Log:   logger,
	}

	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
	}
	contentController := &controller.ContentController{
		ContentService: contentService,
		Settings:       settingsRepo,
	}
	relayController := &controller.RelayController{
		Webhook:           webhookClient,
		LLM:               completer,
		DefaultPlannerURL: cfg.Webhooks.CampaignPlanner,
		Log:               logger,
	}

	postHandler := &handler.PostHandler{Repo: postRepo}
	settingsHandler := &handler.SettingsHandler{Repo: settingsRepo}

	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Server-side function endpoints (no user identity required; the relay
	// forwards whatever the browser sends).
	r.Post("/functions/generate-campaign", relayController.GenerateCampaignRelay)
	r.Post("/functions/generate-content", relayController.GenerateContentRelay)

	// Dashboard API
	r.Group(func(r chi.Router) {
		r.Use(handler.RequireUser)

		r.Get("/agents/content/settings", settingsHandler.GetSettingsHandler)
		r.Put("/agents/content/settings", settingsHandler.SaveSettingsHandler)
		r.Post("/agents/content/generate", contentController.GenerateContent)

		r.Get("/posts", postHandler.ListPostsHandler)
		r.Post("/posts", postHandler.CreatePostHandler)
		r.Patch("/posts/{id}/status", postHandler.UpdatePostStatusHandler)
		r.Delete("/posts/{id}", postHandler.DeletePostHandler)

		r.Post("/campaigns/generate", campaignController.GenerateCampaign)
		r.Post("/campaigns/preview", campaignController.PreviewCampaign)
	})

	logger.Infof("server running on %s", cfg.ListenAddr)
	logger.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}
