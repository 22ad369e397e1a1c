package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"aura_server/config"
	"aura_server/internal/ai"
	"aura_server/internal/api"
	"aura_server/internal/site"
	"aura_server/internal/store"
)

func runServe(cmd *cobra.Command, state *rootState, version string) error {
	cfg, err := config.LoadConfig(state.configDir)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	server, projects, err := buildServer(cfg, version)
	if err != nil {
		return err
	}
	defer func() {
		if err := projects.Close(); err != nil {
			log.Printf("WARN: closing project store: %v", err)
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Info: starting API server on %s", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// --- Graceful Shutdown ---
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("API server listen error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Println("Info: shutdown signal received, stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("WARN: API server forced shutdown: %v", err)
	} else {
		log.Println("Info: API server gracefully stopped.")
	}
	return nil
}

// buildServer assembles the store, generators and router described by cfg.
// The caller owns the returned store.
func buildServer(cfg config.Config, version string) (*http.Server, store.Store, error) {
	projects, err := store.Open(cfg.StoreDriver, cfg.DataDir, cfg.MaxProjects)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open project store: %w", err)
	}

	completer := ai.NewCompleter(ai.Settings{
		OpenAIKey:      cfg.OpenAIKey,
		OpenAIModel:    cfg.OpenAIModel,
		AnthropicKey:   cfg.AnthropicKey,
		AnthropicModel: cfg.AnthropicModel,
		MaxTokens:      cfg.RemoteMaxTokens,
	})
	local := site.NewGenerator()
	pipeline := ai.NewGenerator(completer, local, cfg.RemoteTimeout)
	log.Printf("Info: site generation provider: %s, project store: %s", pipeline.Provider(), cfg.StoreDriver)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}

	handler := api.NewAPIHandler(pipeline, local, projects, cfg.PublicURL, version)
	router := api.NewRouter(handler)

	// remote generation may take up to RemoteTimeout
	return &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RemoteTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}, projects, nil
}
