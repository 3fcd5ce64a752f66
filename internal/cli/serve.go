package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/policyme/cortex/internal/adjudicate"
	"github.com/policyme/cortex/internal/cache"
	"github.com/policyme/cortex/internal/llm"
	"github.com/policyme/cortex/internal/model"
	"github.com/policyme/cortex/internal/score"
	"github.com/policyme/cortex/internal/server"
)

var (
	addr      string
	rateLimit float64
	rateBurst int
	cacheTTL  time.Duration

	aiProvider string
	aiModel    string
	aiBaseURL  string
	aiTimeout  int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the claim-analysis HTTP API",
	Long: `Serve starts the HTTP API:

  GET  /                     service metadata
  GET  /health               health status
  POST /api/claims/analyze   fraud score + adjudication for one incident
  GET  /api/dashboard/stats  aggregate statistics
  GET  /metrics              prometheus metrics

Example:
  cortex serve
  cortex serve --addr :9090 --ai-provider openai --ai-model gpt-4o-mini
  OPENAI_API_KEY=sk-... cortex serve --ai-provider openai`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	defaults := model.DefaultConfig()

	// Server flags
	serveCmd.Flags().StringVar(&addr, "addr", defaults.Server.Addr, "listen address")
	serveCmd.Flags().Float64Var(&rateLimit, "rate-limit", defaults.Server.RateLimit, "requests per second per client (0 disables)")
	serveCmd.Flags().IntVar(&rateBurst, "rate-burst", defaults.Server.RateBurst, "per-client burst allowance")
	serveCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", defaults.Cache.TTL, "memoize AI adjudications for this long (0 disables)")

	// AI collaborator flags
	serveCmd.Flags().StringVar(&aiProvider, "ai-provider", "", "AI provider (openai, ollama); empty disables the AI path")
	serveCmd.Flags().StringVar(&aiModel, "ai-model", "", "AI model name")
	serveCmd.Flags().StringVar(&aiBaseURL, "ai-base-url", "", "AI endpoint override")
	serveCmd.Flags().IntVar(&aiTimeout, "ai-timeout", defaults.LLM.Timeout, "AI call timeout in seconds; timeouts trigger the fallback rule")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg := model.DefaultConfig()
	cfg.Server.Addr = addr
	cfg.Server.RateLimit = rateLimit
	cfg.Server.RateBurst = rateBurst
	cfg.Cache.TTL = cacheTTL

	cfg.LLM.Provider = aiProvider
	cfg.LLM.Model = aiModel
	cfg.LLM.BaseURL = aiBaseURL
	cfg.LLM.Timeout = aiTimeout

	// Credentials come from the environment only. A present key enables the
	// OpenAI path; an absent key disables it without error and the fallback
	// rule takes over.
	if cfg.LLM.Provider == "" && os.Getenv("OPENAI_API_KEY") != "" {
		cfg.LLM.Provider = "openai"
	}
	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			logger.Warn("OPENAI_API_KEY not set; AI path disabled")
			cfg.LLM.Provider = ""
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" && cfg.LLM.BaseURL == "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return fmt.Errorf("configure AI provider: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if provider != nil {
		if provider.IsAvailable(ctx) {
			logger.Info("AI collaborator configured", "provider", provider.Name())
		} else {
			logger.Warn("AI collaborator unreachable; the fallback rule will adjudicate failed calls",
				"provider", provider.Name())
		}
	} else {
		logger.Info("no AI provider configured; adjudicating with the deterministic fallback rule")
	}

	adjudicator := adjudicate.New(provider, logger)
	if cfg.Cache.TTL > 0 {
		adjudicator = adjudicator.WithCache(
			cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL), cfg.Cache.TTL)
	}

	srv := server.New(cfg.Server, logger, score.NewScorer(), adjudicator)
	return srv.Run(ctx)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
