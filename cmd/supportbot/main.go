// supportbot is the Prushal support chatbot service.
//
// It exposes a JSON API for classifying user utterances against the FAQ
// corpus and holding per-session conversation state, plus an optional
// Discord gateway when DISCORD_TOKEN is set.
//
// External dependencies: none at runtime beyond the corpus file. The corpus
// must load completely or the process refuses to start.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/prushal/supportbot/internal/classify"
	"github.com/prushal/supportbot/internal/corpus"
	"github.com/prushal/supportbot/internal/discord"
	"github.com/prushal/supportbot/internal/dispatch"
	"github.com/prushal/supportbot/internal/followup"
	"github.com/prushal/supportbot/internal/match"
	"github.com/prushal/supportbot/internal/session"
	"github.com/prushal/supportbot/internal/smalltalk"
	"github.com/prushal/supportbot/internal/spell"
)

// Config holds service configuration, populated from environment variables.
type Config struct {
	Port           string // HTTP port (default "8180")
	CorpusPath     string // FAQ corpus file (default "content.json")
	FuzzyThreshold int    // minimum 0-100 match score (default 80)
	FuzzyMinLength int    // minimum query length to match (default 2)
	DiscordToken   string // enables the Discord gateway when set
	DiscordChannel string // optional channel restriction
}

func loadConfig() Config {
	return Config{
		Port:           envOr("PORT", "8180"),
		CorpusPath:     envOr("CORPUS_PATH", "content.json"),
		FuzzyThreshold: envIntOr("FUZZY_THRESHOLD", match.DefaultThreshold),
		FuzzyMinLength: envIntOr("FUZZY_MIN_LENGTH", match.DefaultMinLength),
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordChannel: os.Getenv("DISCORD_CHANNEL_ID"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[config] Ignoring non-numeric %s=%q", key, v)
	}
	return fallback
}

func main() {
	// Load .env file (optional - won't error if missing)
	if err := godotenv.Load(); err == nil {
		log.Println("[config] Loaded .env file")
	}

	cfg := loadConfig()

	faqs, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	log.Printf("[corpus] Loaded %d FAQ entries, %d keywords", faqs.Len(), len(faqs.Vocabulary()))

	svc := newService(faqs, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /respond", svc.handleRespond)
	mux.HandleFunc("GET /health", svc.handleHealth)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	var gateway *discord.Gateway
	if cfg.DiscordToken != "" {
		gateway, err = discord.NewGateway(discord.Config{
			Token:     cfg.DiscordToken,
			ChannelID: cfg.DiscordChannel,
		}, svc.dispatcher)
		if err != nil {
			log.Fatalf("Failed to create Discord gateway: %v", err)
		}
		if err := gateway.Start(); err != nil {
			log.Fatalf("Failed to start Discord gateway: %v", err)
		}
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		if gateway != nil {
			gateway.Stop()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("supportbot listening on :%s (corpus: %s)", cfg.Port, cfg.CorpusPath)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

// newService wires the classification pipeline for the transport layer.
func newService(faqs *corpus.Corpus, cfg Config) *Service {
	matcher := match.New(faqs.Vocabulary())
	matcher.SetLimits(cfg.FuzzyThreshold, cfg.FuzzyMinLength)

	dispatcher := dispatch.New(
		session.NewStore(),
		followup.New(nil),
		classify.New(faqs, matcher, spell.NewNormalizer(faqs.Vocabulary()), nil),
		smalltalk.New(nil),
	)

	return &Service{
		corpus:     faqs,
		dispatcher: dispatcher,
		started:    time.Now(),
	}
}
