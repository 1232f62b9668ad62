package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexdoe/portfolio-backend/internal/assist"
	"github.com/alexdoe/portfolio-backend/internal/config"
	"github.com/alexdoe/portfolio-backend/internal/mailer"
	"github.com/alexdoe/portfolio-backend/internal/repository"
	"github.com/alexdoe/portfolio-backend/internal/repository/storage"
	"github.com/alexdoe/portfolio-backend/internal/section"
	"github.com/alexdoe/portfolio-backend/internal/service"
	"github.com/alexdoe/portfolio-backend/transport/rest"
	"github.com/alexdoe/portfolio-backend/transport/websocket"
)

// lockedRand routes the injectable random source to math/rand's global,
// mutex-guarded generator so sessions can share it.
type lockedRand struct{}

func (lockedRand) Intn(n int) int { return rand.Intn(n) }

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	themeRepo := repository.NewThemeRepository(redisStorage.Connection)
	themeService := service.NewThemeService(themeRepo)

	contactMailer, err := mailer.New(conf.SMTP)
	if err != nil {
		return fmt.Errorf("could not create mailer: %w", err)
	}

	assistant, err := buildAssistant(ctx, log, conf.Gemini)
	if err != nil {
		return fmt.Errorf("could not create assistant: %w", err)
	}

	registry := section.DefaultRegistry()

	// a typed nil must not reach the interface fields, both layers treat a
	// nil interface as "assist disabled"
	contactService := service.NewContactService(logger, contactMailer, nil)
	restHandlers := rest.NewHandlers(logger, registry, themeService, contactService, nil)
	if assistant != nil {
		contactService = service.NewContactService(logger, contactMailer, assistant)
		restHandlers = rest.NewHandlers(logger, registry, themeService, contactService, assistant)
	}

	botService := service.NewBotService(lockedRand{})
	gamePlayService := service.NewGamePlayService(botService)
	newRPS := func() *service.RPSEngine {
		return service.NewRPSEngine(lockedRand{})
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(conf.HTTPPort, restHandlers); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run WebSocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, registry, gamePlayService, newRPS, conf.Site)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// buildAssistant returns nil when no API key is configured; the site works
// without the composer, the assist surfaces just answer with a fallback.
func buildAssistant(ctx context.Context, log *slog.Logger, conf config.Gemini) (*assist.Assistant, error) {
	if conf.APIKey == "" {
		log.Warn("no gemini api key configured, AI assist disabled")
		return nil, nil
	}

	assistant, err := assist.New(ctx, conf.APIKey, conf.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant: %w", err)
	}

	return assistant, nil
}
