package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"usersearch/internal/config"
	"usersearch/internal/devserver"
	"usersearch/internal/eventbus"
	"usersearch/internal/logger"
	"usersearch/internal/search"
	"usersearch/internal/ui"
	"usersearch/internal/ui/toast"
	"usersearch/internal/ui/views"
)

func main() {
	var (
		configPath string
		baseURL    string
		debounce   time.Duration
		query      string
		serve      bool
		usersFile  string
		addr       string
	)
	flag.StringVar(&configPath, "config", "", "Path to a config file (default: ./"+config.LocalFileName+" or the user config dir)")
	flag.StringVar(&baseURL, "url", "", "Base URL of the backend serving /api/users/search")
	flag.DurationVar(&debounce, "debounce", 0, "Quiet interval before a search is sent (e.g. 300ms)")
	flag.StringVar(&query, "q", "", "Run one search, print the results and exit")
	flag.BoolVar(&serve, "serve", false, "Run the development backend instead of the search view")
	flag.StringVar(&usersFile, "users", "", "TOML users file for -serve")
	flag.StringVar(&addr, "addr", "", "Listen address for -serve")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if debounce > 0 {
		cfg.Debounce = config.Duration(debounce)
	}
	if usersFile != "" {
		cfg.Server.UsersFile = usersFile
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	switch {
	case serve:
		err = runServer(ctx, cfg)
	case query != "":
		err = runOnce(ctx, cfg, query)
	default:
		err = runUI(ctx, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	svc := config.NewConfigService()
	if path != "" {
		return svc.LoadFromPath(path)
	}
	cfg, _, err := svc.Load()
	return cfg, err
}

func newClient(cfg *config.Config) *search.Client {
	return search.NewClient(search.Options{
		BaseURL:     cfg.BaseURL,
		Endpoint:    cfg.Endpoint,
		EncodeQuery: cfg.EncodeQuery,
		Timeout:     cfg.RequestTimeout.Std(),
	})
}

func assets(cfg *config.Config) views.Assets {
	return views.Assets{PlaceholderAvatar: cfg.PlaceholderAvatar, VerifiedBadge: cfg.VerifiedBadge}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	if err := logger.InitStderr(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Server.UsersFile == "" {
		return fmt.Errorf("-serve needs a users file (-users or [server] users_file)")
	}
	dir, err := devserver.LoadDirectory(cfg.Server.UsersFile)
	if err != nil {
		return err
	}
	log.Info().Int("users", dir.Len()).Str("file", cfg.Server.UsersFile).Msg("users loaded")

	router := devserver.NewRouter(dir, cfg.Endpoint, cfg.Server.AllowedOrigins)
	return devserver.Serve(ctx, cfg.Server.Addr, router)
}

func runOnce(ctx context.Context, cfg *config.Config, query string) error {
	if err := logger.InitStderr("warn"); err != nil {
		return err
	}
	return ui.RunOnce(ctx, newClient(cfg), assets(cfg), query, os.Stdout)
}

func runUI(ctx context.Context, cfg *config.Config) error {
	closeLog, err := logger.Init(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	bus := eventbus.New()
	defer bus.Close()

	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchFailedEvent); ok && event.Stale {
			log.Debug().Str("query", event.Query).Uint64("seq", event.Seq).Msg("audit: stale failure")
		}
	})
	bus.Subscribe(eventbus.EventNavigated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.NavigatedEvent); ok {
			log.Info().Str("route", event.Route).Msg("audit: profile opened")
		}
	})

	model := ui.NewModel(ui.Options{
		Searcher: newClient(cfg),
		Debounce: cfg.Debounce.Std(),
		Assets:   assets(cfg),
		ToastTTL: cfg.ToastTTL.Std(),
		Bus:      bus,
		Context:  ctx,
		Notify: func(title, message string, severity toast.Severity) {
			log.Info().Str("title", title).Str("severity", severity.String()).Msg("toast: " + message)
		},
	})
	defer model.Close()

	log.Info().Str("base_url", cfg.BaseURL).Dur("debounce", cfg.Debounce.Std()).Msg("starting UI")

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("error running program")
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info().Msg("UI exited normally")
	return nil
}
