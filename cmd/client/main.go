package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-ads-board/internal/adapter"
	"github.com/MKhiriev/go-ads-board/internal/client"
	"github.com/MKhiriev/go-ads-board/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// clientConfig is read from BOARD_* variables; flags override it.
type clientConfig struct {
	Address    string        `env:"ADDRESS" envDefault:"localhost:8080"`
	CookieName string        `env:"SESSION_COOKIE" envDefault:"session"`
	Login      string        `env:"LOGIN"`
	Password   string        `env:"PASSWORD"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"15s"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"warn"`
}

func main() {
	log := logger.NewLogger("go-ads-board-client")
	if err := run(log); err != nil {
		if errors.Is(err, client.ErrUsage) {
			fmt.Fprintln(os.Stderr, client.Usage)
		}
		log.Fatal().Err(err).Msg("client run error")
	}
}

func run(log *logger.Logger) error {
	var cfg clientConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "BOARD_"}); err != nil {
		return fmt.Errorf("error parsing environment: %w", err)
	}

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "server address")
	fs.StringVar(&cfg.Login, "l", cfg.Login, "login")
	fs.StringVar(&cfg.Password, "p", cfg.Password, "password")
	showVersion := fs.Bool("v", false, "print client build info")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, client.Usage)
			return nil
		}
		return err
	}

	if *showVersion {
		printBuildInfo()
		return nil
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	board, err := adapter.NewHTTPBoardClient(adapter.HTTPClientConfig{
		Address:    cfg.Address,
		CookieName: cfg.CookieName,
		Timeout:    cfg.Timeout,
	}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(board, client.Credentials{Login: cfg.Login, Password: cfg.Password}, os.Stdout, log)
	return app.Run(ctx, fs.Args())
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
