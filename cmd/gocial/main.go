package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/gocial-client/internal/client/cli"
	"github.com/iudanet/gocial-client/internal/client/config"
	"github.com/iudanet/gocial-client/internal/client/iocli"
	"github.com/iudanet/gocial-client/internal/client/services"
	"github.com/iudanet/gocial-client/internal/client/session"
	"github.com/iudanet/gocial-client/internal/client/storage/boltdb"
	"github.com/iudanet/gocial-client/internal/client/transport"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (overrides GOCIAL_API_URL)")
	dbPath := flag.String("db", "", "Path to local database (overrides GOCIAL_DB)")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.New(iocli.NewStdio(), nil, nil, nil).PrintUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.APIURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	// Открываем локальное хранилище credentials
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	clientID, err := boltStorage.ClientID(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get client id: %v\n", err)
		os.Exit(1)
	}

	// Собираем клиентский стек: transport -> services -> session -> cli
	client := transport.NewClient(cfg.APIURL, cfg.Timeout, boltStorage,
		transport.WithClientID(clientID),
		transport.WithLogger(logger),
	)
	svcs := services.New(client)
	sess := session.NewController(svcs.Auth, boltStorage, logger)

	app := cli.New(iocli.NewStdio(), svcs, sess, logger)
	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Gocial Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
