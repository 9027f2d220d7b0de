package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/library-service/cmd/api/book"
	"github.com/library-service/cmd/api/config"
	"github.com/library-service/cmd/api/database"
	libhttp "github.com/library-service/cmd/api/http"
	"github.com/library-service/cmd/api/inmemory"
	"github.com/library-service/cmd/api/loan"
	"github.com/library-service/cmd/api/notifications"
	"github.com/library-service/cmd/api/overdue"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	err = newRootCmd(&cfg).Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "library",
		Short:         "Library catalog and loan service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(*cfg)
		},
	}
	cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the http api and schedule overdue scans",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(*cfg)
			},
		},
		&cobra.Command{
			Use:       "migrate [up|down]",
			Short:     "Apply or revert the database migrations",
			Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
			ValidArgs: []string{"up", "down"},
			RunE: func(cmd *cobra.Command, args []string) error {
				direction := "up"
				if len(args) == 1 {
					direction = args[0]
				}
				return migrateDB(cmd.Context(), *cfg, direction)
			},
		},
		&cobra.Command{
			Use:   "scan-overdue",
			Short: "Notify the customers of every overdue loan once",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return scanOnce(cmd.Context(), *cfg)
			},
		},
	)
	return root
}

func setupLogger(cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// repository is implemented by every storage backend.
type repository interface {
	book.Repository
	loan.Repository
}

/* Opens the configured storage, applying pending migrations on postgres. close releases it. */
func openStore(ctx context.Context, cfg config.Config) (repository, func(), error) {
	switch cfg.Storage {
	case config.StorageMemory:
		store, err := inmemory.NewInMemoryStore()
		if err != nil {
			return nil, nil, fmt.Errorf("creating in-memory store: %w", err)
		}
		slog.Warn("using in-memory storage, data is lost on exit")
		return store, func() {}, nil
	default:
		db, err := database.ConnectDb(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting with db: %w", err)
		}
		err = database.MigrationUp(db, cfg.MigrationsPath)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrating: %w", err)
		}
		return database.NewStore(db), func() { db.Close() }, nil
	}
}

type services struct {
	books   *book.Service
	loans   *loan.Service
	scanner *overdue.Scanner
}

func newServices(cfg config.Config, repo repository) services {
	bookService := book.NewService(repo)
	loanService := loan.NewService(repo, bookService, loan.WithOverdueDays(cfg.OverdueDays))
	notifier := notifications.NewNtfy(cfg.NotificationsEnabled, cfg.NotificationsTimeout, cfg.NotificationsBaseURL, &http.Client{})
	return services{
		books:   bookService,
		loans:   loanService,
		scanner: overdue.NewScanner(loanService, notifier, slog.Default()),
	}
}

func serve(cfg config.Config) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := newServices(cfg, repo)
	go svc.scanner.Schedule(ctx, cfg.OverdueScanInterval)

	server := libhttp.NewServer(
		libhttp.ServerConfig{Port: cfg.HTTPPort, RequestTimeout: cfg.RequestTimeout},
		libhttp.NewBookHandler(svc.books, svc.loans, cfg.RequestTimeout),
		libhttp.NewLoanHandler(svc.loans, svc.books, cfg.RequestTimeout),
	)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("unexpected http server error: %w", err)
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownRelease()
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("HTTP shutdown error: %w", err)
	}
	slog.Info("graceful shutdown complete")
	return nil
}

func migrateDB(ctx context.Context, cfg config.Config, direction string) error {
	cfg.Storage = config.StoragePostgres
	err := cfg.Validate()
	if err != nil {
		return err
	}

	db, err := database.ConnectDb(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting with db: %w", err)
	}
	defer db.Close()

	if direction == "down" {
		return database.MigrationDown(db, cfg.MigrationsPath)
	}
	return database.MigrationUp(db, cfg.MigrationsPath)
}

func scanOnce(ctx context.Context, cfg config.Config) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return newServices(cfg, repo).scanner.Run(ctx)
}
