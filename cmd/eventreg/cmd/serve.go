package cmd

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

	"github.com/spf13/cobra"

	"eventregistration/config"
	"eventregistration/internal/adapters/email"
	deliveryhttp "eventregistration/internal/delivery/http"
	"eventregistration/internal/delivery/http/controllers"
	"eventregistration/internal/metrics"
	"eventregistration/internal/repository/postgres"
	"eventregistration/internal/services"
)

var serverPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server and begin accepting API requests.

The server will:
- Load configuration from environment variables (or the --config dotenv file)
- Apply pending migrations when AUTO_MIGRATE is true
- Serve the API, /health, /metrics and /swagger/
- Handle graceful shutdown on SIGINT/SIGTERM

Examples:
  # Start with default configuration (from env vars)
  eventreg serve

  # Start on a specific port with debug logging
  eventreg serve --port 9090 --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverPort, "port", "", "server port (default: PORT or 8080)")
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if serverPort != "" {
		cfg.Port = serverPort
	}

	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	logger.Info("starting event registration server", "env", cfg.Environment)

	metrics.Init()

	if cfg.AutoMigrate {
		if err := postgres.MigrateUp(cfg.DBUrl); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := postgres.Open(ctx, cfg.DBUrl, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: 30 * time.Minute,
	})
	cancel()
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	mailer, err := email.NewMailer(mailerConfig(cfg.Email), logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.Email.OperatorAddress, logger)

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)

	eventService := services.NewEventService(eventRepo, cfg.RequestTimeout)
	attendeeService := services.NewAttendeeService(userRepo, eventRepo, attendanceRepo, emailService, logger, cfg.RequestTimeout)

	handler := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:             logger,
		AdminToken:         cfg.AdminToken,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		EventController:    controllers.NewEventController(logger, eventService),
		AttendeeController: controllers.NewAttendeeController(logger, attendeeService),
		AdminController:    controllers.NewAdminController(logger, attendeeService),
		HealthController:   controllers.NewHealthController(logger, db),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	return gracefulShutdown(server, errCh, logger)
}

func mailerConfig(c config.EmailConfig) email.MailerConfig {
	return email.MailerConfig{
		Provider:    c.Provider,
		FromAddress: c.FromAddress,
		FromName:    c.FromName,
		SES: email.SESConfig{
			Region:             c.AWSRegion,
			AccessKeyID:        c.AWSAccessKeyID,
			SecretAccessKey:    c.AWSSecretAccessKey,
			InsecureSkipVerify: c.SESInsecureSkipVerify,
		},
		SMTP: email.SMTPConfig{
			Host:     c.SMTPHost,
			Port:     c.SMTPPort,
			Username: c.SMTPUsername,
			Password: c.SMTPPassword,
		},
		ResendAPIKey: c.ResendAPIKey,
	}
}

func gracefulShutdown(server *http.Server, errCh <-chan error, logger *slog.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-stop:
	}
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
