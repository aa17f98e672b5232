package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arogya/arogya/internal/config"
	"github.com/arogya/arogya/internal/domain/account"
	"github.com/arogya/arogya/internal/domain/booking"
	"github.com/arogya/arogya/internal/domain/catalog"
	"github.com/arogya/arogya/internal/domain/patient"
	"github.com/arogya/arogya/internal/platform/auth"
	"github.com/arogya/arogya/internal/platform/db"
	"github.com/arogya/arogya/internal/platform/middleware"
	"github.com/arogya/arogya/internal/platform/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "arogya-server",
		Short: "Arogya Medical Center API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			adminEmail, _ := cmd.Flags().GetString("admin-email")
			adminPassword, _ := cmd.Flags().GetString("admin-password")

			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			seeder := seed.NewSeeder(
				catalog.NewHospitalRepoPG(pool),
				catalog.NewDepartmentRepoPG(pool),
				catalog.NewDoctorRepoPG(pool),
				catalog.NewServiceRepoPG(pool),
				catalog.NewInfrastructureRepoPG(pool),
				catalog.NewTestimonialRepoPG(pool),
				account.NewRepoPG(pool),
				logger,
			)

			result, err := seeder.Run(ctx, seed.Options{
				AdminEmail:    adminEmail,
				AdminPassword: adminPassword,
			})
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}

			fmt.Printf("Seeded %d departments, %d doctors, %d services, %d infrastructure items, %d testimonials.\n",
				result.Departments, result.Doctors, result.Services, result.Infrastructure, result.Testimonials)
			if result.AdminCreated {
				fmt.Println("Admin account created.")
			}
			return nil
		},
	}
	cmd.Flags().String("admin-email", "", "Email for the seeded admin account")
	cmd.Flags().String("admin-password", "", "Password for the seeded admin account")
	return cmd
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Session tokens
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())

	// Repositories
	hospitalRepo := catalog.NewHospitalRepoPG(pool)
	departmentRepo := catalog.NewDepartmentRepoPG(pool)
	doctorRepo := catalog.NewDoctorRepoPG(pool)
	serviceRepo := catalog.NewServiceRepoPG(pool)
	infraRepo := catalog.NewInfrastructureRepoPG(pool)
	testimonialRepo := catalog.NewTestimonialRepoPG(pool)
	appointmentRepo := booking.NewAppointmentRepoPG(pool)
	patientRepo := patient.NewRepoPG(pool)
	accountRepo := account.NewRepoPG(pool)

	// Services
	catalogSvc := catalog.NewService(hospitalRepo, departmentRepo, doctorRepo, serviceRepo, infraRepo, testimonialRepo)
	bookingSvc := booking.NewService(appointmentRepo, catalogSvc, booking.Window{
		HorizonDays:   cfg.BookingHorizonDays,
		OpenHour:      cfg.BookingOpenHour,
		CloseHour:     cfg.BookingCloseHour,
		StepMinutes:   cfg.BookingSlotMinutes,
		ClosedWeekday: cfg.ClosedWeekday(),
	})
	patientSvc := patient.NewService(patientRepo)
	accountSvc := account.NewService(accountRepo, patientSvc, issuer)

	// API groups. Public routes accept an optional session so walk-in
	// bookings work without an account; authed and admin routes require one.
	apiV1 := e.Group("/api/v1")
	apiV1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))

	public := apiV1.Group("", auth.OptionalAuth(issuer))
	authed := apiV1.Group("", auth.RequireAuth(issuer))
	admin := apiV1.Group("/admin", auth.RequireAuth(issuer), auth.RequireRole(auth.RoleAdmin))

	// Handlers
	catalog.NewHandler(catalogSvc, bookingSvc).RegisterRoutes(public, admin)
	booking.NewHandler(bookingSvc).RegisterRoutes(public, authed, admin)
	patient.NewHandler(patientSvc).RegisterRoutes(authed)
	account.NewHandler(accountSvc).RegisterRoutes(public, authed)

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
