package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/oversight"
	"github.com/clinicdesk/clinicdesk/internal/domain/overview"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/domain/prescription"
	"github.com/clinicdesk/clinicdesk/internal/platform/auth"
	"github.com/clinicdesk/clinicdesk/internal/platform/db"
	"github.com/clinicdesk/clinicdesk/internal/platform/demo"
	"github.com/clinicdesk/clinicdesk/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinicdesk-server",
		Short: "Clinic administration API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tenantCmd())
	rootCmd.AddCommand(tokenCmd())

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
			schema, _ := cmd.Flags().GetString("schema")
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DemoMode() {
				return fmt.Errorf("DATABASE_URL is not set; migrations need a live database")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			fmt.Printf("Running migrations on schema: %s\n", schema)

			count, err := migrator.Up(ctx, schema)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("schema", "tenant_default", "Target schema for migrations")
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _ := cmd.Flags().GetString("schema")
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DemoMode() {
				return fmt.Errorf("DATABASE_URL is not set; migrations need a live database")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx, schema)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("Migration status for schema: %s\n", schema)
			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
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
	statusCmd.Flags().String("schema", "tenant_default", "Target schema for migrations")
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func tenantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Manage tenants",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new tenant schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			dir, _ := cmd.Flags().GetString("dir")
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DemoMode() {
				return fmt.Errorf("DATABASE_URL is not set; tenant schemas need a live database")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			fmt.Printf("Creating tenant schema: tenant_%s\n", name)
			if err := db.CreateTenantSchema(ctx, pool, name, dir); err != nil {
				return err
			}
			fmt.Println("Tenant created successfully.")
			return nil
		},
	}
	createCmd.Flags().String("name", "", "Tenant identifier (alphanumeric)")
	createCmd.Flags().String("dir", "./migrations", "Path to migrations directory")

	cmd.AddCommand(createCmd)
	return cmd
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a session token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, _ := cmd.Flags().GetString("user")
			tenant, _ := cmd.Flags().GetString("tenant")
			roles, _ := cmd.Flags().GetStringSlice("roles")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.SessionSecret == "" {
				return fmt.Errorf("SESSION_SECRET is not set")
			}

			token, err := auth.IssueToken(auth.SessionConfig{
				SigningKey: []byte(cfg.SessionSecret),
				Issuer:     "clinicdesk",
			}, user, tenant, roles, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().String("user", "local-admin", "Subject claim")
	cmd.Flags().String("tenant", "default", "Tenant claim")
	cmd.Flags().StringSlice("roles", []string{"admin"}, "Role claims")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
	return cmd
}

// repos bundles every data source so route wiring does not care which
// adapter backs them.
type repos struct {
	doctors       doctor.Repository
	clinics       clinic.Repository
	patients      patient.Repository
	appointments  appointment.Repository
	prescriptions prescription.Repository
	voiceLogs     oversight.VoiceLogRepository
	compliance    oversight.ComplianceRepository
}

func liveRepos(pool *pgxpool.Pool) repos {
	return repos{
		doctors:       doctor.NewRepoPG(pool),
		clinics:       clinic.NewRepoPG(pool),
		patients:      patient.NewRepoPG(pool),
		appointments:  appointment.NewRepoPG(pool),
		prescriptions: prescription.NewRepoPG(pool),
		voiceLogs:     oversight.NewVoiceRepoPG(pool),
		compliance:    oversight.NewComplianceRepoPG(pool),
	}
}

func demoRepos(ds *demo.Dataset) repos {
	return repos{
		doctors:       doctor.NewRepoMem(ds.Doctors),
		clinics:       clinic.NewRepoMem(ds.Clinics),
		patients:      patient.NewRepoMem(ds.Patients),
		appointments:  appointment.NewRepoMem(ds.Appointments),
		prescriptions: prescription.NewRepoMem(ds.Prescriptions),
		voiceLogs:     oversight.NewVoiceRepoMem(ds.VoiceLogs),
		compliance:    oversight.NewComplianceRepoMem(ds.Compliance),
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID", "X-Tenant-ID"},
	}))
	e.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))

	var r repos
	if cfg.DemoMode() {
		logger.Warn().Msg("no DATABASE_URL configured, serving fixed demo data")
		r = demoRepos(demo.Load(time.Now()))
		e.Use(auth.DevAuthMiddleware())
	} else {
		ctx := context.Background()
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		logger.Info().Msg("connected to database")

		r = liveRepos(pool)
		if cfg.IsDev() {
			e.Use(auth.DevAuthMiddleware())
		} else {
			e.Use(auth.SessionMiddleware(auth.SessionConfig{
				SigningKey: []byte(cfg.SessionSecret),
				Issuer:     "clinicdesk",
			}))
		}
		e.Use(db.TenantMiddleware(pool, cfg.DefaultTenant))
		e.GET("/health/db", db.HealthHandler(pool))
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	registerRoutes(e, r, logger)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Bool("demo", cfg.DemoMode()).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

func registerRoutes(e *echo.Echo, r repos, logger zerolog.Logger) {
	doctorH := doctor.NewHandler(doctor.NewService(r.doctors))
	clinicH := clinic.NewHandler(clinic.NewService(r.clinics, r.patients))
	patientH := patient.NewHandler(patient.NewService(r.patients))
	apptH := appointment.NewHandler(appointment.NewService(r.appointments))
	rxH := prescription.NewHandler(prescription.NewService(r.prescriptions))
	oversightH := oversight.NewHandler(oversight.NewService(r.voiceLogs, r.compliance))
	overviewH := overview.NewHandler(overview.NewService(
		r.doctors, r.clinics, r.patients, r.appointments, r.prescriptions,
		r.voiceLogs, r.compliance, logger))

	apiV1 := e.Group("/api/v1")

	apiV1.GET("/overview", overviewH.Snapshot)

	apiV1.GET("/doctors", doctorH.List)
	apiV1.GET("/doctors/:id", doctorH.Get)
	apiV1.GET("/doctors/:id/detail", overviewH.DoctorDetail)
	apiV1.POST("/doctors", doctorH.Provision, auth.RequireRole("admin"))

	apiV1.GET("/clinics", clinicH.List)
	apiV1.GET("/clinics/:id", clinicH.Get)
	apiV1.POST("/clinics", clinicH.Create)

	apiV1.GET("/patients", patientH.List)
	apiV1.GET("/patients/:id", patientH.Get)
	apiV1.POST("/patients", patientH.Create)

	apiV1.GET("/appointments", apptH.List)
	apiV1.GET("/appointments/:id", apptH.Get)
	apiV1.POST("/appointments", apptH.Create)

	apiV1.GET("/prescriptions", rxH.List)
	apiV1.GET("/prescriptions/:id", rxH.Get)
	apiV1.POST("/prescriptions", rxH.Create)

	apiV1.GET("/voice-logs", oversightH.ListVoiceLogs)
	apiV1.GET("/compliance-reports", oversightH.ListReports)
}
