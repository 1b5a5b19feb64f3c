package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/application"
	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/handlers"
	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/infrastructure"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	GuestRepository infrastructure.PostgresGuestRepository

	// Use Cases
	RegisterGuest *application.RegisterGuest
	GetGuest      *application.GetGuest
	ListGuests    *application.ListGuests
	UpdateGuest   *application.UpdateGuest
	DeleteGuest   *application.DeleteGuest

	// HTTP Handlers
	GuestHandlers *handlers.GuestHandlers

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize telemetry first
	if config.Telemetry.Enabled {
		telConfig := telemetry.NewConfig(config.ServiceName, "1.0.0", config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.Init(ctx, telConfig)
		if err != nil {
			log.Printf("Failed to initialize telemetry: %v", err)
			// Continue without telemetry rather than failing
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	deps.DB = db

	// Initialize repositories
	deps.GuestRepository = *infrastructure.NewPostgresGuestRepository(db)

	// Initialize use cases
	deps.RegisterGuest = application.NewRegisterGuest(&deps.GuestRepository)
	deps.GetGuest = application.NewGetGuest(&deps.GuestRepository)
	deps.ListGuests = application.NewListGuests(&deps.GuestRepository)
	deps.UpdateGuest = application.NewUpdateGuest(&deps.GuestRepository)
	deps.DeleteGuest = application.NewDeleteGuest(&deps.GuestRepository)

	// Initialize handlers
	deps.GuestHandlers = handlers.NewGuestHandlers(
		deps.RegisterGuest,
		deps.GetGuest,
		deps.ListGuests,
		deps.UpdateGuest,
		deps.DeleteGuest,
	)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
