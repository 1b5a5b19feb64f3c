package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/application"
	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/handlers"
	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/infrastructure"
	sharedinfra "github.com/rafifdzaky27/tubes-iae-pria/shared/infrastructure"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/logging"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	ReservationRepository infrastructure.PostgresReservationRepository
	ReconciliationStore   infrastructure.PostgresReconciliationStore

	// Gateways
	Inventory *infrastructure.InventoryHTTPClient
	Directory *infrastructure.DirectoryHTTPClient

	// Use Cases
	CreateReservation *application.CreateReservation
	GetReservation    *application.GetReservation
	ListReservations  *application.ListReservations
	UpdateReservation *application.UpdateReservation
	CancelReservation *application.CancelReservation

	// HTTP Handlers
	ReservationHandlers *handlers.ReservationHandlers

	// Infrastructure
	EventPublisher *sharedinfra.SNSEventPublisher

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}
	logger := logging.New(config.ServiceName)

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

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSEventPublisherFromEnv(ctx, config.AWS.SNSTopicArn)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	// Initialize repositories
	deps.ReservationRepository = *infrastructure.NewPostgresReservationRepository(db)
	deps.ReconciliationStore = *infrastructure.NewPostgresReconciliationStore(db)

	// Initialize upstream service clients
	deps.Inventory = infrastructure.NewInventoryHTTPClient(config.Services.RoomServiceURL)
	deps.Directory = infrastructure.NewDirectoryHTTPClient(config.Services.GuestServiceURL)

	// Initialize use cases
	deps.CreateReservation = application.NewCreateReservation(
		&deps.ReservationRepository,
		deps.Inventory,
		deps.Directory,
		&deps.ReconciliationStore,
		eventPublisher,
		logger,
	)
	deps.GetReservation = application.NewGetReservation(&deps.ReservationRepository, deps.Inventory, deps.Directory, logger)
	deps.ListReservations = application.NewListReservations(&deps.ReservationRepository)
	deps.UpdateReservation = application.NewUpdateReservation(
		&deps.ReservationRepository,
		deps.Inventory,
		deps.Directory,
		&deps.ReconciliationStore,
		eventPublisher,
		logger,
	)
	deps.CancelReservation = application.NewCancelReservation(
		&deps.ReservationRepository,
		deps.Inventory,
		&deps.ReconciliationStore,
		eventPublisher,
		logger,
	)

	// Initialize handlers
	deps.ReservationHandlers = handlers.NewReservationHandlers(
		deps.CreateReservation,
		deps.GetReservation,
		deps.ListReservations,
		deps.UpdateReservation,
		deps.CancelReservation,
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

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
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
