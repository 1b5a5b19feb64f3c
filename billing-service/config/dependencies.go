package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/application"
	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/handlers"
	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/infrastructure"
	sharedinfra "github.com/rafifdzaky27/tubes-iae-pria/shared/infrastructure"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/logging"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	BillRepository infrastructure.PostgresBillRepository

	// Gateways
	Reservations *infrastructure.ReservationHTTPClient

	// Use Cases
	GenerateBill     *application.GenerateBill
	GetBill          *application.GetBill
	ListBills        *application.ListBills
	UpdateBillStatus *application.UpdateBillStatus
	ProcessCheckout  *application.ProcessCheckout

	// HTTP Handlers
	BillHandlers *handlers.BillHandlers

	// Event Handlers
	BillingEventHandlers *handlers.BillingEventHandlers

	// Infrastructure
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

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
	eventSubscriber, err := sharedinfra.NewSQSSubscriberAdapter(config.AWS.SQSQueueURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}
	deps.EventSubscriber = eventSubscriber

	// Initialize repositories
	deps.BillRepository = *infrastructure.NewPostgresBillRepository(db)

	// Initialize upstream service clients
	deps.Reservations = infrastructure.NewReservationHTTPClient(config.Services.ReservationServiceURL)

	// Initialize use cases
	deps.GenerateBill = application.NewGenerateBill(&deps.BillRepository, deps.Reservations, logger)
	deps.GetBill = application.NewGetBill(&deps.BillRepository, deps.Reservations, logger)
	deps.ListBills = application.NewListBills(&deps.BillRepository)
	deps.UpdateBillStatus = application.NewUpdateBillStatus(&deps.BillRepository, logger)
	deps.ProcessCheckout = application.NewProcessCheckout(deps.GenerateBill, logger)

	// Initialize handlers
	deps.BillHandlers = handlers.NewBillHandlers(
		deps.GenerateBill,
		deps.GetBill,
		deps.ListBills,
		deps.UpdateBillStatus,
	)
	deps.BillingEventHandlers = handlers.NewBillingEventHandlers(deps.ProcessCheckout)

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

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
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
