package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/rafifdzaky27/tubes-iae-pria/room-service/application"
	"github.com/rafifdzaky27/tubes-iae-pria/room-service/handlers"
	"github.com/rafifdzaky27/tubes-iae-pria/room-service/infrastructure"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/logging"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	RoomRepository infrastructure.PostgresRoomRepository

	// Use Cases
	CreateRoom    *application.CreateRoom
	GetRoom       *application.GetRoom
	ListRooms     *application.ListRooms
	UpdateRoom    *application.UpdateRoom
	SetRoomStatus *application.SetRoomStatus

	// HTTP Handlers
	RoomHandlers *handlers.RoomHandlers

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

	// Initialize repositories
	deps.RoomRepository = *infrastructure.NewPostgresRoomRepository(db)

	// Initialize use cases
	deps.CreateRoom = application.NewCreateRoom(&deps.RoomRepository)
	deps.GetRoom = application.NewGetRoom(&deps.RoomRepository)
	deps.ListRooms = application.NewListRooms(&deps.RoomRepository)
	deps.UpdateRoom = application.NewUpdateRoom(&deps.RoomRepository)
	deps.SetRoomStatus = application.NewSetRoomStatus(&deps.RoomRepository, logger)

	// Initialize handlers
	deps.RoomHandlers = handlers.NewRoomHandlers(
		deps.CreateRoom,
		deps.GetRoom,
		deps.ListRooms,
		deps.UpdateRoom,
		deps.SetRoomStatus,
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
