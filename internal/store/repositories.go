package store

import (
	"context"
	"fmt"

	"github.com/futuristic/perceptronx/internal/config"
	"github.com/futuristic/perceptronx/internal/logger"
)

// Storages bundles every server-side repository behind one constructor so
// the service layer receives a single dependency.
type Storages struct {
	UserRepository        UserRepository
	TherapistRepository   TherapistRepository
	AppointmentRepository AppointmentRepository
	MessageRepository     MessageRepository
	AnnotationRepository  AnnotationRepository

	db *DB
}

// NewStorages opens the database selected by cfg.Driver, applies pending
// migrations and wires all repositories to the shared connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		TherapistRepository:   NewTherapistRepository(db, log),
		AppointmentRepository: NewAppointmentRepository(db, log),
		MessageRepository:     NewMessageRepository(db, log),
		AnnotationRepository:  NewAnnotationRepository(db, log),
		db:                    db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
