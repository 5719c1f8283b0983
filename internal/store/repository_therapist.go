package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/models"
)

// therapistRepository is the SQL-backed implementation of
// [TherapistRepository]. The list-valued therapist attributes (specialties,
// education, languages) are stored as JSON text columns and decoded on read.
//
// Dynamic statements (slot reservation, rating aggregates) are built with
// squirrel; fixed-shape queries use the prepared texts in sql_queries.go.
type therapistRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewTherapistRepository constructs a [TherapistRepository] backed by the
// provided database connection and logger.
func NewTherapistRepository(db *DB, logger *logger.Logger) TherapistRepository {
	logger.Debug().Msg("creating therapist repository")
	return &therapistRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListTherapists returns the list-view projection of every therapist,
// ordered by rating so the best-rated practices come first.
func (r *therapistRepository) ListTherapists(ctx context.Context) ([]models.TherapistSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("therapist_id", "name", "photo_url", "specialties",
			"location", "rating", "review_count", "distance", "next_available").
		From(models.Therapist{}.TableName()).
		OrderBy("rating DESC", "therapist_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building therapist list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*therapistRepository.ListTherapists").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var summaries []models.TherapistSummary
	for rows.Next() {
		var (
			summary     models.TherapistSummary
			specialties string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.PhotoURL, &specialties,
			&summary.Location, &summary.Rating, &summary.ReviewCount, &summary.Distance, &summary.NextAvailable); err != nil {
			log.Err(err).Str("func", "*therapistRepository.ListTherapists").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		if err := json.Unmarshal([]byte(specialties), &summary.Specialties); err != nil {
			return nil, fmt.Errorf("error decoding specialties of therapist %d: %w", summary.ID, err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// GetTherapist returns the full snapshot of a single therapist.
func (r *therapistRepository) GetTherapist(ctx context.Context, id int) (models.Therapist, error) {
	log := logger.FromContext(ctx)

	var (
		therapist   models.Therapist
		specialties string
		education   string
		languages   string
	)
	row := r.db.QueryRowContext(ctx, getTherapist, id)
	if err := row.Scan(&therapist.ID, &therapist.Name, &therapist.PhotoURL, &specialties,
		&therapist.Bio, &therapist.ExperienceYears, &education, &languages, &therapist.Address,
		&therapist.Rating, &therapist.ReviewCount, &therapist.AcceptingNewPatients, &therapist.AverageSessionLength); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Therapist{}, ErrTherapistNotFound
		}
		log.Err(err).Str("func", "*therapistRepository.GetTherapist").Msg("error: scanning error")
		return models.Therapist{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	for _, column := range []struct {
		raw    string
		target *[]string
	}{
		{specialties, &therapist.Specialties},
		{education, &therapist.Education},
		{languages, &therapist.Languages},
	} {
		if err := json.Unmarshal([]byte(column.raw), column.target); err != nil {
			return models.Therapist{}, fmt.Errorf("error decoding therapist %d attributes: %w", id, err)
		}
	}

	return therapist, nil
}

// ListSlots returns every slot of the therapist ordered by date and time.
func (r *therapistRepository) ListSlots(ctx context.Context, therapistID int) ([]models.TimeSlot, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTherapistSlots, therapistID)
	if err != nil {
		log.Err(err).Str("func", "*therapistRepository.ListSlots").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var slots []models.TimeSlot
	for rows.Next() {
		var slot models.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.Date, &slot.Time, &slot.Available); err != nil {
			log.Err(err).Str("func", "*therapistRepository.ListSlots").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

// ReserveSlot marks the matching available slot as taken. The WHERE clause
// doubles as the availability check: zero affected rows means the slot was
// already taken or never existed.
func (r *therapistRepository) ReserveSlot(ctx context.Context, therapistID int, date, timeOfDay string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(models.TimeSlot{}.TableName()).
		Set("is_available", false).
		Where(sq.Eq{
			"therapist_id": therapistID,
			"slot_date":    date,
			"slot_time":    timeOfDay,
			"is_available": true,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building slot reservation query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*therapistRepository.ReserveSlot").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrSlotUnavailable
	}

	return nil
}

// ReleaseSlot marks the slot available again. Releasing a slot that is
// already free, or that does not exist, is a no-op.
func (r *therapistRepository) ReleaseSlot(ctx context.Context, therapistID int, date, timeOfDay string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(models.TimeSlot{}.TableName()).
		Set("is_available", true).
		Where(sq.Eq{
			"therapist_id": therapistID,
			"slot_date":    date,
			"slot_time":    timeOfDay,
			"is_available": false,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building slot release query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*therapistRepository.ReleaseSlot").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// AddReview stores a review and refreshes the therapist's aggregate rating
// and review count in a single transaction. The new aggregate rating is a
// running average recomputed from the previous one.
func (r *therapistRepository) AddReview(ctx context.Context, therapistID int, review models.Review) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createReview,
		therapistID, review.PatientName, review.Rating, review.Comment, review.Date); err != nil {
		log.Err(err).Str("func", "*therapistRepository.AddReview").Msg("error: review insert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	query, args, err := r.builder.
		Update(models.Therapist{}.TableName()).
		Set("rating", sq.Expr("(rating * review_count + ?) / (review_count + 1)", review.Rating)).
		Set("review_count", sq.Expr("review_count + 1")).
		Where(sq.Eq{"therapist_id": therapistID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building rating aggregate query: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*therapistRepository.AddReview").Msg("error: aggregate update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	} else if affected == 0 {
		return ErrTherapistNotFound
	}

	return tx.Commit()
}
