package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTherapistRepo(t *testing.T) (*therapistRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &therapistRepository{
		db:      &DB{DB: db, driver: "pgx", logger: l},
		logger:  l,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	return repo, mock, db
}

func reviewFixture() models.Review {
	return models.Review{
		PatientName: "Anonymous",
		Rating:      5,
		Comment:     "very helpful",
		Date:        "2026-08-30",
	}
}

func TestListTherapists_DecodesSpecialties(t *testing.T) {
	repo, mock, db := newTestTherapistRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"therapist_id", "name", "photo_url", "specialties",
			"location", "rating", "review_count", "distance", "next_available"}).
		AddRow(1, "Dr. Sarah Johnson", "https://img.example.com/sarah.jpg", `["Anxiety","Depression"]`,
			"Downtown", 4.8, 124, 1.2, "Tomorrow, 2:00 PM").
		AddRow(2, "Dr. Michael Chen", "https://img.example.com/michael.jpg", `["Trauma"]`,
			"Midtown", 4.5, 89, 3.4, "Friday, 10:00 AM")

	mock.ExpectQuery("SELECT (.+) FROM therapists").WillReturnRows(rows)

	summaries, err := repo.ListTherapists(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Dr. Sarah Johnson", summaries[0].Name)
	assert.Equal(t, []string{"Anxiety", "Depression"}, summaries[0].Specialties)
	assert.Equal(t, 124, summaries[0].ReviewCount)
	assert.Equal(t, []string{"Trauma"}, summaries[1].Specialties)
}

func TestGetTherapist_NotFound(t *testing.T) {
	repo, mock, db := newTestTherapistRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM therapists").
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTherapist(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTherapistNotFound)
}

func TestReserveSlot_Success(t *testing.T) {
	repo, mock, db := newTestTherapistRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE time_slots").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ReserveSlot(context.Background(), 1, "2026-09-03", "10:00 AM")
	assert.NoError(t, err)
}

func TestReserveSlot_AlreadyTaken(t *testing.T) {
	repo, mock, db := newTestTherapistRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE time_slots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReserveSlot(context.Background(), 1, "2026-09-03", "10:00 AM")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestReleaseSlot_Success(t *testing.T) {
	repo, mock, db := newTestTherapistRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE time_slots").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ReleaseSlot(context.Background(), 1, "2026-09-03", "10:00 AM")
	assert.NoError(t, err)
}

func TestReleaseSlot_AlreadyFreeIsNoOp(t *testing.T) {
	repo, mock, db := newTestTherapistRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE time_slots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReleaseSlot(context.Background(), 1, "2026-09-03", "10:00 AM")
	assert.NoError(t, err)
}

func TestAddReview_UpdatesAggregates(t *testing.T) {
	repo, mock, db := newTestTherapistRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO reviews").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE therapists").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AddReview(context.Background(), 1, reviewFixture())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddReview_UnknownTherapistRollsBack(t *testing.T) {
	repo, mock, db := newTestTherapistRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO reviews").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE therapists").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.AddReview(context.Background(), 99, reviewFixture())
	assert.ErrorIs(t, err, ErrTherapistNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddReview_InsertFailure(t *testing.T) {
	repo, mock, db := newTestTherapistRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO reviews").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.AddReview(context.Background(), 1, reviewFixture())
	assert.Error(t, err)
}
