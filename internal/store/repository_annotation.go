package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/models"
)

// annotationRepository serves the detection pipeline's result records. The
// pipeline writes them out of band; this repository only reads.
type annotationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAnnotationRepository constructs an [AnnotationRepository] backed by
// the provided database connection and logger.
func NewAnnotationRepository(db *DB, logger *logger.Logger) AnnotationRepository {
	logger.Debug().Msg("creating annotation repository")
	return &annotationRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns all annotation records owned by userID, newest first.
// The detections and image size columns hold JSON produced by the pipeline
// and are decoded as-is.
func (r *annotationRepository) ListByUser(ctx context.Context, userID int64) ([]models.AnnotationItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAnnotationsByUser, fmt.Sprintf("%d", userID))
	if err != nil {
		log.Err(err).Str("func", "*annotationRepository.ListByUser").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var items []models.AnnotationItem
	for rows.Next() {
		var (
			item       models.AnnotationItem
			detections string
			imageSize  string
		)
		if err := rows.Scan(&item.ID, &item.UserID, &item.Image, &detections, &imageSize,
			&item.ModelUsed, &item.Timestamp, &item.Status,
			&item.ConfidenceThreshold, &item.ProcessingTimeMs, &item.Device); err != nil {
			log.Err(err).Str("func", "*annotationRepository.ListByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		if err := json.Unmarshal([]byte(detections), &item.Detections); err != nil {
			return nil, fmt.Errorf("error decoding detections of annotation %s: %w", item.ID, err)
		}
		if err := json.Unmarshal([]byte(imageSize), &item.ImageSize); err != nil {
			return nil, fmt.Errorf("error decoding image size of annotation %s: %w", item.ID, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
