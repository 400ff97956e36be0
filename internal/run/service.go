package run

import (
	"context"
	"encoding/json"
	"time"

	"backend-sprintlog/internal/db"
	"backend-sprintlog/internal/stream"

	"github.com/google/uuid"
)

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub}
}

// Create validates and stores a single run, then pushes it onto the
// track's live feed. CSV import bypasses the feed on purpose: replaying
// history to subscribers would be noise.
func (s *Service) Create(ctx context.Context, input Run) (Run, error) {
	if err := Validate(input); err != nil {
		return Run{}, err
	}

	created, err := s.insert(ctx, input)
	if err != nil {
		return Run{}, err
	}

	if s.hub != nil {
		payload, _ := json.Marshal(created)
		s.hub.Broadcast(created.TrackID, payload)
	}
	return created, nil
}

func (s *Service) insert(ctx context.Context, input Run) (Run, error) {
	input.ID = uuid.NewString()
	if input.RecordedAt.IsZero() {
		input.RecordedAt = time.Now()
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO runs (id, track_id, run_date, seconds, note, created_by, recorded_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`, input.ID, input.TrackID, input.Date, input.Seconds, input.Note, input.CreatedBy, input.RecordedAt)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Run{}, err
	}
	return input, nil
}

// ListByTrack returns every run logged on one track, oldest first.
func (s *Service) ListByTrack(ctx context.Context, trackID string) ([]Run, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, track_id, run_date, seconds, COALESCE(note,''), created_by, recorded_at, created_at
		FROM runs WHERE track_id=$1
		ORDER BY recorded_at
	`, trackID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.TrackID, &r.Date, &r.Seconds, &r.Note, &r.CreatedBy, &r.RecordedAt, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM runs WHERE id=$1`, id)
	return err
}
