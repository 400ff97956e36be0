package track

import (
	"context"

	"backend-sprintlog/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) CreateTrack(ctx context.Context, input Track) (Track, error) {
	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO tracks (id, name, distance_meters, created_by)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, input.ID, input.Name, input.DistanceMeters, input.CreatedBy)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Track{}, err
	}
	return input, nil
}

func (s *Service) GetTrack(ctx context.Context, id string) (Track, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, distance_meters, created_by, created_at
		FROM tracks WHERE id=$1
	`, id)
	var t Track
	if err := row.Scan(&t.ID, &t.Name, &t.DistanceMeters, &t.CreatedBy, &t.CreatedAt); err != nil {
		return Track{}, err
	}
	return t, nil
}

func (s *Service) ListTracks(ctx context.Context) ([]Track, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, distance_meters, created_by, created_at
		FROM tracks
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		var t Track
		if err := rows.Scan(&t.ID, &t.Name, &t.DistanceMeters, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

func (s *Service) UpdateTrack(ctx context.Context, id string, patch Track) (Track, error) {
	t, err := s.GetTrack(ctx, id)
	if err != nil {
		return Track{}, err
	}
	if patch.Name != "" {
		t.Name = patch.Name
	}
	if patch.DistanceMeters != 0 {
		t.DistanceMeters = patch.DistanceMeters
	}

	_, err = s.db.Exec(ctx, `
		UPDATE tracks
		SET name=$2, distance_meters=$3
		WHERE id=$1
	`, t.ID, t.Name, t.DistanceMeters)
	if err != nil {
		return Track{}, err
	}
	return t, nil
}

func (s *Service) DeleteTrack(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM tracks WHERE id=$1`, id)
	return err
}
