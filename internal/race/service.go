package race

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

func (s *Service) CreateRace(ctx context.Context, input Race) (Race, error) {
	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO races (id, name, venue, race_date, distance_meters, goal_seconds, result_seconds, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`, input.ID, input.Name, input.Venue, input.Date, input.DistanceMeters, input.GoalSeconds, input.ResultSeconds, input.CreatedBy)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Race{}, err
	}
	return input, nil
}

func (s *Service) GetRace(ctx context.Context, id string) (Race, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, venue, race_date, distance_meters, goal_seconds, result_seconds, created_by, created_at
		FROM races WHERE id=$1
	`, id)
	var r Race
	if err := row.Scan(&r.ID, &r.Name, &r.Venue, &r.Date, &r.DistanceMeters, &r.GoalSeconds, &r.ResultSeconds, &r.CreatedBy, &r.CreatedAt); err != nil {
		return Race{}, err
	}
	return r, nil
}

// ListRaces returns the roster soonest race first.
func (s *Service) ListRaces(ctx context.Context) ([]Race, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, venue, race_date, distance_meters, goal_seconds, result_seconds, created_by, created_at
		FROM races
		ORDER BY race_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var races []Race
	for rows.Next() {
		var r Race
		if err := rows.Scan(&r.ID, &r.Name, &r.Venue, &r.Date, &r.DistanceMeters, &r.GoalSeconds, &r.ResultSeconds, &r.CreatedBy, &r.CreatedAt); err != nil {
			return nil, err
		}
		races = append(races, r)
	}
	return races, nil
}

func (s *Service) UpdateRace(ctx context.Context, id string, patch Race) (Race, error) {
	r, err := s.GetRace(ctx, id)
	if err != nil {
		return Race{}, err
	}
	if patch.Name != "" {
		r.Name = patch.Name
	}
	if patch.Venue != "" {
		r.Venue = patch.Venue
	}
	if patch.Date != "" {
		r.Date = patch.Date
	}
	if patch.DistanceMeters != 0 {
		r.DistanceMeters = patch.DistanceMeters
	}
	if patch.GoalSeconds != 0 {
		r.GoalSeconds = patch.GoalSeconds
	}
	if patch.ResultSeconds != 0 {
		r.ResultSeconds = patch.ResultSeconds
	}

	_, err = s.db.Exec(ctx, `
		UPDATE races
		SET name=$2, venue=$3, race_date=$4, distance_meters=$5, goal_seconds=$6, result_seconds=$7
		WHERE id=$1
	`, r.ID, r.Name, r.Venue, r.Date, r.DistanceMeters, r.GoalSeconds, r.ResultSeconds)
	if err != nil {
		return Race{}, err
	}
	return r, nil
}

func (s *Service) DeleteRace(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM races WHERE id=$1`, id)
	return err
}
