package photo

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"

	_ "image/png"

	"backend-sprintlog/internal/db"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	defaultMaxEdge = 1280
	jpegQuality    = 85
)

var ErrUnsupportedImage = errors.New("unsupported image data")

type Service struct {
	db      db.Querier
	maxEdge int
}

func NewService(db db.Querier, maxEdge int) *Service {
	if maxEdge <= 0 {
		maxEdge = defaultMaxEdge
	}
	return &Service{db: db, maxEdge: maxEdge}
}

// Attach decodes an uploaded JPEG or PNG, downscales it so the longest
// edge fits the configured bound, re-encodes as JPEG and stores it
// alongside the run.
func (s *Service) Attach(ctx context.Context, runID, userID string, data []byte) (Photo, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Photo{}, ErrUnsupportedImage
	}

	scaled := Downscale(img, s.maxEdge)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Photo{}, err
	}

	bounds := scaled.Bounds()
	p := Photo{
		ID:     uuid.NewString(),
		RunID:  runID,
		UserID: userID,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO run_photos (id, run_id, user_id, content, width, height)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at
	`, p.ID, p.RunID, p.UserID, buf.Bytes(), p.Width, p.Height)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return Photo{}, err
	}
	return p, nil
}

func (s *Service) ListByRun(ctx context.Context, runID string) ([]Photo, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, run_id, user_id, width, height, created_at
		FROM run_photos WHERE run_id=$1
		ORDER BY created_at
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.RunID, &p.UserID, &p.Width, &p.Height, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, nil
}

// Content returns the stored JPEG bytes for one photo.
func (s *Service) Content(ctx context.Context, id string) ([]byte, error) {
	var content []byte
	row := s.db.QueryRow(ctx, `SELECT content FROM run_photos WHERE id=$1`, id)
	if err := row.Scan(&content); err != nil {
		return nil, err
	}
	return content, nil
}

// Downscale shrinks img so neither edge exceeds maxEdge, preserving
// aspect ratio. Images already within bounds are returned as-is.
func Downscale(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}

	scale := float64(maxEdge) / float64(w)
	if h > w {
		scale = float64(maxEdge) / float64(h)
	}
	dw := int(float64(w)*scale + 0.5)
	dh := int(float64(h)*scale + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
