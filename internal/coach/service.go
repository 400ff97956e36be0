package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backend-sprintlog/internal/config"
	"backend-sprintlog/internal/stats"
	"backend-sprintlog/internal/track"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const (
	defaultCacheTTL = 6 * time.Hour
	requestTimeout  = 10 * time.Second

	// maxDigestDays caps how much history goes into the prompt.
	maxDigestDays = 14
)

var ErrNotConfigured = errors.New("coach service not configured")

// Service turns a track's daily statistics into a short prose coaching
// note by calling an external text-generation service. Notes are cached
// in redis keyed by track and most recent training date, so repeat views
// of unchanged stats never re-hit the generator.
type Service struct {
	redis *redis.Client
	url   string
	model string
	ttl   time.Duration
}

func NewService(cfg config.Config, redisClient *redis.Client) *Service {
	ttl, err := time.ParseDuration(cfg.CoachCacheTTL)
	if err != nil || ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Service{
		redis: redisClient,
		url:   cfg.CoachServiceURL,
		model: cfg.CoachModel,
		ttl:   ttl,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// NoteForTrack expects daily stats as produced by the aggregator, most
// recent day first.
func (s *Service) NoteForTrack(ctx context.Context, t track.Track, daily []stats.DayStats) (string, error) {
	if len(daily) == 0 {
		return "No runs logged yet for " + t.Name + ". Log a few timed runs and check back for advice.", nil
	}

	key := cacheKey(t.ID, daily[0].Date)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, key).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	if s.url == "" {
		return "", ErrNotConfigured
	}

	agent := fiber.Post(s.url)
	agent.Timeout(requestTimeout)
	agent.JSON(generateRequest{Model: s.model, Prompt: buildPrompt(t, daily)})

	var out generateResponse
	code, _, errs := agent.Struct(&out)
	if len(errs) > 0 {
		return "", errs[0]
	}
	if code != fiber.StatusOK {
		return "", fmt.Errorf("coach service returned status %d", code)
	}
	if out.Text == "" {
		return "", errors.New("coach service returned empty note")
	}

	if s.redis != nil {
		_ = s.redis.Set(ctx, key, out.Text, s.ttl).Err()
	}
	return out.Text, nil
}

func buildPrompt(t track.Track, daily []stats.DayStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a sprint coach. The athlete trains on %q", t.Name)
	if t.DistanceMeters > 0 {
		fmt.Fprintf(&b, " (%.0f m)", t.DistanceMeters)
	}
	b.WriteString(". Recent daily results, most recent first:\n")

	limit := len(daily)
	if limit > maxDigestDays {
		limit = maxDigestDays
	}
	for _, d := range daily[:limit] {
		cls := stats.ClassifyStability(d.StabilityScore, d.Count)
		fmt.Fprintf(&b, "- %s: avg %.2fs, best %.2fs over %d runs, consistency: %s\n",
			d.Date, d.AvgSeconds, d.BestSeconds, d.Count, cls.Label)
	}

	b.WriteString("Write a short encouraging coaching note (3-4 sentences) with one concrete focus for the next session.")
	return b.String()
}

func cacheKey(trackID, latestDate string) string {
	return "coach:note:" + trackID + ":" + latestDate
}
