package server

import (
	"backend-sprintlog/internal/auth"
	"backend-sprintlog/internal/coach"
	"backend-sprintlog/internal/config"
	"backend-sprintlog/internal/photo"
	"backend-sprintlog/internal/race"
	"backend-sprintlog/internal/run"
	"backend-sprintlog/internal/stats"
	"backend-sprintlog/internal/stream"
	"backend-sprintlog/internal/track"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	trackSvc := track.NewService(s.DB)
	runSvc := run.NewService(s.DB, s.Stream)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))

	tracks := s.App.Group("/tracks")
	runs := s.App.Group("/runs")

	track.RegisterRoutes(tracks, trackSvc, jwtMiddleware)
	run.RegisterRoutes(runs, tracks, runSvc, jwtMiddleware)
	stats.RegisterRoutes(tracks, trackSvc, runSvc)
	coach.RegisterRoutes(tracks, coach.NewService(s.Cfg, s.Redis), trackSvc, runSvc, jwtMiddleware)
	race.RegisterRoutes(s.App.Group("/races"), race.NewService(s.DB), jwtMiddleware)
	photo.RegisterRoutes(runs, s.App.Group("/photos"), photo.NewService(s.DB, s.Cfg.PhotoMaxEdge), jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
