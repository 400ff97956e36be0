package coach

import (
	"errors"

	"backend-sprintlog/internal/run"
	"backend-sprintlog/internal/stats"
	"backend-sprintlog/internal/track"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(trackScoped fiber.Router, svc *Service, tracks *track.Service, runs *run.Service, authMiddleware fiber.Handler) {
	trackScoped.Get("/:id/coach", authMiddleware, func(c *fiber.Ctx) error {
		t, err := tracks.GetTrack(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "track not found")
		}
		list, err := runs.ListByTrack(c.Context(), t.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		result := stats.ComputeTrackStatistics(list, t)
		note, err := svc.NoteForTrack(c.Context(), t, result.Daily)
		if err != nil {
			if errors.Is(err, ErrNotConfigured) {
				return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
			}
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return c.JSON(fiber.Map{"track_id": t.ID, "note": note})
	})
}
