package stats

import (
	"backend-sprintlog/internal/run"
	"backend-sprintlog/internal/track"

	"github.com/gofiber/fiber/v2"
)

type dayView struct {
	DayStats
	Classification Classification `json:"classification"`
}

// RegisterRoutes adds the statistics endpoint under the tracks group.
func RegisterRoutes(trackScoped fiber.Router, tracks *track.Service, runs *run.Service) {
	trackScoped.Get("/:id/stats", func(c *fiber.Ctx) error {
		t, err := tracks.GetTrack(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "track not found")
		}
		list, err := runs.ListByTrack(c.Context(), t.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		result := ComputeTrackStatistics(list, t)
		daily := make([]dayView, 0, len(result.Daily))
		for _, d := range result.Daily {
			daily = append(daily, dayView{
				DayStats:       d,
				Classification: ClassifyStability(d.StabilityScore, d.Count),
			})
		}
		return c.JSON(fiber.Map{
			"track":  t,
			"daily":  daily,
			"weekly": result.Weekly,
		})
	})
}
