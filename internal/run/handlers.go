package run

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires run endpoints. Run-scoped operations live under r
// ("/runs"), track-scoped listing and import under trackScoped ("/tracks").
func RegisterRoutes(r fiber.Router, trackScoped fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Run
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.CreatedBy == "" {
			return fiber.NewError(fiber.StatusBadRequest, "created_by required")
		}
		created, err := svc.Create(c.Context(), req)
		if err != nil {
			if errors.Is(err, ErrTrackRequired) || errors.Is(err, ErrInvalidSeconds) || errors.Is(err, ErrInvalidDate) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	trackScoped.Get("/:id/runs", func(c *fiber.Ctx) error {
		runs, err := svc.ListByTrack(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(runs)
	})

	trackScoped.Post("/:id/runs/import", authMiddleware, func(c *fiber.Ctx) error {
		body := c.Body()
		if len(body) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "csv body required")
		}
		createdBy, _ := c.Locals("user_id").(string)
		result, err := svc.ImportCSV(c.Context(), c.Params("id"), createdBy, bytes.NewReader(body))
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return c.JSON(result)
	})
}
