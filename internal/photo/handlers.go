package photo

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires photo endpoints: uploads and listings hang off the
// runs group, content download off its own group.
func RegisterRoutes(runScoped fiber.Router, r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	runScoped.Post("/:id/photos", authMiddleware, func(c *fiber.Ctx) error {
		data := c.Body()
		if fh, err := c.FormFile("photo"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			defer f.Close()
			data, err = io.ReadAll(f)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}
		if len(data) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "image body required")
		}

		userID, _ := c.Locals("user_id").(string)
		p, err := svc.Attach(c.Context(), c.Params("id"), userID, data)
		if err != nil {
			if errors.Is(err, ErrUnsupportedImage) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	})

	runScoped.Get("/:id/photos", func(c *fiber.Ctx) error {
		photos, err := svc.ListByRun(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(photos)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		content, err := svc.Content(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "photo not found")
		}
		c.Set(fiber.HeaderContentType, "image/jpeg")
		return c.Send(content)
	})
}
