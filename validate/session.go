package validate

import (
	"fmt"
	"time"

	"github.com/achalesh/exhibition-manager-sub001/model"
	"github.com/achalesh/exhibition-manager-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateEventSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventSessionInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		start, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "startDate must be YYYY-MM-DD", err)
		}
		end, err := time.Parse("2006-01-02", input.EndDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "endDate must be YYYY-MM-DD", err)
		}
		if end.Before(start) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "endDate is before startDate", nil)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditEventSession(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditEventSessionInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		for _, d := range []*string{input.StartDate, input.EndDate} {
			if d == nil {
				continue
			}
			if _, err := time.Parse("2006-01-02", *d); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "dates must be YYYY-MM-DD", err)
			}
		}

		c.Locals("input", input)
		return GetById(key)(c)
	}
}
