package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mmynk/inventoryhub/internal/models"
	"github.com/mmynk/inventoryhub/internal/service"
	"github.com/mmynk/inventoryhub/internal/storage"
)

func (s *Server) createBill(c *fiber.Ctx) error {
	var req models.BillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	lines, err := service.LinesFromRequest(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	bill, err := s.billing.CreateBill(c.Context(), lines)
	if err != nil {
		// Business errors carry a message naming the offending product and
		// are the client's fault; anything else is an internal failure.
		if service.IsBusinessError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error creating bill"})
	}
	return c.JSON(bill)
}

func (s *Server) listBills(c *fiber.Ctx) error {
	bills, err := s.billing.ListBills(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list bills"})
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	return c.JSON(bills)
}

func (s *Server) getBill(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid bill id"})
	}

	bill, err := s.billing.GetBill(c.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "bill not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get bill"})
	}
	return c.JSON(bill)
}
