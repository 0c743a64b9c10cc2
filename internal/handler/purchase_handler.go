package handler

import (
	"errors"
	"strconv"

	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

// CreatePurchase records a completed checkout.
// POST /api/v1/purchases
func (h *PurchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	var req service.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.CreatePurchase(&req)
	if err != nil {
		var invalid *service.InvalidRequestError
		if errors.As(err, &invalid) {
			return c.Status(400).JSON(fiber.Map{"error": invalid.Error()})
		}
		// Storage failure: the whole write was rolled back, nothing partial
		// is visible. Not retried here; the caller decides.
		return c.Status(500).JSON(fiber.Map{"error": "failed to record purchase"})
	}

	return c.Status(201).JSON(result)
}

// GET /api/v1/transactions
func (h *PurchaseHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.GetAllTransactions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transactions)
}

// GET /api/v1/transactions/:id
func (h *PurchaseHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	transaction, err := h.service.GetTransactionByID(uint(id))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(transaction)
}
