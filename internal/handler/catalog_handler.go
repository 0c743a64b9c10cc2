package handler

import (
	"errors"
	"fmt"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"
	"go-pos-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CatalogHandler struct {
	catalog     service.CatalogService
	productRepo repository.ProductRepository
	localRepo   repository.LocalProductRepository
}

func NewCatalogHandler(catalog service.CatalogService, pRepo repository.ProductRepository, lpRepo repository.LocalProductRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, productRepo: pRepo, localRepo: lpRepo}
}

// Helper to get User ID from JWT context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

// GetProduct resolves a scanned code against the global master first,
// then the store-local master.
// GET /api/v1/products/:code
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	code := c.Params("code")

	record, err := h.catalog.Resolve(code)
	if errors.Is(err, service.ErrProductNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(record)
}

// GET /api/v1/products
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

// GET /api/v1/local-products
func (h *CatalogHandler) GetLocalProducts(c *fiber.Ctx) error {
	products, err := h.localRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

// POST /api/v1/products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&product); len(errs) > 0 {
		first := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag),
		})
	}

	if existing, _ := h.productRepo.FindByCode(product.ProductCode); existing != nil {
		return c.Status(400).JSON(fiber.Map{"error": "product code already exists"})
	}

	userID := getUserID(c)
	product.CreatedBy = userID
	product.UpdatedBy = userID

	if err := h.productRepo.Create(&product); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create product"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// PUT /api/v1/products/:code
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	code := c.Params("code")

	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing, err := h.productRepo.FindByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	// Code is immutable identity; only name and price are editable.
	existing.Name = req.Name
	existing.Price = req.Price
	existing.UpdatedBy = getUserID(c)

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		first := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag),
		})
	}

	if err := h.productRepo.Update(existing); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update product"})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": existing})
}

// PUT /api/v1/local-products/:code
func (h *CatalogHandler) UpdateLocalProduct(c *fiber.Ctx) error {
	code := c.Params("code")

	var req model.LocalProduct
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing, err := h.localRepo.FindByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	// Code is immutable identity; only name and price are editable.
	existing.Name = req.Name
	existing.Price = req.Price
	existing.UpdatedBy = getUserID(c)

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		first := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag),
		})
	}

	if err := h.localRepo.Update(existing); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update local product"})
	}

	return c.JSON(fiber.Map{"message": "Local product updated", "data": existing})
}

// POST /api/v1/local-products
func (h *CatalogHandler) CreateLocalProduct(c *fiber.Ctx) error {
	var product model.LocalProduct
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&product); len(errs) > 0 {
		first := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag),
		})
	}

	if existing, _ := h.localRepo.FindByCode(product.ProductCode); existing != nil {
		return c.Status(400).JSON(fiber.Map{"error": "product code already exists in local master"})
	}

	userID := getUserID(c)
	product.CreatedBy = userID
	product.UpdatedBy = userID

	if err := h.localRepo.Create(&product); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create local product"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Local product created", "data": product})
}
