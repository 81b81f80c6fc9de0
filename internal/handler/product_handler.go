package handler

import (
	"strconv"

	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"
	"go-parts-store/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

// parseProductFilter reads the storefront query params ?category=&featured=&active=
func parseProductFilter(c *fiber.Ctx) (model.ProductFilter, error) {
	var filter model.ProductFilter

	if q := c.Query("category"); q != "" {
		id, err := uuid.Parse(q)
		if err != nil {
			return filter, apperr.Validation("invalid category ID")
		}
		filter.CategoryID = &id
	}
	if q := c.Query("featured"); q != "" {
		v, err := strconv.ParseBool(q)
		if err != nil {
			return filter, apperr.Validation("featured must be true or false")
		}
		filter.Featured = &v
	}
	if q := c.Query("active"); q != "" {
		v, err := strconv.ParseBool(q)
		if err != nil {
			return filter, apperr.Validation("active must be true or false")
		}
		filter.Active = &v
	}

	return filter, nil
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return respondError(c, err)
	}

	products, err := h.service.ListProducts(filter)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid product ID"))
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	product, err := h.service.CreateProduct(&req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, product)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid product ID"))
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	product, err := h.service.UpdateProduct(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, product)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid product ID"))
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Product deleted")
}
