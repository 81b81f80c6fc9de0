package handler

import "github.com/gofiber/fiber/v2"

// StubHandler answers the empty success envelope for resources whose
// contract exists but whose behavior does not yet (reviews, shipping,
// security, analytics, database). Callers depend on the response shape;
// no business logic is implied.
type StubHandler struct{}

func NewStubHandler() *StubHandler {
	return &StubHandler{}
}

func (h *StubHandler) Empty(c *fiber.Ctx) error {
	return respondOK(c, []interface{}{})
}

// RegisterRoutes binds every method of the resource group to the empty
// success response
func (h *StubHandler) RegisterRoutes(group fiber.Router) {
	group.Get("/", h.Empty)
	group.Get("/:id", h.Empty)
	group.Post("/", h.Empty)
	group.Put("/:id", h.Empty)
	group.Delete("/:id", h.Empty)
}
