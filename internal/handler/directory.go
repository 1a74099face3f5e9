package handler

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
)

// ListRooms handles GET /v1/rooms.  Rooms come back with their rates so
// the booking form can show prices; availability status is whatever the
// room collaborator last wrote.
func (h *BookingHandler) ListRooms(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms})
}

// ListCustomers handles GET /v1/customers.
func (h *BookingHandler) ListCustomers(c echo.Context) error {
	customers, err := h.Customers.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"customers": customers})
}

// CreateCustomer handles POST /v1/customers.  Name and a syntactically
// valid email are required; phone is optional.
func (h *BookingHandler) CreateCustomer(c echo.Context) error {
	var body struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.FullName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name is required"})
	}
	if _, err := mail.ParseAddress(body.Email); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "provide a valid email"})
	}
	customer := &model.Customer{
		FullName: name,
		Email:    body.Email,
		Phone:    strings.TrimSpace(body.Phone),
	}
	if err := h.Customers.Create(c.Request().Context(), customer); err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, customer)
}
