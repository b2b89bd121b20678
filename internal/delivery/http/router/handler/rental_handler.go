package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "libris/internal/delivery/context"
	"libris/internal/delivery/http/response"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RentalHandler holds dependencies for the user-facing rental handlers. All
// of them act on behalf of the authenticated principal; the target user is
// never taken from the request body.
type RentalHandler struct {
	uc     usecase.RentalUsecase
	logger *slog.Logger
}

// NewRentalHandler is the constructor for RentalHandler, injected by Fx.
func NewRentalHandler(uc usecase.RentalUsecase, logger *slog.Logger) *RentalHandler {
	return &RentalHandler{
		uc:     uc,
		logger: logger,
	}
}

type startRentalRequest struct {
	BookID uuid.UUID `json:"bookId" validate:"required"`
}

type returnRentalRequest struct {
	RentalID uuid.UUID `json:"rentalId" validate:"required"`
}

type rentalResponse struct {
	ID             uuid.UUID  `json:"id"`
	BookID         uuid.UUID  `json:"bookId"`
	BookTitle      string     `json:"bookTitle,omitempty"`
	RentalDate     time.Time  `json:"rentalDate"`
	ReturnDeadline time.Time  `json:"returnDeadline"`
	ReturnDate     *time.Time `json:"returnDate,omitempty"`
}

// Start loans a book to the calling user.
func (h *RentalHandler) Start(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "login required")
	}

	var req startRentalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rental input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	rental, err := h.uc.StartRental(c.Request().Context(), principal.ID, req.BookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rentalResponse{
		ID:             rental.ID,
		BookID:         rental.BookID,
		RentalDate:     rental.RentalDate,
		ReturnDeadline: rental.ReturnDeadline,
	}, "Rental started")
}

// Return closes a rental owned by the calling user.
func (h *RentalHandler) Return(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "login required")
	}

	var req returnRentalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	rental, err := h.uc.ReturnRental(c.Request().Context(), principal.ID, req.RentalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rentalResponse{
		ID:             rental.ID,
		BookID:         rental.BookID,
		RentalDate:     rental.RentalDate,
		ReturnDeadline: rental.ReturnDeadline,
		ReturnDate:     rental.ReturnDate,
	}, "Rental returned")
}

// Current lists the calling user's open loans, first due back first.
func (h *RentalHandler) Current(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "login required")
	}

	rentals, err := h.uc.ListActiveForUser(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRentalResponses(rentals), "Current rentals retrieved")
}

// History lists the calling user's completed loans.
func (h *RentalHandler) History(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "login required")
	}

	rentals, err := h.uc.ListHistoryForUser(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRentalResponses(rentals), "Rental history retrieved")
}

func toRentalResponses(rentals []*usecase.RentalWithBook) []rentalResponse {
	out := make([]rentalResponse, 0, len(rentals))
	for _, item := range rentals {
		out = append(out, rentalResponse{
			ID:             item.Rental.ID,
			BookID:         item.Rental.BookID,
			BookTitle:      item.BookTitle,
			RentalDate:     item.Rental.RentalDate,
			ReturnDeadline: item.Rental.ReturnDeadline,
			ReturnDate:     item.Rental.ReturnDate,
		})
	}

	return out
}
