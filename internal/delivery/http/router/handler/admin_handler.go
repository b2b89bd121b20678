package handler

import (
	"log/slog"
	"net/http"
	"time"

	"libris/internal/delivery/http/response"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for catalog management and the global
// rental overview. Routes using it sit behind the admin middleware.
type AdminHandler struct {
	bookUC   usecase.BookUsecase
	rentalUC usecase.RentalUsecase
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(bookUC usecase.BookUsecase, rentalUC usecase.RentalUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		bookUC:   bookUC,
		rentalUC: rentalUC,
		logger:   logger,
	}
}

type createBookRequest struct {
	ISBN13      int64  `json:"isbn13" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	Author      string `json:"author" validate:"required,max=255"`
	PublishDate string `json:"publishDate" validate:"required,datetime=2006-01-02"`
}

type updateBookRequest struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	ISBN13      int64     `json:"isbn13" validate:"required"`
	Title       string    `json:"title" validate:"required,max=255"`
	Author      string    `json:"author" validate:"required,max=255"`
	PublishDate string    `json:"publishDate" validate:"required,datetime=2006-01-02"`
}

type activeRentalResponse struct {
	RentalID       uuid.UUID `json:"rentalId"`
	UserID         uuid.UUID `json:"userId"`
	UserName       string    `json:"userName"`
	BookID         uuid.UUID `json:"bookId"`
	BookTitle      string    `json:"bookTitle"`
	RentalDate     time.Time `json:"rentalDate"`
	ReturnDeadline time.Time `json:"returnDeadline"`
}

// CreateBook adds a book to the catalog.
func (h *AdminHandler) CreateBook(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	publishDate, err := time.Parse(time.DateOnly, req.PublishDate)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid publish date")
	}

	book, err := h.bookUC.CreateBook(c.Request().Context(), &usecase.CreateBookInput{
		ISBN13:      req.ISBN13,
		Title:       req.Title,
		Author:      req.Author,
		PublishDate: publishDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, book, "Book created")
}

// UpdateBook replaces a book's catalog fields.
func (h *AdminHandler) UpdateBook(c echo.Context) error {
	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	publishDate, err := time.Parse(time.DateOnly, req.PublishDate)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid publish date")
	}

	book, err := h.bookUC.UpdateBook(c.Request().Context(), &usecase.UpdateBookInput{
		ID:          req.ID,
		ISBN13:      req.ISBN13,
		Title:       req.Title,
		Author:      req.Author,
		PublishDate: publishDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book updated")
}

// CurrentRentals lists every open loan across all users.
func (h *AdminHandler) CurrentRentals(c echo.Context) error {
	rentals, err := h.rentalUC.ListAllActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]activeRentalResponse, 0, len(rentals))
	for _, rental := range rentals {
		out = append(out, activeRentalResponse{
			RentalID:       rental.RentalID,
			UserID:         rental.UserID,
			UserName:       rental.UserName,
			BookID:         rental.BookID,
			BookTitle:      rental.BookTitle,
			RentalDate:     rental.RentalDate,
			ReturnDeadline: rental.ReturnDeadline,
		})
	}

	return response.Success(c, http.StatusOK, out, "Active rentals retrieved")
}

// CurrentRentalsForUser lists one user's open loans, first due back first.
func (h *AdminHandler) CurrentRentalsForUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user id")
	}

	rentals, err := h.rentalUC.ListActiveForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRentalResponses(rentals), "Active rentals retrieved")
}
