package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"libris/internal/delivery/http/response"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for catalog browsing handlers.
type BookHandler struct {
	uc     usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

type bookSummaryResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	IsRental bool      `json:"isRental"`
}

type bookListResponse struct {
	Books   []bookSummaryResponse `json:"books"`
	Page    int                   `json:"page"`
	MaxPage int                   `json:"maxPage"`
}

type rentalInfoResponse struct {
	UserName       string    `json:"userName"`
	RentalDate     time.Time `json:"rentalDate"`
	ReturnDeadline time.Time `json:"returnDeadline"`
}

type bookDetailResponse struct {
	ID          uuid.UUID           `json:"id"`
	ISBN13      int64               `json:"isbn13"`
	Title       string              `json:"title"`
	Author      string              `json:"author"`
	PublishDate time.Time           `json:"publishDate"`
	RentalInfo  *rentalInfoResponse `json:"rentalInfo,omitempty"`
}

// List returns one catalog page. The page query parameter defaults to 1.
func (h *BookHandler) List(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid page number")
		}
		page = parsed
	}

	output, err := h.uc.ListBooks(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	books := make([]bookSummaryResponse, 0, len(output.Books))
	for _, summary := range output.Books {
		books = append(books, bookSummaryResponse{
			ID:       summary.ID,
			Title:    summary.Title,
			Author:   summary.Author,
			IsRental: summary.Rented,
		})
	}

	return response.Success(c, http.StatusOK, bookListResponse{
		Books:   books,
		Page:    output.Page,
		MaxPage: output.MaxPage,
	}, "Book list retrieved")
}

// Detail returns a single book. While the book is out, the response carries
// the renter's name and the loan dates.
func (h *BookHandler) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book id")
	}

	output, err := h.uc.GetBookDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	detail := bookDetailResponse{
		ID:          output.Book.ID,
		ISBN13:      output.Book.ISBN13,
		Title:       output.Book.Title,
		Author:      output.Book.Author,
		PublishDate: output.Book.PublishDate,
	}
	if output.RentalInfo != nil {
		detail.RentalInfo = &rentalInfoResponse{
			UserName:       output.RentalInfo.UserName,
			RentalDate:     output.RentalInfo.RentalDate,
			ReturnDeadline: output.RentalInfo.ReturnDeadline,
		}
	}

	return response.Success(c, http.StatusOK, detail, "Book detail retrieved")
}
