package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog entry. Books are created and updated by administrators
// only; regular users browse them and rent them through the ledger.
type Book struct {
	ID          uuid.UUID
	ISBN13      int64
	Title       string
	Author      string
	PublishDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookSummary is the catalog-listing read model: the browsing fields of a
// book plus whether it currently has an active rental. The rented flag is
// resolved by the store when the page is queried.
type BookSummary struct {
	ID     uuid.UUID
	Title  string
	Author string
	Rented bool
}
