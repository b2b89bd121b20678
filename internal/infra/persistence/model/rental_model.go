package model

import (
	"time"

	"github.com/google/uuid"
)

// RentalModel mirrors the 'rentals' table. The partial unique index on
// book_id (rows where return_date IS NULL) is what enforces at most one
// active rental per book; concurrent inserts for the same book collide on
// it and surface as a duplicate key error.
type RentalModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BookID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rentals_active_book,where:return_date IS NULL"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	RentalDate     time.Time `gorm:"not null"`
	ReturnDeadline time.Time `gorm:"not null"`
	ReturnDate     *time.Time
	CreatedAt      time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
	Book *BookModel `gorm:"foreignKey:BookID"`
}

// TableName explicitly sets the table name for GORM.
func (RentalModel) TableName() string {
	return "rentals"
}
