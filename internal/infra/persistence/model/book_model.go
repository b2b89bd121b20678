package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table.
type BookModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ISBN13      int64     `gorm:"column:isbn13;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Author      string    `gorm:"type:varchar(255);not null"`
	PublishDate time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Rentals []RentalModel `gorm:"foreignKey:BookID"`
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
