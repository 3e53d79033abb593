package model

import "time"

// DefaultCategory is assigned when a note is created without a category.
const DefaultCategory = "General"

// Note represents a user-owned note with optional image attachments.
type Note struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	Category  string    `json:"category" gorm:"size:100;not null;default:'General'"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations. Image rows go with the note at the database level.
	User   User    `json:"-" gorm:"foreignKey:UserID"`
	Images []Image `json:"images" gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE"`
}
