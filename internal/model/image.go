package model

import "time"

// Image represents an uploaded attachment. The row and the file on disk are
// created and removed together; neither may outlive the other.
type Image struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Filename  string    `json:"filename" gorm:"size:255;not null"`
	Path      string    `json:"path" gorm:"size:500;not null"`
	MimeType  string    `json:"mimetype" gorm:"size:100;not null"`
	Size      int64     `json:"size" gorm:"not null"`
	NoteID    uint      `json:"note_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Note Note `json:"-" gorm:"foreignKey:NoteID"`
}
