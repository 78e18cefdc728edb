package course

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	CreatorEmail string `json:"creator_email" gorm:"index;not null"`
	PdfFileName  string `json:"pdf_file_name"`
	PdfFileURL   string `json:"pdf_file_url"`
	IsDeleted    bool   `gorm:"default:false"`
}
