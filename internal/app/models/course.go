package models

import "time"

// Course is one entry in the catalog: the metadata of a single uploaded
// course plus the relative path of its PDF in the upload directory.
// The JSON tags define both the wire format and the on-disk table format.
type Course struct {
	Name        string    `json:"name" example:"Algebra"`
	Description string    `json:"description" example:"Linear equations and factoring"`
	PDFPath     string    `json:"pdf_path" example:"pdf_files/algebra.pdf"`
	Level       string    `json:"level" example:"6ème"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
