package dto

// CreateCourseRequest carries the multipart form fields of a course upload.
// The PDF itself travels as the "file" part and is handled separately.
type CreateCourseRequest struct {
	Name        string `form:"name" binding:"required" example:"Algebra"`
	Description string `form:"description" binding:"required" example:"Linear equations and factoring"`
	Level       string `form:"level" binding:"required" example:"6ème"`
}

// UpdateCourseRequest is the PUT body, shaped like a full course record.
// Name is accepted for symmetry with the stored record but ignored: the
// path parameter stays the business key on updates.
type UpdateCourseRequest struct {
	Name        string `json:"name" example:"Algebra"`
	Description string `json:"description" binding:"required" example:"Linear equations and factoring"`
	PDFPath     string `json:"pdf_path" binding:"required" example:"pdf_files/algebra.pdf"`
	Level       string `json:"level" binding:"required" example:"Bac"`
}
