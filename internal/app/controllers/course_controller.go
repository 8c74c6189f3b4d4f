package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cartable/api/internal/app/models/dto"
	"github.com/cartable/api/internal/app/services"
	"github.com/cartable/api/internal/middleware"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles uploading a new course with its PDF
// @Summary Create a new course
// @Description Creates a course record and stores the attached PDF
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Course name"
// @Param description formData string true "Course description"
// @Param level formData string true "Course level (e.g. 5ème, 6ème, Bac)"
// @Param file formData file true "Course PDF"
// @Success 201 {object} models.Course "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data or non-PDF file"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Course file is required")
		errorDetail = errorDetail.WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Failed to open uploaded file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	defer file.Close()

	course, err := c.courseService.Create(ctx, &req, fileHeader.Filename, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// GetAllCourses handles listing the full course catalog
// @Summary List all courses
// @Description Retrieves every course in storage order
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByName handles retrieving a single course by name
// @Summary Get course by name
// @Description Retrieves the first course whose name matches exactly
// @Tags courses
// @Produce json
// @Param name path string true "Course name"
// @Success 200 {object} models.Course "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{name} [get]
func (c *CourseController) GetCourseByName(ctx *gin.Context) {
	course, err := c.courseService.GetByName(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// UpdateCourse handles replacing the mutable fields of a course
// @Summary Update a course
// @Description Overwrites description, pdf_path and level; created_at is preserved
// @Tags courses
// @Accept json
// @Produce json
// @Param name path string true "Course name"
// @Param course body dto.UpdateCourseRequest true "New course data"
// @Success 200 {object} models.Course "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{name} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.Update(ctx, ctx.Param("name"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse handles removing a course from the catalog
// @Summary Delete a course
// @Description Removes the first course matching name; the PDF stays on disk
// @Tags courses
// @Produce json
// @Param name path string true "Course name"
// @Success 200 {object} models.Course "Deleted course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{name} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	course, err := c.courseService.Delete(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DownloadCourse handles streaming a course's PDF back to the client
// @Summary Download the course PDF
// @Description Streams the stored PDF as an attachment with its original filename
// @Tags courses
// @Produce application/pdf
// @Param name path string true "Course name"
// @Success 200 {file} file "PDF content"
// @Failure 404 {object} dto.ErrorResponse "Course or file not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{name}/download [get]
func (c *CourseController) DownloadCourse(ctx *gin.Context) {
	download, err := c.courseService.Download(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer download.Reader.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", download.Filename),
	}
	ctx.DataFromReader(http.StatusOK, download.Size, "application/pdf", download.Reader, extraHeaders)
}
