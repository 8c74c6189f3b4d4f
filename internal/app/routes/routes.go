package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cartable/api/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
) {
	// Course catalog routes. The paths have no version prefix; the
	// historical contract of the API is /courses at the root.
	courses := router.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:name", courseController.GetCourseByName)
		courses.PUT("/:name", courseController.UpdateCourse)
		courses.DELETE("/:name", courseController.DeleteCourse)
		courses.GET("/:name/download", courseController.DownloadCourse)
	}

	// Liveness endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
