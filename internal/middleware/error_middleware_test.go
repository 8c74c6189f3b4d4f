package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cartable/api/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"course file missing", apperrors.ErrCourseFileMissing, http.StatusNotFound},
		{"invalid course file", apperrors.ErrInvalidCourseFile, http.StatusBadRequest},
		{"storage failure", apperrors.NewStorageError("write course table", errors.New("disk full")), http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/courses/x", nil)

			HandleAPIError(c, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status: got=%d want=%d", rec.Code, tc.wantStatus)
			}
		})
	}
}
