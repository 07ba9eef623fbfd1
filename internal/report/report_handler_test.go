package report_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestReportHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	emps, att, leaves := fixtures()
	r := gin.New()
	r.GET("/reports/dashboard", report.NewHandler(report.NewService(emps, att, leaves, nil)).Dashboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/dashboard?date=2023-05-01", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_employees":4`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/dashboard?date=01-05-2023", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
