package rbac

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	directoryReaders map[string]bool
}

func (f *fakeService) LoadPolicy(ctx context.Context) error { return nil }

func (f *fakeService) Enforce(req domain.EnforceRequest) (bool, error) {
	if req.Resource == "users" && req.Action == "read" {
		return f.directoryReaders[req.EmployeeID], nil
	}
	return req.Resource == "leaves" && req.Action == "read", nil
}

func (f *fakeService) Permissions(role string) (domain.RolePermissionsResponse, error) {
	return domain.RolePermissionsResponse{Role: role}, nil
}

type envelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := &fakeService{directoryReaders: map[string]bool{"2": true}}
	asUser := func(c *gin.Context) {
		c.Set("user_id", c.GetHeader("X-Test-User"))
		c.Next()
	}
	router.POST("/rbac/enforce", asUser, NewHandler(svc).Enforce)

	post := func(callerID, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Test-User", callerID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		body, _ := json.Marshal(domain.EnforceRequest{EmployeeID: "1", Resource: "leaves", Action: "read"})
		w := post("1", string(body))

		assert.Equal(t, http.StatusOK, w.Code)
		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var resp domain.EnforceResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.True(t, resp.Allowed)
	})

	t.Run("blank fields rejected", func(t *testing.T) {
		w := post("1", `{"employee_id":" ","resource":"leaves","action":"read"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("other employee needs directory access", func(t *testing.T) {
		w := post("1", `{"employee_id":"3","resource":"leaves","action":"read"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("directory reader may ask about others", func(t *testing.T) {
		w := post("2", `{"employee_id":"3","resource":"leaves","action":"read"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})
}

func TestHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/rbac/check?resource=payroll&action=process", nil)
	c.Set("role", "employee")

	NewHandler(&fakeService{}).Check(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allowed":false`)
}
