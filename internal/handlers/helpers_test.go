package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"finwise/internal/config"
	"finwise/internal/middleware"
	"finwise/internal/validator"
)

const (
	testUserID    = "0192f3a4-0000-7000-8000-000000000001"
	testExpenseID = "0192f3a4-0000-7000-8000-0000000000e1"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
	os.Setenv("JWT_SECRET", "handlers-test-secret")
	if _, err := config.Load(); err != nil {
		panic(err)
	}
}

// mockAuditService records the actions it was asked to log.
type mockAuditService struct {
	actions []string
}

func (m *mockAuditService) Log(_, action, _, _, _ string, _ map[string]interface{}) {
	m.actions = append(m.actions, action)
}

func (m *mockAuditService) logged(action string) bool {
	for _, a := range m.actions {
		if a == action {
			return true
		}
	}
	return false
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
