package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finwise/internal/config"
	"finwise/internal/events"
	"finwise/internal/handlers"
	"finwise/internal/logger"
	"finwise/internal/marketdata"
	"finwise/internal/middleware"
	"finwise/internal/services"
	"finwise/internal/testutil"
	"finwise/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Mailer *codeMailer
	Events *recordingPublisher
}

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "integration-test-secret")
	if _, err := config.Load(); err != nil {
		panic(err)
	}
	logger.Init("test", "error")
	validator.Register()
}

// codeMailer keeps the last verification code sent to each address.
type codeMailer struct {
	mu    sync.Mutex
	codes map[string]string
}

func (m *codeMailer) SendVerificationCode(_ context.Context, email, _, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[email] = code
	return nil
}

func (m *codeMailer) code(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[email]
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count(eventType string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
// Market data and feedback run without keys, so those endpoints report themselves disabled.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	mail := &codeMailer{codes: map[string]string{}}
	publisher := &recordingPublisher{}

	// Services
	userService := services.NewUserService(db, mail, services.DefaultUserSettings())
	auditService := services.NewAuditService(db)
	grouper := services.NewExpenseGrouper(db)
	analyticsService := services.NewAnalyticsService(db, grouper)
	budgetService := services.NewBudgetService(db)
	expenseService := services.NewExpenseService(db, publisher)
	dashboardService := services.NewDashboardService(db, grouper, analyticsService)
	saveGoalService := services.NewSaveGoalService(db, analyticsService)
	notificationService := services.NewNotificationService(db)
	stockService := services.NewStockService(db,
		marketdata.NewAlphaVantageClient(http.DefaultClient, ""),
		marketdata.NewFinnhubClient(http.DefaultClient, ""))
	feedbackService := services.NewFeedbackService(db, analyticsService, nil)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	saveGoalHandler := handlers.NewSaveGoalHandler(saveGoalService, auditService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	stockHandler := handlers.NewStockHandler(stockService, auditService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/verify", authHandler.Verify)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile", authHandler.UpdateProfile)
	protected.PUT("/profile/password", authHandler.ChangePassword)

	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudget)
	budgets.GET("/latest", budgetHandler.GetLatestCategories)
	budgets.POST("/categories", budgetHandler.AddCategory)
	budgets.PUT("/categories/:name/reset", budgetHandler.ResetCategory)
	budgets.DELETE("/categories/:name", budgetHandler.DeleteCategory)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/bar-chart", dashboardHandler.GetBarChart)
	dashboard.GET("/line-chart", dashboardHandler.GetLineChart)
	dashboard.GET("/pie-chart", dashboardHandler.GetPieChart)
	dashboard.GET("/stat", dashboardHandler.GetStat)
	dashboard.GET("/features", dashboardHandler.GetFeatures)

	saveGoal := protected.Group("/save-goal")
	saveGoal.POST("", saveGoalHandler.SetGoal)
	saveGoal.GET("", saveGoalHandler.GetGoal)
	saveGoal.PUT("/reset", saveGoalHandler.ResetGoal)

	protected.GET("/notifications", notificationHandler.GetNotifications)

	stocks := protected.Group("/stocks")
	stocks.POST("", stockHandler.AddStock)
	stocks.GET("", stockHandler.GetStocks)
	stocks.GET("/news", stockHandler.GetNews)
	stocks.DELETE("/:symbol", stockHandler.RemoveStock)

	protected.POST("/feedback", feedbackHandler.GenerateFeedback)

	return &testApp{DB: db, Router: router, Mailer: mail, Events: publisher}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	return errObj["code"].(string)
}

// registerUser registers and verifies a new user and returns the access token,
// refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, username, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"username":%q,"password":%q,"full_name":"Test User"}`, email, username, password)
	rec := app.request(http.MethodPost, "/api/v1/auth/register", body, "")
	expectStatus(t, rec, http.StatusCreated)

	rec = app.request(http.MethodPost, "/api/v1/auth/verify",
		fmt.Sprintf(`{"email":%q,"code":%q}`, email, app.Mailer.code(email)), "")
	expectStatus(t, rec, http.StatusOK)

	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request(http.MethodPost, "/api/v1/auth/login", body, "")
	expectStatus(t, rec, http.StatusOK)
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// setSalary stores the monthly salary on the profile.
func (app *testApp) setSalary(t *testing.T, token, salary string) {
	t.Helper()
	rec := app.request(http.MethodPut, "/api/v1/profile", fmt.Sprintf(`{"monthly_salary":%q}`, salary), token)
	expectStatus(t, rec, http.StatusOK)
}
