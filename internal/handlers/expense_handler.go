package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finwise/internal/pagination"
	"finwise/internal/services"
)

// ExpenseHandler handles expense-related requests
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		auditService:   auditService,
	}
}

// CreateExpenseRequest represents the request body for recording an expense
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"gt=0"`
	Category    string          `json:"category" binding:"required,min=1,max=20"`
	Description string          `json:"description" binding:"max=255"`
	OccurredOn  *time.Time      `json:"occurred_on"`
}

// ExpenseListQuery holds the filters accepted by the expense list endpoint
type ExpenseListQuery struct {
	Range  string `form:"range"`
	Search string `form:"search" binding:"max=20"`
}

// CreateExpense records an expense and charges it to its budget category
// @Summary     Create expense
// @Description Record an expense against a budget category, creating the category if needed
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense data"
// @Success     201 {object} map[string]interface{} "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	var occurredOn time.Time
	if req.OccurredOn != nil {
		occurredOn = req.OccurredOn.UTC()
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), userID, req.Amount, req.Category, req.Description, occurredOn)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"amount": expense.Amount.String(), "category": expense.Category})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses lists the user's expenses, newest first
// @Summary     List expenses
// @Description Get a page of expenses, optionally limited to a named range or a category search
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 5, max 100)"
// @Param       range     query string false "Named time range, e.g. last 30 days"
// @Param       search    query string false "Category substring"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		invalidInput(c, err)
		return
	}
	var query ExpenseListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidInput(c, err)
		return
	}

	result, err := h.expenseService.GetUserExpenses(userID, page, services.ExpenseFilter{
		Range:  query.Range,
		Search: query.Search,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteExpense removes an expense and refunds its budget category
// @Summary     Delete expense
// @Description Delete an expense and subtract its amount from the category's spent total
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
