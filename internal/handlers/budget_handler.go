package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finwise/internal/errors"
	"finwise/internal/services"
)

// LatestCategoriesCount is how many categories the latest endpoint returns by default.
const LatestCategoriesCount = 3

// BudgetHandler handles budget-related requests
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		auditService:  auditService,
	}
}

// CategoryRequest represents the request body for adding or resetting a budget category
type CategoryRequest struct {
	Name  string          `json:"name" binding:"required,min=1,max=20"`
	Limit decimal.Decimal `json:"limit" binding:"gte=0"`
}

// ResetCategoryRequest carries the new limit for an existing category
type ResetCategoryRequest struct {
	Limit decimal.Decimal `json:"limit" binding:"gte=0"`
}

// AddCategory adds a category to the user's budget
// @Summary     Add budget category
// @Description Add a spending category with a monthly limit, creating the budget if needed
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CategoryRequest true "Category data"
// @Success     201 {object} map[string]interface{} "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Category already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/categories [post]
func (h *BudgetHandler) AddCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	category, err := h.budgetService.AddCategory(userID, req.Name, req.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BUDGET_CATEGORY", "budget_category", category.ID, c.ClientIP(),
		map[string]interface{}{"name": category.Name, "limit": category.Limit.String()})

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetBudget returns the user's budget with all its categories
// @Summary     Get budget
// @Description Get the budget and its categories for the authenticated user
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Budget"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetLatestCategories returns the most recently updated categories
// @Summary     Latest budget categories
// @Description Get the most recently updated budget categories
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       n query int false "Number of categories (default 3)"
// @Success     200 {object} map[string]interface{} "Categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/latest [get]
func (h *BudgetHandler) GetLatestCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	n := LatestCategoriesCount
	if raw := c.Query("n"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "n must be between 1 and 50"))
			return
		}
	}

	categories, err := h.budgetService.GetLatestCategories(userID, n)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ResetCategory sets a new limit on a category and clears what was spent
// @Summary     Reset budget category
// @Description Set a new limit for the category and reset its spent amount to zero
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       name path string true "Category name"
// @Param       request body ResetCategoryRequest true "New limit"
// @Success     200 {object} map[string]interface{} "Category reset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/categories/{name}/reset [put]
func (h *BudgetHandler) ResetCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ResetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	category, err := h.budgetService.ResetCategory(userID, c.Param("name"), req.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "RESET_BUDGET_CATEGORY", "budget_category", category.ID, c.ClientIP(),
		map[string]interface{}{"limit": category.Limit.String()})

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory removes a category from the user's budget
// @Summary     Delete budget category
// @Description Remove a category from the budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       name path string true "Category name"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/categories/{name} [delete]
func (h *BudgetHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	name := c.Param("name")
	if err := h.budgetService.DeleteCategory(userID, name); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BUDGET_CATEGORY", "budget_category", name, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
