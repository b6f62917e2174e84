package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finwise/internal/services"
)

// DashboardHandler serves the dashboard read models
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// ChartQuery selects the range a chart covers; empty picks the chart's default.
type ChartQuery struct {
	Range string `form:"range"`
}

// StatQuery selects the range and metric of a stat card.
type StatQuery struct {
	Range  string `form:"range" binding:"required"`
	Metric string `form:"metric" binding:"required,oneof=expenses items savings"`
}

// GetSummary returns the current month at a glance
// @Summary     Dashboard summary
// @Description Salary, total expenses, number of expenses and savings for the current month
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardSummary "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetBarChart returns expenses and savings per month or year
// @Summary     Bar chart
// @Description Expenses and savings per bucket; only month and year ranges are accepted
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       range query string false "Named range (default last 6 months)"
// @Success     200 {object} analytics.Chart "Chart"
// @Failure     400 {object} ErrorResponse "Unsupported range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/bar-chart [get]
func (h *DashboardHandler) GetBarChart(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q ChartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidInput(c, err)
		return
	}

	chart, err := h.dashboardService.GetBarChart(c.Request.Context(), userID, q.Range)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chart": chart})
}

// GetLineChart returns expenses per bucket for any named range
// @Summary     Line chart
// @Description Expenses per bucket over a named range
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       range query string false "Named range (default last 7 days)"
// @Success     200 {object} analytics.Chart "Chart"
// @Failure     400 {object} ErrorResponse "Unsupported range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/line-chart [get]
func (h *DashboardHandler) GetLineChart(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q ChartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidInput(c, err)
		return
	}

	chart, err := h.dashboardService.GetLineChart(c.Request.Context(), userID, q.Range)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chart": chart})
}

// GetPieChart returns the share of each category in a month's spending
// @Summary     Pie chart
// @Description Per-category totals and percentages for a month of the current year
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month name (default current month)"
// @Success     200 {object} map[string]interface{} "Category shares"
// @Failure     400 {object} ErrorResponse "Unsupported month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/pie-chart [get]
func (h *DashboardHandler) GetPieChart(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	shares, err := h.dashboardService.GetPieChart(c.Request.Context(), userID, c.Query("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": shares})
}

// GetStat returns one figure for a named range
// @Summary     Stat card
// @Description Total expenses, number of expenses or savings over a named range
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       range  query string true "Named range"
// @Param       metric query string true "expenses, items or savings"
// @Success     200 {object} services.StatCard "Stat"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/stat [get]
func (h *DashboardHandler) GetStat(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q StatQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidInput(c, err)
		return
	}

	stat, err := h.dashboardService.GetStat(c.Request.Context(), userID, q.Range, q.Metric)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stat": stat})
}

// GetFeatures reports which onboarding steps the user has completed
// @Summary     Feature flags
// @Description Whether the user has a budget, expenses, stocks and a savings goal
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Features "Features"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/features [get]
func (h *DashboardHandler) GetFeatures(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	features, err := h.dashboardService.GetFeatures(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"features": features})
}
