package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker_api/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_api/internal/dto"
	"github.com/SscSPs/expense_tracker_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers routes related to expenses on an
// authenticated group.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expense")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Create an expense
// @Description Creates an expense authored by the logged-in user. amount, accountType, expenseType and category are required; amount must be non-zero.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expense [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	authorID, _ := middleware.GetUserIDFromContext(c)

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req, authorID)
	if err != nil {
		respondError(c, logger, err, "Create expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ExpenseEnvelope{
		Expense: dto.ToExpenseResponse(expense),
		Message: "Expense created successfully",
	})
}

// listExpenses godoc
// @Summary List expenses
// @Description Searches, filters, sorts and paginates expenses. Unknown filter/sort values and malformed page/limit fall back to defaults.
// @Tags expenses
// @Produce json
// @Param search query string false "Case-insensitive substring of description or category"
// @Param filter query string false "Date filter" Enums(today, yesterday, past_week, past_month, last_3_months, custom)
// @Param startDate query string false "Start date for filter=custom (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "End date for filter=custom (YYYY-MM-DD or RFC3339)"
// @Param sort query string false "Sort mode" Enums(a-z, z-a, amount_high, amount_low, newest_date, oldest_date)
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid custom date range"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expense [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	page, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "List expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpensesResponse(page))
}

// getExpense godoc
// @Summary Get an expense by ID
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseEnvelope
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expense/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("expense_id", c.Param("id")))

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Get expense")
		return
	}

	c.JSON(http.StatusOK, dto.ExpenseEnvelope{
		Expense: dto.ToExpenseResponse(expense),
		Message: "Expense fetched successfully",
	})
}

// updateExpense godoc
// @Summary Replace an expense
// @Description Overwrites amount, accountType, expenseType and category. Omitted fields are stored empty; description and author are unchanged.
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Replacement fields"
// @Success 200 {object} dto.ExpenseEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expense/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("expense_id", c.Param("id")))
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Update expense")
		return
	}

	c.JSON(http.StatusOK, dto.ExpenseEnvelope{
		Expense: dto.ToExpenseResponse(expense),
		Message: "Expense updated successfully",
	})
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.DeleteExpenseResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expense/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("expense_id", c.Param("id")))

	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Delete expense")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteExpenseResponse{Deleted: true, Message: "Expense deleted successfully"})
}
