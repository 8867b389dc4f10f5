package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "fintracker/internal/core/ports/services"
	"fintracker/internal/dto"
	"fintracker/internal/middleware"
)

// scheduledTransactionHandler handles HTTP requests related to scheduled
// transactions.
type scheduledTransactionHandler struct {
	scheduledService portssvc.ScheduledTransactionSvcFacade
}

func newScheduledTransactionHandler(ss portssvc.ScheduledTransactionSvcFacade) *scheduledTransactionHandler {
	return &scheduledTransactionHandler{scheduledService: ss}
}

// registerScheduledTransactionRoutes registers routes related to scheduled
// transactions.
func registerScheduledTransactionRoutes(rg *gin.RouterGroup, scheduledService portssvc.ScheduledTransactionSvcFacade) {
	h := newScheduledTransactionHandler(scheduledService)

	scheduled := rg.Group("/scheduled-transactions")
	{
		scheduled.POST("", h.createScheduledTransaction)
		scheduled.GET("", h.listScheduledTransactions)
		scheduled.GET("/upcoming", h.getUpcoming)
		scheduled.GET("/account/:accountId", h.getByAccount)
		scheduled.GET("/category/:categoryId", h.getByCategory)
		scheduled.GET("/user/:userId", h.getByUser)
		scheduled.GET("/:id", h.getScheduledTransaction)
		scheduled.PUT("/:id", h.updateScheduledTransaction)
		scheduled.DELETE("/:id", h.deleteScheduledTransaction)
		scheduled.POST("/:id/execute", h.executeScheduledTransaction)
		scheduled.POST("/process-due", h.processDue)
	}
}

// createScheduledTransaction godoc
// @Summary Create a scheduled transaction
// @Description Creates a recurring transaction template; new templates always start active
// @Tags scheduled-transactions
// @Accept json
// @Produce json
// @Param scheduledTransaction body dto.CreateScheduledTransactionRequest true "Template details"
// @Success 201 {object} dto.ScheduledTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Account, category or user not found"
// @Security BearerAuth
// @Router /scheduled-transactions [post]
func (h *scheduledTransactionHandler) createScheduledTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateScheduledTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	st, err := h.scheduledService.CreateScheduledTransaction(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create scheduled transaction")
		return
	}

	logger.Info("Scheduled transaction created", slog.String("scheduled_transaction_id", st.ScheduledTransactionID))
	c.JSON(http.StatusCreated, dto.ToScheduledTransactionResponse(st))
}

// listScheduledTransactions godoc
// @Summary List scheduled transactions
// @Tags scheduled-transactions
// @Produce json
// @Success 200 {array} dto.ScheduledTransactionResponse
// @Security BearerAuth
// @Router /scheduled-transactions [get]
func (h *scheduledTransactionHandler) listScheduledTransactions(c *gin.Context) {
	sts, err := h.scheduledService.ListScheduledTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list scheduled transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduledTransactionResponses(sts))
}

// getUpcoming godoc
// @Summary List scheduled transactions due before a date
// @Description Includes paused templates; defaults to seven days ahead when no date is given
// @Tags scheduled-transactions
// @Produce json
// @Param date query string false "Cut-off date (RFC 3339)"
// @Success 200 {array} dto.ScheduledTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Security BearerAuth
// @Router /scheduled-transactions/upcoming [get]
func (h *scheduledTransactionHandler) getUpcoming(c *gin.Context) {
	date := time.Now().AddDate(0, 0, 7)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date: " + err.Error()})
			return
		}
		date = parsed
	}

	sts, err := h.scheduledService.GetUpcomingScheduledTransactions(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "Failed to list upcoming scheduled transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduledTransactionResponses(sts))
}

// getScheduledTransaction godoc
// @Summary Get a scheduled transaction by ID
// @Tags scheduled-transactions
// @Produce json
// @Param id path string true "Scheduled transaction ID"
// @Success 200 {object} dto.ScheduledTransactionResponse
// @Failure 404 {object} ErrorResponse "Scheduled transaction not found"
// @Security BearerAuth
// @Router /scheduled-transactions/{id} [get]
func (h *scheduledTransactionHandler) getScheduledTransaction(c *gin.Context) {
	st, err := h.scheduledService.GetScheduledTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve scheduled transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduledTransactionResponse(st))
}

// getByAccount godoc
// @Summary List scheduled transactions for an account
// @Tags scheduled-transactions
// @Produce json
// @Param accountId path string true "Account ID"
// @Success 200 {array} dto.ScheduledTransactionResponse
// @Security BearerAuth
// @Router /scheduled-transactions/account/{accountId} [get]
func (h *scheduledTransactionHandler) getByAccount(c *gin.Context) {
	sts, err := h.scheduledService.GetScheduledTransactionsByAccountID(c.Request.Context(), c.Param("accountId"))
	if err != nil {
		respondError(c, err, "Failed to list scheduled transactions for account")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduledTransactionResponses(sts))
}

// getByCategory godoc
// @Summary List scheduled transactions for a category
// @Tags scheduled-transactions
// @Produce json
// @Param categoryId path string true "Category ID"
// @Success 200 {array} dto.ScheduledTransactionResponse
// @Security BearerAuth
// @Router /scheduled-transactions/category/{categoryId} [get]
func (h *scheduledTransactionHandler) getByCategory(c *gin.Context) {
	sts, err := h.scheduledService.GetScheduledTransactionsByCategoryID(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondError(c, err, "Failed to list scheduled transactions for category")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduledTransactionResponses(sts))
}

// getByUser godoc
// @Summary List scheduled transactions created by a user
// @Tags scheduled-transactions
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} dto.ScheduledTransactionResponse
// @Security BearerAuth
// @Router /scheduled-transactions/user/{userId} [get]
func (h *scheduledTransactionHandler) getByUser(c *gin.Context) {
	sts, err := h.scheduledService.GetScheduledTransactionsByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err, "Failed to list scheduled transactions for user")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduledTransactionResponses(sts))
}

// updateScheduledTransaction godoc
// @Summary Update a scheduled transaction
// @Tags scheduled-transactions
// @Accept json
// @Produce json
// @Param id path string true "Scheduled transaction ID"
// @Param scheduledTransaction body dto.UpdateScheduledTransactionRequest true "Fields to update"
// @Success 200 {object} dto.ScheduledTransactionResponse
// @Failure 404 {object} ErrorResponse "Scheduled transaction not found"
// @Security BearerAuth
// @Router /scheduled-transactions/{id} [put]
func (h *scheduledTransactionHandler) updateScheduledTransaction(c *gin.Context) {
	var req dto.UpdateScheduledTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	st, err := h.scheduledService.UpdateScheduledTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update scheduled transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduledTransactionResponse(st))
}

// deleteScheduledTransaction godoc
// @Summary Delete a scheduled transaction
// @Description Removes the template; transactions already spawned from it are kept
// @Tags scheduled-transactions
// @Param id path string true "Scheduled transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Scheduled transaction not found"
// @Security BearerAuth
// @Router /scheduled-transactions/{id} [delete]
func (h *scheduledTransactionHandler) deleteScheduledTransaction(c *gin.Context) {
	if err := h.scheduledService.DeleteScheduledTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete scheduled transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// executeScheduledTransaction godoc
// @Summary Execute a scheduled transaction now
// @Description Books one transaction from the template and advances its due date by one frequency unit
// @Tags scheduled-transactions
// @Produce json
// @Param id path string true "Scheduled transaction ID"
// @Success 201 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Scheduled transaction not found"
// @Security BearerAuth
// @Router /scheduled-transactions/{id}/execute [post]
func (h *scheduledTransactionHandler) executeScheduledTransaction(c *gin.Context) {
	txn, err := h.scheduledService.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to execute scheduled transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// processDue godoc
// @Summary Run the due-template sweep now
// @Description Executes every active template due before now; stops at the first failure
// @Tags scheduled-transactions
// @Produce json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /scheduled-transactions/process-due [post]
func (h *scheduledTransactionHandler) processDue(c *gin.Context) {
	executed, err := h.scheduledService.ProcessDue(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err, "Sweep failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"executed": executed})
}
