package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintracker/internal/apperrors"
	portssvc "fintracker/internal/core/ports/services"
	"fintracker/internal/dto"
	"fintracker/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/date-range", h.getTransactionsByDateRange)
		transactions.GET("/account/:accountId", h.getTransactionsByAccount)
		transactions.GET("/category/:categoryId", h.getTransactionsByCategory)
		transactions.GET("/user/:userId", h.getTransactionsByUser)
		transactions.GET("/user/:userId/date-range", h.getTransactionsByUserAndDateRange)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// parseDateRange reads the start/end RFC 3339 query parameters.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(400, "invalid start date", err)
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(400, "invalid end date", err)
	}
	return start, end, nil
}

// createTransaction godoc
// @Summary Book a transaction
// @Description Books a transaction against an account; the account balance is adjusted atomically with the insert
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Account, category or user not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
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

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List all transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	txns, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// getTransactionsByAccount godoc
// @Summary List an account's transactions
// @Description Returns a page of the account's transactions, most recent first
// @Tags transactions
// @Produce json
// @Param accountId path string true "Account ID"
// @Param limit query int false "Page size (default 20)"
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /transactions/account/{accountId} [get]
func (h *transactionHandler) getTransactionsByAccount(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.transactionService.GetTransactionsByAccountID(c.Request.Context(), c.Param("accountId"), params)
	if err != nil {
		respondError(c, err, "Failed to list transactions for account")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransactionsByCategory godoc
// @Summary List a category's transactions
// @Tags transactions
// @Produce json
// @Param categoryId path string true "Category ID"
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /transactions/category/{categoryId} [get]
func (h *transactionHandler) getTransactionsByCategory(c *gin.Context) {
	txns, err := h.transactionService.GetTransactionsByCategoryID(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondError(c, err, "Failed to list transactions for category")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// getTransactionsByUser godoc
// @Summary List a user's transactions
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /transactions/user/{userId} [get]
func (h *transactionHandler) getTransactionsByUser(c *gin.Context) {
	txns, err := h.transactionService.GetTransactionsByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err, "Failed to list transactions for user")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// getTransactionsByDateRange godoc
// @Summary List transactions in a date range
// @Tags transactions
// @Produce json
// @Param start query string true "Range start (RFC 3339)"
// @Param end query string true "Range end (RFC 3339)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid dates"
// @Security BearerAuth
// @Router /transactions/date-range [get]
func (h *transactionHandler) getTransactionsByDateRange(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	txns, err := h.transactionService.GetTransactionsByDateRange(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err, "Failed to list transactions by date range")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// getTransactionsByUserAndDateRange godoc
// @Summary List a user's transactions in a date range
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Param start query string true "Range start (RFC 3339)"
// @Param end query string true "Range end (RFC 3339)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid dates"
// @Security BearerAuth
// @Router /transactions/user/{userId}/date-range [get]
func (h *transactionHandler) getTransactionsByUserAndDateRange(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	txns, err := h.transactionService.GetTransactionsByUserIDAndDateRange(c.Request.Context(), c.Param("userId"), start, end)
	if err != nil {
		respondError(c, err, "Failed to list transactions for user by date range")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// updateTransaction godoc
// @Summary Amend a transaction
// @Description Updates a transaction; stored balance effects are reversed and the new effect applied atomically
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction and reverses its balance effect
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
