package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "fintracker/internal/core/ports/services"
	"fintracker/internal/dto"
	"fintracker/internal/middleware"
)

// investmentHandler handles HTTP requests related to investments.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

// registerInvestmentRoutes registers routes related to investments.
func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
		investments.GET("/type/:type", h.getInvestmentsByType)
		investments.GET("/user/:userId", h.getInvestmentsByUser)
		investments.GET("/user/:userId/type/:type", h.getInvestmentsByUserAndType)
		investments.GET("/:id", h.getInvestment)
		investments.GET("/:id/return-rate", h.getReturnRate)
		investments.PUT("/:id", h.updateInvestment)
		investments.PATCH("/:id/value", h.updateInvestmentValue)
		investments.DELETE("/:id", h.deleteInvestment)
	}
}

// createInvestment godoc
// @Summary Record an investment
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Owner user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	inv, err := h.investmentService.CreateInvestment(c.Request.Context(), req, ownerUserID)
	if err != nil {
		respondError(c, err, "Failed to create investment")
		return
	}

	logger.Info("Investment created", slog.String("investment_id", inv.InvestmentID))
	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(inv))
}

// listInvestments godoc
// @Summary List investments
// @Tags investments
// @Produce json
// @Success 200 {array} dto.InvestmentResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	invs, err := h.investmentService.ListInvestments(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list investments")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestmentResponses(invs))
}

// getInvestment godoc
// @Summary Get an investment by ID
// @Tags investments
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 404 {object} ErrorResponse "Investment not found"
// @Security BearerAuth
// @Router /investments/{id} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	inv, err := h.investmentService.GetInvestmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve investment")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestmentResponse(inv))
}

// getInvestmentsByUser godoc
// @Summary List a user's investments
// @Tags investments
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} dto.InvestmentResponse
// @Security BearerAuth
// @Router /investments/user/{userId} [get]
func (h *investmentHandler) getInvestmentsByUser(c *gin.Context) {
	invs, err := h.investmentService.GetInvestmentsByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err, "Failed to list investments for user")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestmentResponses(invs))
}

// getInvestmentsByType godoc
// @Summary List investments of a type
// @Tags investments
// @Produce json
// @Param type path string true "Investment type"
// @Success 200 {array} dto.InvestmentResponse
// @Security BearerAuth
// @Router /investments/type/{type} [get]
func (h *investmentHandler) getInvestmentsByType(c *gin.Context) {
	invs, err := h.investmentService.GetInvestmentsByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondError(c, err, "Failed to list investments by type")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestmentResponses(invs))
}

// getInvestmentsByUserAndType godoc
// @Summary List a user's investments of a type
// @Tags investments
// @Produce json
// @Param userId path string true "User ID"
// @Param type path string true "Investment type"
// @Success 200 {array} dto.InvestmentResponse
// @Security BearerAuth
// @Router /investments/user/{userId}/type/{type} [get]
func (h *investmentHandler) getInvestmentsByUserAndType(c *gin.Context) {
	invs, err := h.investmentService.GetInvestmentsByUserIDAndType(c.Request.Context(), c.Param("userId"), c.Param("type"))
	if err != nil {
		respondError(c, err, "Failed to list investments for user by type")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestmentResponses(invs))
}

// getReturnRate godoc
// @Summary Get an investment's return rate
// @Description Returns the percentage return, annualised for holdings longer than a month
// @Tags investments
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {object} dto.ReturnRateResponse
// @Failure 404 {object} ErrorResponse "Investment not found"
// @Security BearerAuth
// @Router /investments/{id}/return-rate [get]
func (h *investmentHandler) getReturnRate(c *gin.Context) {
	investmentID := c.Param("id")
	rate, err := h.investmentService.CalculateReturnRate(c.Request.Context(), investmentID)
	if err != nil {
		respondError(c, err, "Failed to calculate return rate")
		return
	}
	c.JSON(http.StatusOK, dto.ReturnRateResponse{InvestmentID: investmentID, ReturnRate: rate})
}

// updateInvestment godoc
// @Summary Update an investment
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param investment body dto.UpdateInvestmentRequest true "Fields to update"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 404 {object} ErrorResponse "Investment not found"
// @Security BearerAuth
// @Router /investments/{id} [put]
func (h *investmentHandler) updateInvestment(c *gin.Context) {
	var req dto.UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	inv, err := h.investmentService.UpdateInvestment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update investment")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestmentResponse(inv))
}

// updateInvestmentValue godoc
// @Summary Record a new current value
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param value body dto.UpdateInvestmentValueRequest true "New current value"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 404 {object} ErrorResponse "Investment not found"
// @Security BearerAuth
// @Router /investments/{id}/value [patch]
func (h *investmentHandler) updateInvestmentValue(c *gin.Context) {
	var req dto.UpdateInvestmentValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	inv, err := h.investmentService.UpdateInvestmentValue(c.Request.Context(), c.Param("id"), req.CurrentValue)
	if err != nil {
		respondError(c, err, "Failed to update investment value")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestmentResponse(inv))
}

// deleteInvestment godoc
// @Summary Delete an investment
// @Tags investments
// @Param id path string true "Investment ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Investment not found"
// @Security BearerAuth
// @Router /investments/{id} [delete]
func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	if err := h.investmentService.DeleteInvestment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete investment")
		return
	}
	c.Status(http.StatusNoContent)
}
