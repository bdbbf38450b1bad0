package handler

import (
	"log/slog"
	"net/http"

	"locallibrary/internal/http-api/dto"
	"locallibrary/internal/http-api/middleware"
	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// LoanHandler serves the loan listings and the renewal workflow.
type LoanHandler struct {
	loans    service.LoanService
	renewals service.RenewalService
	logger   *slog.Logger
}

func NewLoanHandler(loans service.LoanService, renewals service.RenewalService, logger *slog.Logger) *LoanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoanHandler{loans: loans, renewals: renewals, logger: logger}
}

// RegisterRoutes expects rg to carry middleware.OptionalAuth so anonymous
// callers reach the services and get a proper 401.
func (h *LoanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	loans := rg.Group("/loans")
	loans.GET("/mine", h.MyLoans)
	loans.GET("", h.AllLoans)
	loans.GET("/:id/renew", h.ProposeRenewal)
	loans.POST("/:id/renew", h.Renew)
}

func (h *LoanHandler) MyLoans(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	viewer := middleware.CurrentViewer(c)

	result, err := h.loans.MyLoans(c.Request.Context(), viewer, page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapPage(result, copyRenderer(viewer)))
}

func (h *LoanHandler) AllLoans(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	viewer := middleware.CurrentViewer(c)

	result, err := h.loans.AllLoans(c.Request.Context(), viewer, page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapPage(result, copyRenderer(viewer)))
}

func (h *LoanHandler) ProposeRenewal(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)

	proposal, err := h.renewals.Propose(c.Request.Context(), c.Param("id"), viewer)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromProposal(proposal, viewer))
}

func (h *LoanHandler) Renew(c *gin.Context) {
	var req dto.RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	candidate, err := dto.ParseDate(req.RenewalDate)
	if err != nil {
		badRequest(c, err)
		return
	}
	viewer := middleware.CurrentViewer(c)

	updated, err := h.renewals.Renew(c.Request.Context(), c.Param("id"), candidate, viewer)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCopy(*updated, viewer))
}

func copyRenderer(viewer service.Viewer) func(models.BookInstance) dto.CopyResponse {
	return func(bi models.BookInstance) dto.CopyResponse {
		return dto.FromCopy(bi, viewer)
	}
}
