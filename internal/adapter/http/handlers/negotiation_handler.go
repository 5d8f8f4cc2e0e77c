package handlers

import (
	"net/http"

	"supplymind/internal/adapter/http/dto/request"
	"supplymind/internal/adapter/http/dto/response"
	"supplymind/internal/usecase"
	"supplymind/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCancelPayload = pkg.NewDomainErrorSimple("INVALID_ARGUMENT", "Invalid cancel payload", http.StatusBadRequest)

// NegotiationHandler exposes the read and cancel side of negotiations over REST.
// Quotes, counters and acceptance go through the MCP tools.
type NegotiationHandler struct {
	usecase usecase.INegotiationUseCase
}

func NewNegotiationHandler(uc usecase.INegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{usecase: uc}
}

// GetSession godoc
// @Summary      Get negotiation status
// @Tags         negotiations
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.SessionStatusResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/negotiations/{session_id} [get]
func (h *NegotiationHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.GetStatus(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, "negotiation", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionStatus(view))
}

// CompareOffers godoc
// @Summary      Rank the live offers of a session
// @Tags         negotiations
// @Produce      json
// @Param        session_id  path      string  true   "Session ID"
// @Param        criteria    query     string  false  "price, quality_adjusted or total_cost"
// @Success      200         {object}  response.ComparisonResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/negotiations/{session_id}/offers [get]
func (h *NegotiationHandler) CompareOffers(c *gin.Context) {
	cmp, err := h.usecase.CompareOffers(c.Request.Context(), c.Param("session_id"), c.Query("criteria"))
	if err != nil {
		writeError(c, "negotiation", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOfferComparison(cmp))
}

// CancelSession godoc
// @Summary      Cancel a negotiation session
// @Tags         negotiations
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                          true   "Session ID"
// @Param        request     body      request.CancelSessionRequest  false  "Cancellation reason"
// @Success      200         {object}  response.SessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /v1/negotiations/{session_id}/cancel [post]
func (h *NegotiationHandler) CancelSession(c *gin.Context) {
	var payload request.CancelSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidCancelPayload.HTTPStatus, errInvalidCancelPayload.ToHTTPError())
			return
		}
	}

	s, err := h.usecase.CancelSession(c.Request.Context(), c.Param("session_id"), payload.Reason)
	if err != nil {
		writeError(c, "negotiation", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}
