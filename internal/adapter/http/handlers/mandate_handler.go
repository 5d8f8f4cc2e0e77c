package handlers

import (
	"net/http"

	"supplymind/internal/adapter/http/dto/response"
	"supplymind/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MandateHandler struct {
	usecase usecase.IPaymentMandateUseCase
}

func NewMandateHandler(uc usecase.IPaymentMandateUseCase) *MandateHandler {
	return &MandateHandler{usecase: uc}
}

// GetMandate godoc
// @Summary      Get a payment mandate (audit view)
// @Tags         mandates
// @Produce      json
// @Param        mandate_id  path      string  true  "Mandate ID"
// @Success      200         {object}  response.MandateResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/mandates/{mandate_id} [get]
func (h *MandateHandler) GetMandate(c *gin.Context) {
	m, err := h.usecase.GetMandate(c.Request.Context(), c.Param("mandate_id"))
	if err != nil {
		writeError(c, "mandate", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMandate(m))
}

// GetPublicKey godoc
// @Summary      Get the mandate signing public key
// @Tags         keys
// @Produce      json
// @Success      200  {object}  response.PublicKeyResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /v1/keys/mandate-signing [get]
func (h *MandateHandler) GetPublicKey(c *gin.Context) {
	k, err := h.usecase.GetPublicKey(c.Request.Context())
	if err != nil {
		writeError(c, "mandate", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPublicKey(k))
}
