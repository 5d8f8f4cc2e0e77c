package routes

import (
	"supplymind/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMCP          = "/mcp"
	PathNegotiations = "/negotiations"
	PathMandates     = "/mandates"
	PathKeys         = "/keys"
)

func addNegotiationRoutes(rg *gin.RouterGroup, negotiationHandler *handlers.NegotiationHandler) {
	negotiations := rg.Group(PathNegotiations)
	{
		negotiations.GET("/:session_id", negotiationHandler.GetSession)
		negotiations.GET("/:session_id/offers", negotiationHandler.CompareOffers)
		negotiations.POST("/:session_id/cancel", negotiationHandler.CancelSession)
	}
}

func addMandateRoutes(rg *gin.RouterGroup, mandateHandler *handlers.MandateHandler) {
	mandates := rg.Group(PathMandates)
	{
		mandates.GET("/:mandate_id", mandateHandler.GetMandate)
	}

	keys := rg.Group(PathKeys)
	{
		keys.GET("/mandate-signing", mandateHandler.GetPublicKey)
	}
}
