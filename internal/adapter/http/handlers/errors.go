package handlers

import (
	"errors"
	"log"
	"net/http"

	"supplymind/internal/adapter/http/dto/request"
	"supplymind/internal/usecase"
	"supplymind/pkg"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "An internal error occurred"

// mapUseCaseError translates use case sentinels into the error taxonomy shared by the MCP
// and REST surfaces. Domain messages are safe to show; anything unrecognized is treated as
// an infrastructure failure and only a generic message leaves the process.
func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrSupplierNotFound),
		errors.Is(err, usecase.ErrMandateNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)

	case errors.Is(err, request.ErrInvalidArguments),
		errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidSupplierID),
		errors.Is(err, usecase.ErrInvalidItems),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidSKU),
		errors.Is(err, usecase.ErrInvalidTargetPrice),
		errors.Is(err, usecase.ErrInvalidDiscount),
		errors.Is(err, usecase.ErrInvalidMaxRounds),
		errors.Is(err, usecase.ErrInvalidCounterPrice),
		errors.Is(err, usecase.ErrInvalidCriteria),
		errors.Is(err, usecase.ErrInvalidMandateID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCurrency),
		errors.Is(err, usecase.ErrInvalidMandateType),
		errors.Is(err, usecase.ErrInvalidPONumber):
		return pkg.NewDomainError("INVALID_ARGUMENT", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)

	case errors.Is(err, usecase.ErrNoPriorRound),
		errors.Is(err, usecase.ErrNoLiveOffer),
		errors.Is(err, usecase.ErrSessionTerminal),
		errors.Is(err, usecase.ErrMaxRoundsExceeded),
		errors.Is(err, usecase.ErrMandateNotVerified),
		errors.Is(err, usecase.ErrMandateNotExecutable):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusConflict)

	case errors.Is(err, usecase.ErrConsentRequired):
		return pkg.NewDomainError("PERMISSION_DENIED", err.Error(), err, http.StatusForbidden)

	case errors.Is(err, usecase.ErrMandateSignatureInvalid),
		errors.Is(err, usecase.ErrUnknownSigningKey):
		return pkg.NewDomainError("SIGNATURE_INVALID", err.Error(), err, http.StatusUnprocessableEntity)

	case errors.Is(err, usecase.ErrMandateExpired):
		return pkg.NewDomainError("MANDATE_EXPIRED", err.Error(), err, http.StatusGone)

	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_FAILED", usecase.ErrPaymentGatewayFailed.Error(), err, http.StatusBadGateway)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", internalErrorMessage, err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, scope string, err error) {
	appErr := mapUseCaseError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[%s][handler] request failed code=%s err=%v", scope, appErr.Code, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
