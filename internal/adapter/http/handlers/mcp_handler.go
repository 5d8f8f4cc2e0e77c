package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"supplymind/internal/adapter/http/dto/request"
	"supplymind/internal/adapter/http/dto/response"
	"supplymind/internal/usecase"
	"supplymind/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var errInvalidMCPPayload = pkg.NewDomainErrorSimple("INVALID_ARGUMENT", "Invalid MCP request payload", http.StatusBadRequest)

type toolFunc func(ctx context.Context, params request.MCPCallParams) (any, error)

// MCPHandler serves the tool protocol on POST /mcp.
//
// tools/call always answers 200: tool failures travel in the body with isError=true so an
// agent can read them, and only the envelope itself (bad JSON, unknown method) is a 400.
type MCPHandler struct {
	negotiation usecase.INegotiationUseCase
	mandates    usecase.IPaymentMandateUseCase
	tools       map[string]toolFunc
}

func NewMCPHandler(negotiation usecase.INegotiationUseCase, mandates usecase.IPaymentMandateUseCase) *MCPHandler {
	h := &MCPHandler{negotiation: negotiation, mandates: mandates}
	h.tools = map[string]toolFunc{
		toolCreateSession:  h.createSession,
		toolRequestQuote:   h.requestQuote,
		toolSubmitCounter:  h.submitCounter,
		toolAcceptOffer:    h.acceptOffer,
		toolGetStatus:      h.getStatus,
		toolCompareOffers:  h.compareOffers,
		toolCancelSession:  h.cancelSession,
		toolCreateMandate:  h.createMandate,
		toolVerifyMandate:  h.verifyMandate,
		toolExecutePayment: h.executePayment,
		toolGetPublicKey:   h.getPublicKey,
	}
	return h
}

// Handle godoc
// @Summary      MCP tool endpoint
// @Description  tools/list returns the tool catalog; tools/call runs one negotiation or mandate tool
// @Tags         mcp
// @Accept       json
// @Produce      json
// @Param        request  body      request.MCPRequest  true  "MCP request"
// @Success      200      {object}  response.ToolCallResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /mcp [post]
func (h *MCPHandler) Handle(c *gin.Context) {
	var payload request.MCPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMCPPayload.HTTPStatus, errInvalidMCPPayload.ToHTTPError())
		return
	}

	switch payload.Method {
	case request.MethodToolsList:
		c.JSON(http.StatusOK, response.ToolListResponse{Tools: toolDefinitions()})
	case request.MethodToolsCall:
		c.JSON(http.StatusOK, h.call(c.Request.Context(), payload.Params))
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_ARGUMENT", fmt.Sprintf("Unknown method: %s", payload.Method), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func (h *MCPHandler) call(ctx context.Context, params request.MCPCallParams) response.ToolCallResponse {
	tool, ok := h.tools[params.Name]
	if !ok {
		return response.ToolError(fmt.Sprintf("Unknown tool: %s", params.Name))
	}

	result, err := tool(ctx, params)
	if err != nil {
		appErr := mapUseCaseError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Printf("[mcp][handler] tool failed tool=%s code=%s err=%v", params.Name, appErr.Code, err)
		}
		return response.ToolError(appErr.Message)
	}

	out, err := response.ToolResult(result)
	if err != nil {
		log.Printf("[mcp][handler] encode result failed tool=%s err=%v", params.Name, err)
		return response.ToolError(internalErrorMessage)
	}
	return out
}

func (h *MCPHandler) createSession(ctx context.Context, params request.MCPCallParams) (any, error) {
	var args request.CreateSessionArgs
	if err := decodeArgs(params, &args); err != nil {
		return nil, err
	}
	s, err := h.negotiation.CreateSession(ctx, args.ToInput())
	if err != nil {
		return nil, err
	}
	return response.FromSession(s), nil
}

func (h *MCPHandler) requestQuote(ctx context.Context, params request.MCPCallParams) (any, error) {
	var args request.RequestQuoteArgs
	if err := decodeArgs(params, &args); err != nil {
		return nil, err
	}
	q, err := h.negotiation.RequestQuote(ctx, args.SessionID, args.SupplierID, args.Urgency)
	if err != nil {
		return nil, err
	}
	return response.FromQuote(q), nil
}

func (h *MCPHandler) submitCounter(ctx context.Context, params request.MCPCallParams) (any, error) {
	var args request.SubmitCounterArgs
	if err := decodeArgs(params, &args); err != nil {
		return nil, err
	}
	res, err := h.negotiation.SubmitCounter(ctx, args.SessionID, args.SupplierID, *args.CounterPrice, args.Justification)
	if err != nil {
		return nil, err
	}
	return response.FromCounter(res), nil
}

func (h *MCPHandler) acceptOffer(ctx context.Context, params request.MCPCallParams) (any, error) {
	var args request.AcceptOfferArgs
	if err := decodeArgs(params, &args); err != nil {
		return nil, err
	}
	s, err := h.negotiation.AcceptOffer(ctx, args.SessionID, args.SupplierID, args.Notes)
	if err != nil {
		return nil, err
	}
	return response.FromAcceptedSession(s), nil
}

func (h *MCPHandler) getStatus(ctx context.Context, params request.MCPCallParams) (any, error) {
	var args request.SessionArgs
	if err := decodeArgs(params, &args); err != nil {
		return nil, err
	}
	view, err := h.negotiation.GetStatus(ctx, args.SessionID)
	if err != nil {
		return nil, err
	}
	return response.FromSessionStatus(view), nil
}

func (h *MCPHandler) compareOffers(ctx context.Context, params request.MCPCallParams) (any, error) {
	var args request.CompareOffersArgs
	if err := decodeArgs(params, &args); err != nil {
		return nil, err
	}
	cmp, err := h.negotiation.CompareOffers(ctx, args.SessionID, args.Criteria)
	if err != nil {
		return nil, err
	}
	return response.FromOfferComparison(cmp), nil
}

func (h *MCPHandler) cancelSession(ctx context.Context, params request.MCPCallParams) (any, error) {
	var args request.CancelSessionArgs
	if err := decodeArgs(params, &args); err != nil {
		return nil, err
	}
	s, err := h.negotiation.CancelSession(ctx, args.SessionID, args.Reason)
	if err != nil {
		return nil, err
	}
	return response.FromSession(s), nil
}

func (h *MCPHandler) createMandate(ctx context.Context, params request.MCPCallParams) (any, error) {
	var args request.CreateMandateArgs
	if err := decodeArgs(params, &args); err != nil {
		return nil, err
	}
	m, err := h.mandates.CreateMandate(ctx, args.ToInput())
	if err != nil {
		return nil, err
	}
	return response.FromMandateCreated(m), nil
}

func (h *MCPHandler) verifyMandate(ctx context.Context, params request.MCPCallParams) (any, error) {
	var args request.VerifyMandateArgs
	if err := decodeArgs(params, &args); err != nil {
		return nil, err
	}
	v, err := h.mandates.VerifyMandate(ctx, args.MandateID, args.MerchantAuthorization)
	if err != nil {
		return nil, err
	}
	return response.FromVerification(v), nil
}

func (h *MCPHandler) executePayment(ctx context.Context, params request.MCPCallParams) (any, error) {
	var args request.ExecutePaymentArgs
	if err := decodeArgs(params, &args); err != nil {
		return nil, err
	}
	m, err := h.mandates.ExecutePayment(ctx, args.MandateID, args.PONumber)
	if err != nil {
		return nil, err
	}
	return response.FromExecution(m), nil
}

func (h *MCPHandler) getPublicKey(ctx context.Context, _ request.MCPCallParams) (any, error) {
	k, err := h.mandates.GetPublicKey(ctx)
	if err != nil {
		return nil, err
	}
	return response.FromPublicKey(k), nil
}

var registerTagNames sync.Once

// decodeArgs unmarshals tool arguments and runs the same binding validation gin applies
// to request bodies. Field names in errors are the JSON argument names.
func decodeArgs(params request.MCPCallParams, dst any) error {
	if err := params.DecodeArguments(dst); err != nil {
		return err
	}

	registerTagNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
		}
	})

	if err := binding.Validator.ValidateStruct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Tag() == "required" {
				return fmt.Errorf("%w: missing required argument %s", request.ErrInvalidArguments, fe.Field())
			}
			return fmt.Errorf("%w: argument %s failed %s", request.ErrInvalidArguments, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", request.ErrInvalidArguments, err)
	}
	return nil
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
