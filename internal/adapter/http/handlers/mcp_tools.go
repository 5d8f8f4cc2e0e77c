package handlers

import "supplymind/internal/adapter/http/dto/response"

const (
	toolCreateSession  = "create_negotiation_session"
	toolRequestQuote   = "request_supplier_quote"
	toolSubmitCounter  = "submit_counter_offer"
	toolAcceptOffer    = "accept_supplier_offer"
	toolGetStatus      = "get_negotiation_status"
	toolCompareOffers  = "compare_negotiation_offers"
	toolCancelSession  = "cancel_negotiation_session"
	toolCreateMandate  = "create_payment_mandate"
	toolVerifyMandate  = "verify_payment_mandate"
	toolExecutePayment = "execute_payment_with_mandate"
	toolGetPublicKey   = "get_mandate_public_key"
)

type schema = map[string]any

func objectSchema(properties schema, required ...string) schema {
	s := schema{"type": "object", "properties": properties}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func stringProp(description string) schema {
	return schema{"type": "string", "description": description}
}

func numberProp(description string) schema {
	return schema{"type": "number", "description": description, "minimum": 0}
}

func toolDefinitions() []response.ToolDefinition {
	sessionID := stringProp("Negotiation session ID")
	supplierID := stringProp("Supplier ID")
	mandateID := stringProp("Payment mandate ID")

	return []response.ToolDefinition{
		{
			Name:        toolCreateSession,
			Description: "Create a new negotiation session to negotiate pricing with suppliers",
			InputSchema: objectSchema(schema{
				"items": schema{
					"type":        "array",
					"description": "Items to negotiate pricing for; quotes are priced from the first item",
					"items": objectSchema(schema{
						"sku":          stringProp("Product SKU/ASIN"),
						"quantity":     schema{"type": "integer", "minimum": 1},
						"description":  stringProp("Item description"),
						"target_price": numberProp("Target unit price for this item"),
					}, "sku", "quantity"),
				},
				"target_price":            numberProp("Target unit price to negotiate toward"),
				"target_discount_percent": numberProp("Target discount from the base cost, used when target_price is absent"),
				"max_rounds":              schema{"type": "integer", "minimum": 1, "default": 3, "description": "Maximum negotiation rounds"},
				"supplier_ids":            schema{"type": "array", "items": schema{"type": "string"}, "description": "Suppliers to negotiate with"},
			}, "items"),
		},
		{
			Name:        toolRequestQuote,
			Description: "Request a quote from a supplier for the items in a negotiation session (simulated instant response)",
			InputSchema: objectSchema(schema{
				"session_id":  sessionID,
				"supplier_id": supplierID,
				"urgency":     schema{"type": "string", "enum": []string{"low", "medium", "high"}, "default": "medium"},
			}, "session_id", "supplier_id"),
		},
		{
			Name:        toolSubmitCounter,
			Description: "Submit a counter-offer to a supplier in response to their latest quote (simulated response)",
			InputSchema: objectSchema(schema{
				"session_id":    sessionID,
				"supplier_id":   supplierID,
				"counter_price": numberProp("Counter-offer unit price"),
				"justification": stringProp("Reason for the counter-offer"),
			}, "session_id", "supplier_id", "counter_price", "justification"),
		},
		{
			Name:        toolAcceptOffer,
			Description: "Accept the current offer from a supplier and close the negotiation",
			InputSchema: objectSchema(schema{
				"session_id":  sessionID,
				"supplier_id": supplierID,
				"notes":       stringProp("Notes about the acceptance decision"),
			}, "session_id", "supplier_id"),
		},
		{
			Name:        toolGetStatus,
			Description: "Get the current status and all rounds of a negotiation session",
			InputSchema: objectSchema(schema{"session_id": sessionID}, "session_id"),
		},
		{
			Name:        toolCompareOffers,
			Description: "Compare the live offers in a negotiation session and rank suppliers",
			InputSchema: objectSchema(schema{
				"session_id": sessionID,
				"criteria":   schema{"type": "string", "enum": []string{"price", "quality_adjusted", "total_cost"}, "default": "total_cost"},
			}, "session_id"),
		},
		{
			Name:        toolCancelSession,
			Description: "Cancel an open negotiation session",
			InputSchema: objectSchema(schema{
				"session_id": sessionID,
				"reason":     stringProp("Cancellation reason"),
			}, "session_id"),
		},
		{
			Name:        toolCreateMandate,
			Description: "Create an AP2 payment mandate with a cryptographic signature for agent-led payment",
			InputSchema: objectSchema(schema{
				"supplier_id":   supplierID,
				"amount":        numberProp("Payment amount"),
				"currency":      schema{"type": "string", "default": "USD", "description": "ISO currency code"},
				"order_details": schema{"type": "object", "description": "Order line items and metadata"},
				"session_id":    stringProp("Negotiation session ID, for linking"),
				"po_number":     stringProp("Purchase order number, for linking"),
				"mandate_type":  schema{"type": "string", "enum": []string{"checkout", "recurring", "preauth"}, "default": "checkout"},
				"user_consent":  schema{"type": "boolean", "description": "User has consented to this payment (required to be true)"},
			}, "supplier_id", "amount", "order_details", "user_consent"),
		},
		{
			Name:        toolVerifyMandate,
			Description: "Verify the signature and validity of an AP2 payment mandate",
			InputSchema: objectSchema(schema{
				"mandate_id":             mandateID,
				"merchant_authorization": stringProp("Merchant's signed authorization response"),
			}, "mandate_id"),
		},
		{
			Name:        toolExecutePayment,
			Description: "Execute payment using a verified AP2 mandate",
			InputSchema: objectSchema(schema{
				"mandate_id": mandateID,
				"po_number":  stringProp("Purchase order number to link"),
			}, "mandate_id", "po_number"),
		},
		{
			Name:        toolGetPublicKey,
			Description: "Get the public key that verifies mandates issued by this service",
			InputSchema: objectSchema(schema{}),
		},
	}
}
