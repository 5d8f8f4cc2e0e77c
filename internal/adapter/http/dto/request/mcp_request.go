package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	MethodToolsList = "tools/list"
	MethodToolsCall = "tools/call"
)

var ErrInvalidArguments = errors.New("invalid tool arguments")

// MCPRequest is the JSON-RPC style envelope posted to /mcp.
type MCPRequest struct {
	Method string        `json:"method" binding:"required"`
	Params MCPCallParams `json:"params"`
}

type MCPCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// DecodeArguments unmarshals the tool arguments into dst. Missing arguments decode as an
// empty object so optional-only tools can be called without them.
func (p MCPCallParams) DecodeArguments(dst any) error {
	raw := bytes.TrimSpace(p.Arguments)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}
