package response

import (
	"encoding/json"
	"fmt"
)

const ContentTypeText = "text"

type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type ToolListResponse struct {
	Tools []ToolDefinition `json:"tools"`
}

type ToolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolCallResponse is the tools/call result. Failures are reported in-band with
// IsError set, never as a transport error.
type ToolCallResponse struct {
	Content []ToolContent `json:"content"`
	IsError bool          `json:"isError"`
}

// ToolResult serializes v as the text content of a successful call.
func ToolResult(v any) (ToolCallResponse, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return ToolCallResponse{}, err
	}
	return ToolCallResponse{Content: []ToolContent{{Type: ContentTypeText, Text: string(b)}}}, nil
}

func ToolError(message string) ToolCallResponse {
	return ToolCallResponse{
		Content: []ToolContent{{Type: ContentTypeText, Text: fmt.Sprintf("Error: %s", message)}},
		IsError: true,
	}
}
