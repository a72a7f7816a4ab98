package schema

import "fmt"

// ParseChatResponse parses the chat transport payload.
func ParseChatResponse(data []byte) (ChatResponse, error) {
	v, err := decode(data)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("parse chat response: %w", err)
	}
	return ChatResponseFromValue(v), nil
}

// ChatResponseFromValue builds a ChatResponse from a decoded JSON object.
func ChatResponseFromValue(v any) ChatResponse {
	m := object(v)
	resp := ChatResponse{
		Message: text(m["message"]),
		Error:   truthy(m["error"]),
		Steps:   StepsFromValue(m["steps"]),
	}
	if md := object(m["modelData"]); md != nil {
		desc := ModelFromValue(md)
		resp.ModelData = &desc
	}
	return resp
}

// HasModel reports whether the response carries a model description.
func (r ChatResponse) HasModel() bool {
	return r.ModelData != nil
}
