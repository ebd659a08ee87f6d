// Package llm provides a client for the hosted completion API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL is the provider endpoint the backend talks to.
const DefaultBaseURL = "https://rest-assistant.api.cloud.yandex.net/v1"

// Generation parameters sent with every completion request.
const (
	temperature     = 0.6
	maxOutputTokens = 2500
)

// Client calls the provider's responses endpoint.
type Client struct {
	baseURL      string
	apiKey       string
	folderID     string
	model        string
	instructions string
	httpClient   *http.Client
}

// NewClient creates a new completion client. The model identifier sent on the
// wire is composed from folderID and model as gpt://<folderID>/<model>.
// No request timeout is set; the transport default applies.
func NewClient(baseURL, apiKey, folderID, model, instructions string) *Client {
	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		apiKey:       apiKey,
		folderID:     folderID,
		model:        fmt.Sprintf("gpt://%s/%s", folderID, model),
		instructions: instructions,
		httpClient:   &http.Client{},
	}
}

// ResponseRequest is the request body for the responses endpoint.
type ResponseRequest struct {
	Model           string         `json:"model"`
	Temperature     float64        `json:"temperature"`
	MaxOutputTokens int            `json:"max_output_tokens"`
	Instructions    string         `json:"instructions,omitempty"`
	Input           []InputMessage `json:"input"`
}

// InputMessage is a single input turn.
type InputMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response is the provider's response payload.
type Response struct {
	ID     string       `json:"id"`
	Status string       `json:"status,omitempty"`
	Error  *APIError    `json:"error,omitempty"`
	Output []OutputItem `json:"output"`
}

// OutputItem is one entry of the response output list.
type OutputItem struct {
	ID      string        `json:"id,omitempty"`
	Type    string        `json:"type"`
	Role    string        `json:"role,omitempty"`
	Content []ContentPart `json:"content,omitempty"`
}

// ContentPart is a piece of message content.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ErrorResponse represents an API error response body.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// APIError represents the error details.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
}

// ProviderError reports a failed completion attempt. Every failure mode of
// the client (network, auth, provider-side error, unexpected payload) comes
// back as a *ProviderError carrying the underlying diagnostic detail.
type ProviderError struct {
	Op      string
	Status  int // HTTP status, 0 when the request never completed
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("%s: provider returned %d: %s", e.Op, e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Complete sends the user message to the provider together with the fixed
// instructions and returns the trimmed reply text. The stored conversation
// history is not part of the request; only the newest message goes out.
func (c *Client) Complete(ctx context.Context, message string) (string, error) {
	req := &ResponseRequest{
		Model:           c.model,
		Temperature:     temperature,
		MaxOutputTokens: maxOutputTokens,
		Instructions:    c.instructions,
		Input:           []InputMessage{{Role: "user", Content: message}},
	}

	resp, err := c.createResponse(ctx, req)
	if err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", &ProviderError{Op: "create response", Message: resp.Error.Message}
	}

	var sb strings.Builder
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.Content {
			if part.Type != "output_text" {
				continue
			}
			sb.WriteString(part.Text)
		}
	}

	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", &ProviderError{Op: "create response", Message: "empty model response"}
	}
	return reply, nil
}

// createResponse sends a request to the responses endpoint.
func (c *Client) createResponse(ctx context.Context, req *ResponseRequest) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &ProviderError{Op: "marshal request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Op: "create request", Err: err}
	}

	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ProviderError{Op: "send request", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Op: "read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return nil, &ProviderError{
				Op:      "create response",
				Status:  resp.StatusCode,
				Message: fmt.Sprintf("%s (type: %s)", errResp.Error.Message, errResp.Error.Type),
			}
		}
		return nil, &ProviderError{Op: "create response", Status: resp.StatusCode, Message: string(respBody)}
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &ProviderError{Op: "unmarshal response", Err: err}
	}

	return &result, nil
}

// setHeaders sets common request headers.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.folderID != "" {
		req.Header.Set("OpenAI-Project", c.folderID)
	}
}
