package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/mntm/graphql-codegen/graphqljson"
)

// Request is the body of a GraphQL-over-HTTP POST.
type Request struct {
	OperationName string         `json:"operationName,omitempty"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Response is the envelope of a GraphQL-over-HTTP response.
type Response struct {
	Data   jsontext.Value `json:"data"`
	Errors []*Error       `json:"errors,omitempty"`
}

type Error struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// ErrorResponse is returned when the server answers with GraphQL errors or a
// non-2xx status.
type ErrorResponse struct {
	StatusCode int
	Body       string
	Errors     []*Error
}

func (e *ErrorResponse) Error() string {
	if len(e.Errors) > 0 {
		messages := make([]string, 0, len(e.Errors))
		for _, err := range e.Errors {
			messages = append(messages, err.Message)
		}
		return "graphql: " + strings.Join(messages, "; ")
	}
	return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Body)
}

func NewRequest(ctx context.Context, endpoint, operationName, query string, variables map[string]any) (*http.Request, error) {
	body, err := json.Marshal(&Request{
		OperationName: operationName,
		Query:         query,
		Variables:     variables,
	})
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request struct failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json; charset=utf-8")

	return req, nil
}

func ParseResponse(resp *http.Response, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &ErrorResponse{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return fmt.Errorf("failed to decode response %q: %w", body, err)
	}

	if len(response.Errors) > 0 {
		return &ErrorResponse{StatusCode: resp.StatusCode, Errors: response.Errors}
	}

	return graphqljson.UnmarshalData(response.Data, out)
}
