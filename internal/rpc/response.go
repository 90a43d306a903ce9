// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rpc

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/aurum/pkg/types"
)

// envelope is the RPC v5 response wrapper. Type is "search", "multiinfo"
// or "error"; Error carries the server's message when Type is "error".
type envelope struct {
	Version     int             `json:"version"`
	Type        string          `json:"type"`
	ResultCount int             `json:"resultcount"`
	Results     []types.Package `json:"results"`
	Error       string          `json:"error"`
}

// ServiceError is an error the AUR itself reported for a query (rate
// limiting, malformed request). It is distinct from transport failures
// and from a valid zero-match response.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return "AUR error: " + e.Message
}

// interpret decodes a response body. A server-reported error becomes a
// ServiceError; a success envelope with zero results decodes to an empty
// slice, which is not an error.
func interpret(r io.Reader) ([]types.Package, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("parsing RPC response: %w", err)
	}
	if env.Type == "error" {
		return nil, &ServiceError{Message: env.Error}
	}
	return env.Results, nil
}
