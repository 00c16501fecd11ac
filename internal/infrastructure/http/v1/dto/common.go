// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"fmt"
	"time"
)

// FormatDuration renders a request duration as seconds, e.g. "0.412s".
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// --- Failure envelope ---

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Duration string `json:"duration"`
}

// NewErrorResponse creates a failure envelope.
func NewErrorResponse(message string, elapsed time.Duration) ErrorResponse {
	return ErrorResponse{
		Success:  false,
		Error:    message,
		Duration: FormatDuration(elapsed),
	}
}

// --- Health ---

// HealthResponse is the liveness document.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// --- Service description ---

// EndpointDoc describes one route in the service description.
type EndpointDoc struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Description string   `json:"description"`
	Parameters  []string `json:"parameters,omitempty"`
}

// ServiceDescription is the static document served at "/".
type ServiceDescription struct {
	Service     string        `json:"service"`
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Endpoints   []EndpointDoc `json:"endpoints"`
	Defaults    DefaultsDTO   `json:"defaults"`
}
