package dto

import "github.com/unifiedui/docstore-service/internal/domain/models"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// InsertDocumentResponse represents the response for inserting a document.
type InsertDocumentResponse struct {
	ID string `json:"id"`
}

// GetDocumentResponse represents the response for retrieving a document.
type GetDocumentResponse struct {
	Document models.Document `json:"document"`
}

// DistinctValuesResponse represents the distinct values of a field.
type DistinctValuesResponse struct {
	Field  string         `json:"field"`
	Values []models.Value `json:"values"`
	Count  int            `json:"count"`
}

// ListCollectionsResponse represents the collections of a database.
type ListCollectionsResponse struct {
	Database    string   `json:"database"`
	Collections []string `json:"collections"`
}
