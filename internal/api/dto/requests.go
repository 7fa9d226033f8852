// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// DocumentPath holds the path parameters addressing a collection.
type DocumentPath struct {
	Database   string `uri:"database" binding:"required"`
	Collection string `uri:"collection" binding:"required"`
}

// GetDocumentPath holds the path parameters addressing one document.
type GetDocumentPath struct {
	DocumentPath
	ID string `uri:"id" binding:"required"`
}

// DistinctPath holds the path parameters addressing one field of a collection.
type DistinctPath struct {
	DocumentPath
	Field string `uri:"field" binding:"required"`
}
