package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docstore-service/internal/api/dto"
	"github.com/unifiedui/docstore-service/internal/api/middleware"
	"github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
)

// DocumentsHandler handles document and distinct-value endpoints.
type DocumentsHandler struct {
	store docstore.Store
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(store docstore.Store) *DocumentsHandler {
	return &DocumentsHandler{
		store: store,
	}
}

// InsertDocument handles POST /databases/{database}/collections/{collection}/documents
// @Summary Insert a document
// @Description Inserts a JSON object into the collection and returns the assigned identifier.
// @Description Values of the form {"$oid": hex} and {"$date": RFC3339} are stored as ObjectIds and dates.
// @Tags Documents
// @Accept json
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param document body object true "Document to insert"
// @Success 201 {object} dto.InsertDocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/docstore/databases/{database}/collections/{collection}/documents [post]
func (h *DocumentsHandler) InsertDocument(c *gin.Context) {
	var path dto.DocumentPath
	if err := c.ShouldBindUri(&path); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid path parameters", err.Error()))
		return
	}

	var document models.Document
	if err := c.ShouldBindJSON(&document); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid document", err.Error()))
		return
	}
	if document == nil {
		middleware.HandleError(c, errors.NewValidationError("invalid document", "body must be a JSON object"))
		return
	}

	id, err := h.store.InsertDocument(c.Request.Context(), path.Database, path.Collection, document)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.InsertDocumentResponse{ID: id})
}

// GetDocument handles GET /databases/{database}/collections/{collection}/documents/{id}
// @Summary Get a document
// @Description Retrieves a document by the identifier returned on insert
// @Tags Documents
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param id path string true "Document ID"
// @Success 200 {object} dto.GetDocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/docstore/databases/{database}/collections/{collection}/documents/{id} [get]
func (h *DocumentsHandler) GetDocument(c *gin.Context) {
	var path dto.GetDocumentPath
	if err := c.ShouldBindUri(&path); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid path parameters", err.Error()))
		return
	}

	document, err := h.store.GetDocument(c.Request.Context(), path.Database, path.Collection, path.ID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GetDocumentResponse{Document: document})
}

// ListUniqueValues handles GET /databases/{database}/collections/{collection}/distinct/{field}
// @Summary List distinct values
// @Description Returns the distinct values of a field across the collection in server order
// @Tags Documents
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param field path string true "Field name, dotted paths address nested fields"
// @Success 200 {object} dto.DistinctValuesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/docstore/databases/{database}/collections/{collection}/distinct/{field} [get]
func (h *DocumentsHandler) ListUniqueValues(c *gin.Context) {
	var path dto.DistinctPath
	if err := c.ShouldBindUri(&path); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid path parameters", err.Error()))
		return
	}

	values, err := h.store.ListUniqueValues(c.Request.Context(), path.Database, path.Collection, path.Field)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DistinctValuesResponse{
		Field:  path.Field,
		Values: values,
		Count:  len(values),
	})
}

// ListCollections handles GET /databases/{database}/collections
// @Summary List collections
// @Description Lists the collection names of a database
// @Tags Documents
// @Produce json
// @Param database path string true "Database name"
// @Success 200 {object} dto.ListCollectionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/docstore/databases/{database}/collections [get]
func (h *DocumentsHandler) ListCollections(c *gin.Context) {
	database := c.Param("database")

	names, err := h.store.ListCollections(c.Request.Context(), database)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, dto.ListCollectionsResponse{
		Database:    database,
		Collections: names,
	})
}
