package handlers

import (
	"errors"
	"net/http"

	request "truckservice/internal/adapter/http/dto/request"
	response "truckservice/internal/adapter/http/dto/response"
	"truckservice/internal/adapter/persistence/repository"
	"truckservice/internal/domain/entities"
	"truckservice/internal/usecase"
	"truckservice/internal/usecase/interfaces"
	"truckservice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingBatchFile   = pkg.NewDomainErrorSimple("MISSING_BATCH_FILE", "Upload must carry a workbook in the \"file\" field", http.StatusBadRequest)
	errUnreadableBatch    = pkg.NewDomainErrorSimple("UNREADABLE_BATCH", "Uploaded workbook could not be parsed", http.StatusUnprocessableEntity)
	errInvalidTemplate    = pkg.NewDomainErrorSimple("INVALID_TEMPLATE", "Invalid header template payload", http.StatusBadRequest)
	errInvalidCustomName  = pkg.NewDomainErrorSimple("INVALID_LIST_NAME", "Invalid custom list name", http.StatusUnprocessableEntity)
	errCatalogCategory404 = pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Unknown order category", http.StatusNotFound)
)

// CatalogHandler exposes the operator maintenance surface: category listing,
// catalog merges from uploaded workbooks, custom lists and header templates.

type CatalogHandler struct {
	usecase usecase.ICatalogAdminUseCase
}

func NewCatalogHandler(uc usecase.ICatalogAdminUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCategories(h.usecase.Categories()))
}

// MergeWorks accepts a multipart upload of a two-column catalog workbook and
// folds it into the category's list.
func (h *CatalogHandler) MergeWorks(c *gin.Context) {
	batch, ok := h.batchFromUpload(c)
	if !ok {
		return
	}

	report, err := h.usecase.MergeWorks(c.Request.Context(), c.Param("category_id"), batch)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMergeReport(report))
}

// CreateCustomList registers a user-defined category seeded from the
// uploaded workbook.
func (h *CatalogHandler) CreateCustomList(c *gin.Context) {
	name := c.PostForm("name")
	batch, ok := h.batchFromUpload(c)
	if !ok {
		return
	}

	cat, err := h.usecase.CreateCustomList(c.Request.Context(), name, batch)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.CategoryResponse{ID: cat.ID, Name: cat.Name, Custom: cat.Custom})
}

func (h *CatalogHandler) batchFromUpload(c *gin.Context) ([]entities.WorkItem, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingBatchFile.HTTPStatus, errMissingBatchFile.ToHTTPError())
		return nil, false
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(errUnreadableBatch.HTTPStatus, errUnreadableBatch.ToHTTPError())
		return nil, false
	}
	defer f.Close()

	batch, err := repository.ReadWorksBook(f)
	if err != nil {
		c.JSON(errUnreadableBatch.HTTPStatus, errUnreadableBatch.ToHTTPError())
		return nil, false
	}
	return batch, true
}

func (h *CatalogHandler) ListHeaderTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromHeaderTemplates(h.usecase.HeaderTemplates()))
}

func (h *CatalogHandler) SaveHeaderTemplate(c *gin.Context) {
	var payload request.HeaderTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplate.HTTPStatus, errInvalidTemplate.ToHTTPError())
		return
	}
	if err := h.usecase.SaveHeaderTemplate(payload.ToEntity()); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) DeleteHeaderTemplate(c *gin.Context) {
	if err := h.usecase.DeleteHeaderTemplate(c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrCategoryNotFound):
		return errCatalogCategory404
	case errors.Is(err, usecase.ErrEmptyBatch):
		return pkg.NewDomainErrorSimple("EMPTY_BATCH", "Uploaded batch contains no valid rows", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCustomListName):
		return errInvalidCustomName
	case errors.Is(err, usecase.ErrTemplateUnknown):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Header template not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
