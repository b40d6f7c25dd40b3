package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "truckservice/internal/adapter/http/dto/request"
	response "truckservice/internal/adapter/http/dto/response"
	"truckservice/internal/domain/entities"
	"truckservice/internal/infrastructure/documents"
	"truckservice/internal/usecase"
	"truckservice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidUserID       = pkg.NewDomainErrorSimple("INVALID_USER_ID", "Invalid user id", http.StatusBadRequest)
)

// OrderHandler exposes the order flow as structured events: one endpoint per
// step transition, keyed by the collaborating chat user's id.

type OrderHandler struct {
	usecase usecase.IOrderSessionUseCase
}

func NewOrderHandler(uc usecase.IOrderSessionUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(errInvalidUserID.HTTPStatus, errInvalidUserID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func (h *OrderHandler) StartOrder(c *gin.Context) {
	var payload request.StartOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.StartOrder(c.Request.Context(), payload.UserID, payload.CategoryID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(session))
}

func (h *OrderHandler) GetSession(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	session, err := h.usecase.Session(userID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *OrderHandler) AbortOrder(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	if !h.usecase.Abort(userID) {
		appErr := mapOrderError(usecase.ErrNoActiveSession)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) SelectHeader(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var payload request.SelectHeaderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	if err := h.usecase.SelectHeader(userID, payload.TemplateID); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.StepResponse{Step: string(entities.StepLicensePlate)})
}

func (h *OrderHandler) SubmitText(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var payload request.TextInputRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	step, err := h.usecase.SubmitText(userID, payload.Text)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.StepResponse{Step: string(step)})
}

func (h *OrderHandler) WorksPage(c *gin.Context) {
	h.page(c, h.usecase.WorksPage)
}

func (h *OrderHandler) MaterialsPage(c *gin.Context) {
	h.page(c, h.usecase.MaterialsPage)
}

func (h *OrderHandler) page(c *gin.Context, view func(int64, int) (usecase.PageView, error)) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))

	v, err := view(userID, page)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPageView(v))
}

func (h *OrderHandler) ToggleWork(c *gin.Context) {
	h.toggle(c, h.usecase.ToggleWork)
}

func (h *OrderHandler) ToggleMaterial(c *gin.Context) {
	h.toggle(c, h.usecase.ToggleMaterial)
}

func (h *OrderHandler) toggle(c *gin.Context, fn func(int64, int) (bool, error)) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var payload request.ToggleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	selected, err := fn(userID, *payload.Index)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ToggleResponse{Selected: selected})
}

func (h *OrderHandler) ResetWorks(c *gin.Context) {
	h.simple(c, h.usecase.ResetWorks)
}

func (h *OrderHandler) ResetMaterials(c *gin.Context) {
	h.simple(c, h.usecase.ResetMaterials)
}

func (h *OrderHandler) ConfirmWorks(c *gin.Context) {
	h.simple(c, h.usecase.ProceedToMaterials)
}

func (h *OrderHandler) ConfirmMaterials(c *gin.Context) {
	h.simple(c, h.usecase.RequestPhotoDecision)
}

func (h *OrderHandler) simple(c *gin.Context, fn func(int64) error) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	if err := fn(userID); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) DecidePhotos(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var payload request.PhotoDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.DecidePhotos(c.Request.Context(), userID, *payload.AttachPhotos)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if result == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, response.FromFinalizeResult(result))
}

func (h *OrderHandler) AttachPhoto(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var payload request.AttachPhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.AttachPhoto(c.Request.Context(), userID, payload.FileRef, payload.Content)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPhotoResult(result))
}

func (h *OrderHandler) Finalize(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	result, err := h.usecase.Finalize(c.Request.Context(), userID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinalizeResult(result))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoActiveSession):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_SESSION", "No active order session", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryUnknown):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Unknown order category", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHeaderUnknown):
		return pkg.NewDomainErrorSimple("HEADER_NOT_FOUND", "Unknown header template", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidLicensePlate),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrDateOutOfRange),
		errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidWorkers):
		return pkg.NewDomainError("INVALID_FIELD", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INDEX_OUT_OF_RANGE", "Selection index out of range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWrongStep):
		return pkg.NewDomainErrorSimple("WRONG_STEP", "Operation not allowed at current step", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyFinalized):
		return pkg.NewDomainErrorSimple("ALREADY_FINALIZED", "Order already finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyOrder):
		return pkg.NewDomainErrorSimple("EMPTY_ORDER", "Order total must be positive", http.StatusConflict)
	case errors.Is(err, usecase.ErrPhotoInProgress):
		return pkg.NewDomainErrorSimple("PHOTO_IN_PROGRESS", "Previous photo still processing", http.StatusConflict)
	case errors.Is(err, usecase.ErrPhotosComplete):
		return pkg.NewDomainErrorSimple("PHOTOS_COMPLETE", "Photo set already complete", http.StatusConflict)
	case errors.Is(err, documents.ErrValidation):
		return pkg.NewDomainErrorSimple("ORDER_INCOMPLETE", "Order data is incomplete", http.StatusConflict)
	case errors.Is(err, documents.ErrFileSave), errors.Is(err, documents.ErrGeneration):
		return pkg.NewDomainError("DOCUMENT_ERROR", "Failed to generate order documents", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
