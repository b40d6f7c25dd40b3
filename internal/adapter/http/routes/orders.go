package routes

import (
	"truckservice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders          = "/orders"
	PathCategories      = "/categories"
	PathCustomLists     = "/custom-lists"
	PathHeaderTemplates = "/header-templates"
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.StartOrder)
		orders.GET("/:user_id", h.GetSession)
		orders.DELETE("/:user_id", h.AbortOrder)

		orders.POST("/:user_id/header", h.SelectHeader)
		orders.POST("/:user_id/input", h.SubmitText)

		orders.GET("/:user_id/works", h.WorksPage)
		orders.POST("/:user_id/works/toggle", h.ToggleWork)
		orders.POST("/:user_id/works/reset", h.ResetWorks)
		orders.POST("/:user_id/works/confirm", h.ConfirmWorks)

		orders.GET("/:user_id/materials", h.MaterialsPage)
		orders.POST("/:user_id/materials/toggle", h.ToggleMaterial)
		orders.POST("/:user_id/materials/reset", h.ResetMaterials)
		orders.POST("/:user_id/materials/confirm", h.ConfirmMaterials)

		orders.POST("/:user_id/photos/decision", h.DecidePhotos)
		orders.POST("/:user_id/photos", h.AttachPhoto)
		orders.POST("/:user_id/finalize", h.Finalize)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	categories := rg.Group(PathCategories)
	{
		categories.GET("", h.ListCategories)
		categories.POST("/:category_id/works", h.MergeWorks)
	}

	rg.POST(PathCustomLists, h.CreateCustomList)

	templates := rg.Group(PathHeaderTemplates)
	{
		templates.GET("", h.ListHeaderTemplates)
		templates.PUT("", h.SaveHeaderTemplate)
		templates.DELETE("/:id", h.DeleteHeaderTemplate)
	}
}
