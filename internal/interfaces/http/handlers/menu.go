// internal/interfaces/http/handlers/menu.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/snackshop-backend/internal/domain/catalog"
)

// MenuHandler serves the fixed catalog
type MenuHandler struct {
	catalog *catalog.Service
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(catalogService *catalog.Service) *MenuHandler {
	return &MenuHandler{
		catalog: catalogService,
	}
}

// GetMenu handles GET /menu
func (h *MenuHandler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Menu retrieved successfully",
		"data":    h.catalog.List(),
	})
}
