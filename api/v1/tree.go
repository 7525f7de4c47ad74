package v1

import (
	"net/http"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TreeController handles tree-related API endpoints
type TreeController struct {
	treeService *services.TreeService
}

// NewTreeController creates a new tree controller
func NewTreeController(db *gorm.DB) *TreeController {
	return &TreeController{
		treeService: services.NewTreeService(db),
	}
}

// RegisterRoutes registers tree routes
func (c *TreeController) RegisterRoutes(router *gin.RouterGroup) {
	trees := router.Group("/arboles")
	{
		trees.GET("", c.ListTrees)
		trees.GET("/parcela/:parcelaId", c.ListTreesByPlot)
		trees.GET("/:id", c.GetTree)
		trees.POST("", c.CreateTree)
		trees.PUT("/:id", c.UpdateTree)
		trees.DELETE("/:id", c.DeleteTree)
	}
}

// ListTrees retrieves all trees
func (c *TreeController) ListTrees(ctx *gin.Context) {
	trees, err := c.treeService.ListTrees(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTreeListResponse(trees))
}

// ListTreesByPlot retrieves the trees of a plot
func (c *TreeController) ListTreesByPlot(ctx *gin.Context) {
	plotID, ok := pathID(ctx, "parcelaId")
	if !ok {
		return
	}

	trees, err := c.treeService.ListTreesByPlot(ctx.Request.Context(), plotID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTreeListResponse(trees))
}

// GetTree retrieves a specific tree
func (c *TreeController) GetTree(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	tree, err := c.treeService.GetTree(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTreeResponse(tree))
}

// CreateTree creates a new tree
func (c *TreeController) CreateTree(ctx *gin.Context) {
	var request dto.CreateTreeRequest
	if !bindJSON(ctx, &request, false) {
		return
	}

	tree, err := c.treeService.CreateTree(ctx.Request.Context(), request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewTreeResponse(tree))
}

// UpdateTree updates an existing tree
func (c *TreeController) UpdateTree(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.UpdateTreeRequest
	if !bindJSON(ctx, &request, true) {
		return
	}

	tree, err := c.treeService.UpdateTree(ctx.Request.Context(), id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTreeResponse(tree))
}

// DeleteTree deletes a tree with its sensors
func (c *TreeController) DeleteTree(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.treeService.DeleteTree(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Árbol eliminado correctamente"})
}
