package services

import (
	"context"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/repositories"
	"gorm.io/gorm"
)

const treeNotFound = "Árbol no encontrado"

// TreeService handles business logic for trees
type TreeService struct {
	treeRepo *repositories.TreeRepository
	plotRepo *repositories.PlotRepository
}

// NewTreeService creates a new tree service instance
func NewTreeService(db *gorm.DB) *TreeService {
	return &TreeService{
		treeRepo: repositories.NewTreeRepository(db),
		plotRepo: repositories.NewPlotRepository(db),
	}
}

// ListTrees retrieves all trees
func (s *TreeService) ListTrees(ctx context.Context) ([]models.Tree, error) {
	trees, err := s.treeRepo.FindAll(ctx)
	return trees, translate(err, treeNotFound)
}

// GetTree retrieves a tree by ID
func (s *TreeService) GetTree(ctx context.Context, id uint) (models.Tree, error) {
	tree, err := s.treeRepo.FindByID(ctx, id)
	return tree, translate(err, treeNotFound)
}

// ListTreesByPlot retrieves the trees of a plot
func (s *TreeService) ListTreesByPlot(ctx context.Context, plotID uint) ([]models.Tree, error) {
	trees, err := s.treeRepo.FindByPlotID(ctx, plotID)
	return trees, translate(err, treeNotFound)
}

// CreateTree stores a new tree in an existing plot
func (s *TreeService) CreateTree(ctx context.Context, req dto.CreateTreeRequest) (models.Tree, error) {
	plotID := uint(req.PlotID)
	if err := s.ensurePlot(ctx, plotID); err != nil {
		return models.Tree{}, err
	}

	tree := models.Tree{
		PlotID:        plotID,
		Row:           req.Row.Int(),
		Column:        req.Column.Int(),
		Status:        req.Status,
		StatusComment: req.StatusComment,
	}

	created, err := s.treeRepo.Create(ctx, tree)
	if err != nil {
		return models.Tree{}, translate(err, treeNotFound)
	}
	return s.GetTree(ctx, created.ID)
}

// UpdateTree applies the supplied fields to an existing tree.
// comentario_estado sent as null is cleared.
func (s *TreeService) UpdateTree(ctx context.Context, id uint, req dto.UpdateTreeRequest) (models.Tree, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return models.Tree{}, err
	}

	changes := map[string]interface{}{}
	if req.PlotID != nil {
		plotID := uint(*req.PlotID)
		if err := s.ensurePlot(ctx, plotID); err != nil {
			return models.Tree{}, err
		}
		changes["parcela_id"] = plotID
	}
	if req.Row != nil {
		changes["fila"] = req.Row.Int()
	}
	if req.Column != nil {
		changes["columna"] = req.Column.Int()
	}
	if req.Status != nil {
		changes["estado"] = *req.Status
	}
	if req.StatusComment.Set {
		changes["comentario_estado"] = req.StatusComment.Ptr()
	}

	if len(changes) > 0 {
		if err := s.treeRepo.Update(ctx, id, changes); err != nil {
			return models.Tree{}, translate(err, treeNotFound)
		}
	}
	return s.GetTree(ctx, id)
}

// DeleteTree removes a tree together with its sensors
func (s *TreeService) DeleteTree(ctx context.Context, id uint) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	return translate(s.treeRepo.Delete(ctx, id), treeNotFound)
}

func (s *TreeService) ensureExists(ctx context.Context, id uint) error {
	exists, err := s.treeRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(treeNotFound)
	}
	return nil
}

func (s *TreeService) ensurePlot(ctx context.Context, plotID uint) error {
	exists, err := s.plotRepo.Exists(ctx, plotID)
	if err != nil {
		return err
	}
	if !exists {
		return missingParent("La parcela", plotID)
	}
	return nil
}
