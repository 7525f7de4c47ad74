package repositories

import (
	"context"

	"github.com/agro-riego/api/models"
	"gorm.io/gorm"
)

// TreeRepository handles database operations for trees
type TreeRepository struct {
	db *gorm.DB
}

// NewTreeRepository creates a new tree repository instance
func NewTreeRepository(db *gorm.DB) *TreeRepository {
	return &TreeRepository{db: db}
}

// FindAll retrieves all trees with their plot, sensors and alerts
func (r *TreeRepository) FindAll(ctx context.Context) ([]models.Tree, error) {
	var trees []models.Tree
	result := withPreloads(ctx, r.db, treePreloads).Order("id").Find(&trees)
	return trees, result.Error
}

// FindByID retrieves a tree by its ID
func (r *TreeRepository) FindByID(ctx context.Context, id uint) (models.Tree, error) {
	var tree models.Tree
	result := withPreloads(ctx, r.db, treePreloads).First(&tree, "id = ?", id)
	return tree, result.Error
}

// FindByPlotID retrieves all trees planted in a plot
func (r *TreeRepository) FindByPlotID(ctx context.Context, plotID uint) ([]models.Tree, error) {
	var trees []models.Tree
	result := withPreloads(ctx, r.db, treePreloads).Where("parcela_id = ?", plotID).Order("id").Find(&trees)
	return trees, result.Error
}

// Create inserts a new tree into the database
func (r *TreeRepository) Create(ctx context.Context, tree models.Tree) (models.Tree, error) {
	result := r.db.WithContext(ctx).Create(&tree)
	return tree, result.Error
}

// Update applies the given column changes to a tree
func (r *TreeRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Tree{}).Where("id = ?", id).Updates(changes)
	return result.Error
}

// Delete removes a tree. Sensors cascade; alerts keep a null tree reference.
func (r *TreeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Tree{}, "id = ?", id)
	return result.Error
}

// Exists checks if a tree exists
func (r *TreeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	count, err := countByID(ctx, r.db, &models.Tree{}, id)
	return count > 0, err
}
