package services

import (
	"context"
	"time"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/repositories"
	"gorm.io/gorm"
)

const historyNotFound = "Registro de historial no encontrado"

// WateringHistoryService handles business logic for the watering history
type WateringHistoryService struct {
	historyRepo *repositories.WateringHistoryRepository
	plotRepo    *repositories.PlotRepository
}

// NewWateringHistoryService creates a new watering history service instance
func NewWateringHistoryService(db *gorm.DB) *WateringHistoryService {
	return &WateringHistoryService{
		historyRepo: repositories.NewWateringHistoryRepository(db),
		plotRepo:    repositories.NewPlotRepository(db),
	}
}

// ListHistory retrieves the whole history, most recent first
func (s *WateringHistoryService) ListHistory(ctx context.Context) ([]models.WateringHistory, error) {
	history, err := s.historyRepo.FindAll(ctx)
	return history, translate(err, historyNotFound)
}

// GetHistory retrieves a history record by ID
func (s *WateringHistoryService) GetHistory(ctx context.Context, id uint) (models.WateringHistory, error) {
	record, err := s.historyRepo.FindByID(ctx, id)
	return record, translate(err, historyNotFound)
}

// ListHistoryByPlot retrieves the history of a plot
func (s *WateringHistoryService) ListHistoryByPlot(ctx context.Context, plotID uint) ([]models.WateringHistory, error) {
	history, err := s.historyRepo.FindByPlotID(ctx, plotID)
	return history, translate(err, historyNotFound)
}

// ListHistoryByStatus retrieves the history records with a status
func (s *WateringHistoryService) ListHistoryByStatus(ctx context.Context, status string) ([]models.WateringHistory, error) {
	history, err := s.historyRepo.FindByStatus(ctx, status)
	return history, translate(err, historyNotFound)
}

// ListHistoryBetween retrieves the history within [from, to]. The range only
// applies when both bounds are given; otherwise the whole history is returned.
func (s *WateringHistoryService) ListHistoryBetween(ctx context.Context, from, to *time.Time) ([]models.WateringHistory, error) {
	if from == nil || to == nil {
		return s.ListHistory(ctx)
	}
	history, err := s.historyRepo.FindBetween(ctx, from.UTC(), to.UTC())
	return history, translate(err, historyNotFound)
}

// CreateHistory stores a new history record for an existing plot.
// The watering time defaults to now.
func (s *WateringHistoryService) CreateHistory(ctx context.Context, req dto.CreateHistoryRequest) (models.WateringHistory, error) {
	plotID := uint(req.PlotID)
	if err := s.ensurePlot(ctx, plotID); err != nil {
		return models.WateringHistory{}, err
	}

	record := models.WateringHistory{
		PlotID:            plotID,
		RecommendedLiters: req.RecommendedLiters.Float64(),
		WateredAt:         now(),
		Status:            req.Status,
	}
	if req.AppliedLiters != nil {
		applied := req.AppliedLiters.Float64()
		record.AppliedLiters = &applied
	}
	if req.WateredAt != nil {
		record.WateredAt = utcTime(*req.WateredAt)
	}

	created, err := s.historyRepo.Create(ctx, record)
	if err != nil {
		return models.WateringHistory{}, translate(err, historyNotFound)
	}
	return s.GetHistory(ctx, created.ID)
}

// UpdateHistory applies the supplied fields to an existing history record
func (s *WateringHistoryService) UpdateHistory(ctx context.Context, id uint, req dto.UpdateHistoryRequest) (models.WateringHistory, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return models.WateringHistory{}, err
	}

	changes := map[string]interface{}{}
	if req.PlotID != nil {
		plotID := uint(*req.PlotID)
		if err := s.ensurePlot(ctx, plotID); err != nil {
			return models.WateringHistory{}, err
		}
		changes["parcela_id"] = plotID
	}
	if req.RecommendedLiters != nil {
		changes["litros_recomendados"] = req.RecommendedLiters.Float64()
	}
	if req.AppliedLiters != nil {
		changes["litros_aplicados"] = req.AppliedLiters.Float64()
	}
	if req.WateredAt != nil {
		changes["fecha_hora_riego"] = utcTime(*req.WateredAt)
	}
	if req.Status != nil {
		changes["estado"] = *req.Status
	}

	if len(changes) > 0 {
		if err := s.historyRepo.Update(ctx, id, changes); err != nil {
			return models.WateringHistory{}, translate(err, historyNotFound)
		}
	}
	return s.GetHistory(ctx, id)
}

// DeleteHistory removes a history record
func (s *WateringHistoryService) DeleteHistory(ctx context.Context, id uint) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	return translate(s.historyRepo.Delete(ctx, id), historyNotFound)
}

func (s *WateringHistoryService) ensureExists(ctx context.Context, id uint) error {
	exists, err := s.historyRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(historyNotFound)
	}
	return nil
}

func (s *WateringHistoryService) ensurePlot(ctx context.Context, plotID uint) error {
	exists, err := s.plotRepo.Exists(ctx, plotID)
	if err != nil {
		return err
	}
	if !exists {
		return missingParent("La parcela", plotID)
	}
	return nil
}
