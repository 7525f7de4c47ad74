package services

import (
	"context"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/repositories"
	"gorm.io/gorm"
)

const plotNotFound = "Parcela no encontrada"

// PlotService handles business logic for plots
type PlotService struct {
	plotRepo *repositories.PlotRepository
}

// NewPlotService creates a new plot service instance
func NewPlotService(db *gorm.DB) *PlotService {
	return &PlotService{
		plotRepo: repositories.NewPlotRepository(db),
	}
}

// ListPlots retrieves all plots
func (s *PlotService) ListPlots(ctx context.Context) ([]models.Plot, error) {
	plots, err := s.plotRepo.FindAll(ctx)
	return plots, translate(err, plotNotFound)
}

// GetPlot retrieves a plot by ID
func (s *PlotService) GetPlot(ctx context.Context, id uint) (models.Plot, error) {
	plot, err := s.plotRepo.FindByID(ctx, id)
	return plot, translate(err, plotNotFound)
}

// ListPlotsByCrop retrieves the plots planted with a crop
func (s *PlotService) ListPlotsByCrop(ctx context.Context, cropID string) ([]models.Plot, error) {
	plots, err := s.plotRepo.FindByCropID(ctx, cropID)
	return plots, translate(err, plotNotFound)
}

// ListPlotsBySeason retrieves the plots of a season
func (s *PlotService) ListPlotsBySeason(ctx context.Context, seasonID string) ([]models.Plot, error) {
	plots, err := s.plotRepo.FindBySeasonID(ctx, seasonID)
	return plots, translate(err, plotNotFound)
}

// CreatePlot stores a new plot. Required fields are enforced when binding the request.
func (s *PlotService) CreatePlot(ctx context.Context, req dto.CreatePlotRequest) (models.Plot, error) {
	name, err := nonBlank("nombre", req.Name)
	if err != nil {
		return models.Plot{}, err
	}

	plot := models.Plot{
		Name:         name,
		Location:     req.Location,
		Rows:         req.Rows.Int(),
		Columns:      req.Columns.Int(),
		PlantingDate: utcTime(req.PlantingDate),
	}
	if req.CropID != nil {
		plot.CropID = req.CropID.String()
	}
	if req.SeasonID != nil {
		plot.SeasonID = req.SeasonID.String()
	}

	created, err := s.plotRepo.Create(ctx, plot)
	if err != nil {
		return models.Plot{}, translate(err, plotNotFound)
	}
	return s.GetPlot(ctx, created.ID)
}

// UpdatePlot applies the supplied fields to an existing plot
func (s *PlotService) UpdatePlot(ctx context.Context, id uint, req dto.UpdatePlotRequest) (models.Plot, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return models.Plot{}, err
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		name, err := nonBlank("nombre", *req.Name)
		if err != nil {
			return models.Plot{}, err
		}
		changes["nombre"] = name
	}
	if req.Location != nil {
		changes["ubicacion"] = *req.Location
	}
	if req.Rows != nil {
		changes["filas"] = req.Rows.Int()
	}
	if req.Columns != nil {
		changes["columnas"] = req.Columns.Int()
	}
	if req.PlantingDate != nil {
		changes["fecha_siembra"] = utcTime(*req.PlantingDate)
	}
	if req.CropID != nil {
		changes["cultivo_id"] = req.CropID.String()
	}
	if req.SeasonID != nil {
		changes["epoca_id"] = req.SeasonID.String()
	}

	if len(changes) > 0 {
		if err := s.plotRepo.Update(ctx, id, changes); err != nil {
			return models.Plot{}, translate(err, plotNotFound)
		}
	}
	return s.GetPlot(ctx, id)
}

// DeletePlot removes a plot together with its trees, schedules and history
func (s *PlotService) DeletePlot(ctx context.Context, id uint) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	return translate(s.plotRepo.Delete(ctx, id), plotNotFound)
}

func (s *PlotService) ensureExists(ctx context.Context, id uint) error {
	exists, err := s.plotRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(plotNotFound)
	}
	return nil
}
