package services

import (
	"context"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/repositories"
	"gorm.io/gorm"
)

const scheduleNotFound = "Horario de riego no encontrado"

// WateringScheduleService handles business logic for watering schedules
type WateringScheduleService struct {
	scheduleRepo *repositories.WateringScheduleRepository
	plotRepo     *repositories.PlotRepository
}

// NewWateringScheduleService creates a new watering schedule service instance
func NewWateringScheduleService(db *gorm.DB) *WateringScheduleService {
	return &WateringScheduleService{
		scheduleRepo: repositories.NewWateringScheduleRepository(db),
		plotRepo:     repositories.NewPlotRepository(db),
	}
}

// ListSchedules retrieves all schedules
func (s *WateringScheduleService) ListSchedules(ctx context.Context) ([]models.WateringSchedule, error) {
	schedules, err := s.scheduleRepo.FindAll(ctx)
	return schedules, translate(err, scheduleNotFound)
}

// GetSchedule retrieves a schedule by ID
func (s *WateringScheduleService) GetSchedule(ctx context.Context, id uint) (models.WateringSchedule, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	return schedule, translate(err, scheduleNotFound)
}

// ListSchedulesByPlot retrieves the schedules of a plot
func (s *WateringScheduleService) ListSchedulesByPlot(ctx context.Context, plotID uint) ([]models.WateringSchedule, error) {
	schedules, err := s.scheduleRepo.FindByPlotID(ctx, plotID)
	return schedules, translate(err, scheduleNotFound)
}

// ListActiveSchedules retrieves the active schedules
func (s *WateringScheduleService) ListActiveSchedules(ctx context.Context) ([]models.WateringSchedule, error) {
	schedules, err := s.scheduleRepo.FindByActive(ctx, true)
	return schedules, translate(err, scheduleNotFound)
}

// CreateSchedule stores a new schedule for an existing plot. Schedules are active unless told otherwise.
func (s *WateringScheduleService) CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest) (models.WateringSchedule, error) {
	plotID := uint(req.PlotID)
	if err := s.ensurePlot(ctx, plotID); err != nil {
		return models.WateringSchedule{}, err
	}

	schedule := models.WateringSchedule{
		PlotID:     plotID,
		DaysOfWeek: models.NewWeekdays(req.DaysOfWeek),
		TimeOfDay:  req.TimeOfDay,
		Active:     true,
	}
	if req.Active != nil {
		schedule.Active = req.Active.Bool()
	}

	created, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		return models.WateringSchedule{}, translate(err, scheduleNotFound)
	}
	return s.GetSchedule(ctx, created.ID)
}

// UpdateSchedule applies the supplied fields to an existing schedule
func (s *WateringScheduleService) UpdateSchedule(ctx context.Context, id uint, req dto.UpdateScheduleRequest) (models.WateringSchedule, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return models.WateringSchedule{}, err
	}

	changes := map[string]interface{}{}
	if req.PlotID != nil {
		plotID := uint(*req.PlotID)
		if err := s.ensurePlot(ctx, plotID); err != nil {
			return models.WateringSchedule{}, err
		}
		changes["parcela_id"] = plotID
	}
	if req.DaysOfWeek != nil {
		changes["dias_semana"] = models.NewWeekdays(req.DaysOfWeek)
	}
	if req.TimeOfDay != nil {
		changes["hora_riego"] = *req.TimeOfDay
	}
	if req.Active != nil {
		changes["activo"] = req.Active.Bool()
	}

	if len(changes) > 0 {
		if err := s.scheduleRepo.Update(ctx, id, changes); err != nil {
			return models.WateringSchedule{}, translate(err, scheduleNotFound)
		}
	}
	return s.GetSchedule(ctx, id)
}

// ToggleSchedule sets only the active flag of a schedule
func (s *WateringScheduleService) ToggleSchedule(ctx context.Context, id uint, active bool) (models.WateringSchedule, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return models.WateringSchedule{}, err
	}
	if err := s.scheduleRepo.SetActive(ctx, id, active); err != nil {
		return models.WateringSchedule{}, translate(err, scheduleNotFound)
	}
	return s.GetSchedule(ctx, id)
}

// DeleteSchedule removes a schedule
func (s *WateringScheduleService) DeleteSchedule(ctx context.Context, id uint) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	return translate(s.scheduleRepo.Delete(ctx, id), scheduleNotFound)
}

func (s *WateringScheduleService) ensureExists(ctx context.Context, id uint) error {
	exists, err := s.scheduleRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(scheduleNotFound)
	}
	return nil
}

func (s *WateringScheduleService) ensurePlot(ctx context.Context, plotID uint) error {
	exists, err := s.plotRepo.Exists(ctx, plotID)
	if err != nil {
		return err
	}
	if !exists {
		return missingParent("La parcela", plotID)
	}
	return nil
}
