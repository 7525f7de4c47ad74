package services

import (
	"context"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/repositories"
	"gorm.io/gorm"
)

const sensorNotFound = "Sensor no encontrado"

// SensorService handles business logic for sensors
type SensorService struct {
	sensorRepo *repositories.SensorRepository
	treeRepo   *repositories.TreeRepository
}

// NewSensorService creates a new sensor service instance
func NewSensorService(db *gorm.DB) *SensorService {
	return &SensorService{
		sensorRepo: repositories.NewSensorRepository(db),
		treeRepo:   repositories.NewTreeRepository(db),
	}
}

// ListSensors retrieves all sensors
func (s *SensorService) ListSensors(ctx context.Context) ([]models.Sensor, error) {
	sensors, err := s.sensorRepo.FindAll(ctx)
	return sensors, translate(err, sensorNotFound)
}

// GetSensor retrieves a sensor by ID
func (s *SensorService) GetSensor(ctx context.Context, id uint) (models.Sensor, error) {
	sensor, err := s.sensorRepo.FindByID(ctx, id)
	return sensor, translate(err, sensorNotFound)
}

// ListSensorsByTree retrieves the sensors attached to a tree
func (s *SensorService) ListSensorsByTree(ctx context.Context, treeID uint) ([]models.Sensor, error) {
	sensors, err := s.sensorRepo.FindByTreeID(ctx, treeID)
	return sensors, translate(err, sensorNotFound)
}

// ListSensorsByType retrieves the sensors of a type
func (s *SensorService) ListSensorsByType(ctx context.Context, sensorType string) ([]models.Sensor, error) {
	sensors, err := s.sensorRepo.FindByType(ctx, sensorType)
	return sensors, translate(err, sensorNotFound)
}

// CreateSensor stores a new sensor on an existing tree
func (s *SensorService) CreateSensor(ctx context.Context, req dto.CreateSensorRequest) (models.Sensor, error) {
	sensorType, err := nonBlank("tipo", req.Type)
	if err != nil {
		return models.Sensor{}, err
	}
	treeID := uint(req.TreeID)
	if err := s.ensureTree(ctx, treeID); err != nil {
		return models.Sensor{}, err
	}

	created, err := s.sensorRepo.Create(ctx, models.Sensor{
		TreeID:   treeID,
		Type:     sensorType,
		DataPath: req.DataPath,
	})
	if err != nil {
		return models.Sensor{}, translate(err, sensorNotFound)
	}
	return s.GetSensor(ctx, created.ID)
}

// UpdateSensor applies the supplied fields to an existing sensor.
// firebase_path sent as null is cleared.
func (s *SensorService) UpdateSensor(ctx context.Context, id uint, req dto.UpdateSensorRequest) (models.Sensor, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return models.Sensor{}, err
	}

	changes := map[string]interface{}{}
	if req.TreeID != nil {
		treeID := uint(*req.TreeID)
		if err := s.ensureTree(ctx, treeID); err != nil {
			return models.Sensor{}, err
		}
		changes["arbol_id"] = treeID
	}
	if req.Type != nil {
		sensorType, err := nonBlank("tipo", *req.Type)
		if err != nil {
			return models.Sensor{}, err
		}
		changes["tipo"] = sensorType
	}
	if req.DataPath.Set {
		changes["firebase_path"] = req.DataPath.Ptr()
	}

	if len(changes) > 0 {
		if err := s.sensorRepo.Update(ctx, id, changes); err != nil {
			return models.Sensor{}, translate(err, sensorNotFound)
		}
	}
	return s.GetSensor(ctx, id)
}

// DeleteSensor removes a sensor
func (s *SensorService) DeleteSensor(ctx context.Context, id uint) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	return translate(s.sensorRepo.Delete(ctx, id), sensorNotFound)
}

func (s *SensorService) ensureExists(ctx context.Context, id uint) error {
	exists, err := s.sensorRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(sensorNotFound)
	}
	return nil
}

func (s *SensorService) ensureTree(ctx context.Context, treeID uint) error {
	exists, err := s.treeRepo.Exists(ctx, treeID)
	if err != nil {
		return err
	}
	if !exists {
		return missingParent("El árbol", treeID)
	}
	return nil
}
