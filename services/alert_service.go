package services

import (
	"context"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/repositories"
	"github.com/agro-riego/api/utils"
	"gorm.io/gorm"
)

const alertNotFound = "Alerta no encontrada"

// AlertService handles business logic for alerts
type AlertService struct {
	alertRepo  *repositories.AlertRepository
	sensorRepo *repositories.SensorRepository
	treeRepo   *repositories.TreeRepository
	plotRepo   *repositories.PlotRepository
}

// NewAlertService creates a new alert service instance
func NewAlertService(db *gorm.DB) *AlertService {
	return &AlertService{
		alertRepo:  repositories.NewAlertRepository(db),
		sensorRepo: repositories.NewSensorRepository(db),
		treeRepo:   repositories.NewTreeRepository(db),
		plotRepo:   repositories.NewPlotRepository(db),
	}
}

// ListAlerts retrieves all alerts, most recent first
func (s *AlertService) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	alerts, err := s.alertRepo.FindAll(ctx)
	return alerts, translate(err, alertNotFound)
}

// GetAlert retrieves an alert by ID
func (s *AlertService) GetAlert(ctx context.Context, id uint) (models.Alert, error) {
	alert, err := s.alertRepo.FindByID(ctx, id)
	return alert, translate(err, alertNotFound)
}

// ListAlertsByType retrieves the alerts of a type
func (s *AlertService) ListAlertsByType(ctx context.Context, alertType string) ([]models.Alert, error) {
	alerts, err := s.alertRepo.FindByType(ctx, alertType)
	return alerts, translate(err, alertNotFound)
}

// ListAlertsBySeverity retrieves the alerts of a severity
func (s *AlertService) ListAlertsBySeverity(ctx context.Context, severity string) ([]models.Alert, error) {
	alerts, err := s.alertRepo.FindBySeverity(ctx, severity)
	return alerts, translate(err, alertNotFound)
}

// ListAlertsByPlot retrieves the alerts referencing a plot
func (s *AlertService) ListAlertsByPlot(ctx context.Context, plotID uint) ([]models.Alert, error) {
	alerts, err := s.alertRepo.FindByPlotID(ctx, plotID)
	return alerts, translate(err, alertNotFound)
}

// ListAlertsByTree retrieves the alerts referencing a tree
func (s *AlertService) ListAlertsByTree(ctx context.Context, treeID uint) ([]models.Alert, error) {
	alerts, err := s.alertRepo.FindByTreeID(ctx, treeID)
	return alerts, translate(err, alertNotFound)
}

// ListUnresolvedAlerts retrieves the alerts not yet resolved
func (s *AlertService) ListUnresolvedAlerts(ctx context.Context) ([]models.Alert, error) {
	alerts, err := s.alertRepo.FindByResolved(ctx, false)
	return alerts, translate(err, alertNotFound)
}

// CreateAlert stores a new alert. Alerts start unresolved and stamped
// with the current time unless told otherwise.
func (s *AlertService) CreateAlert(ctx context.Context, req dto.CreateAlertRequest) (models.Alert, error) {
	texts := make([]string, 0, 3)
	for _, f := range []struct{ name, value string }{
		{"tipo", req.Type},
		{"mensaje", req.Message},
		{"severidad", req.Severity},
	} {
		text, err := nonBlank(f.name, f.value)
		if err != nil {
			return models.Alert{}, err
		}
		texts = append(texts, text)
	}
	if err := s.ensureReferences(ctx, req.SensorID, req.TreeID, req.PlotID); err != nil {
		return models.Alert{}, err
	}

	alert := models.Alert{
		Type:      texts[0],
		Message:   texts[1],
		Severity:  texts[2],
		SensorID:  req.SensorID.Ptr(),
		TreeID:    req.TreeID.Ptr(),
		PlotID:    req.PlotID.Ptr(),
		Timestamp: now(),
	}
	if req.Resolved != nil {
		alert.Resolved = req.Resolved.Bool()
	}
	if req.Timestamp != nil {
		alert.Timestamp = utcTime(*req.Timestamp)
	}

	created, err := s.alertRepo.Create(ctx, alert)
	if err != nil {
		return models.Alert{}, translate(err, alertNotFound)
	}
	return s.GetAlert(ctx, created.ID)
}

// UpdateAlert applies the supplied fields to an existing alert. A reference
// sent as null (or 0) is cleared; an omitted one is left unchanged.
func (s *AlertService) UpdateAlert(ctx context.Context, id uint, req dto.UpdateAlertRequest) (models.Alert, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return models.Alert{}, err
	}
	if err := s.ensureReferences(ctx, req.SensorID, req.TreeID, req.PlotID); err != nil {
		return models.Alert{}, err
	}

	changes := map[string]interface{}{}
	for _, f := range []struct {
		column string
		value  *string
	}{
		{"tipo", req.Type},
		{"mensaje", req.Message},
		{"severidad", req.Severity},
	} {
		if f.value == nil {
			continue
		}
		text, err := nonBlank(f.column, *f.value)
		if err != nil {
			return models.Alert{}, err
		}
		changes[f.column] = text
	}
	for column, ref := range map[string]utils.NullableID{"sensor_id": req.SensorID, "arbol_id": req.TreeID, "parcela_id": req.PlotID} {
		if ref.Set {
			changes[column] = ref.Ptr()
		}
	}
	if req.Resolved != nil {
		changes["resuelta"] = req.Resolved.Bool()
	}
	if req.Timestamp != nil {
		changes["fecha_hora"] = utcTime(*req.Timestamp)
	}

	if len(changes) > 0 {
		if err := s.alertRepo.Update(ctx, id, changes); err != nil {
			return models.Alert{}, translate(err, alertNotFound)
		}
	}
	return s.GetAlert(ctx, id)
}

// ResolveAlert sets only the resolved flag of an alert. An empty body resolves it.
func (s *AlertService) ResolveAlert(ctx context.Context, id uint, req dto.ResolveAlertRequest) (models.Alert, error) {
	resolved := true
	if req.Resolved != nil {
		resolved = req.Resolved.Bool()
	}
	if err := s.ensureExists(ctx, id); err != nil {
		return models.Alert{}, err
	}
	if err := s.alertRepo.SetResolved(ctx, id, resolved); err != nil {
		return models.Alert{}, translate(err, alertNotFound)
	}
	return s.GetAlert(ctx, id)
}

// DeleteAlert removes an alert
func (s *AlertService) DeleteAlert(ctx context.Context, id uint) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	return translate(s.alertRepo.Delete(ctx, id), alertNotFound)
}

func (s *AlertService) ensureExists(ctx context.Context, id uint) error {
	exists, err := s.alertRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(alertNotFound)
	}
	return nil
}

// ensureReferences checks that every non-null reference points at an existing row
func (s *AlertService) ensureReferences(ctx context.Context, sensorID, treeID, plotID utils.NullableID) error {
	checks := []struct {
		ref    utils.NullableID
		entity string
		exists func(context.Context, uint) (bool, error)
	}{
		{sensorID, "El sensor", s.sensorRepo.Exists},
		{treeID, "El árbol", s.treeRepo.Exists},
		{plotID, "La parcela", s.plotRepo.Exists},
	}
	for _, c := range checks {
		if !c.ref.Valid {
			continue
		}
		exists, err := c.exists(ctx, c.ref.Value)
		if err != nil {
			return err
		}
		if !exists {
			return missingParent(c.entity, c.ref.Value)
		}
	}
	return nil
}
