package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/agro-riego/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestNewPlotResponse_EmptyCollectionsAreArrays(t *testing.T) {
	body := toMap(t, NewPlotResponse(models.Plot{ID: 1, Name: "Norte", Rows: 5, Columns: 5}))

	for _, key := range []string{"arboles", "horariosRiego", "historialRiego", "alertas"} {
		value, ok := body[key]
		require.True(t, ok, key)
		assert.Equal(t, []interface{}{}, value, key)
	}
	assert.Equal(t, "Norte", body["nombre"])
	assert.EqualValues(t, 5, body["filas"])
}

func TestNewTreeResponse_NestedPlotHasNoCollections(t *testing.T) {
	tree := models.Tree{
		ID:     3,
		PlotID: 1,
		Row:    1,
		Column: 2,
		Status: "Saludable",
		Plot: &models.Plot{
			ID:    1,
			Name:  "Norte",
			Trees: []models.Tree{{ID: 3}},
		},
	}

	body := toMap(t, NewTreeResponse(tree))
	plot, ok := body["parcela"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Norte", plot["nombre"])
	assert.NotContains(t, plot, "arboles")
	assert.Equal(t, []interface{}{}, body["sensores"])
	assert.Nil(t, body["comentario_estado"])
}

func TestNewAlertResponse_Chains(t *testing.T) {
	plotID, treeID, sensorID := uint(1), uint(2), uint(3)
	plot := &models.Plot{ID: plotID, Name: "Sur"}
	tree := &models.Tree{ID: treeID, PlotID: plotID, Plot: plot}
	alert := models.Alert{
		ID:        9,
		Type:      "Humedad baja",
		Severity:  "Alta",
		SensorID:  &sensorID,
		TreeID:    &treeID,
		PlotID:    &plotID,
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Sensor:    &models.Sensor{ID: sensorID, TreeID: treeID, Type: "Humedad", Tree: tree},
		Tree:      tree,
		Plot:      plot,
	}

	response := NewAlertResponse(alert)
	require.NotNil(t, response.Sensor)
	require.NotNil(t, response.Sensor.Tree)
	require.NotNil(t, response.Sensor.Tree.Plot)
	assert.Equal(t, "Sur", response.Sensor.Tree.Plot.Name)
	require.NotNil(t, response.Tree)
	assert.Equal(t, plotID, response.Tree.Plot.ID)

	body := toMap(t, response)
	assert.EqualValues(t, 3, body["sensor_id"])
	assert.Equal(t, false, body["resuelta"])
}

func TestNewAlertResponse_NullReferences(t *testing.T) {
	body := toMap(t, NewAlertResponse(models.Alert{ID: 1, Type: "Riego", Message: "x", Severity: "Baja"}))

	for _, key := range []string{"sensor", "arbol", "parcela", "sensor_id", "arbol_id", "parcela_id"} {
		value, ok := body[key]
		require.True(t, ok, key)
		assert.Nil(t, value, key)
	}
}

func TestNewScheduleSummary_NilDaysRenderAsArray(t *testing.T) {
	body := toMap(t, NewScheduleResponse(models.WateringSchedule{ID: 1, PlotID: 1, Active: true}))

	assert.Equal(t, []interface{}{}, body["dias_semana"])
	assert.Nil(t, body["parcela"])
	assert.Equal(t, true, body["activo"])
}

func TestListResponses_EmptyInputIsEmptyArray(t *testing.T) {
	raw, err := json.Marshal(NewAlertListResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))

	raw, err = json.Marshal(NewHistoryListResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}
