package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agro-riego/api/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	t      *testing.T
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := database.Connect(database.DriverSQLite, dsn, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, zap.NewNop()))
	t.Cleanup(func() { database.Close(db) })

	return &testAPI{t: t, router: SetupRouter(db, zap.NewNop())}
}

// do sends a request and decodes the JSON response into a generic value
func (a *testAPI) do(method, path, body string) (int, interface{}) {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out interface{}
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func (a *testAPI) object(method, path, body string, wantStatus int) map[string]interface{} {
	a.t.Helper()
	status, out := a.do(method, path, body)
	require.Equal(a.t, wantStatus, status, "%s %s -> %v", method, path, out)
	obj, ok := out.(map[string]interface{})
	require.True(a.t, ok, "expected object, got %v", out)
	return obj
}

func (a *testAPI) list(path string) []interface{} {
	a.t.Helper()
	status, out := a.do(http.MethodGet, path, "")
	require.Equal(a.t, http.StatusOK, status, "GET %s -> %v", path, out)
	items, ok := out.([]interface{})
	require.True(a.t, ok, "expected array, got %v", out)
	return items
}

func id(obj map[string]interface{}) int {
	return int(obj["id"].(float64))
}

func (a *testAPI) createPlot(name string) map[string]interface{} {
	return a.object(http.MethodPost, "/api/parcelas",
		fmt.Sprintf(`{"nombre": %q, "ubicacion": "Mendoza", "filas": 5, "columnas": "5", "fecha_siembra": "2024-03-01", "cultivo_id": "olivo", "epoca_id": "2024"}`, name),
		http.StatusCreated)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/", "/api/health"} {
		body := api.object(http.MethodGet, path, "", http.StatusOK)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "connected", body["database"])
	}
}

func TestCreatedPlotHasEmptyCollections(t *testing.T) {
	api := newTestAPI(t)
	plot := api.createPlot("Norte")

	fetched := api.object(http.MethodGet, fmt.Sprintf("/api/parcelas/%d", id(plot)), "", http.StatusOK)
	assert.Equal(t, "Norte", fetched["nombre"])
	assert.EqualValues(t, 5, fetched["columnas"])
	for _, key := range []string{"arboles", "horariosRiego", "historialRiego", "alertas"} {
		assert.Equal(t, []interface{}{}, fetched[key], key)
	}

	assert.Len(t, api.list("/api/parcelas/cultivo/olivo"), 1)
	assert.Len(t, api.list("/api/parcelas/epoca/2024"), 1)
	assert.Empty(t, api.list("/api/parcelas/epoca/2030"))
}

func TestNotFoundAndMalformedIDs(t *testing.T) {
	api := newTestAPI(t)

	cases := map[string]string{
		"/api/parcelas/99":  "Parcela no encontrada",
		"/api/arboles/99":   "Árbol no encontrado",
		"/api/sensores/99":  "Sensor no encontrado",
		"/api/horarios/99":  "Horario de riego no encontrado",
		"/api/historial/99": "Registro de historial no encontrado",
		"/api/alertas/99":   "Alerta no encontrada",
	}
	for path, message := range cases {
		body := api.object(http.MethodGet, path, "", http.StatusNotFound)
		assert.Equal(t, message, body["error"], path)
	}

	api.object(http.MethodGet, "/api/arboles/abc", "", http.StatusBadRequest)
	api.object(http.MethodDelete, "/api/parcelas/99", "", http.StatusNotFound)
	api.object(http.MethodPut, "/api/alertas/99", `{"mensaje": "x"}`, http.StatusNotFound)
}

func TestValidationAndConstraintErrors(t *testing.T) {
	api := newTestAPI(t)

	body := api.object(http.MethodPost, "/api/parcelas", `{"nombre": "Sin filas"}`, http.StatusBadRequest)
	assert.Contains(t, body["error"], "filas")

	api.object(http.MethodPost, "/api/parcelas", `{"nombre": "X", "filas": "muchas", "columnas": 1, "fecha_siembra": "2024-01-01"}`, http.StatusBadRequest)

	body = api.object(http.MethodPost, "/api/arboles", `{"parcela_id": 12345, "fila": 1, "columna": 1}`, http.StatusInternalServerError)
	assert.Contains(t, body["error"], "12345")
}

func TestBindingRules(t *testing.T) {
	api := newTestAPI(t)

	cases := []struct {
		path    string
		body    string
		message string
	}{
		{"/api/parcelas", `{"nombre": "Sin filas"}`, "el campo filas es obligatorio"},
		{"/api/parcelas", `{"filas": 1, "columnas": 1, "fecha_siembra": "2024-01-01"}`, "el campo nombre es obligatorio"},
		{"/api/parcelas", `{"nombre": "A", "filas": 1, "columnas": 1}`, "el campo fecha_siembra es obligatorio"},
		{"/api/arboles", `{"parcela_id": 0, "fila": 1, "columna": 1}`, "el campo parcela_id es obligatorio"},
		{"/api/sensores", `{"arbol_id": -1, "tipo": "Humedad"}`, "el campo arbol_id debe ser un id válido"},
		{"/api/horarios", `{"dias_semana": ["Lunes"]}`, "el campo parcela_id es obligatorio"},
		{"/api/historial", `{"parcela_id": 1}`, "el campo litros_recomendados es obligatorio"},
		{"/api/alertas", `{"tipo": "Riego", "mensaje": "x"}`, "el campo severidad es obligatorio"},
	}
	for _, tc := range cases {
		body := api.object(http.MethodPost, tc.path, tc.body, http.StatusBadRequest)
		assert.Equal(t, tc.message, body["error"], tc.body)
	}

	body := api.object(http.MethodPost, "/api/parcelas", `{"nombre": " ", "filas": 1, "columnas": 1, "fecha_siembra": "2024-01-01"}`, http.StatusBadRequest)
	assert.Equal(t, "el campo nombre no puede estar vacío", body["error"])

	plot := api.createPlot("Limites")
	body = api.object(http.MethodPut, fmt.Sprintf("/api/parcelas/%d", id(plot)), `{"filas": 1e30}`, http.StatusBadRequest)
	assert.Contains(t, body["error"], "out of range")
	api.object(http.MethodPut, fmt.Sprintf("/api/parcelas/%d", id(plot)), `{"columnas": "99999999999999999999"}`, http.StatusBadRequest)
	api.object(http.MethodPut, "/api/arboles/1", `{"parcela_id": 0}`, http.StatusBadRequest)
}

func TestNullClearsOptionalText(t *testing.T) {
	api := newTestAPI(t)
	plot := api.createPlot("Nulos")

	tree := api.object(http.MethodPost, "/api/arboles",
		fmt.Sprintf(`{"parcela_id": %d, "fila": 1, "columna": 1, "estado": "Enfermo", "comentario_estado": "Hongos"}`, id(plot)),
		http.StatusCreated)
	treePath := fmt.Sprintf("/api/arboles/%d", id(tree))

	kept := api.object(http.MethodPut, treePath, `{"fila": 4}`, http.StatusOK)
	assert.Equal(t, "Hongos", kept["comentario_estado"])

	cleared := api.object(http.MethodPut, treePath, `{"comentario_estado": null}`, http.StatusOK)
	assert.Nil(t, cleared["comentario_estado"])
	assert.Contains(t, cleared, "comentario_estado")
	assert.Equal(t, "Enfermo", cleared["estado"])
	assert.EqualValues(t, 4, cleared["fila"])

	sensor := api.object(http.MethodPost, "/api/sensores",
		fmt.Sprintf(`{"arbol_id": %d, "tipo": "Humedad", "firebase_path": "lecturas/7"}`, id(tree)),
		http.StatusCreated)
	sensorPath := fmt.Sprintf("/api/sensores/%d", id(sensor))

	cleared = api.object(http.MethodPut, sensorPath, `{"firebase_path": null}`, http.StatusOK)
	assert.Nil(t, cleared["firebase_path"])
	assert.Equal(t, "Humedad", cleared["tipo"])

	fetched := api.object(http.MethodGet, sensorPath, "", http.StatusOK)
	assert.Nil(t, fetched["firebase_path"])

	api.object(http.MethodPut, sensorPath, `{"firebase_path": 12}`, http.StatusBadRequest)
}

func TestScheduleToggleRoundTrip(t *testing.T) {
	api := newTestAPI(t)
	plot := api.createPlot("Riego")

	schedule := api.object(http.MethodPost, "/api/horarios",
		fmt.Sprintf(`{"parcela_id": %d, "dias_semana": ["Lunes", "Viernes", "Lunes"], "hora_riego": "06:30"}`, id(plot)),
		http.StatusCreated)
	assert.Equal(t, true, schedule["activo"])
	assert.Equal(t, []interface{}{"Lunes", "Viernes"}, schedule["dias_semana"])
	require.NotNil(t, schedule["parcela"])

	path := fmt.Sprintf("/api/horarios/%d", id(schedule))
	off := api.object(http.MethodPatch, path+"/toggle", `{"activo": false}`, http.StatusOK)
	assert.Equal(t, false, off["activo"])
	assert.Empty(t, api.list("/api/horarios/activos"))

	on := api.object(http.MethodPatch, path+"/toggle", `{"activo": true}`, http.StatusOK)
	assert.Equal(t, true, on["activo"])

	fetched := api.object(http.MethodGet, path, "", http.StatusOK)
	assert.Equal(t, true, fetched["activo"])
	assert.Equal(t, "06:30", fetched["hora_riego"])
	assert.Len(t, api.list("/api/horarios/activos"), 1)
	assert.Len(t, api.list(fmt.Sprintf("/api/horarios/parcela/%d", id(plot))), 1)

	body := api.object(http.MethodPatch, path+"/toggle", `{}`, http.StatusBadRequest)
	assert.Equal(t, "el campo activo es obligatorio", body["error"])
	api.object(http.MethodPatch, path+"/toggle", "", http.StatusBadRequest)
	api.object(http.MethodPatch, "/api/horarios/999/toggle", `{"activo": true}`, http.StatusNotFound)
}

func TestHistoryDateRange(t *testing.T) {
	api := newTestAPI(t)
	plot := api.createPlot("Historial")

	for _, when := range []string{"2024-01-10T08:00:00Z", "2024-02-10T08:00:00Z", "2024-03-10T08:00:00Z"} {
		api.object(http.MethodPost, "/api/historial",
			fmt.Sprintf(`{"parcela_id": %d, "litros_recomendados": 15, "fecha_hora_riego": %q, "estado": "Completado"}`, id(plot), when),
			http.StatusCreated)
	}

	all := api.list("/api/historial")
	require.Len(t, all, 3)
	assert.Equal(t, "2024-03-10T08:00:00Z", all[0].(map[string]interface{})["fecha_hora_riego"])

	february := api.list("/api/historial/fecha?fechaInicio=2024-02-01&fechaFin=2024-02-29")
	require.Len(t, february, 1)

	assert.Len(t, api.list("/api/historial/fecha?fechaInicio=2024-02-01"), 3)
	api.object(http.MethodGet, "/api/historial/fecha?fechaInicio=ayer&fechaFin=hoy", "", http.StatusBadRequest)

	assert.Len(t, api.list("/api/historial/estado/Completado"), 3)
	assert.Len(t, api.list(fmt.Sprintf("/api/historial/parcela/%d", id(plot))), 3)
}

func TestEndToEndAlertChain(t *testing.T) {
	api := newTestAPI(t)
	plot := api.createPlot("Finca")

	tree := api.object(http.MethodPost, "/api/arboles",
		fmt.Sprintf(`{"parcela_id": "%d", "fila": 1, "columna": 1, "estado": "Saludable"}`, id(plot)),
		http.StatusCreated)
	sensor := api.object(http.MethodPost, "/api/sensores",
		fmt.Sprintf(`{"arbol_id": %d, "tipo": "Humedad", "firebase_path": "lecturas/1"}`, id(tree)),
		http.StatusCreated)
	alert := api.object(http.MethodPost, "/api/alertas",
		fmt.Sprintf(`{"tipo": "Humedad baja", "mensaje": "Regar pronto", "severidad": "Alta", "sensor_id": %d, "arbol_id": %d, "parcela_id": %d}`,
			id(sensor), id(tree), id(plot)),
		http.StatusCreated)
	assert.Equal(t, false, alert["resuelta"])

	fetched := api.object(http.MethodGet, fmt.Sprintf("/api/alertas/%d", id(alert)), "", http.StatusOK)
	sensorObj := fetched["sensor"].(map[string]interface{})
	treeObj := sensorObj["arbol"].(map[string]interface{})
	plotObj := treeObj["parcela"].(map[string]interface{})
	assert.Equal(t, "Finca", plotObj["nombre"])
	assert.Equal(t, "Saludable", fetched["arbol"].(map[string]interface{})["estado"])
	assert.Equal(t, "Finca", fetched["parcela"].(map[string]interface{})["nombre"])

	unresolved := api.list("/api/alertas/no-resueltas")
	require.Len(t, unresolved, 1)

	resolved := api.object(http.MethodPatch, fmt.Sprintf("/api/alertas/%d/resolver", id(alert)), "", http.StatusOK)
	assert.Equal(t, true, resolved["resuelta"])
	assert.Empty(t, api.list("/api/alertas/no-resueltas"))

	assert.Len(t, api.list("/api/alertas/tipo/Humedad%20baja"), 1)
	assert.Len(t, api.list("/api/alertas/severidad/Alta"), 1)
	assert.Len(t, api.list(fmt.Sprintf("/api/alertas/parcela/%d", id(plot))), 1)
	assert.Len(t, api.list(fmt.Sprintf("/api/alertas/arbol/%d", id(tree))), 1)
	assert.Len(t, api.list(fmt.Sprintf("/api/sensores/arbol/%d", id(tree))), 1)
	assert.Len(t, api.list("/api/sensores/tipo/Humedad"), 1)
	assert.Len(t, api.list(fmt.Sprintf("/api/arboles/parcela/%d", id(plot))), 1)

	treeDetail := api.object(http.MethodGet, fmt.Sprintf("/api/arboles/%d", id(tree)), "", http.StatusOK)
	assert.Len(t, treeDetail["sensores"], 1)
	assert.Len(t, treeDetail["alertas"], 1)
}

func TestDeletePlotCascades(t *testing.T) {
	api := newTestAPI(t)
	plot := api.createPlot("Borrar")

	tree := api.object(http.MethodPost, "/api/arboles", fmt.Sprintf(`{"parcela_id": %d, "fila": 2, "columna": 2}`, id(plot)), http.StatusCreated)
	api.object(http.MethodPost, "/api/sensores", fmt.Sprintf(`{"arbol_id": %d, "tipo": "Temperatura"}`, id(tree)), http.StatusCreated)
	api.object(http.MethodPost, "/api/horarios", fmt.Sprintf(`{"parcela_id": %d}`, id(plot)), http.StatusCreated)
	api.object(http.MethodPost, "/api/historial", fmt.Sprintf(`{"parcela_id": %d, "litros_recomendados": 3}`, id(plot)), http.StatusCreated)
	alert := api.object(http.MethodPost, "/api/alertas",
		fmt.Sprintf(`{"tipo": "Plaga", "mensaje": "Revisar", "severidad": "Media", "parcela_id": %d}`, id(plot)), http.StatusCreated)

	message := api.object(http.MethodDelete, fmt.Sprintf("/api/parcelas/%d", id(plot)), "", http.StatusOK)
	assert.Equal(t, "Parcela eliminada correctamente", message["message"])

	assert.Empty(t, api.list("/api/arboles"))
	assert.Empty(t, api.list("/api/sensores"))
	assert.Empty(t, api.list("/api/horarios"))
	assert.Empty(t, api.list("/api/historial"))

	kept := api.object(http.MethodGet, fmt.Sprintf("/api/alertas/%d", id(alert)), "", http.StatusOK)
	assert.Nil(t, kept["parcela_id"])
	assert.Nil(t, kept["parcela"])
}

func TestUpdateAndDeleteMessages(t *testing.T) {
	api := newTestAPI(t)
	plot := api.createPlot("Editar")

	updated := api.object(http.MethodPut, fmt.Sprintf("/api/parcelas/%d", id(plot)), `{"ubicacion": "San Juan"}`, http.StatusOK)
	assert.Equal(t, "San Juan", updated["ubicacion"])
	assert.Equal(t, "Editar", updated["nombre"])

	tree := api.object(http.MethodPost, "/api/arboles", fmt.Sprintf(`{"parcela_id": %d, "fila": 1, "columna": 3}`, id(plot)), http.StatusCreated)
	sensor := api.object(http.MethodPost, "/api/sensores", fmt.Sprintf(`{"arbol_id": %d, "tipo": "Humedad"}`, id(tree)), http.StatusCreated)
	schedule := api.object(http.MethodPost, "/api/horarios", fmt.Sprintf(`{"parcela_id": %d}`, id(plot)), http.StatusCreated)
	record := api.object(http.MethodPost, "/api/historial", fmt.Sprintf(`{"parcela_id": %d, "litros_recomendados": 1}`, id(plot)), http.StatusCreated)
	alert := api.object(http.MethodPost, "/api/alertas", `{"tipo": "Riego", "mensaje": "x", "severidad": "Baja"}`, http.StatusCreated)

	deletions := []struct {
		path    string
		message string
	}{
		{fmt.Sprintf("/api/alertas/%d", id(alert)), "Alerta eliminada correctamente"},
		{fmt.Sprintf("/api/historial/%d", id(record)), "Registro de historial eliminado correctamente"},
		{fmt.Sprintf("/api/horarios/%d", id(schedule)), "Horario de riego eliminado correctamente"},
		{fmt.Sprintf("/api/sensores/%d", id(sensor)), "Sensor eliminado correctamente"},
		{fmt.Sprintf("/api/arboles/%d", id(tree)), "Árbol eliminado correctamente"},
		{fmt.Sprintf("/api/parcelas/%d", id(plot)), "Parcela eliminada correctamente"},
	}
	for _, d := range deletions {
		body := api.object(http.MethodDelete, d.path, "", http.StatusOK)
		assert.Equal(t, d.message, body["message"], d.path)
	}
}

func TestDiagnostics(t *testing.T) {
	api := newTestAPI(t)
	plot := api.createPlot("Diag")
	api.createPlot("Vacia")
	api.object(http.MethodPost, "/api/arboles", fmt.Sprintf(`{"parcela_id": %d, "fila": 1, "columna": 1, "estado": "Saludable"}`, id(plot)), http.StatusCreated)

	report := api.object(http.MethodGet, "/api/diagnostico", "", http.StatusOK)
	counts := report["registros"].(map[string]interface{})
	stats := report["estadisticas"].(map[string]interface{})
	assert.EqualValues(t, 2, counts["parcelas"])
	assert.EqualValues(t, 1, counts["arboles"])
	assert.EqualValues(t, 1, stats["parcelasSinArboles"])
	assert.EqualValues(t, 1, stats["arbolesSaludables"])

	relations := report["relaciones"].(map[string]interface{})
	plots := relations["parcelas"].([]interface{})
	require.Len(t, plots, 2)
	first := plots[0].(map[string]interface{})
	assert.Equal(t, "Diag", first["nombre"])
	assert.EqualValues(t, 1, first["arboles"])
	assert.EqualValues(t, 0, first["alertas"])
	trees := relations["arboles"].([]interface{})
	require.Len(t, trees, 1)
	assert.Equal(t, "Diag", trees[0].(map[string]interface{})["parcela"])
}
