package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loosePayload struct {
	Rows     *FlexInt       `json:"filas"`
	PlotID   FlexInt        `json:"parcela_id"`
	Liters   *FlexFloat     `json:"litros"`
	Active   *FlexBool      `json:"activo"`
	Date     *FlexTime      `json:"fecha"`
	Crop     *FlexString    `json:"cultivo_id"`
	SensorID NullableID     `json:"sensor_id"`
	Comment  NullableString `json:"comentario_estado"`
}

func decode(t *testing.T, body string) (loosePayload, error) {
	t.Helper()
	var p loosePayload
	err := json.Unmarshal([]byte(body), &p)
	return p, err
}

func TestFlexInt(t *testing.T) {
	cases := map[string]int{
		`{"filas": 5}`:      5,
		`{"filas": "5"}`:    5,
		`{"filas": " 12 "}`: 12,
		`{"filas": 5.7}`:    5,
		`{"filas": "3.2"}`:  3,
	}
	for body, want := range cases {
		p, err := decode(t, body)
		require.NoError(t, err, body)
		require.NotNil(t, p.Rows, body)
		assert.Equal(t, want, p.Rows.Int(), body)
	}

	for _, body := range []string{`{"filas": "cinco"}`, `{"filas": ""}`, `{"filas": true}`} {
		_, err := decode(t, body)
		assert.Error(t, err, body)
	}

	p, err := decode(t, `{"filas": null}`)
	require.NoError(t, err)
	assert.Nil(t, p.Rows)

	p, err = decode(t, `{"parcela_id": null}`)
	require.NoError(t, err)
	assert.Zero(t, p.PlotID)
}

func TestFlexInt_OutOfRange(t *testing.T) {
	for _, body := range []string{
		`{"filas": 1e30}`,
		`{"filas": -1e30}`,
		`{"filas": "99999999999999999999"}`,
		`{"filas": 99999999999999999999}`,
		`{"filas": 9223372036854775808}`,
		`{"filas": "9.3e18"}`,
	} {
		_, err := decode(t, body)
		require.Error(t, err, body)
		assert.Contains(t, err.Error(), "out of range", body)
	}

	p, err := decode(t, `{"filas": 9223372036854775807}`)
	require.NoError(t, err)
	assert.Equal(t, FlexInt(9223372036854775807), *p.Rows)

	p, err = decode(t, `{"filas": -9.2e18}`)
	require.NoError(t, err)
	assert.Equal(t, FlexInt(-9200000000000000000), *p.Rows)
}

func TestFlexFloat(t *testing.T) {
	p, err := decode(t, `{"litros": "12.5"}`)
	require.NoError(t, err)
	assert.Equal(t, 12.5, p.Liters.Float64())

	p, err = decode(t, `{"litros": 7}`)
	require.NoError(t, err)
	assert.Equal(t, 7.0, p.Liters.Float64())

	_, err = decode(t, `{"litros": "mucho"}`)
	assert.Error(t, err)
}

func TestFlexBool(t *testing.T) {
	p, err := decode(t, `{"activo": false}`)
	require.NoError(t, err)
	require.NotNil(t, p.Active)
	assert.False(t, p.Active.Bool())

	p, err = decode(t, `{"activo": "true"}`)
	require.NoError(t, err)
	assert.True(t, p.Active.Bool())

	_, err = decode(t, `{"activo": "quizas"}`)
	assert.Error(t, err)
}

func TestFlexTime(t *testing.T) {
	p, err := decode(t, `{"fecha": "2024-03-01"}`)
	require.NoError(t, err)
	assert.True(t, p.Date.Time().Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	p, err = decode(t, `{"fecha": "2024-03-01T10:30:00-03:00"}`)
	require.NoError(t, err)
	assert.True(t, p.Date.Time().Equal(time.Date(2024, 3, 1, 13, 30, 0, 0, time.UTC)))

	_, err = decode(t, `{"fecha": "ayer"}`)
	assert.Error(t, err)
	_, err = decode(t, `{"fecha": 20240301}`)
	assert.Error(t, err)
}

func TestFlexString(t *testing.T) {
	p, err := decode(t, `{"cultivo_id": "olivo"}`)
	require.NoError(t, err)
	assert.Equal(t, "olivo", p.Crop.String())

	p, err = decode(t, `{"cultivo_id": 7}`)
	require.NoError(t, err)
	assert.Equal(t, "7", p.Crop.String())

	_, err = decode(t, `{"cultivo_id": {}}`)
	assert.Error(t, err)
}

func TestNullableID(t *testing.T) {
	p, err := decode(t, `{}`)
	require.NoError(t, err)
	assert.False(t, p.SensorID.Set)

	p, err = decode(t, `{"sensor_id": null}`)
	require.NoError(t, err)
	assert.True(t, p.SensorID.Set)
	assert.Nil(t, p.SensorID.Ptr())

	p, err = decode(t, `{"sensor_id": 0}`)
	require.NoError(t, err)
	assert.True(t, p.SensorID.Set)
	assert.Nil(t, p.SensorID.Ptr())

	p, err = decode(t, `{"sensor_id": "4"}`)
	require.NoError(t, err)
	require.NotNil(t, p.SensorID.Ptr())
	assert.Equal(t, uint(4), *p.SensorID.Ptr())

	_, err = decode(t, `{"sensor_id": -2}`)
	assert.Error(t, err)
}

func TestNullableString(t *testing.T) {
	p, err := decode(t, `{}`)
	require.NoError(t, err)
	assert.False(t, p.Comment.Set)

	p, err = decode(t, `{"comentario_estado": null}`)
	require.NoError(t, err)
	assert.True(t, p.Comment.Set)
	assert.False(t, p.Comment.Valid)
	assert.Nil(t, p.Comment.Ptr())

	p, err = decode(t, `{"comentario_estado": "hojas secas"}`)
	require.NoError(t, err)
	assert.True(t, p.Comment.Set)
	require.NotNil(t, p.Comment.Ptr())
	assert.Equal(t, "hojas secas", *p.Comment.Ptr())

	p, err = decode(t, `{"comentario_estado": ""}`)
	require.NoError(t, err)
	require.NotNil(t, p.Comment.Ptr())
	assert.Empty(t, *p.Comment.Ptr())

	_, err = decode(t, `{"comentario_estado": 12}`)
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("17")
	require.NoError(t, err)
	assert.Equal(t, uint(17), id)

	for _, raw := range []string{"", "abc", "0", "-1", "1.5"} {
		_, err := ParseID(raw)
		assert.Error(t, err, raw)
	}
}
