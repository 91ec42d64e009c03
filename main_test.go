package main

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/iris-contrib/httpexpect/v2"
	"github.com/kataras/iris/v12/httptest"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vislokaties/api/config"
)

const defaultPayload = `{"waters":[],"steks":[],"rigs":[],"bathy":{"points":[],"datasets":[]},"settings":{"waterColor":"#33a1ff"}}`

func newTestApi(t *testing.T) *httpexpect.Expect {
	t.Setenv("DATABASE_URL", "sqlite:///"+filepath.Join(t.TempDir(), "vislokaties.db"))
	t.Setenv("LOG_LEVEL", "ERROR")

	dc, err := config.Preflight()
	require.NoError(t, err)
	t.Cleanup(func() { _ = dc.Close() })

	return httptest.New(t, vislokApi(dc))
}

func postDataset(test *httpexpect.Expect, body string) *httpexpect.Response {
	return test.POST("/api/db").
		WithHeader("Content-Type", "application/json").
		WithBytes([]byte(body)).
		Expect()
}

func TestGetIndex(t *testing.T) {

	test := newTestApi(t)

	body := test.GET("/").Expect().Status(http.StatusOK).Body()
	body.Contains("Vis Lokaties")
	// the shell copes with payloads lacking lists or coordinates
	body.Contains("Array.isArray(db.steks)")
	body.Contains("filter(located)")
}

func TestGetDataset_Default(t *testing.T) {

	test := newTestApi(t)

	body := test.GET("/api/db").Expect().Status(http.StatusOK).Body().Raw()
	assert.JSONEq(t, defaultPayload, body)

	// repeated reads see the same document
	again := test.GET("/api/db").Expect().Status(http.StatusOK).Body().Raw()
	assert.Equal(t, body, again)
}

func TestSaveDataset_Overwrites(t *testing.T) {

	test := newTestApi(t)

	raw := postDataset(test, `{"waters":[{"id":1}]}`).Status(http.StatusOK).Body().Raw()
	var resp map[string]string
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	assert.Equal(t, "ok", resp["status"])
	_, err := time.Parse(time.RFC3339Nano, resp["updated_at"])
	require.NoError(t, err)

	body := test.GET("/api/db").Expect().Status(http.StatusOK).Body().Raw()
	assert.JSONEq(t, `{"waters":[{"id":1}]}`, body)
}

func TestSaveDataset_RejectsNonObjects(t *testing.T) {

	test := newTestApi(t)

	for _, body := range []string{`[1,2,3]`, `"not json"`, `not json`, `42`, `null`, ``, `{"waters":`, "{\"a\":\"\xff\"}", "{\"a\":\"\xff\xfe\"}"} {
		raw := postDataset(test, body).Status(http.StatusBadRequest).Body().Raw()
		assert.JSONEq(t, `{"error":"Body moet JSON object zijn."}`, raw, "body %q", body)
	}

	// nothing was written
	stored := test.GET("/api/db").Expect().Status(http.StatusOK).Body().Raw()
	assert.JSONEq(t, defaultPayload, stored)
}

func TestSaveDataset_RequiresJSONContentType(t *testing.T) {

	test := newTestApi(t)

	raw := test.POST("/api/db").
		WithHeader("Content-Type", "text/plain").
		WithBytes([]byte(`{"a":1}`)).
		Expect().Status(http.StatusBadRequest).Body().Raw()
	assert.JSONEq(t, `{"error":"Body moet JSON object zijn."}`, raw)

	test.POST("/api/db").WithBytes([]byte(`{"a":1}`)).Expect().Status(http.StatusBadRequest)

	postDataset(test, `{"a":1}`).Status(http.StatusOK)
	test.POST("/api/db").
		WithHeader("Content-Type", "application/json; charset=utf-8").
		WithBytes([]byte(`{"b":2}`)).
		Expect().Status(http.StatusOK)

	stored := test.GET("/api/db").Expect().Status(http.StatusOK).Body().Raw()
	assert.JSONEq(t, `{"b":2}`, stored)
}

func TestSaveDataset_TimestampIncreases(t *testing.T) {

	test := newTestApi(t)

	var last time.Time
	for i := 0; i < 5; i++ {
		raw := postDataset(test, `{"rigs":[]}`).Status(http.StatusOK).Body().Raw()
		var resp map[string]string
		require.NoError(t, json.Unmarshal([]byte(raw), &resp))
		updated, err := time.Parse(time.RFC3339Nano, resp["updated_at"])
		require.NoError(t, err)
		assert.True(t, updated.After(last), "%s should be after %s", updated, last)
		last = updated
	}
}

func TestGetGeoJSON(t *testing.T) {

	test := newTestApi(t)

	postDataset(test, `{
		"steks":[{"id":"stek_1","name":"Swim","lat":52.1,"lng":5.1,"waterId":"w1"},{"id":"stek_2","name":"Far","lat":10,"lng":10}],
		"rigs":[{"id":"rig_1","name":"Left","lat":52.1001,"lng":5.1002,"stekId":"stek_1","waterId":null},{"id":"rig_2"}]
	}`).Status(http.StatusOK)

	raw := test.GET("/api/db/geojson").Expect().Status(http.StatusOK).Body().Raw()
	fc, err := geojson.UnmarshalFeatureCollection([]byte(raw))
	require.NoError(t, err)
	assert.Len(t, fc.Features, 3)

	raw = test.GET("/api/db/geojson").WithQuery("bbox", "5,52,6,53").Expect().Status(http.StatusOK).Body().Raw()
	fc, err = geojson.UnmarshalFeatureCollection([]byte(raw))
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "stek", fc.Features[0].Properties["kind"])
	assert.Equal(t, "w1", fc.Features[0].Properties["waterId"])
	assert.Equal(t, "rig", fc.Features[1].Properties["kind"])
	assert.Equal(t, "stek_1", fc.Features[1].Properties["stekId"])
	assert.NotContains(t, fc.Features[1].Properties, "waterId")

	test.GET("/api/db/geojson").WithQuery("bbox", "5,52").Expect().Status(http.StatusBadRequest)
}

func TestHealth(t *testing.T) {

	test := newTestApi(t)

	test.GET("/healthz").Expect().Status(http.StatusOK)
	test.GET("/health").Expect().Status(http.StatusOK).Body().Contains("ok")
}
