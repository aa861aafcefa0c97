package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	bridge "github.com/aretw0/plantctl/pkg/adapters/http"
	"github.com/aretw0/plantctl/pkg/adapters/memory"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBridge(t *testing.T) (*httptest.Server, *bridge.Remote) {
	t.Helper()
	sim := memory.NewSimulator("testdata/DemoProject")
	srv := httptest.NewServer(bridge.NewHandler(sim, "test", nil))
	t.Cleanup(srv.Close)

	client, err := bridge.Dial(srv.URL + "/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

func openRemote(t *testing.T, client *bridge.Remote) ports.Timeline {
	t.Helper()
	ctx := context.Background()
	tl, err := client.ActivateTimeline(ctx, memory.TutorialTimeline)
	require.NoError(t, err)
	require.NoError(t, tl.Load(ctx, memory.TutorialModel, memory.TutorialModel, memory.TutorialModel))
	require.NoError(t, tl.Initialize(ctx))
	return tl
}

func TestDial_RejectsBadURL(t *testing.T) {
	_, err := bridge.Dial("ftp://example.com")
	assert.Error(t, err)
	_, err = bridge.Dial("://nope")
	assert.Error(t, err)
}

func TestBridge_Health(t *testing.T) {
	srv, client := newBridge(t)
	require.NoError(t, client.Ping(context.Background()))

	resp, err := http.Get(srv.URL + "/info")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var info bridge.Info
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "plantctl-bridge", info.App)
	assert.Equal(t, "test", info.Version)
	assert.Equal(t, "1.0.0", info.ApiVersion)
}

func TestBridge_ServesOpenAPI(t *testing.T) {
	srv, _ := newBridge(t)

	resp, err := http.Get(srv.URL + "/openapi.yaml")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/yaml", resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	doc, err := openapi3.NewLoader().LoadFromData(data)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	run := doc.Paths.Value("/timelines/{timeline}/run")
	require.NotNil(t, run)
	require.NotNil(t, run.Post)
	assert.Equal(t, "runFor", run.Post.OperationID)

	value := doc.Paths.Value("/timelines/{timeline}/value")
	require.NotNil(t, value)
	assert.NotNil(t, value.Get)
	assert.NotNil(t, value.Post)

	ui, err := http.Get(srv.URL + "/swagger")
	require.NoError(t, err)
	defer ui.Body.Close()
	assert.Equal(t, http.StatusOK, ui.StatusCode)
	assert.Equal(t, "text/html", ui.Header.Get("Content-Type"))
}

func TestGetSwagger_MatchesServedRoutes(t *testing.T) {
	swagger, err := bridge.GetSwagger()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", swagger.Info.Version)
	for _, path := range []string{
		"/health",
		"/info",
		"/timelines/{timeline}/activate",
		"/timelines/{timeline}/load",
		"/timelines/{timeline}/initial-condition",
		"/timelines/{timeline}/initialize",
		"/timelines/{timeline}/speed",
		"/timelines/{timeline}/applications",
		"/timelines/{timeline}/block-names",
		"/timelines/{timeline}/blocks",
		"/timelines/{timeline}/value",
		"/timelines/{timeline}/values",
		"/timelines/{timeline}/run",
		"/timelines/{timeline}/model-time",
	} {
		assert.NotNil(t, swagger.Paths.Value(path), path)
	}
	assert.Equal(t, 14, swagger.Paths.Len())
}

func TestBridge_ValuesAndUnits(t *testing.T) {
	ctx := context.Background()
	_, client := newBridge(t)
	tl := openRemote(t, client)
	app := memory.TutorialApplication

	apps, err := tl.Applications(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{app}, apps)

	mm, err := tl.GetValue(ctx, app, "23LT0001:MeasuredValue", "mm")
	require.NoError(t, err)
	assert.InDelta(t, 450.0, mm, 1e-9)

	closed, err := tl.GetValue(ctx, app, "25ESV0001:IsDefinedClosed", "")
	require.NoError(t, err)
	assert.Equal(t, false, closed)

	require.NoError(t, tl.SetValue(ctx, app, "23LIC002:InternalSetpoint", 500.0, "mm"))
	values, err := tl.GetValues(ctx, app, []domain.Variable{
		{Name: "23LIC002:InternalSetpoint"},
		{Name: "25ESV0001:ValveStemPosition", Unit: "%"},
	})
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.InDelta(t, 0.5, values[0], 1e-9)
	assert.InDelta(t, 100.0, values[1], 1e-9)
}

func TestBridge_ErrorMapping(t *testing.T) {
	ctx := context.Background()
	_, client := newBridge(t)
	tl := openRemote(t, client)
	app := memory.TutorialApplication

	_, err := tl.GetValue(ctx, app, "23LT9999:MeasuredValue", "")
	var unk *domain.UnknownVariableError
	require.ErrorAs(t, err, &unk)
	assert.Equal(t, "23LT9999:MeasuredValue", unk.Name)
	assert.Equal(t, app, unk.Application)
	assert.ErrorIs(t, err, domain.ErrUnknownVariable)

	err = tl.SetValue(ctx, app, "23XX0001:LocalInput", false, "")
	assert.ErrorIs(t, err, domain.ErrUnknownVariable)

	_, err = tl.GetValue(ctx, app, "23LT0001:MeasuredValue", "furlongs")
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)

	err = tl.SetValue(ctx, app, "23LT0001:MeasuredValue", 1.0, "")
	var remote *bridge.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusInternalServerError, remote.Status)
	assert.Equal(t, bridge.CodeEngine, remote.Code)

	_, err = client.ActivateTimeline(ctx, "Nope")
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusNotFound, remote.Status)
	assert.Equal(t, bridge.CodeNotFound, remote.Code)
}

func TestBridge_BadRequest(t *testing.T) {
	srv, _ := newBridge(t)

	resp, err := http.Post(srv.URL+"/timelines/Tutorial/run", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/timelines/Tutorial/value?application=x")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)

	var body bridge.ErrorResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	assert.Equal(t, bridge.CodeBadRequest, body.Code)
	assert.Contains(t, body.Error, "name")
}

func TestBridge_ClockAndBlocks(t *testing.T) {
	ctx := context.Background()
	_, client := newBridge(t)
	tl := openRemote(t, client)
	app := memory.TutorialApplication

	require.NoError(t, tl.SetSpeed(ctx, 100))
	require.NoError(t, tl.SetValue(ctx, app, "25ESV0001:LocalInput", false, ""))
	require.NoError(t, tl.RunFor(ctx, 11*time.Second))

	mt, err := tl.ModelTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11*time.Second, mt)

	closed, err := tl.GetValue(ctx, app, "25ESV0001:IsDefinedClosed", "")
	require.NoError(t, err)
	assert.Equal(t, true, closed)

	names, err := tl.BlockNames(ctx, app)
	require.NoError(t, err)
	assert.Contains(t, names, "23VA0001")

	blocks, err := tl.Blocks(ctx, app, []string{"23LT0001"})
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, domain.BlockTypeAlarmTransmitter, blocks[0].Type)

	all, err := tl.Blocks(ctx, app, nil)
	require.NoError(t, err)
	assert.Len(t, all, len(names))
}

func TestBridge_DrivesBoundProcess(t *testing.T) {
	ctx := context.Background()
	_, client := newBridge(t)
	proc := ports.Bind(openRemote(t, client), memory.TutorialApplication)

	require.NoError(t, proc.SetValue(ctx, "23KA0001_m:LocalInput", false, ""))
	require.NoError(t, proc.RunFor(ctx, 15*time.Second))

	speed, err := proc.Value(ctx, "23KA0001_m:Speed[0]", "")
	require.NoError(t, err)
	assert.Less(t, speed.(float64), 10.0)
}
