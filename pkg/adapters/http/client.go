package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
)

// DefaultTimeout bounds a single bridge request. RunFor requests add the
// wall time the requested model duration needs at the current speed.
const DefaultTimeout = 30 * time.Second

// Remote implements ports.Simulator against a bridge server.
type Remote struct {
	api     ClientWithResponsesInterface
	http    *http.Client
	timeout time.Duration
}

var _ ports.Simulator = (*Remote)(nil)

// DialOption configures a Remote.
type DialOption func(*Remote)

// WithClient sets the underlying HTTP client.
func WithClient(hc *http.Client) DialOption {
	return func(r *Remote) {
		if hc != nil {
			r.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) DialOption {
	return func(r *Remote) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Dial creates a simulator for the bridge at baseURL. No request is made;
// use Ping to check reachability.
func Dial(baseURL string, opts ...DialOption) (*Remote, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid bridge url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid bridge url %q: scheme must be http or https", baseURL)
	}
	r := &Remote{
		http:    &http.Client{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	api, err := NewClientWithResponses(baseURL,
		WithHTTPClient(r.http),
		WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
			req.Header.Set("Accept", "application/json")
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid bridge url: %w", err)
	}
	r.api = api
	return r, nil
}

// Ping checks that the bridge is reachable.
func (r *Remote) Ping(ctx context.Context) error {
	ctx, cancel := r.bound(ctx, 0)
	defer cancel()
	rsp, err := r.api.GetHealthWithResponse(ctx)
	if err != nil {
		return transportError("health", err)
	}
	_, err = payload(rsp.HTTPResponse, rsp.JSON200, nil)
	return err
}

// ActivateTimeline activates a timeline on the bridge.
func (r *Remote) ActivateTimeline(ctx context.Context, name string) (ports.Timeline, error) {
	ctx, cancel := r.bound(ctx, 0)
	defer cancel()
	rsp, err := r.api.ActivateTimelineWithResponse(ctx, name)
	if err != nil {
		return nil, transportError("activate", err)
	}
	if _, err := payload(rsp.HTTPResponse, rsp.JSON200, rsp.JSONDefault); err != nil {
		return nil, err
	}
	return &RemoteTimeline{r: r, name: name}, nil
}

// Close drops idle connections. The bridge owns the engine session.
func (r *Remote) Close() error {
	r.http.CloseIdleConnections()
	return nil
}

func (r *Remote) bound(ctx context.Context, extra time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout+extra)
}

func transportError(op string, err error) error {
	return fmt.Errorf("engine bridge %s: %w", op, err)
}

// check turns a non-2xx reply into an error.
func check(rsp *http.Response, body *ErrorResponse) error {
	if rsp.StatusCode < http.StatusBadRequest {
		return nil
	}
	if body == nil {
		return &RemoteError{Status: rsp.StatusCode, Code: CodeEngine, Msg: rsp.Status}
	}
	return decodeError(rsp.StatusCode, *body)
}

// payload checks the reply and returns its decoded success body.
func payload[T any](rsp *http.Response, v *T, body *ErrorResponse) (*T, error) {
	if err := check(rsp, body); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("engine bridge: unexpected reply %s", rsp.Status)
	}
	return v, nil
}

// RemoteTimeline implements ports.Timeline over the bridge.
type RemoteTimeline struct {
	r     *Remote
	name  string
	speed float64
}

var _ ports.Timeline = (*RemoteTimeline)(nil)

func (t *RemoteTimeline) Name() string { return t.name }

func (t *RemoteTimeline) Load(ctx context.Context, model, parameters, initialConditions string) error {
	ctx, cancel := t.r.bound(ctx, 0)
	defer cancel()
	rsp, err := t.r.api.LoadTimelineWithResponse(ctx, t.name, LoadTimelineJSONRequestBody{
		Model:             model,
		Parameters:        parameters,
		InitialConditions: initialConditions,
	})
	if err != nil {
		return transportError("load", err)
	}
	return check(rsp.HTTPResponse, rsp.JSONDefault)
}

func (t *RemoteTimeline) LoadInitialCondition(ctx context.Context, name string) error {
	ctx, cancel := t.r.bound(ctx, 0)
	defer cancel()
	rsp, err := t.r.api.LoadInitialConditionWithResponse(ctx, t.name, LoadInitialConditionJSONRequestBody{Name: name})
	if err != nil {
		return transportError("load initial condition", err)
	}
	return check(rsp.HTTPResponse, rsp.JSONDefault)
}

func (t *RemoteTimeline) Initialize(ctx context.Context) error {
	ctx, cancel := t.r.bound(ctx, 0)
	defer cancel()
	rsp, err := t.r.api.InitializeTimelineWithResponse(ctx, t.name)
	if err != nil {
		return transportError("initialize", err)
	}
	return check(rsp.HTTPResponse, rsp.JSONDefault)
}

func (t *RemoteTimeline) SetSpeed(ctx context.Context, factor float64) error {
	ctx, cancel := t.r.bound(ctx, 0)
	defer cancel()
	rsp, err := t.r.api.SetSpeedWithResponse(ctx, t.name, SetSpeedJSONRequestBody{Factor: factor})
	if err != nil {
		return transportError("set speed", err)
	}
	if err := check(rsp.HTTPResponse, rsp.JSONDefault); err != nil {
		return err
	}
	t.speed = factor
	return nil
}

func (t *RemoteTimeline) Applications(ctx context.Context) ([]string, error) {
	ctx, cancel := t.r.bound(ctx, 0)
	defer cancel()
	rsp, err := t.r.api.ListApplicationsWithResponse(ctx, t.name)
	if err != nil {
		return nil, transportError("applications", err)
	}
	out, err := payload(rsp.HTTPResponse, rsp.JSON200, rsp.JSONDefault)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (t *RemoteTimeline) BlockNames(ctx context.Context, app string) ([]string, error) {
	ctx, cancel := t.r.bound(ctx, 0)
	defer cancel()
	rsp, err := t.r.api.ListBlockNamesWithResponse(ctx, t.name, &ListBlockNamesParams{Application: app})
	if err != nil {
		return nil, transportError("block names", err)
	}
	out, err := payload(rsp.HTTPResponse, rsp.JSON200, rsp.JSONDefault)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (t *RemoteTimeline) Blocks(ctx context.Context, app string, names []string) ([]domain.Block, error) {
	ctx, cancel := t.r.bound(ctx, 0)
	defer cancel()
	body := GetBlocksJSONRequestBody{Application: app}
	if len(names) > 0 {
		body.Names = &names
	}
	rsp, err := t.r.api.GetBlocksWithResponse(ctx, t.name, body)
	if err != nil {
		return nil, transportError("blocks", err)
	}
	out, err := payload(rsp.HTTPResponse, rsp.JSON200, rsp.JSONDefault)
	if err != nil {
		return nil, err
	}
	return out.Blocks, nil
}

func (t *RemoteTimeline) GetValue(ctx context.Context, app, name, unit string) (domain.Value, error) {
	ctx, cancel := t.r.bound(ctx, 0)
	defer cancel()
	params := &GetValueParams{Application: app, Name: name}
	if unit != "" {
		params.Unit = &unit
	}
	rsp, err := t.r.api.GetValueWithResponse(ctx, t.name, params)
	if err != nil {
		return nil, transportError("get value", err)
	}
	out, err := payload(rsp.HTTPResponse, rsp.JSON200, rsp.JSONDefault)
	if err != nil {
		return nil, err
	}
	return out.Value, nil
}

func (t *RemoteTimeline) GetValues(ctx context.Context, app string, vars []domain.Variable) ([]domain.Value, error) {
	ctx, cancel := t.r.bound(ctx, 0)
	defer cancel()
	rsp, err := t.r.api.GetValuesWithResponse(ctx, t.name, GetValuesJSONRequestBody{Application: app, Variables: vars})
	if err != nil {
		return nil, transportError("get values", err)
	}
	out, err := payload(rsp.HTTPResponse, rsp.JSON200, rsp.JSONDefault)
	if err != nil {
		return nil, err
	}
	if len(out.Values) != len(vars) {
		return nil, fmt.Errorf("bridge returned %d values for %d variables", len(out.Values), len(vars))
	}
	return out.Values, nil
}

func (t *RemoteTimeline) SetValue(ctx context.Context, app, name string, value domain.Value, unit string) error {
	ctx, cancel := t.r.bound(ctx, 0)
	defer cancel()
	body := SetValueJSONRequestBody{Application: app, Name: name, Value: value}
	if unit != "" {
		body.Unit = &unit
	}
	rsp, err := t.r.api.SetValueWithResponse(ctx, t.name, body)
	if err != nil {
		return transportError("set value", err)
	}
	return check(rsp.HTTPResponse, rsp.JSONDefault)
}

func (t *RemoteTimeline) RunFor(ctx context.Context, d time.Duration) error {
	// At speed s the engine needs d/s of wall time.
	extra := d
	if t.speed > 0 {
		extra = time.Duration(float64(d) / t.speed)
	}
	ctx, cancel := t.r.bound(ctx, extra)
	defer cancel()
	rsp, err := t.r.api.RunForWithResponse(ctx, t.name, RunForJSONRequestBody{DurationNs: int64(d)})
	if err != nil {
		return transportError("run", err)
	}
	_, err = payload(rsp.HTTPResponse, rsp.JSON200, rsp.JSONDefault)
	return err
}

func (t *RemoteTimeline) ModelTime(ctx context.Context) (time.Duration, error) {
	ctx, cancel := t.r.bound(ctx, 0)
	defer cancel()
	rsp, err := t.r.api.GetModelTimeWithResponse(ctx, t.name)
	if err != nil {
		return 0, transportError("model time", err)
	}
	out, err := payload(rsp.HTTPResponse, rsp.JSON200, rsp.JSONDefault)
	if err != nil {
		return 0, err
	}
	return time.Duration(out.ModelTimeNs), nil
}
