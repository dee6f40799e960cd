package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"ml_relay/internal/client"
	"ml_relay/internal/models"
)

type fakePoster struct {
	resp         client.Response
	err          error
	calls        int
	lastEndpoint string
	lastPayload  any
}

func (f *fakePoster) Post(ctx context.Context, endpoint string, payload any) (client.Response, error) {
	f.calls++
	f.lastEndpoint = endpoint
	f.lastPayload = payload
	return f.resp, f.err
}

func okResponse(body string) client.Response {
	return client.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

func dialError(rawurl string) error {
	return &url.Error{
		Op:  "Post",
		URL: rawurl,
		Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connect: connection refused")},
	}
}

func testReading() models.CriticalReading {
	return models.CriticalReading{
		Timestamp:   1718000000,
		MachineID:   "M-001",
		MachineName: "Conveyor Motor A",
		RPM:         1500,
		Torque:      12.5,
		LoadWeight:  50,
		MotorTemp:   60,
		Humidity:    41.5,
		IsRunning:   true,
	}
}

func TestRelayService_DefaultEndpoint_TrimsTrailingSlash(t *testing.T) {
	fp := &fakePoster{resp: okResponse(`{}`)}
	s := NewRelayService(fp, "https://host.example///", nil)

	if _, err := s.Send(context.Background(), testReading()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fp.lastEndpoint != "https://host.example/predict" {
		t.Fatalf("endpoint = %q, want %q", fp.lastEndpoint, "https://host.example/predict")
	}
}

func TestRelayService_OverrideEndpoint_UsedVerbatim(t *testing.T) {
	fp := &fakePoster{resp: okResponse(`{}`)}
	s := NewRelayService(fp, "https://host.example", nil)

	r := testReading()
	r.TargetURL = "http://other.example:9000/v2/predict"
	if _, err := s.Send(context.Background(), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fp.lastEndpoint != r.TargetURL {
		t.Fatalf("endpoint = %q, want override %q", fp.lastEndpoint, r.TargetURL)
	}
}

func TestRelayService_SendsProjectedPayload(t *testing.T) {
	fp := &fakePoster{resp: okResponse(`{}`)}
	s := NewRelayService(fp, "https://host.example", nil)

	r := testReading()
	if _, err := s.Send(context.Background(), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := fp.lastPayload.(models.PredictionPayload)
	if !ok {
		t.Fatalf("payload type = %T, want PredictionPayload", fp.lastPayload)
	}
	if p != models.NewPredictionPayload(r) {
		t.Fatalf("payload not a field-for-field copy: %+v", p)
	}
}

func TestRelayService_Success_ReturnsBackendJSONVerbatim(t *testing.T) {
	fp := &fakePoster{resp: okResponse(`{"prediction":"failure_imminent","confidence":0.93}`)}
	s := NewRelayService(fp, "https://host.example", nil)

	got, err := s.Send(context.Background(), testReading())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("result type = %T, want map", got)
	}
	if m["prediction"] != "failure_imminent" || m["confidence"] != 0.93 {
		t.Fatalf("unexpected result: %v", m)
	}
}

func TestRelayService_ConnectFailure_Maps503WithEndpoint(t *testing.T) {
	fp := &fakePoster{err: dialError("https://host.example/predict")}
	s := NewRelayService(fp, "https://host.example", nil)

	_, err := s.Send(context.Background(), testReading())
	var relayErr *RelayError
	if !errors.As(err, &relayErr) {
		t.Fatalf("expected *RelayError, got %T: %v", err, err)
	}
	if relayErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", relayErr.Status)
	}
	if !strings.Contains(relayErr.Detail, "https://host.example/predict") {
		t.Fatalf("detail %q missing attempted endpoint", relayErr.Detail)
	}
	if !strings.Contains(relayErr.Detail, "Cannot connect to ML backend") {
		t.Fatalf("unexpected detail %q", relayErr.Detail)
	}
}

func TestRelayService_BackendErrorStatus_PassedThroughWithBody(t *testing.T) {
	fp := &fakePoster{resp: client.Response{
		StatusCode: http.StatusUnprocessableEntity,
		Body:       []byte(`{"detail":"missing feature: torque"}`),
	}}
	s := NewRelayService(fp, "https://host.example", nil)

	_, err := s.Send(context.Background(), testReading())
	var relayErr *RelayError
	if !errors.As(err, &relayErr) {
		t.Fatalf("expected *RelayError, got %T: %v", err, err)
	}
	if relayErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", relayErr.Status)
	}
	if !strings.Contains(relayErr.Detail, `{"detail":"missing feature: torque"}`) {
		t.Fatalf("detail %q missing verbatim backend body", relayErr.Detail)
	}
	if !strings.HasPrefix(relayErr.Detail, "ML backend error: ") {
		t.Fatalf("unexpected detail prefix: %q", relayErr.Detail)
	}
}

func TestRelayService_MalformedBackendBody_Maps500(t *testing.T) {
	fp := &fakePoster{resp: okResponse(`not json`)}
	s := NewRelayService(fp, "https://host.example", nil)

	_, err := s.Send(context.Background(), testReading())
	var relayErr *RelayError
	if !errors.As(err, &relayErr) {
		t.Fatalf("expected *RelayError, got %T: %v", err, err)
	}
	if relayErr.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", relayErr.Status)
	}
}

func TestRelayService_OtherTransportError_Maps500(t *testing.T) {
	fp := &fakePoster{err: errors.New("context deadline exceeded")}
	s := NewRelayService(fp, "https://host.example", nil)

	_, err := s.Send(context.Background(), testReading())
	var relayErr *RelayError
	if !errors.As(err, &relayErr) {
		t.Fatalf("expected *RelayError, got %T: %v", err, err)
	}
	if relayErr.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", relayErr.Status)
	}
	if relayErr.Detail != "context deadline exceeded" {
		t.Fatalf("detail = %q", relayErr.Detail)
	}
}

// End-to-end through the real HTTP client: the backend sees only the
// projected fields at /predict.
func TestRelayService_LiveBackend_ReceivesProjection(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prediction":"healthy"}`))
	}))
	defer backend.Close()

	s := NewRelayService(client.NewPredictor(), backend.URL+"/", nil)
	got, err := s.Send(context.Background(), testReading())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/predict" {
		t.Fatalf("backend path = %q, want /predict", gotPath)
	}
	if _, ok := gotBody["loadWeight"]; ok {
		t.Fatalf("loadWeight leaked to backend: %v", gotBody)
	}
	if _, ok := gotBody["timestamp"]; ok {
		t.Fatalf("timestamp leaked to backend: %v", gotBody)
	}
	if gotBody["rpm"] != 1500.0 {
		t.Fatalf("rpm = %v, want 1500", gotBody["rpm"])
	}
	m, _ := got.(map[string]any)
	if m["prediction"] != "healthy" {
		t.Fatalf("unexpected relayed result: %v", got)
	}
}

// A freshly closed test server yields a real connection refusal, which must
// map to 503.
func TestRelayService_LiveBackendDown_Maps503(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead := backend.URL
	backend.Close()

	s := NewRelayService(client.NewPredictor(), dead, nil)
	_, err := s.Send(context.Background(), testReading())
	var relayErr *RelayError
	if !errors.As(err, &relayErr) {
		t.Fatalf("expected *RelayError, got %T: %v", err, err)
	}
	if relayErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", relayErr.Status)
	}
	if !strings.Contains(relayErr.Detail, dead+"/predict") {
		t.Fatalf("detail %q missing attempted endpoint %q", relayErr.Detail, dead+"/predict")
	}
}
