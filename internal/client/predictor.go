package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// requestTimeout bounds every outbound prediction call. There are no retries;
// one call, one connection.
const requestTimeout = 5 * time.Second

// Response is the raw outcome of one prediction call: whatever status and
// body the backend produced, before any interpretation.
type Response struct {
	StatusCode int
	Body       []byte
}

// Poster is what the relay needs from an outbound client; satisfied by
// *Predictor and by test fakes.
type Poster interface {
	Post(ctx context.Context, endpoint string, payload any) (Response, error)
}

// Predictor posts prediction payloads to an ML backend over HTTP.
type Predictor struct {
	h *http.Client
}

// NewPredictor builds a client with the fixed per-call timeout. Keep-alives
// are disabled so each call dials its own connection, scoped to that one
// request and closed on every exit path.
func NewPredictor() *Predictor {
	return &Predictor{
		h: &http.Client{
			Timeout:   requestTimeout,
			Transport: &http.Transport{DisableKeepAlives: true},
		},
	}
}

// Post sends payload as a JSON body to endpoint and returns the raw status
// and body. A non-nil error means the exchange itself failed (marshal, dial,
// timeout, body read); backend error statuses come back in Response instead.
func (p *Predictor) Post(ctx context.Context, endpoint string, payload any) (Response, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return Response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(buf))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.h.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}
