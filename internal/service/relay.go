package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"ml_relay/internal/client"
	"ml_relay/internal/logger"
	"ml_relay/internal/models"
)

// predictPath is appended to the configured base URL whenever a reading
// carries no per-request override.
const predictPath = "/predict"

// RelayError is the one error type that crosses the relay boundary. Status
// and Detail map directly onto the HTTP error response for the caller.
type RelayError struct {
	Status int
	Detail string
}

func (e *RelayError) Error() string { return e.Detail }

func connectError(endpoint string) *RelayError {
	return &RelayError{
		Status: http.StatusServiceUnavailable,
		Detail: fmt.Sprintf("Cannot connect to ML backend at %s", endpoint),
	}
}

func backendError(status int, body []byte) *RelayError {
	return &RelayError{
		Status: status,
		Detail: fmt.Sprintf("ML backend error: %s", body),
	}
}

func internalError(err error) *RelayError {
	return &RelayError{
		Status: http.StatusInternalServerError,
		Detail: err.Error(),
	}
}

type RelayService struct {
	predictor client.Poster
	baseURL   string
	log       *logger.Logger
}

func NewRelayService(predictor client.Poster, baseURL string, log *logger.Logger) *RelayService {
	return &RelayService{predictor: predictor, baseURL: baseURL, log: log}
}

// Send forwards the prediction subset of reading to the resolved endpoint
// and returns the backend's decoded JSON body verbatim. Every failure comes
// back as a *RelayError:
//   - destination unreachable  -> 503, message names the attempted URL
//   - backend non-2xx          -> same status, raw backend body embedded
//   - anything else            -> 500 with the error text
func (s *RelayService) Send(ctx context.Context, reading models.CriticalReading) (any, error) {
	endpoint := s.endpointFor(reading)
	payload := models.NewPredictionPayload(reading)

	resp, err := s.predictor.Post(ctx, endpoint, payload)
	if err != nil {
		if isConnectError(err) {
			return nil, connectError(endpoint)
		}
		return nil, internalError(err)
	}

	if s.log != nil {
		s.log.Infow("ml backend status", "status", resp.StatusCode)
		s.log.Infow("ml backend response", "body", string(resp.Body))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, backendError(resp.StatusCode, resp.Body)
	}

	var result any
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, internalError(err)
	}
	return result, nil
}

// endpointFor resolves the destination for one reading: an explicit override
// is used verbatim, otherwise the configured base (sans trailing slashes)
// plus the predict path.
func (s *RelayService) endpointFor(r models.CriticalReading) string {
	if r.TargetURL != "" {
		return r.TargetURL
	}
	return strings.TrimRight(s.baseURL, "/") + predictPath
}

// isConnectError reports whether err is a failure to establish the
// connection at all (dial refused, host unreachable, DNS), as opposed to a
// timeout or a failure mid-exchange.
func isConnectError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
