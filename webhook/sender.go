package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxResponseBodyChars caps how much of a destination's response we keep
const MaxResponseBodyChars = 10000

// readLimit bounds how much we pull off the wire before truncating
const readLimit = 1 << 20

// Request is a single outbound delivery attempt
type Request struct {
	URL     string
	Headers map[string]string
	Body    []byte
	Timeout time.Duration
}

/* Outcome is the classified result of one attempt
 * Response fields are nil when no response was received (timeout, network)
 */
type Outcome struct {
	Status          Status
	ResponseStatus  *int
	ResponseHeaders map[string]string
	ResponseBody    *string
	DurationMS      int64
	ErrorMessage    *string
	ErrorType       *ErrorType
}

/* Sender performs one HTTP delivery attempt
 * A transport primitive: it never retries and never persists anything
 */
type Sender interface {
	Send(ctx context.Context, req Request) Outcome
}

// HTTPSender delivers webhooks over net/http
type HTTPSender struct {
	Client *http.Client
}

// NewHTTPSender creates a sender with a shared client; per-request deadlines
// come from the Request, not the client
func NewHTTPSender() *HTTPSender {
	return &HTTPSender{
		Client: &http.Client{},
	}
}

/* Send issues one HTTP POST and classifies the result
 * Success is strictly a 2xx response; any other received status is
 * http_error, a deadline is timeout, everything else is network
 * All transport failures are captured in the Outcome, never returned
 */
func (s *HTTPSender) Send(ctx context.Context, req Request) Outcome {
	start := time.Now()

	sendCtx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(sendCtx, http.MethodPost, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return failureOutcome(Network, err.Error(), start)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || sendCtx.Err() == context.DeadlineExceeded {
			msg := fmt.Sprintf("Request timeout after %dms", req.Timeout.Milliseconds())
			return failureOutcome(Timeout, msg, start)
		}
		return failureOutcome(Network, err.Error(), start)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, readLimit))
	if err != nil {
		return failureOutcome(Network, fmt.Sprintf("reading response body: %v", err), start)
	}
	body := truncate(string(rawBody), MaxResponseBodyChars)

	headers := make(map[string]string, len(resp.Header))
	for key, values := range resp.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	duration := time.Since(start).Milliseconds()
	statusCode := resp.StatusCode

	outcome := Outcome{
		ResponseStatus:  &statusCode,
		ResponseHeaders: headers,
		ResponseBody:    &body,
		DurationMS:      duration,
	}

	if statusCode >= 200 && statusCode < 300 {
		outcome.Status = Success
		return outcome
	}

	errType := HTTPError
	msg := fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
	outcome.Status = Failed
	outcome.ErrorType = &errType
	outcome.ErrorMessage = &msg
	return outcome
}

func failureOutcome(errType ErrorType, message string, start time.Time) Outcome {
	return Outcome{
		Status:       Failed,
		DurationMS:   time.Since(start).Milliseconds(),
		ErrorMessage: &message,
		ErrorType:    &errType,
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
