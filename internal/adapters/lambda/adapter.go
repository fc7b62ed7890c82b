package lambdaadapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Handler translates API Gateway proxy events into plain HTTP requests
// against the core API and back. It is the only hosting-specific layer;
// the routes themselves live in one place.
type Handler struct {
	app     http.Handler
	initErr error
}

// NewHandler wraps the core API. A non-nil initErr means startup failed;
// the handler then answers every event with a 500 and a diagnostic body
// instead of letting the process crash, since the platform may have no
// other failure-reporting channel.
func NewHandler(app http.Handler, initErr error) *Handler {
	return &Handler{app: app, initErr: initErr}
}

func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if h.initErr != nil {
		body, _ := json.Marshal(map[string]string{
			"error": "failed to initialize application: " + h.initErr.Error(),
		})
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers: map[string]string{
				"Content-Type":                "application/json",
				"Access-Control-Allow-Origin": "*",
			},
			Body: string(body),
		}, nil
	}

	req, err := toRequest(ctx, event)
	if err != nil {
		body, _ := json.Marshal(map[string]string{"error": "malformed event: " + err.Error()})
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       string(body),
		}, nil
	}

	rec := newRecorder()
	h.app.ServeHTTP(rec, req)

	return rec.result(), nil
}

func toRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	path := event.Path
	if path == "" {
		path = "/"
	}

	u := url.URL{Path: path}
	if len(event.QueryStringParameters) > 0 {
		q := url.Values{}
		for k, v := range event.QueryStringParameters {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, err
		}
		body = string(decoded)
	}

	method := event.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewBufferString(body))
	if err != nil {
		return nil, err
	}
	for k, v := range event.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// recorder captures the core API's response for translation back into the
// platform's response shape.
type recorder struct {
	status int
	header http.Header
	body   bytes.Buffer
}

func newRecorder() *recorder {
	return &recorder{
		status: http.StatusOK,
		header: make(http.Header),
	}
}

func (r *recorder) Header() http.Header {
	return r.header
}

func (r *recorder) Write(p []byte) (int, error) {
	return r.body.Write(p)
}

func (r *recorder) WriteHeader(status int) {
	r.status = status
}

func (r *recorder) result() events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(r.header))
	for k, vs := range r.header {
		headers[k] = strings.Join(vs, ",")
	}
	return events.APIGatewayProxyResponse{
		StatusCode: r.status,
		Headers:    headers,
		Body:       r.body.String(),
	}
}
