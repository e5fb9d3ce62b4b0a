package httpclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime"
	"net/url"
	"path"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/valyala/fasthttp"
)

// DefaultTimeout bounds a request when neither the config nor the context sets a deadline.
const DefaultTimeout = 10 * time.Second

type Config struct {
	// Debug logs every finished request.
	Debug bool

	// Timeout of a single request. Zero means DefaultTimeout.
	Timeout time.Duration

	// Headers sent with every request.
	Headers map[string]string
}

// Client is a small JSON client rooted at a base URL.
type Client struct {
	baseURL *url.URL
	Config
}

func New(baseURL string, config ...Config) (*Client, error) {
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse base url")
	}
	if parsedBaseURL.Scheme == "" || parsedBaseURL.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", baseURL)
	}
	var cf Config
	if len(config) > 0 {
		cf = config[0]
	}
	if cf.Timeout <= 0 {
		cf.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL: parsedBaseURL,
		Config:  cf,
	}, nil
}

type RequestOptions struct {
	Query  url.Values
	Header map[string]string
}

type Response struct {
	URL string
	fasthttp.Response
}

// UnmarshalBody decodes a JSON body into out.
func (r *Response) UnmarshalBody(out any) error {
	body, err := r.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't uncompress body from %s", r.URL)
	}
	mediaType, _, _ := mime.ParseMediaType(string(r.Header.ContentType()))
	if mediaType != "application/json" {
		return errors.Errorf("unsupported content type %q from %s, contents: %q", mediaType, r.URL, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "can't unmarshal json body from %s, %q", r.URL, string(body))
	}
	return nil
}

// BaseURL returns the cloned base URL of the client.
func (h *Client) BaseURL() *url.URL {
	u := *h.baseURL
	return &u
}

// Get requests path relative to the base URL. The context deadline wins over the configured timeout.
func (h *Client) Get(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	return h.do(ctx, fasthttp.MethodGet, path, opts)
}

func (h *Client) do(ctx context.Context, method, reqPath string, opts RequestOptions) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	u := h.BaseURL()
	u.Path = path.Join(u.Path, reqPath)
	query := u.Query()
	for k, values := range opts.Query {
		for _, v := range values {
			query.Add(k, v)
		}
	}
	u.RawQuery = query.Encode()
	target := u.String()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(target)
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range opts.Header {
		req.Header.Set(k, v)
	}

	timeout := h.Timeout
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		timeout = time.Until(deadline)
	}

	start := time.Now()
	err := fasthttp.DoTimeout(req, resp, timeout)
	if h.Debug {
		logger.DebugContext(ctx, "Finished request",
			slog.String("package", "httpclient"),
			slog.String("method", method),
			slog.String("url", target),
			slog.Int("status_code", resp.StatusCode()),
			slog.Duration("latency", time.Since(start)),
			slog.Int("resp_content_length", len(resp.Body())),
		)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "url: %s", target)
	}

	out := &Response{URL: target}
	resp.CopyTo(&out.Response)
	return out, nil
}
