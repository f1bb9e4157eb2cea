package fetch

import (
	"context"
	"errors"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultUserAgent mimics a desktop browser; some sites refuse obviously
// programmatic agents.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36 wordbubble/1.0"

// DefaultMaxBodyBytes caps how much of a response body is read.
const DefaultMaxBodyBytes = 10 << 20

// Client wraps http.Client and resolves loose user input into a fetchable
// URL. Input without a scheme is tried as https first, then http when the
// https attempt failed at the connection level.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds each individual request attempt.
	Timeout time.Duration
	// RedirectMaxHops caps redirect following to avoid loops. Zero means default (5).
	RedirectMaxHops int
	// MaxBodyBytes caps the response body read. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// Result is an immutable successful fetch.
type Result struct {
	// URL is the fully qualified URL that ultimately succeeded.
	URL         string
	Body        []byte
	ContentType string
}

// Get resolves raw user input to a URL and performs a single bounded GET.
// Failures come back as one of the typed errors in this package.
func (c *Client) Get(ctx context.Context, raw string) (*Result, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return nil, &InvalidURLError{Input: raw}
	}

	var lastErr error
	for _, u := range candidateURLs(input) {
		res, err := c.tryOnce(ctx, u)
		if err == nil {
			return res, nil
		}
		lastErr = err
		// Only connection-class failures justify trying the other scheme;
		// a 404 over https will be a 404 over http too.
		var ce *ConnectionError
		var te *TimeoutError
		if errors.As(err, &ce) || errors.As(err, &te) {
			continue
		}
		break
	}
	return nil, lastErr
}

// candidateURLs returns the URLs to attempt, in order. Input that already
// carries an http(s) scheme is used verbatim.
func candidateURLs(input string) []string {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return []string{input}
	}
	rest := input
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	return []string{"https://" + rest, "http://" + rest}
}

func (c *Client) tryOnce(ctx context.Context, rawURL string) (*Result, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &InvalidURLError{Input: rawURL, Cause: err}
	}
	if !isHTTPScheme(u) || u.Host == "" {
		return nil, &InvalidURLError{Input: rawURL}
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &InvalidURLError{Input: rawURL, Cause: err}
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return nil, classifyTransportError(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: rawURL, Code: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	if !isHTMLContentType(contentType) {
		return nil, &ContentTypeError{URL: rawURL, ContentType: contentType}
	}

	limit := c.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, classifyTransportError(rawURL, err)
	}
	return &Result{URL: rawURL, Body: body, ContentType: contentType}, nil
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating caller's client
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{Timeout: c.Timeout, CheckRedirect: c.checkRedirectFunc()}
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		if req.URL == nil || !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

// classifyTransportError splits transport failures into timeout versus
// connection errors, the distinction that drives the scheme fallback.
func classifyTransportError(rawURL string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{URL: rawURL, Cause: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &TimeoutError{URL: rawURL, Cause: err}
	}
	return &ConnectionError{URL: rawURL, Cause: err}
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// isHTMLContentType accepts text/html and application/xhtml+xml, with or
// without charset parameters.
func isHTMLContentType(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	}
	switch mt {
	case "text/html", "application/xhtml+xml":
		return true
	}
	return false
}
