package gateway

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/usergate/usergate/internal/api/shared"
	"github.com/usergate/usergate/internal/config"
)

// Backend is a named upstream service bound to a path prefix.
type Backend struct {
	Prefix  string
	Service string
	target  *url.URL
	proxy   *httputil.ReverseProxy
}

// Dispatcher routes requests to backends by longest path-prefix match and
// produces the canned fallback response when a backend is unreachable.
// The route table is fixed at construction; no locking is needed.
type Dispatcher struct {
	backends []*Backend
	logger   *slog.Logger
}

// NewDispatcher builds a dispatcher from the configured route table. Every
// backend call is bounded by the given timeout; a timeout is handled exactly
// like a connection failure.
func NewDispatcher(routes []config.RouteConfig, timeout time.Duration, logger *slog.Logger) (*Dispatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "dispatcher"))

	d := &Dispatcher{logger: logger}
	for _, rc := range routes {
		target, err := url.Parse(rc.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid backend URL for %s: %w", rc.Service, err)
		}

		b := &Backend{
			Prefix:  rc.Prefix,
			Service: rc.Service,
			target:  target,
		}

		proxy := httputil.NewSingleHostReverseProxy(target)
		proxy.Transport = &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: timeout,
			}).DialContext,
			ResponseHeaderTimeout: timeout,
		}
		// No retry, no backoff: a single failed attempt surfaces as the 503
		// fallback immediately.
		proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Warn("backend unreachable, serving fallback",
				"service", b.Service,
				"path", r.URL.Path,
				"error", err)
			WriteFallback(w, r, b.Service)
		}
		b.proxy = proxy

		d.backends = append(d.backends, b)
	}

	// Longest prefix wins regardless of configuration order.
	sort.Slice(d.backends, func(i, j int) bool {
		return len(d.backends[i].Prefix) > len(d.backends[j].Prefix)
	})

	return d, nil
}

// Route maps a request path to a backend target.
func (d *Dispatcher) Route(path string) (*Backend, bool) {
	for _, b := range d.backends {
		if strings.HasPrefix(path, b.Prefix) {
			return b, true
		}
	}
	return nil, false
}

// ServeHTTP dispatches the request to the matched backend's reverse proxy.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	backend, ok := d.Route(r.URL.Path)
	if !ok {
		shared.RespondWithEnvelope(w, r, http.StatusNotFound, "No route for path")
		return
	}
	backend.proxy.ServeHTTP(w, r)
}
