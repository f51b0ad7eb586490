package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/metrics"
)

// GuardConfig tunes the per-client request guard.
type GuardConfig struct {
	Window          time.Duration
	RateLimit       int
	FailedAuthAlert int
	MaxClients      int
	// TrustedProxies holds addresses or CIDR ranges whose X-Forwarded-For
	// header is believed.
	TrustedProxies []string
}

type clientCounts struct {
	requests int
	failures int
}

// Guard counts requests and failed logins per client address. Counts reset
// one window after a client is first seen. At most MaxClients addresses are
// tracked; the least recently seen are dropped first.
type Guard struct {
	cfg     GuardConfig
	proxies []netip.Prefix

	mu      sync.Mutex
	clients *expirable.LRU[string, *clientCounts]
}

func NewGuard(cfg GuardConfig) *Guard {
	if cfg.Window <= 0 {
		cfg.Window = RateWindow
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = RateLimitPerWindow
	}
	if cfg.FailedAuthAlert <= 0 {
		cfg.FailedAuthAlert = FailedAuthAlertFrom
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = MaxTrackedClients
	}
	return &Guard{
		cfg:     cfg,
		proxies: parseProxies(cfg.TrustedProxies),
		clients: expirable.NewLRU[string, *clientCounts](cfg.MaxClients, nil, cfg.Window),
	}
}

func parseProxies(entries []string) []netip.Prefix {
	var out []netip.Prefix
	for _, e := range entries {
		if strings.Contains(e, "/") {
			if p, err := netip.ParsePrefix(e); err == nil {
				out = append(out, p.Masked())
				continue
			}
		} else if a, err := netip.ParseAddr(e); err == nil {
			out = append(out, netip.PrefixFrom(a, a.BitLen()))
			continue
		}
		slog.Warn(LogMsgInvalidProxy, "entry", e)
	}
	return out
}

// counts returns the live counters for ip. Caller must hold the mutex.
func (g *Guard) counts(ip string) *clientCounts {
	c, ok := g.clients.Get(ip)
	if !ok {
		c = &clientCounts{}
		g.clients.Add(ip, c)
	}
	return c
}

// RecordFailedAuth counts a failed login and returns the count in the
// current window.
func (g *Guard) RecordFailedAuth(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.counts(ip)
	c.failures++
	if c.failures >= g.cfg.FailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", c.failures)
	}
	return c.failures
}

// Allow counts a request and reports whether ip is still under its limit.
func (g *Guard) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.counts(ip)
	c.requests++
	if c.requests <= g.cfg.RateLimit {
		return true
	}
	if c.requests%RateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", c.requests)
	}
	return false
}

// ClientIP returns the caller's address. X-Forwarded-For is only honoured
// when the direct peer is a trusted proxy, and then its rightmost entry wins.
func (g *Guard) ClientIP(r *http.Request) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}

	if !g.trusted(remote) {
		return remote
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

func (g *Guard) trusted(remote string) bool {
	addr, err := netip.ParseAddr(remote)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range g.proxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// presentedKey reads the key from X-API-Key or a bearer Authorization header.
func presentedKey(r *http.Request) string {
	if k := r.Header.Get(HeaderAPIKey); k != "" {
		return k
	}
	if token, ok := strings.CutPrefix(r.Header.Get(HeaderAuthorization), BearerPrefix); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// AuthMiddleware requires apiKey on every non-public path. An empty apiKey
// disables the check.
func AuthMiddleware(apiKey string, guard *Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			slog.Warn(LogMsgAuthDisabled)
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := presentedKey(r)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				ip := guard.ClientIP(r)
				failures := guard.RecordFailedAuth(ip)
				metrics.HTTPRequestsRejected.WithLabelValues(metrics.ReasonUnauthorized).Inc()

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", provided != "",
					"ip", ip,
					"failures", failures)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects clients over the guard's per-window limit.
func RateLimitMiddleware(guard *Guard) func(http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(guard.cfg.Window.Seconds()))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.Allow(guard.ClientIP(r)) {
				metrics.HTTPRequestsRejected.WithLabelValues(metrics.ReasonRateLimited).Inc()
				w.Header().Set(HeaderRetryAfter, retryAfter)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware sets the standard hardening headers. API
// responses are additionally marked uncacheable.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			if strings.HasPrefix(r.URL.Path, APIPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}
			next.ServeHTTP(w, r)
		})
	}
}
