package utils

import (
	"net/http"
	"net/netip"
	"net/url"
	"strings"
)

// CORSPolicy decides which browser origins may call the configuration API.
// Local-network origins are always trusted; public origins only when listed.
type CORSPolicy struct {
	extra map[string]struct{}
}

// NewCORSPolicy builds a policy trusting the given public origins in addition
// to local-network ones. Entries are compared as lowercase scheme://host[:port].
func NewCORSPolicy(extraOrigins []string) CORSPolicy {
	extra := make(map[string]struct{}, len(extraOrigins))
	for _, origin := range extraOrigins {
		if key, ok := originKey(origin); ok {
			extra[key] = struct{}{}
		}
	}
	return CORSPolicy{extra: extra}
}

// Allows reports whether origin should receive CORS headers.
func (p CORSPolicy) Allows(origin string) bool {
	key, ok := originKey(origin)
	if !ok {
		return false
	}
	if _, listed := p.extra[key]; listed {
		return true
	}
	return IsLocalNetworkOrigin(origin)
}

// Middleware sets CORS headers for allowed origins and answers preflights.
func (p CORSPolicy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && p.Allows(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// IsLocalNetworkOrigin allows localhost, .local mDNS names, single-label LAN
// hostnames and loopback, private or link-local IPs.
func IsLocalNetworkOrigin(origin string) bool {
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return false
	}

	hostname := strings.ToLower(parsed.Hostname())
	switch {
	case hostname == "localhost",
		strings.HasSuffix(hostname, ".local"):
		return true
	}

	if addr, err := netip.ParseAddr(hostname); err == nil {
		return addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast()
	}

	return !strings.Contains(hostname, ".") && !strings.Contains(hostname, ":")
}

func originKey(origin string) (string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(origin))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", false
	}
	return strings.ToLower(parsed.Scheme + "://" + parsed.Host), true
}
