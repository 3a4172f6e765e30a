package middleware

import (
	"net"
	"net/http"
	"sync"

	"github.com/prueba-fullstack/usuarios-backend/internal/httputil"
	"golang.org/x/time/rate"
)

// LoginLimiter throttles credential-bearing requests per client IP with a
// token bucket. The directory is tiny and read-only, so this exists purely to
// slow down password guessing on /auth/login.
type LoginLimiter struct {
	mu    sync.Mutex
	perIP map[string]*rate.Limiter
	limit rate.Limit
	burst int
}

func NewLoginLimiter(limit rate.Limit, burst int) *LoginLimiter {
	return &LoginLimiter{
		perIP: make(map[string]*rate.Limiter),
		limit: limit,
		burst: burst,
	}
}

func (l *LoginLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.perIP[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.perIP[ip] = lim
	}
	return lim
}

func (l *LoginLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !l.limiterFor(ip).Allow() {
			httputil.Error(w, "Demasiados intentos", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
