package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimiter enforces a fixed-window per-client-IP request budget.
// Expired windows are recycled on the client's next request, and at
// most once per window the whole map is pruned of idle clients so it
// does not grow with every IP ever seen.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	type clientWindow struct {
		count int
		start time.Time
	}

	var (
		mu        sync.Mutex
		clients   = make(map[string]*clientWindow)
		lastPrune time.Time
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			if now.Sub(lastPrune) > window {
				for ip, w := range clients {
					if now.Sub(w.start) > window {
						delete(clients, ip)
					}
				}
				lastPrune = now
			}

			w, ok := clients[key]
			if !ok || now.Sub(w.start) > window {
				w = &clientWindow{start: now}
				clients[key] = w
			}

			if w.count >= limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			w.count++
			mu.Unlock()

			return next(c)
		}
	}
}
