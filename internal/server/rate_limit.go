package server

import (
	"net/http"
	"sync"
	"time"
)

type ipWindow struct {
	start time.Time
	count int
}

// rateLimitPerIP caps requests per remote IP per minute. The webhook only
// ever sees Telegram's servers, so this is a blunt guard against strays, not
// a fairness mechanism.
func rateLimitPerIP(limit int) func(http.Handler) http.Handler {
	var mu sync.Mutex
	windows := make(map[string]*ipWindow)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()

			mu.Lock()
			win, ok := windows[r.RemoteAddr]
			if !ok || now.Sub(win.start) >= time.Minute {
				win = &ipWindow{start: now}
				windows[r.RemoteAddr] = win
			}
			win.count++
			over := win.count > limit

			// Opportunistic cleanup of dead windows
			if len(windows) > 1024 {
				for ip, w := range windows {
					if now.Sub(w.start) >= time.Minute {
						delete(windows, ip)
					}
				}
			}
			mu.Unlock()

			if over {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
