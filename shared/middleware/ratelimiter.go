package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/forum-api/forum-api/shared/api"
	"github.com/forum-api/forum-api/shared/middleware/ratelimiter"
	"github.com/forum-api/forum-api/shared/utils"
)

// RateLimit rejects requests once the identity's bucket is empty.
// A nil limiter disables limiting.
func RateLimit(rl *ratelimiter.Limiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rl == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				utils.WriteJSON(w, http.StatusTooManyRequests, api.Response{
					Status:  api.StatusFail,
					Message: "Rate limit exceeded, try again later",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserOrIP identifies authenticated callers by user id and falls back
// to the client address.
func UserOrIP(r *http.Request) (string, error) {
	if user := GetUserFromContext(r); user != nil {
		return "user:" + user.Id, nil
	}
	ip, err := GetIP(r)
	if err != nil {
		return "", err
	}
	return "ip:" + ip, nil
}

// GetIP extracts the client IP from RemoteAddr.
// Forwarding headers are not trusted.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}
	return ip, nil
}
