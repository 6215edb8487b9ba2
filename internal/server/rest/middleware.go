package rest

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/MSSkowron/registrar/pkg/logger"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request ID back to the client.
const HeaderRequestID = "X-Request-ID"

// logMiddleware logs every request without its body; registration bodies carry passwords.
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()

		logger.InfoFields("Received request", map[string]any{
			"request_id": requestID,
			"client_ip":  getClientIP(r),
			"endpoint":   r.URL.Path,
			"method":     r.Method,
		})

		w.Header().Set(HeaderRequestID, requestID)
		r = r.WithContext(context.WithValue(r.Context(), contextKeyReqID, requestID))

		next.ServeHTTP(w, r)
	})
}

func getClientIP(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}

	if commaIndex := strings.Index(ip, ","); commaIndex != -1 {
		ip = ip[:commaIndex]
	}
	ip = strings.TrimSpace(ip)

	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	return ip
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyReqID).(string)
	return id
}
