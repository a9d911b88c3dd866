package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/online-sales/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// accessLog пишет строку на каждый запрос: 5xx на уровне ERROR, 4xx на WARN, остальное на INFO.
func accessLog(log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			reqLog := log.With(
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration", time.Since(start).String(),
			)

			switch {
			case status >= http.StatusInternalServerError:
				reqLog.Errorf(nil, "request failed")
			case status >= http.StatusBadRequest:
				reqLog.Warnf("request rejected")
			default:
				reqLog.Infof("request served")
			}
		})
	}
}
