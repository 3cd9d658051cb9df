package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// observeDuration records per-endpoint request latency when a metrics
// collector is wired in; without one the handler runs undecorated.
func observeDuration(api *RestAPI, endpoint string, next http.Handler) http.Handler {
	if api.Metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		api.Metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	})
}

func (api *RestAPI) route(endpoint string, h handlerFunc) http.Handler {
	return observeDuration(api, endpoint, validateAPIKey(api, h))
}

// SetRoutes registers all report endpoints. httprouter stores path parameters
// on the request context, which utils.ExtractIDFromParams reads back.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/roster/duties.json", api.route("duties", api.dutiesHandler))
	router.Handler(http.MethodGet, "/api/roster/duty/:id", api.route("duty", api.dutyHandler))
	router.Handler(http.MethodGet, "/api/roster/duty/:id/timeline.json", api.route("timeline", api.timelineHandler))
	router.Handler(http.MethodGet, "/api/roster/breaks.json", api.route("breaks", api.breaksHandler))
	router.Handler(http.MethodGet, "/api/roster/stats.json", api.route("stats", api.statsHandler))
}
