package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the feed endpoints. gatherer backs /metrics.
func NewRouter(res *Resolver, gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.Handle("/posts", Wrap(res.ListPosts)).Methods(http.MethodGet)
	r.Handle("/posts", Wrap(res.CreatePost)).Methods(http.MethodPost)
	r.Handle("/posts/refresh", Wrap(res.Refresh)).Methods(http.MethodPost)
	r.HandleFunc("/posts/stream", res.Stream).Methods(http.MethodGet)
	r.Handle("/posts/{id:[0-9]+}", Wrap(res.GetPost)).Methods(http.MethodGet)
	r.Handle("/posts/{id:[0-9]+}/{kind}", Wrap(res.React)).Methods(http.MethodPost)

	return r
}
