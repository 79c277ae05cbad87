package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-asset-keeper/internal/validators"
)

const (
	assetsPattern = "/assets"
	assetPattern  = "/assets/{" + assetNameParam + ":" + validators.AssetNameClass + "}"
)

// route binds a path pattern to the handler of every verb it answers.
// Verbs missing from methods are answered by the router's MethodNotAllowed
// handler.
type route struct {
	pattern string
	methods map[string]http.HandlerFunc
}

func (h *Handler) routes() []route {
	return []route{
		{
			pattern: assetsPattern,
			methods: map[string]http.HandlerFunc{
				http.MethodGet:    h.listAssets,
				http.MethodPost:   h.createAssets,
				http.MethodPut:    h.methodNotAllowed,
				http.MethodDelete: h.methodNotAllowed,
			},
		},
		{
			pattern: assetPattern,
			methods: map[string]http.HandlerFunc{
				http.MethodGet:    h.getAsset,
				http.MethodPost:   h.methodNotAllowed,
				http.MethodPut:    h.methodNotAllowed,
				http.MethodDelete: h.methodNotAllowed,
			},
		},
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withMetrics)

	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(withGZip)

		for _, rt := range h.routes() {
			for method, handlerFunc := range rt.methods {
				r.Method(method, rt.pattern, handlerFunc)
			}
		}
		r.Get("/version", h.getServerVersion)
	})

	// promhttp negotiates its own compression
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
