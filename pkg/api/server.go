// Package api catbuffer REST API
//
// @title           catbuffer REST API
// @version         1.0.0
// @description     Decodes, validates and archives catbuffer encoded transactions, receipts and state.
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"github.com/ssargent/catbuffer/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

const swaggerPage = `<!DOCTYPE html>
<html>
<head>
	 <title>catbuffer API Documentation</title>
	 <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui.css" />
</head>
<body>
	 <div id="swagger-ui"></div>
	 <script src="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui-bundle.js"></script>
	 <script>
	   window.onload = function() {
	     SwaggerUIBundle({
	       url: '/swagger/swagger.json',
	       dom_id: '#swagger-ui',
	       presets: [
	         SwaggerUIBundle.presets.apis,
	         SwaggerUIBundle.presets.standalone
	       ]
	     });
	   };
	 </script>
</body>
</html>`

// NewRouter builds the HTTP routes for s. Metrics registered with gatherer
// are exposed on /metrics.
func NewRouter(s *Server, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.metrics.InstrumentAuthMiddleware(apiKeyMiddleware(s.config.APIKey)))

		r.Get("/health", s.metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))
		r.Get("/kinds", s.metrics.InstrumentHandler("GET", "/api/v1/kinds", s.handleKinds))
		r.Post("/decode/{kind}", s.metrics.InstrumentHandler("POST", "/api/v1/decode/{kind}", s.handleDecode))

		if s.archive != nil {
			r.Post("/archive", s.metrics.InstrumentHandler("POST", "/api/v1/archive", s.handleArchivePut))
			r.Get("/archive", s.metrics.InstrumentHandler("GET", "/api/v1/archive", s.handleArchiveList))
			r.Get("/archive/{id}", s.metrics.InstrumentHandler("GET", "/api/v1/archive/{id}", s.handleArchiveGet))
			r.Delete("/archive/{id}", s.metrics.InstrumentHandler("DELETE", "/api/v1/archive/{id}", s.handleArchiveDelete))
		}
	})

	// Swagger documentation (unprotected)
	r.Get("/swagger/*", handleSwagger)

	return r
}

func handleSwagger(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/swagger/", "/swagger/index.html":
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerPage))
	case "/swagger/swagger.json":
		doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
		if err != nil {
			logging.Logger().Error("swagger doc", zap.Error(err))
			http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	default:
		http.NotFound(w, r)
	}
}

// Serve answers requests on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener, gatherer prometheus.Gatherer) error {
	srv := &http.Server{
		Handler:           NewRouter(s, gatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	logging.Logger().Info("server stopped")
	return nil
}

// StartServer listens on the configured address and serves the API until
// ctx is cancelled.
func StartServer(ctx context.Context, archive EntityArchive, config ServerConfig) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	SwaggerInfo.Host = fmt.Sprintf("localhost:%d", config.Port)

	addr := net.JoinHostPort(config.Bind, strconv.Itoa(config.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", addr)
	}

	logging.Logger().Info("starting catbuffer REST API server",
		zap.String("addr", ln.Addr().String()),
		zap.Bool("auth", config.APIKey != ""),
		zap.Bool("strict_size", config.Policy.StrictSize),
	)

	server := NewServer(archive, config, NewMetrics(registry))
	return server.Serve(ctx, ln, registry)
}
