package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/craftbench/docs"
	"github.com/osse101/craftbench/internal/catalog"
	"github.com/osse101/craftbench/internal/crafting"
	"github.com/osse101/craftbench/internal/handler"
	"github.com/osse101/craftbench/internal/inventory"
	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/metrics"
	"github.com/osse101/craftbench/internal/middleware"
	"github.com/osse101/craftbench/internal/quantity"
	"github.com/osse101/craftbench/internal/settings"
)

// Options configures the HTTP listener and its security middleware.
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

// Deps are the services the API exposes.
type Deps struct {
	Catalog  catalog.Service
	Crafting crafting.Service
	Settings *settings.Settings
	Resolver *quantity.Resolver
	ItemTags *inventory.ItemTagEditor

	// Ready lists the backends /readyz pings, by name.
	Ready map[string]handler.Pinger
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Deps) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	guard := NewGuard(GuardConfig{
		Window:          RateWindow,
		RateLimit:       RateLimitPerWindow,
		FailedAuthAlert: FailedAuthAlertFrom,
		MaxClients:      MaxTrackedClients,
		TrustedProxies:  opts.TrustedProxies,
	})

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, guard))
	r.Use(RateLimitMiddleware(guard))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Ready))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	recipes := handler.NewRecipeHandler(deps.Catalog)
	files := handler.NewFileHandler(deps.Catalog)
	craft := handler.NewCraftHandler(deps.Crafting)
	itemTags := handler.NewItemTagHandler(deps.ItemTags)
	settingsHandler := handler.NewSettingsHandler(deps.Settings, deps.Resolver)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Use(middleware.Identity)
		r.Use(middleware.Confirmation)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.HandleList)
			r.Post("/", recipes.HandleCreate)
			r.Patch("/", recipes.HandleUpdateMany)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", recipes.HandleGet)
				r.Patch("/", recipes.HandleUpdate)
				r.Delete("/", recipes.HandleDelete)
				r.Put("/type", recipes.HandleSetType)
				r.Post("/edit-mode", recipes.HandleToggleEditMode)
				r.Post("/settings-panel", recipes.HandleToggleSettingsPanel)

				r.Put("/target", recipes.HandleSetTarget)
				r.Delete("/target", recipes.HandleRemoveTarget)
				r.Post("/targets", recipes.HandleAddTarget)
				r.Delete("/targets/{sourceId}", recipes.HandleRemoveTargetListItem)
				r.Post("/ingredients", recipes.HandleAddIngredient)
				r.Delete("/ingredients/{sourceId}", recipes.HandleRemoveIngredient)
				r.Post("/quantity", recipes.HandleChangeQuantity)

				r.Post("/tags", recipes.HandleAddTag)
				r.Put("/tags", recipes.HandleReformatTags)
				r.Patch("/tags/{tag}", recipes.HandleEditTag)
				r.Delete("/tags/{tag}", recipes.HandleRemoveTag)
			})
		})

		r.Route("/files", func(r chi.Router) {
			r.Get("/", files.HandleList)
			r.Post("/", files.HandleCreate)
			r.Post("/save", files.HandleSave)
			r.Post("/select", files.HandleSelect)
			r.Post("/reload", files.HandleReload)
			r.Post("/clear", files.HandleClear)
			r.Post("/close", files.HandleClose)
		})

		r.Route("/craft", func(r chi.Router) {
			r.Post("/", craft.HandleOpen)
			r.Route("/{sessionId}", func(r chi.Router) {
				r.Get("/", craft.HandleGet)
				r.Delete("/", craft.HandleClose)
				r.Post("/actor", craft.HandleSelectActor)
				r.Post("/evaluate", craft.HandleEvaluate)
				r.Put("/allocations", craft.HandleAllocate)
				r.Post("/craft", craft.HandleCraft)
			})
		})

		r.Route("/actors/{actorId}/items/{itemId}/tags", func(r chi.Router) {
			r.Get("/", itemTags.HandleList)
			r.Put("/", itemTags.HandleReformat)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingsHandler.HandleGet)
			r.Put("/allow-player-edit", settingsHandler.HandleSetAllowPlayerEdit)
			r.Put("/quantity-paths", settingsHandler.HandleSetQuantityPaths)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
