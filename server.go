package etadigest

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/theoremus-urban-solutions/eta-digest/catalog"
	"github.com/theoremus-urban-solutions/eta-digest/digest"
	"github.com/theoremus-urban-solutions/eta-digest/store"
)

// MessageRelay forwards an operator message to a chat. It is nil when
// no chat surface is configured; the relay endpoint then answers 503.
type MessageRelay func(chatID int64, text string) error

// Server is the HTTP surface. It only ever reads the shared stores.
type Server struct {
	httpServer  *http.Server
	catalog     *catalog.Catalog
	renderer    *digest.Renderer
	predictions *store.PredictionStore
	vehicles    *store.VehicleTracker
	relay       MessageRelay
}

// NewServer wires the routes and returns a server ready to Start.
func NewServer(port int, c *catalog.Catalog, r *digest.Renderer, p *store.PredictionStore, v *store.VehicleTracker, relay MessageRelay) *Server {
	s := &Server{
		catalog:     c,
		renderer:    r,
		predictions: p,
		vehicles:    v,
		relay:       relay,
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/routes", s.handleRoutes).Methods(http.MethodGet)
	router.HandleFunc("/api/digest/{route}", s.handleDigest).Methods(http.MethodGet)
	router.HandleFunc("/", s.handleChatForm).Methods(http.MethodGet)
	router.HandleFunc("/message", s.handleMessage).Methods(http.MethodPost)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.httpServer.Addr)
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
