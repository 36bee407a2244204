package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"labforge/internal/config"
	"labforge/internal/logging"
	"labforge/internal/provisioning"
	"labforge/internal/secrets"
	"labforge/internal/ssh"
)

// Server serves the lab VM provisioning endpoint. The provisioner and
// secrets clients are built once and reused across requests; handlers
// never mutate them.
type Server struct {
	cfg          *config.Config
	provisioner  provisioning.Provisioner
	secrets      *secrets.Client
	sshUser      string
	sshPublicKey string
}

// NewServer wires up the provider clients and the deployment SSH key
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	prov, err := provisioning.NewProvisioner(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create provisioner: %w", err)
	}

	sec, err := secrets.NewClient(ctx, cfg.ProjectID, cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create secrets client: %w", err)
	}

	s := &Server{
		cfg:         cfg,
		provisioner: prov,
		secrets:     sec,
		sshUser:     cfg.SSHUser,
	}

	if cfg.SSHKeyDir != "" {
		keyPair, err := ssh.GetOrGenerateKeyPair(cfg.SSHKeyDir)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare SSH key pair: %w", err)
		}
		s.sshPublicKey = keyPair.PublicKey
	}

	return s, nil
}

// Router builds the HTTP routing table
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDHandler(), PanicHandler())

	router.HandleFunc("/provision", s.handleProvision).Methods(http.MethodPost)

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	})

	return router
}

// Start runs the HTTP server until it fails or the listener closes
func (s *Server) Start() error {
	logging.Logger().Info("Starting provisioning server",
		zap.String("addr", s.cfg.ListenAddr),
		zap.String("project", s.cfg.ProjectID),
		zap.String("zone", s.cfg.Zone))

	// ProxyHeaders restores the caller address when running behind the
	// platform load balancer
	return http.ListenAndServe(s.cfg.ListenAddr, handlers.ProxyHeaders(s.Router()))
}
