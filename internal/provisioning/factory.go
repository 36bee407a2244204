package provisioning

import (
	"context"
	"fmt"

	"labforge/internal/config"
)

// NewProvisioner creates a provisioner for the configured provider.
// Google Cloud is the only supported provider today; the dispatch stays
// so adding one means adding a case, not rewiring callers.
func NewProvisioner(ctx context.Context, cfg *config.Config) (Provisioner, error) {
	switch cfg.Provider {
	case "gcp":
		return NewGCPProvisioner(ctx, cfg.ProjectID, cfg.Zone, cfg.Network, cfg.CredentialsFile)

	default:
		return nil, fmt.Errorf("unsupported provisioner type: %s", cfg.Provider)
	}
}
