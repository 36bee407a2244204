package provisioning

import "context"

// Fixed resource shape for lab instances.
const (
	DefaultMachineType = "e2-medium"
	DefaultDiskSizeGb  = 20
)

// InstanceSpec represents the specification for creating a lab VM
type InstanceSpec struct {
	Name         string
	MachineType  string
	DiskSizeGb   int64
	ImageProject string
	ImageFamily  string
	Spot         bool
	Tags         []string
	Metadata     map[string]string
}

// InstanceInfo contains information about the created VM
type InstanceInfo struct {
	ID     string
	Name   string
	IP     string
	Zone   string
	Status string
}

// Provisioner defines the interface for creating virtual machines.
// Create blocks until the instance exists and returns its descriptor,
// including the externally assigned address.
type Provisioner interface {
	Create(ctx context.Context, spec InstanceSpec) (*InstanceInfo, error)
}
