package provisioning

import (
	"context"
	"fmt"
	"sort"
	"time"

	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

// GCPProvisioner implements the Provisioner interface for Google Cloud
type GCPProvisioner struct {
	service   *compute.Service
	projectID string
	zone      string
	network   string
}

// NewGCPProvisioner creates a new instance of GCPProvisioner
func NewGCPProvisioner(ctx context.Context, projectID, zone, network, credentialsFile string) (*GCPProvisioner, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	service, err := compute.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute service: %w", err)
	}

	return &GCPProvisioner{
		service:   service,
		projectID: projectID,
		zone:      zone,
		network:   network,
	}, nil
}

// Create creates a lab VM, waits for the insert operation to finish and
// returns the instance descriptor with its external address.
func (p *GCPProvisioner) Create(ctx context.Context, spec InstanceSpec) (*InstanceInfo, error) {
	rb := p.buildInstance(spec)

	op, err := p.service.Instances.Insert(p.projectID, p.zone, rb).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert instance: %w", err)
	}

	if err := p.waitForOperation(ctx, op.Name); err != nil {
		return nil, fmt.Errorf("operation failed: %w", err)
	}

	instance, err := p.service.Instances.Get(p.projectID, p.zone, spec.Name).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}

	if len(instance.NetworkInterfaces) == 0 || len(instance.NetworkInterfaces[0].AccessConfigs) == 0 {
		return nil, fmt.Errorf("instance %s has no access config", spec.Name)
	}
	ip := instance.NetworkInterfaces[0].AccessConfigs[0].NatIP
	if ip == "" {
		return nil, fmt.Errorf("instance %s has no external address", spec.Name)
	}

	return &InstanceInfo{
		ID:     fmt.Sprintf("%d", instance.Id),
		Name:   instance.Name,
		IP:     ip,
		Zone:   p.zone,
		Status: instance.Status,
	}, nil
}

// buildInstance translates an InstanceSpec into the compute API request
// body. Kept free of network calls so the mapping is testable.
func (p *GCPProvisioner) buildInstance(spec InstanceSpec) *compute.Instance {
	machineType := spec.MachineType
	if machineType == "" {
		machineType = DefaultMachineType
	}
	diskSize := spec.DiskSizeGb
	if diskSize == 0 {
		diskSize = DefaultDiskSizeGb
	}

	rb := &compute.Instance{
		Name:         spec.Name,
		MachineType:  fmt.Sprintf("zones/%s/machineTypes/%s", p.zone, machineType),
		CanIpForward: false,
		Disks: []*compute.AttachedDisk{
			{
				AutoDelete: true,
				Boot:       true,
				Type:       "PERSISTENT",
				InitializeParams: &compute.AttachedDiskInitializeParams{
					SourceImage: fmt.Sprintf("projects/%s/global/images/family/%s", spec.ImageProject, spec.ImageFamily),
					DiskSizeGb:  diskSize,
				},
			},
		},
		NetworkInterfaces: []*compute.NetworkInterface{
			{
				AccessConfigs: []*compute.AccessConfig{
					{
						Type: "ONE_TO_ONE_NAT",
						Name: "External NAT",
					},
				},
				Network: fmt.Sprintf("global/networks/%s", p.network),
			},
		},
	}

	if spec.Spot {
		rb.Scheduling = &compute.Scheduling{
			Preemptible:               true,
			ProvisioningModel:         "SPOT",
			InstanceTerminationAction: "STOP",
		}
	}

	if len(spec.Tags) > 0 {
		rb.Tags = &compute.Tags{Items: spec.Tags}
	}

	if len(spec.Metadata) > 0 {
		keys := make([]string, 0, len(spec.Metadata))
		for k := range spec.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		items := make([]*compute.MetadataItems, 0, len(keys))
		for _, k := range keys {
			v := spec.Metadata[k]
			items = append(items, &compute.MetadataItems{Key: k, Value: &v})
		}
		rb.Metadata = &compute.Metadata{Items: items}
	}

	return rb
}

func (p *GCPProvisioner) waitForOperation(ctx context.Context, opName string) error {
	for i := 0; i < 60; i++ {
		op, err := p.service.ZoneOperations.Get(p.projectID, p.zone, opName).Context(ctx).Do()
		if err != nil {
			return err
		}
		if op.Status == "DONE" {
			if op.Error != nil {
				return fmt.Errorf("operation error: %v", op.Error.Errors)
			}
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
		}
	}
	return fmt.Errorf("timeout waiting for operation")
}
