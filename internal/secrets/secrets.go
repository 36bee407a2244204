package secrets

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/secretmanager/v1"
)

// Client is a thin wrapper around Secret Manager. The server holds one
// as a capability handle; the provisioning flow itself has no secrets
// to fetch yet.
type Client struct {
	service   *secretmanager.Service
	projectID string
}

// NewClient creates a Secret Manager client for the given project
func NewClient(ctx context.Context, projectID, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	service, err := secretmanager.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create secretmanager service: %w", err)
	}

	return &Client{
		service:   service,
		projectID: projectID,
	}, nil
}

// Access returns the latest version of the named secret.
func (c *Client) Access(ctx context.Context, secretID string) (string, error) {
	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", c.projectID, secretID)

	resp, err := c.service.Projects.Secrets.Versions.Access(name).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to access secret %s: %w", secretID, err)
	}
	if resp.Payload == nil {
		return "", fmt.Errorf("secret %s has no payload", secretID)
	}

	data, err := base64.StdEncoding.DecodeString(resp.Payload.Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode secret %s: %w", secretID, err)
	}

	return string(data), nil
}
