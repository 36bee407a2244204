package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config contains application configuration
type Config struct {
	// Compute provider selection ("gcp" is the only supported value)
	Provider string `yaml:"provider"`

	// Google Cloud connection parameters
	ProjectID       string `yaml:"project_id"`
	Zone            string `yaml:"zone"`
	Network         string `yaml:"network"`
	CredentialsFile string `yaml:"credentials_file"`

	// HTTP listen address for the provisioning endpoint
	ListenAddr string `yaml:"listen_addr"`

	// Directory holding the deployment SSH key pair. Empty disables
	// attaching an ssh-keys metadata item to provisioned instances.
	SSHKeyDir string `yaml:"ssh_key_dir"`

	// Login name published alongside the deployment public key
	SSHUser string `yaml:"ssh_user"`
}

// Load loads configuration from the YAML file pointed to by CONFIG_PATH
// (default labforge.yaml), then applies environment overrides. Every
// field has a hardcoded default, so a missing file is not an error.
func Load() (*Config, error) {
	config := &Config{
		Provider:   "gcp",
		ProjectID:  "guacamole-lab",
		Zone:       "us-central1-a",
		Network:    "default",
		ListenAddr: ":8080",
		SSHUser:    "labadmin",
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "labforge.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	}

	// Expand environment variables in string fields
	config.ProjectID = os.ExpandEnv(config.ProjectID)
	config.Zone = os.ExpandEnv(config.Zone)
	config.Network = os.ExpandEnv(config.Network)
	config.CredentialsFile = os.ExpandEnv(config.CredentialsFile)
	config.SSHKeyDir = os.ExpandEnv(config.SSHKeyDir)

	// Environment overrides take precedence over file values
	if projectID := os.Getenv("GCP_PROJECT_ID"); projectID != "" {
		config.ProjectID = projectID
	}

	if zone := os.Getenv("GCP_ZONE"); zone != "" {
		config.Zone = zone
	}

	if network := os.Getenv("GCP_NETWORK"); network != "" {
		config.Network = network
	}

	if config.ProjectID == "" {
		return nil, fmt.Errorf("project ID is required (set project_id in config file or GCP_PROJECT_ID environment variable)")
	}

	if config.Zone == "" {
		return nil, fmt.Errorf("zone is required (set zone in config file or GCP_ZONE environment variable)")
	}

	return config, nil
}
