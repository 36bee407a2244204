package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("GCP_PROJECT_ID", "")
	t.Setenv("GCP_ZONE", "")
	t.Setenv("GCP_NETWORK", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider != "gcp" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "gcp")
	}
	if cfg.ProjectID != "guacamole-lab" {
		t.Errorf("ProjectID = %q, want %q", cfg.ProjectID, "guacamole-lab")
	}
	if cfg.Zone != "us-central1-a" {
		t.Errorf("Zone = %q, want %q", cfg.Zone, "us-central1-a")
	}
	if cfg.Network != "default" {
		t.Errorf("Network = %q, want %q", cfg.Network, "default")
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":8080")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "labforge.yaml")
	content := `project_id: "acme-labs"
zone: "europe-west1-b"
network: "lab-vpc"
listen_addr: ":9090"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("CONFIG_PATH", configPath)
	t.Setenv("GCP_PROJECT_ID", "")
	t.Setenv("GCP_ZONE", "")
	t.Setenv("GCP_NETWORK", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ProjectID != "acme-labs" {
		t.Errorf("ProjectID = %q, want %q", cfg.ProjectID, "acme-labs")
	}
	if cfg.Zone != "europe-west1-b" {
		t.Errorf("Zone = %q, want %q", cfg.Zone, "europe-west1-b")
	}
	if cfg.Network != "lab-vpc" {
		t.Errorf("Network = %q, want %q", cfg.Network, "lab-vpc")
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":9090")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "labforge.yaml")
	content := `project_id: "from-file"
zone: "from-file-zone"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("CONFIG_PATH", configPath)
	t.Setenv("GCP_PROJECT_ID", "from-env")
	t.Setenv("GCP_ZONE", "from-env-zone")
	t.Setenv("GCP_NETWORK", "from-env-net")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ProjectID != "from-env" {
		t.Errorf("ProjectID = %q, want env override %q", cfg.ProjectID, "from-env")
	}
	if cfg.Zone != "from-env-zone" {
		t.Errorf("Zone = %q, want env override %q", cfg.Zone, "from-env-zone")
	}
	if cfg.Network != "from-env-net" {
		t.Errorf("Network = %q, want env override %q", cfg.Network, "from-env-net")
	}
}
