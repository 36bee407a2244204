package provisioning

// Webhook the provisioned VM calls once Guacamole is up. The POST body
// is {"sessionId": ..., "status": "ready"}.
const notifyVMReadyURL = "https://us-central1-guacamole-lab.cloudfunctions.net/notifyVMReady"

// labStartupScript runs at first boot via instance metadata. It is
// currently OS-invariant: the package manager calls assume a
// Debian-family guest even for Rocky Linux and OpenSUSE instances.
const labStartupScript = `#!/bin/bash
set -e

# Install Docker
apt-get update
apt-get install -y docker.io docker-compose-v2 curl
systemctl enable --now docker

# Guacamole stack
mkdir -p /opt/guacamole
cat > /opt/guacamole/docker-compose.yml <<'EOF'
services:
  guacd:
    image: guacamole/guacd:1.5.4
    restart: always
  guacamole:
    image: guacamole/guacamole:1.5.4
    restart: always
    ports:
      - "8080:8080"
    environment:
      GUACD_HOSTNAME: guacd
      POSTGRES_HOSTNAME: postgres
      POSTGRES_DATABASE: guacamole_db
      POSTGRES_USER: guacamole_user
      POSTGRES_PASSWORD: guacamole_pass
  postgres:
    image: postgres:15
    restart: always
    environment:
      POSTGRES_DB: guacamole_db
      POSTGRES_USER: guacamole_user
      POSTGRES_PASSWORD: guacamole_pass
EOF

cd /opt/guacamole
docker compose up -d

# Report readiness with the session id attached to this instance
SESSION_ID=$(curl -s -H "Metadata-Flavor: Google" \
  "http://metadata.google.internal/computeMetadata/v1/instance/attributes/session-id")

curl -s -X POST "` + notifyVMReadyURL + `" \
  -H "Content-Type: application/json" \
  -d "{\"sessionId\": \"${SESSION_ID}\", \"status\": \"ready\"}" || true
`

// StartupScriptFor returns the first-boot script for an instance of the
// given OS. Every OS currently gets the same script.
func StartupScriptFor(osType string) string {
	_ = osType
	return labStartupScript
}
