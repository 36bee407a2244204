package server

// setupTranscript is the response body for a successful provisioning
// request. It is the same text for every request; the walkthrough is
// written for the OpenSUSE image even though other OS types can be
// requested.
const setupTranscript = `Your lab VM is being prepared.

Connect to the instance once it is reachable:

  $ ssh labadmin@<vm-address>

Verify the container runtime and remote desktop stack:

  $ sudo zypper refresh
  $ sudo zypper install -y docker docker-compose
  $ sudo systemctl enable --now docker

  $ cd /opt/guacamole
  $ sudo docker compose ps
  NAME                    STATUS
  guacamole-guacd-1       Up
  guacamole-guacamole-1   Up
  guacamole-postgres-1    Up

If the stack is not running yet, start it manually:

  $ sudo docker compose up -d

Then open the remote desktop gateway in your browser:

  http://<vm-address>:8080/guacamole

Default credentials are guacadmin / guacadmin. Change them after the
first login. The VM reports readiness to the lab dashboard on its own;
no further action is needed.
`
