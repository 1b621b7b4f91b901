package readiness

import (
	"context"
	"fmt"

	"github.com/docker/docker/client"
)

// DockerChecker probes the local Docker daemon through the standard
// environment (DOCKER_HOST and friends).
type DockerChecker struct{}

// Name implements Checker.
func (c *DockerChecker) Name() string { return "docker" }

// Check pings the daemon.
func (c *DockerChecker) Check(ctx context.Context) error {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}
	defer cli.Close()

	if _, err := cli.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
