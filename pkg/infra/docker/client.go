package docker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

const deployedAtLayout = "2006-01-02 15:04:05"

// Client runs the docker command line tool.
type Client struct {
	path string
}

var _ interfaces.ContainerRuntime = (*Client)(nil)

type Option func(*Client)

// WithPath sets path of the docker executable. Default is "docker" in PATH.
func WithPath(path string) Option {
	return func(x *Client) {
		x.path = path
	}
}

func New(options ...Option) *Client {
	client := &Client{path: "docker"}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) run(ctx context.Context, args ...string) (string, error) {
	return x.exec(ctx, false, args...)
}

// exec runs docker. With combined, stderr is also written to the returned output,
// as docker logs replays container stderr there.
func (x *Client) exec(ctx context.Context, combined bool, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, x.path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if combined {
		cmd.Stderr = io.MultiWriter(&stdout, &stderr)
	}

	logging.From(ctx).Debug("run docker command", slog.Any("args", args))

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		base := types.ErrCollaboratorUnavailable
		if strings.Contains(stderr.String(), "No such container") || strings.Contains(stderr.String(), "No such object") {
			base = types.ErrNotFound
		}
		return "", goerr.Wrap(base.Wrap(err), "docker command failed",
			goerr.V("args", args),
			goerr.V("exit_code", exitCode),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	return stdout.String(), nil
}

// List returns every container including stopped ones.
func (x *Client) List(ctx context.Context) ([]model.ContainerSummary, error) {
	out, err := x.run(ctx, "ps", "-a", "--format", "{{.Names}}|{{.Status}}|{{.Image}}")
	if err != nil {
		return nil, err
	}

	var containers []model.ContainerSummary
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		containers = append(containers, model.ContainerSummary{
			Name:   types.ContainerName(parts[0]),
			Status: parts[1],
			Image:  parts[2],
		})
	}
	return containers, nil
}

type inspectResult struct {
	ID    string `json:"Id"`
	State struct {
		Status    string `json:"Status"`
		StartedAt string `json:"StartedAt"`
		Health    *struct {
			Status string `json:"Status"`
		} `json:"Health"`
	} `json:"State"`
	Config struct {
		Image string `json:"Image"`
	} `json:"Config"`
	NetworkSettings struct {
		Ports map[string][]struct {
			HostIP   string `json:"HostIp"`
			HostPort string `json:"HostPort"`
		} `json:"Ports"`
	} `json:"NetworkSettings"`
}

// Inspect collects state, image, ports, health and resource usage of a container.
// Resource usage is best-effort.
func (x *Client) Inspect(ctx context.Context, name types.ContainerName) (*model.ContainerRecord, error) {
	out, err := x.run(ctx, "inspect", string(name))
	if err != nil {
		return nil, err
	}

	var results []inspectResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		return nil, goerr.Wrap(types.ErrCollaboratorUnavailable.Wrap(err), "failed to parse docker inspect output",
			goerr.V("container", name),
		)
	}
	if len(results) == 0 {
		return nil, goerr.Wrap(types.ErrNotFound, "container not found", goerr.V("container", name))
	}
	r := results[0]

	record := &model.ContainerRecord{
		Name:          name,
		Status:        model.ContainerBoardStatus(r.State.Status),
		ContainerID:   shortID(r.ID),
		ImageVersion:  r.Config.Image,
		ExposedPorts:  formatPorts(r),
		Health:        "No health check",
		ResourceUsage: "N/A",
		DeployedAt:    formatStartedAt(r.State.StartedAt),
	}
	if r.State.Health != nil && r.State.Health.Status != "" {
		record.Health = r.State.Health.Status
	}

	if r.State.Status == "running" {
		usage, err := x.run(ctx, "stats", string(name), "--no-stream", "--format", "CPU: {{.CPUPerc}} | Memory: {{.MemUsage}}")
		if err != nil {
			logging.From(ctx).Debug("resource usage is not available", slog.Any("error", err))
		} else if usage = strings.TrimSpace(usage); usage != "" {
			record.ResourceUsage = usage
		}
	}

	return record, nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func formatPorts(r inspectResult) string {
	var ports []string
	for port, bindings := range r.NetworkSettings.Ports {
		for _, b := range bindings {
			ports = append(ports, fmt.Sprintf("%s -> %s:%s", port, b.HostIP, b.HostPort))
		}
	}
	if len(ports) == 0 {
		return "No ports exposed"
	}
	sort.Strings(ports)
	return strings.Join(ports, ", ")
}

func formatStartedAt(s string) string {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil || t.IsZero() || t.Year() < 2000 {
		return ""
	}
	return t.UTC().Format(deployedAtLayout)
}

func (x *Client) Start(ctx context.Context, name types.ContainerName) error {
	_, err := x.run(ctx, "start", string(name))
	return err
}

func (x *Client) Stop(ctx context.Context, name types.ContainerName) error {
	_, err := x.run(ctx, "stop", string(name))
	return err
}

func (x *Client) Restart(ctx context.Context, name types.ContainerName) error {
	_, err := x.run(ctx, "restart", string(name))
	return err
}

// Logs returns the last lines of the container output.
func (x *Client) Logs(ctx context.Context, name types.ContainerName, lines int) (string, error) {
	return x.exec(ctx, true, "logs", "--tail", strconv.Itoa(lines), string(name))
}
