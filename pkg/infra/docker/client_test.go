package docker_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/infra/docker"
)

// newFakeClient runs testdata/fake_docker.sh in place of docker and returns a
// reader of the recorded arguments.
func newFakeClient(t *testing.T) (*docker.Client, func() []string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake docker is a shell script")
	}

	script := gt.R1(filepath.Abs("testdata/fake_docker.sh")).NoError(t)
	gt.NoError(t, os.Chmod(script, 0755))

	logPath := filepath.Join(t.TempDir(), "args.log")
	t.Setenv("FAKE_DOCKER_LOG", logPath)

	calls := func() []string {
		raw, err := os.ReadFile(logPath)
		if err != nil {
			return nil
		}
		return strings.Split(strings.TrimSpace(string(raw)), "\n")
	}
	return docker.New(docker.WithPath(script)), calls
}

func TestList(t *testing.T) {
	client, _ := newFakeClient(t)

	containers := gt.R1(client.List(t.Context())).NoError(t)
	gt.A(t, containers).Length(2)
	gt.V(t, containers[0].Name).Equal(types.ContainerName("sample-app-web-1"))
	gt.V(t, containers[0].Status).Equal("Up 2 minutes")
	gt.V(t, containers[1].Image).Equal("postgres:16")
}

func TestInspect(t *testing.T) {
	t.Run("running container", func(t *testing.T) {
		client, calls := newFakeClient(t)

		record := gt.R1(client.Inspect(t.Context(), "sample-app-web-1")).NoError(t)
		gt.V(t, record.Status).Equal("Running")
		gt.V(t, record.ContainerID).Equal("0123456789ab")
		gt.V(t, record.ImageVersion).Equal("acme/sample-app:42")
		gt.V(t, record.ExposedPorts).Equal("8080/tcp -> 0.0.0.0:8080")
		gt.V(t, record.Health).Equal("healthy")
		gt.V(t, record.ResourceUsage).Equal("CPU: 0.50% | Memory: 64MiB / 1GiB")
		gt.V(t, record.DeployedAt).Equal("2024-03-15 10:00:00")

		args := calls()
		gt.A(t, args).Length(2)
		gt.S(t, args[1]).Contains("stats sample-app-web-1 --no-stream")
	})

	t.Run("unknown container is not found", func(t *testing.T) {
		client, _ := newFakeClient(t)
		_, err := client.Inspect(t.Context(), "ghost")
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})

	t.Run("missing executable is unavailable", func(t *testing.T) {
		client := docker.New(docker.WithPath(filepath.Join(t.TempDir(), "no-docker")))
		_, err := client.List(t.Context())
		gt.True(t, errors.Is(err, types.ErrCollaboratorUnavailable))
	})
}

func TestControl(t *testing.T) {
	client, calls := newFakeClient(t)

	gt.NoError(t, client.Start(t.Context(), "web"))
	gt.NoError(t, client.Stop(t.Context(), "web"))
	gt.NoError(t, client.Restart(t.Context(), "web"))
	gt.V(t, calls()).Equal([]string{"start web", "stop web", "restart web"})
}

func TestLogs(t *testing.T) {
	client, calls := newFakeClient(t)

	logs := gt.R1(client.Logs(t.Context(), "web", 50)).NoError(t)
	gt.S(t, logs).Contains("listening on :8080")
	gt.S(t, logs).Contains("warning: slow request")
	gt.V(t, calls()).Equal([]string{"logs --tail 50 web"})
}

func TestLiveDocker(t *testing.T) {
	if _, ok := os.LookupEnv("TEST_DOCKER"); !ok {
		t.Skip("TEST_DOCKER is not set")
	}

	client := docker.New()
	gt.R1(client.List(t.Context())).NoError(t)
}
