package steps

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/dp-qri-client/backend"
	"github.com/ONSdigital/dp-qri-client/client"
	"github.com/ONSdigital/dp-qri-client/cloud"
	"github.com/ONSdigital/dp-qri-client/config"
	"github.com/ONSdigital/dp-qri-client/local"
	"github.com/ONSdigital/dp-qri-client/local/mocks"
	"github.com/golang/mock/gomock"
)

// QriResponse is what the fake qri binary prints for one command line.
type QriResponse struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// FakeQri stands in for the qri binary.
type FakeQri struct {
	Responses map[string]QriResponse
	Calls     []string
}

func (f *FakeQri) Run(ctx context.Context, args ...string) ([]byte, []byte, int, error) {
	line := strings.Join(args, " ")
	f.Calls = append(f.Calls, line)
	r, ok := f.Responses[line]
	if !ok {
		return nil, []byte("unknown command: " + line), 1, nil
	}
	return []byte(r.Stdout), []byte(r.Stderr), r.ExitCode, nil
}

// External implements client.Dependencies with a scripted qri binary and a
// fake hosted API.
type External struct {
	Installed   bool
	CloudURL    string
	Qri         *FakeQri
	MissingTool []error
}

var _ client.Dependencies = &External{}

func (e *External) LookPath(file string) (string, error) {
	if !e.Installed {
		return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
	}
	return "/usr/local/bin/" + file, nil
}

func (e *External) LocalBackend(cfg *config.Config, binPath string) backend.Backend {
	t := &testing.T{}
	c := gomock.NewController(t)
	m := mocks.NewMockRunner(c)
	m.EXPECT().Run(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(e.Qri.Run)
	m.EXPECT().LookPath().AnyTimes().DoAndReturn(func() (string, error) {
		if !e.Installed {
			return "", errors.New("qri not found")
		}
		return binPath, nil
	})

	b := local.New(m)
	b.OnToolMissing = func(ctx context.Context, err error) {
		e.MissingTool = append(e.MissingTool, err)
	}
	return b
}

func (e *External) CloudBackend(cfg *config.Config) backend.Backend {
	httpClient := dphttp.NewClient()
	httpClient.SetMaxRetries(0)
	return cloud.New(e.CloudURL, cfg.CloudUsername, httpClient)
}
