package external

import (
	"os/exec"

	dphttp "github.com/ONSdigital/dp-net/v2/http"

	"github.com/ONSdigital/dp-qri-client/backend"
	"github.com/ONSdigital/dp-qri-client/client"
	"github.com/ONSdigital/dp-qri-client/cloud"
	"github.com/ONSdigital/dp-qri-client/config"
	"github.com/ONSdigital/dp-qri-client/local"
)

// External implements the client.Dependencies interface for the real qri binary and hosted API.
type External struct{}

var _ client.Dependencies = &External{}

func (*External) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (*External) LocalBackend(cfg *config.Config, binPath string) backend.Backend {
	return local.New(local.NewExecRunner(binPath, cfg.CommandTimeout))
}

// CloudBackend returns a backend for the hosted API. Requests are attempted once.
func (*External) CloudBackend(cfg *config.Config) backend.Backend {
	httpClient := dphttp.NewClient()
	httpClient.SetMaxRetries(0)
	if cfg.HTTPTimeout > 0 {
		httpClient.SetTimeout(cfg.HTTPTimeout)
	}
	return cloud.New(cfg.CloudAPIURL, cfg.CloudUsername, httpClient)
}
