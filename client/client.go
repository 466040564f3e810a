// Package client is the entry point for callers: it selects a backend and
// exposes listing, fetching and pulling of datasets.
package client

import (
	"context"
	"fmt"
	"io"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-qri-client/backend"
	"github.com/ONSdigital/dp-qri-client/clienterror"
	"github.com/ONSdigital/dp-qri-client/config"
	"github.com/ONSdigital/dp-qri-client/dataset"
	"github.com/ONSdigital/dp-qri-client/dsref"
	"github.com/ONSdigital/dp-qri-client/tabular"
	"github.com/ONSdigital/log.go/v2/log"
)

// Generate mocks of dependencies
//
//go:generate moq -pkg client_test -out moq_client_test.go . Dependencies

// Dependencies holds constructors/factories for the backends
type Dependencies interface {
	LookPath(file string) (string, error)
	LocalBackend(cfg *config.Config, binPath string) backend.Backend
	CloudBackend(cfg *config.Config) backend.Backend
}

// Client gives access to the datasets of one repository.
type Client struct {
	backend backend.Backend
	out     io.Writer
}

// New returns a Client whose backend is chosen from cfg. With no backend
// forced, the local backend is used when the qri binary is on the path and
// the hosted API otherwise. Messages meant for the user are written to out.
func New(ctx context.Context, cfg *config.Config, deps Dependencies, out io.Writer) (*Client, error) {
	logData := log.Data{"backend": cfg.Backend, "binary": cfg.QriBinary}

	var b backend.Backend
	switch cfg.Backend {
	case config.CloudBackend:
		b = deps.CloudBackend(cfg)
	case config.LocalBackend:
		binPath, err := deps.LookPath(cfg.QriBinary)
		if err != nil {
			log.Error(ctx, "local backend requested but qri binary not found", err, logData)
			return nil, clienterror.Wrap(clienterror.ToolNotFound, err, fmt.Sprintf("qri binary %q not found", cfg.QriBinary))
		}
		b = deps.LocalBackend(cfg, binPath)
	default:
		if binPath, err := deps.LookPath(cfg.QriBinary); err == nil {
			b = deps.LocalBackend(cfg, binPath)
		} else {
			b = deps.CloudBackend(cfg)
		}
	}

	logData["selected"] = b.Name()
	log.Info(ctx, "backend selected", logData)

	return &Client{backend: b, out: out}, nil
}

// Backend returns the active backend.
func (c *Client) Backend() backend.Backend {
	return c.backend
}

// SetBackend replaces the active backend.
func (c *Client) SetBackend(b backend.Backend) {
	c.backend = b
}

// List returns the datasets in the repository sorted by reference. When the
// backend cannot list at all, guidance is written to the output and a nil
// list is returned without error.
func (c *Client) List(ctx context.Context, username string) (dataset.List, error) {
	objs, err := c.backend.ListDatasetObjects(ctx, username)
	if err != nil {
		if clienterror.Is(err, clienterror.CloudUnavailable) {
			log.Warn(ctx, "listing is unavailable", log.Data{"backend": c.backend.Name()})
			fmt.Fprintln(c.out, err.Error())
			return nil, nil
		}
		return nil, err
	}

	list := make(dataset.List, 0, len(objs))
	for _, obj := range objs {
		list = append(list, dataset.New(obj, c.backend))
	}
	list.Sort()
	return list, nil
}

// Get returns the fully populated dataset at refstr.
func (c *Client) Get(ctx context.Context, refstr string) (*dataset.Dataset, error) {
	ref, err := dsref.Parse(refstr)
	if err != nil {
		return nil, err
	}

	obj, err := c.backend.GetDatasetObject(ctx, ref)
	if err != nil {
		return nil, err
	}
	return dataset.New(obj, c.backend), nil
}

// Pull fetches refstr from the registry into the repository and returns the
// backend's response.
func (c *Client) Pull(ctx context.Context, refstr string) (string, error) {
	ref, err := dsref.Parse(refstr)
	if err != nil {
		return "", err
	}

	fmt.Fprintln(c.out, "Fetching from registry...")
	text, err := c.backend.PullDataset(ctx, ref)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(c.out, "Pulled %s: %s\n", ref, text)
	return text, nil
}

// Add is an alias for Pull.
func (c *Client) Add(ctx context.Context, refstr string) (string, error) {
	return c.Pull(ctx, refstr)
}

// SQL runs query against the repository.
func (c *Client) SQL(ctx context.Context, query string) (*tabular.Table, error) {
	runner, ok := c.backend.(backend.SQLRunner)
	if !ok {
		return nil, clienterror.Newf(clienterror.UnsupportedOperation, "sql is not supported by the %s backend", c.backend.Name())
	}
	return runner.SQL(ctx, query)
}

// Save commits a new version of the dataset at refstr.
func (c *Client) Save(ctx context.Context, refstr string, params backend.SaveParams) error {
	ref, err := dsref.Parse(refstr)
	if err != nil {
		return err
	}

	saver, ok := c.backend.(backend.Saver)
	if !ok {
		return clienterror.Newf(clienterror.UnsupportedOperation, "save is not supported by the %s backend", c.backend.Name())
	}
	return saver.Save(ctx, ref, params)
}

// Health checks the active backend.
func (c *Client) Health(ctx context.Context) (*healthcheck.CheckState, error) {
	state := healthcheck.NewCheckState(c.backend.Name())
	if err := c.backend.Checker(ctx, state); err != nil {
		return state, err
	}
	return state, nil
}
