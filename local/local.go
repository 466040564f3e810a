// Package local reaches the dataset repository through a locally installed
// qri binary.
package local

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"unicode/utf8"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-qri-client/backend"
	"github.com/ONSdigital/dp-qri-client/clienterror"
	"github.com/ONSdigital/dp-qri-client/dsref"
	"github.com/ONSdigital/dp-qri-client/model"
	"github.com/ONSdigital/dp-qri-client/tabular"
	"github.com/ONSdigital/log.go/v2/log"
)

// InstallMessage is shown when the qri binary disappears between start up and
// an invocation.
const InstallMessage = `qri is not installed or is not on your PATH.
Install it from https://qri.io/download, or set QRI_BACKEND=cloud to use the hosted API.`

var _ backend.Backend = &Backend{}
var _ backend.SQLRunner = &Backend{}
var _ backend.Saver = &Backend{}

// Backend implements backend.Backend by running qri commands.
type Backend struct {
	runner Runner

	// OnToolMissing is called when the binary cannot be found at invocation
	// time. The default logs a fatal event, prints InstallMessage and exits.
	OnToolMissing func(ctx context.Context, err error)
}

// New returns a Backend using runner to invoke qri.
func New(runner Runner) *Backend {
	return &Backend{
		runner:        runner,
		OnToolMissing: exitToolMissing,
	}
}

func exitToolMissing(ctx context.Context, err error) {
	log.Fatal(ctx, "qri binary not found", err)
	fmt.Fprintln(os.Stderr, InstallMessage)
	os.Exit(1)
}

// Name implements backend.Backend.
func (b *Backend) Name() string {
	return backend.Local
}

// ListDatasetObjects runs "qri list". Filtering by username is not supported.
func (b *Backend) ListDatasetObjects(ctx context.Context, username string) ([]model.DatasetObject, error) {
	if username != "" {
		return nil, clienterror.New(clienterror.UnsupportedOperation, "listing by username is not supported by the local backend")
	}

	out, err := b.run(ctx, "list", "--format", "json")
	if err != nil {
		return nil, err
	}

	var objs []model.DatasetObject
	if err := json.Unmarshal(out, &objs); err != nil {
		return nil, clienterror.Wrap(clienterror.BackendError, err, "could not parse qri list output")
	}
	return objs, nil
}

// GetDatasetObject runs "qri get". qri may print notices before the json
// payload (for example when it auto-fetches a dataset), so decoding starts at
// the first opening brace.
func (b *Backend) GetDatasetObject(ctx context.Context, ref dsref.Ref) (model.DatasetObject, error) {
	var obj model.DatasetObject

	out, err := b.run(ctx, "get", "--format", "json", ref.Human())
	if err != nil {
		return obj, err
	}

	start := bytes.IndexByte(out, '{')
	if start < 0 {
		return obj, clienterror.NewFromBytes(clienterror.BackendError, append([]byte("no dataset in qri output: "), out...))
	}
	if err := json.NewDecoder(bytes.NewReader(out[start:])).Decode(&obj); err != nil {
		return obj, clienterror.Wrap(clienterror.BackendError, err, fmt.Sprintf("could not parse qri get output for %s", ref))
	}
	return obj, nil
}

// PullDataset runs "qri pull" and returns its output.
func (b *Backend) PullDataset(ctx context.Context, ref dsref.Ref) (string, error) {
	out, err := b.run(ctx, "pull", ref.Human())
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// LoadBody runs "qri get body" and materializes the csv it prints.
func (b *Backend) LoadBody(ctx context.Context, ref dsref.Ref, st *model.Structure) (*tabular.Table, error) {
	if err := backend.CheckFormat(st); err != nil {
		return nil, err
	}

	out, err := b.run(ctx, "get", "body", ref.Human())
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(out) {
		return nil, clienterror.Newf(clienterror.BackendError, "body of %s is not valid utf-8", ref)
	}

	return tabular.Materialize(string(out), st.Columns(), st.HeaderRow())
}

// SQL runs "qri sql" and builds a table from the json records it prints.
func (b *Backend) SQL(ctx context.Context, query string) (*tabular.Table, error) {
	out, err := b.run(ctx, "sql", "--format", "json", query)
	if err != nil {
		return nil, err
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(out, &records); err != nil {
		return nil, clienterror.Wrap(clienterror.BackendError, err, "could not parse qri sql output")
	}
	return tabular.FromRecords(records), nil
}

// Save runs "qri save" to commit a new version of ref.
func (b *Backend) Save(ctx context.Context, ref dsref.Ref, params backend.SaveParams) error {
	args := []string{"save", ref.Human()}
	if params.BodyPath != "" {
		args = append(args, "--body", params.BodyPath)
	}
	if params.Title != "" {
		args = append(args, "--title", params.Title)
	}
	if params.Message != "" {
		args = append(args, "--message", params.Message)
	}
	if params.Force {
		args = append(args, "--force")
	}

	_, err := b.run(ctx, args...)
	return err
}

// Checker reports whether the qri binary can be found. It does not run it.
func (b *Backend) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	path, err := b.runner.LookPath()
	if err != nil {
		log.Warn(ctx, "qri binary not found", log.Data{"error": err.Error()})
		return state.Update(healthcheck.StatusCritical, "qri binary not found", 0)
	}
	return state.Update(healthcheck.StatusOK, "qri binary found at "+path, 0)
}

// run invokes qri. A zero exit code is success even when qri wrote to
// stderr; anything on stderr is then only logged.
func (b *Backend) run(ctx context.Context, args ...string) ([]byte, error) {
	logData := log.Data{"args": args}
	log.Info(ctx, "running qri", logData)

	stdout, stderr, code, err := b.runner.Run(ctx, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			b.OnToolMissing(ctx, err)
			return nil, clienterror.Wrap(clienterror.ToolNotFound, err, InstallMessage)
		}
		return nil, clienterror.Wrap(clienterror.BackendError, err, fmt.Sprintf("could not run qri %s: %s", args[0], err))
	}

	if code != 0 {
		logData["exit_code"] = code
		log.Warn(ctx, "qri exited with an error", logData)
		msg := stderr
		if len(bytes.TrimSpace(msg)) == 0 {
			msg = stdout
		}
		if len(bytes.TrimSpace(msg)) == 0 {
			return nil, clienterror.Newf(clienterror.BackendError, "qri %s exited with status %d", args[0], code)
		}
		return nil, clienterror.NewFromBytes(clienterror.BackendError, msg)
	}

	if len(stderr) > 0 {
		logData["stderr"] = clienterror.StripColor(string(stderr))
		log.Info(ctx, "qri wrote to stderr", logData)
	}
	return stdout, nil
}
