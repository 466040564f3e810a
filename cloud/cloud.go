// Package cloud reaches the dataset repository through the hosted qri API.
package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-qri-client/backend"
	"github.com/ONSdigital/dp-qri-client/clienterror"
	"github.com/ONSdigital/dp-qri-client/dsref"
	"github.com/ONSdigital/dp-qri-client/model"
	"github.com/ONSdigital/dp-qri-client/tabular"
	"github.com/ONSdigital/log.go/v2/log"
)

// MeAlias is the username that stands for the current user.
const MeAlias = "me"

// MissingAPIMessage is shown when an operation is not yet offered by the
// hosted API.
const MissingAPIMessage = `The qri cloud API does not support listing datasets yet.
Install qri locally from https://qri.io/download to list the datasets in your repository.`

var _ backend.Backend = &Backend{}

// HTTPClient is the subset of dphttp.Clienter used by the Backend.
type HTTPClient interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Checker checks the health of an api.
type Checker func(ctx context.Context, state *healthcheck.CheckState) error

// Backend implements backend.Backend over http.
type Backend struct {
	baseURL  string
	username string
	client   HTTPClient
	checker  Checker
}

// New returns a Backend for the api at baseURL. username, when set, replaces
// the "me" alias in references.
func New(baseURL, username string, client HTTPClient) *Backend {
	baseURL = strings.TrimRight(baseURL, "/")
	return &Backend{
		baseURL:  baseURL,
		username: username,
		client:   client,
		checker:  health.NewClient("qri cloud", baseURL).Checker,
	}
}

// Name implements backend.Backend.
func (b *Backend) Name() string {
	return backend.Cloud
}

// ListDatasetObjects is not offered by the hosted API.
func (b *Backend) ListDatasetObjects(ctx context.Context, username string) ([]model.DatasetObject, error) {
	return nil, clienterror.New(clienterror.CloudUnavailable, MissingAPIMessage)
}

type getResponse struct {
	Data *struct {
		Dataset *model.DatasetObject `json:"dataset"`
	} `json:"data"`
}

// GetDatasetObject fetches the full object for ref.
func (b *Backend) GetDatasetObject(ctx context.Context, ref dsref.Ref) (model.DatasetObject, error) {
	var obj model.DatasetObject

	body, err := b.get(ctx, b.getURL(ref, nil))
	if err != nil {
		return obj, err
	}

	var resp getResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return obj, clienterror.Wrap(clienterror.BackendError, err, fmt.Sprintf("could not parse response for %s", ref))
	}
	if resp.Data == nil || resp.Data.Dataset == nil {
		return obj, clienterror.Newf(clienterror.BackendError, "response for %s has no dataset", ref)
	}
	return *resp.Data.Dataset, nil
}

// PullDataset returns the raw response of a get, since the hosted API has no
// separate pull.
func (b *Backend) PullDataset(ctx context.Context, ref dsref.Ref) (string, error) {
	body, err := b.get(ctx, b.getURL(ref, nil))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// LoadBody downloads the whole body of ref as csv and materializes it.
func (b *Backend) LoadBody(ctx context.Context, ref dsref.Ref, st *model.Structure) (*tabular.Table, error) {
	if err := backend.CheckFormat(st); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("component", "body")
	query.Set("format", backend.CSV)
	query.Set("download", "true")
	query.Set("all", "true")

	body, err := b.get(ctx, b.getURL(ref, query))
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(body) {
		return nil, clienterror.Newf(clienterror.BackendError, "body of %s is not valid utf-8", ref)
	}

	return tabular.Materialize(string(body), st.Columns(), st.HeaderRow())
}

// Checker reports the health of the api.
func (b *Backend) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	return b.checker(ctx, state)
}

// resolve substitutes the configured username for the "me" alias.
func (b *Backend) resolve(ref dsref.Ref) dsref.Ref {
	if ref.Username == MeAlias && b.username != "" {
		return ref.WithUsername(b.username)
	}
	return ref
}

func (b *Backend) getURL(ref dsref.Ref, query url.Values) string {
	ref = b.resolve(ref)
	u := fmt.Sprintf("%s/get/%s/%s", b.baseURL, url.PathEscape(ref.Username), url.PathEscape(ref.Name))
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (b *Backend) get(ctx context.Context, u string) ([]byte, error) {
	logData := log.Data{"url": u}
	log.Info(ctx, "requesting qri cloud", logData)

	resp, err := b.client.Get(ctx, u)
	if err != nil {
		log.Error(ctx, "qri cloud request failed", err, logData)
		return nil, clienterror.Wrap(clienterror.BackendError, err, fmt.Sprintf("request to qri cloud failed: %s", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, clienterror.Wrap(clienterror.BackendError, err, "could not read qri cloud response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logData["status_code"] = resp.StatusCode
		log.Warn(ctx, "qri cloud returned an error", logData)
		if len(strings.TrimSpace(string(body))) == 0 {
			return nil, clienterror.Newf(clienterror.BackendError, "qri cloud returned %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return nil, clienterror.NewFromBytes(clienterror.BackendError, body)
	}
	return body, nil
}
