// Package backend defines the capability set every route to the dataset
// repository provides, whether that is a local qri binary or the hosted API.
package backend

import (
	"context"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-qri-client/clienterror"
	"github.com/ONSdigital/dp-qri-client/dsref"
	"github.com/ONSdigital/dp-qri-client/model"
	"github.com/ONSdigital/dp-qri-client/tabular"
)

// Names of the concrete backends.
const (
	Local = "local"
	Cloud = "cloud"
)

// CSV is the only body format that can be materialized.
const CSV = "csv"

// Generate mocks of dependencies
//
//go:generate moq -pkg dataset_test -out ../dataset/moq_backend_test.go . Backend
//go:generate moq -pkg client_test -out ../client/moq_backend_test.go . Backend

// Backend is the set of repository operations the rest of the client
// depends on.
type Backend interface {
	// ListDatasetObjects returns short-form objects for the datasets in the
	// repository, optionally restricted to one owner.
	ListDatasetObjects(ctx context.Context, username string) ([]model.DatasetObject, error)
	// GetDatasetObject returns the full object for ref.
	GetDatasetObject(ctx context.Context, ref dsref.Ref) (model.DatasetObject, error)
	// PullDataset fetches ref from the registry and returns the raw response.
	PullDataset(ctx context.Context, ref dsref.Ref) (string, error)
	// LoadBody fetches and materializes the body of ref described by st.
	LoadBody(ctx context.Context, ref dsref.Ref, st *model.Structure) (*tabular.Table, error)
	// Checker reports the health of the backend.
	Checker(ctx context.Context, state *healthcheck.CheckState) error
	// Name is Local or Cloud.
	Name() string
}

// SQLRunner is implemented by backends that can run sql queries.
type SQLRunner interface {
	SQL(ctx context.Context, query string) (*tabular.Table, error)
}

// SaveParams are the options of a save.
type SaveParams struct {
	BodyPath string
	Title    string
	Message  string
	Force    bool
}

// Saver is implemented by backends that can commit a new dataset version.
type Saver interface {
	Save(ctx context.Context, ref dsref.Ref, params SaveParams) error
}

// CheckFormat fails unless st describes a csv body.
func CheckFormat(st *model.Structure) error {
	if st == nil {
		return clienterror.New(clienterror.UnsupportedFormat, "cannot read body without structure")
	}
	if st.Format != CSV {
		return clienterror.Newf(clienterror.UnsupportedFormat, "format %q not supported, only csv body format is supported", st.Format)
	}
	return nil
}
