// Package dataset provides the Dataset entity handed to callers of the client.
// A Dataset built from a listing holds only summary information and fetches
// its full metadata from the backend the first time it is needed.
package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/ONSdigital/dp-qri-client/backend"
	"github.com/ONSdigital/dp-qri-client/clienterror"
	"github.com/ONSdigital/dp-qri-client/dsref"
	"github.com/ONSdigital/dp-qri-client/model"
	"github.com/ONSdigital/dp-qri-client/tabular"
	"github.com/ONSdigital/log.go/v2/log"
)

// VersionInfo is the summary a listing returns for each dataset.
type VersionInfo struct {
	BodySize   *int64
	BodyRows   *int
	BodyFormat string
	NumErrors  *int
	CommitTime *time.Time
}

// Readme is the decoded readme of a dataset.
type Readme struct {
	Script string
}

func (r *Readme) String() string {
	if r == nil {
		return ""
	}
	return r.Script
}

// state is either *summary or *full.
type state interface {
	populated() bool
}

type summary struct {
	info VersionInfo
}

func (*summary) populated() bool { return false }

type full struct {
	commit       *model.Commit
	meta         *model.Meta
	readme       *Readme
	structure    *model.Structure
	bodyPath     string
	previousPath string
}

func (*full) populated() bool { return true }

// Dataset is one dataset in the repository.
type Dataset struct {
	username  string
	name      string
	profileID string
	path      string

	backend backend.Backend
	state   state
	body    *tabular.Table
}

// New builds a Dataset from obj. A short-form object produces an unpopulated
// Dataset that fetches its metadata through b on demand.
func New(obj model.DatasetObject, b backend.Backend) *Dataset {
	d := &Dataset{
		username:  obj.Owner(),
		name:      obj.Name,
		profileID: obj.ProfileID,
		path:      obj.Path,
		backend:   b,
	}
	if obj.IsSummary() {
		d.state = &summary{info: versionInfo(obj)}
	} else {
		d.state = newFull(obj)
	}
	return d
}

func versionInfo(obj model.DatasetObject) VersionInfo {
	return VersionInfo{
		BodySize:   obj.BodySize,
		BodyRows:   obj.BodyRows,
		BodyFormat: obj.Format(),
		NumErrors:  obj.NumErrors,
		CommitTime: obj.CommitTime,
	}
}

func newFull(obj model.DatasetObject) *full {
	f := &full{
		commit:       obj.Commit,
		meta:         obj.Meta,
		structure:    obj.Structure,
		bodyPath:     obj.BodyPath,
		previousPath: obj.PreviousPath,
	}
	if obj.Readme != nil {
		f.readme = &Readme{Script: string(obj.Readme.ScriptBytes)}
	}
	return f
}

// Username returns the owner of the dataset.
func (d *Dataset) Username() string { return d.username }

// Name returns the name of the dataset.
func (d *Dataset) Name() string { return d.name }

// ProfileID returns the profile ID of the owner.
func (d *Dataset) ProfileID() string { return d.profileID }

// Path returns the content address of the version.
func (d *Dataset) Path() string { return d.path }

// Ref returns the reference of the dataset.
func (d *Dataset) Ref() dsref.Ref {
	return dsref.Ref{Username: d.username, Name: d.name}
}

// HumanRef returns the username/name form of the reference.
func (d *Dataset) HumanRef() string {
	return d.Ref().Human()
}

func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset(%q)", d.HumanRef())
}

// IsPopulated reports whether the full metadata is held.
func (d *Dataset) IsPopulated() bool {
	return d.state.populated()
}

// VersionInfo returns the listing summary, or nil for a Dataset that was built
// from a full object.
func (d *Dataset) VersionInfo() *VersionInfo {
	if s, ok := d.state.(*summary); ok {
		info := s.info
		return &info
	}
	return nil
}

// populate fetches the full object once. On error the Dataset is left as it
// was.
func (d *Dataset) populate(ctx context.Context) (*full, error) {
	if f, ok := d.state.(*full); ok {
		return f, nil
	}

	ref := d.Ref()
	log.Info(ctx, "populating dataset", log.Data{"ref": ref.Human()})
	obj, err := d.backend.GetDatasetObject(ctx, ref)
	if err != nil {
		return nil, err
	}

	f := newFull(obj)
	d.state = f
	return f, nil
}

// Commit returns the commit of the version.
func (d *Dataset) Commit(ctx context.Context) (*model.Commit, error) {
	f, err := d.populate(ctx)
	if err != nil {
		return nil, err
	}
	return f.commit, nil
}

// Meta returns the descriptive metadata.
func (d *Dataset) Meta(ctx context.Context) (*model.Meta, error) {
	f, err := d.populate(ctx)
	if err != nil {
		return nil, err
	}
	return f.meta, nil
}

// Readme returns the readme, or nil when the dataset has none.
func (d *Dataset) Readme(ctx context.Context) (*Readme, error) {
	f, err := d.populate(ctx)
	if err != nil {
		return nil, err
	}
	return f.readme, nil
}

// Structure returns the structure describing the body.
func (d *Dataset) Structure(ctx context.Context) (*model.Structure, error) {
	f, err := d.populate(ctx)
	if err != nil {
		return nil, err
	}
	return f.structure, nil
}

// BodyPath returns the content address of the body.
func (d *Dataset) BodyPath(ctx context.Context) (string, error) {
	f, err := d.populate(ctx)
	if err != nil {
		return "", err
	}
	return f.bodyPath, nil
}

// PreviousPath returns the content address of the previous version.
func (d *Dataset) PreviousPath(ctx context.Context) (string, error) {
	f, err := d.populate(ctx)
	if err != nil {
		return "", err
	}
	return f.previousPath, nil
}

// Body returns the materialized body. It is loaded once and then cached.
func (d *Dataset) Body(ctx context.Context) (*tabular.Table, error) {
	if d.body != nil {
		return d.body, nil
	}

	f, err := d.populate(ctx)
	if err != nil {
		return nil, err
	}
	if f.structure == nil {
		return nil, clienterror.Newf(clienterror.UnsupportedFormat, "%s has no structure, cannot read body", d.HumanRef())
	}
	if err := backend.CheckFormat(f.structure); err != nil {
		return nil, err
	}

	body, err := d.backend.LoadBody(ctx, d.Ref(), f.structure)
	if err != nil {
		return nil, err
	}
	d.body = body
	return body, nil
}
