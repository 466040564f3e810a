package model

import (
	"time"
)

// DatasetObject is a dataset as emitted by either backend.
// A full object from "get" looks like this:
//
//	{
//	    "peername": <>,
//	    "name": <>,
//	    "profileID": <>,
//	    "path": "/ipfs/<>",
//	    "bodyPath": "/ipfs/<>",
//	    "previousPath": "/ipfs/<>",
//	    "commit": {"author": {"id": <>}, "message": <>, "timestamp": <>, "title": <>},
//	    "meta": {"title": <>, "description": <>, "keywords": [<>]},
//	    "readme": {"scriptBytes": <base64>},
//	    "structure": {
//	        "format": "csv",
//	        "formatConfig": {"headerRow": true},
//	        "schema": {"type": "array", "items": {"type": "array", "items": [{"title": <>, "type": <>}]}},
//	        "checksum": <>, "entries": <>, "depth": <>, "length": <>
//	    }
//	}
//
// A short object from "list" instead carries bodySize, bodyRows, bodyFormat,
// numErrors and commitTime alongside the identity fields.
type DatasetObject struct {
	Username     string     `json:"username,omitempty"`
	Peername     string     `json:"peername,omitempty"`
	Name         string     `json:"name,omitempty"`
	ProfileID    string     `json:"profileID,omitempty"`
	Path         string     `json:"path,omitempty"`
	BodyPath     string     `json:"bodyPath,omitempty"`
	PreviousPath string     `json:"previousPath,omitempty"`
	FSIPath      string     `json:"fsiPath,omitempty"`
	Commit       *Commit    `json:"commit,omitempty"`
	Meta         *Meta      `json:"meta,omitempty"`
	Readme       *Readme    `json:"readme,omitempty"`
	Structure    *Structure `json:"structure,omitempty"`

	// short form only
	BodySize   *int64     `json:"bodySize,omitempty"`
	BodyRows   *int       `json:"bodyRows,omitempty"`
	BodyFormat *string    `json:"bodyFormat,omitempty"`
	NumErrors  *int       `json:"numErrors,omitempty"`
	CommitTime *time.Time `json:"commitTime,omitempty"`

	// BodyFromat is a misspelling of bodyFormat still emitted by older versions of qri.
	BodyFromat *string `json:"bodyFromat,omitempty"`
}

// IsSummary reports whether the object came from a listing rather than a full
// get, judged by the presence of any short-form-only field.
func (o DatasetObject) IsSummary() bool {
	return o.BodySize != nil ||
		o.BodyRows != nil ||
		o.BodyFormat != nil ||
		o.BodyFromat != nil ||
		o.NumErrors != nil ||
		o.CommitTime != nil
}

// Owner returns the username, falling back to the peername used by older tools.
func (o DatasetObject) Owner() string {
	if o.Username == "" {
		return o.Peername
	}
	return o.Username
}

// Format returns the declared body format of a short-form object.
func (o DatasetObject) Format() string {
	switch {
	case o.BodyFormat != nil:
		return *o.BodyFormat
	case o.BodyFromat != nil:
		return *o.BodyFromat
	}
	return ""
}

// Author identifies the author of a commit.
type Author struct {
	ID string `json:"id,omitempty"`
}

// Commit describes the version a dataset object was read at.
type Commit struct {
	Author    *Author   `json:"author,omitempty"`
	Message   string    `json:"message,omitempty"`
	Path      string    `json:"path,omitempty"`
	Signature string    `json:"signature,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Title     string    `json:"title,omitempty"`
}

// Citation is a reference to a work the dataset relies on.
type Citation struct {
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

// Contributor is a person credited for the dataset.
type Contributor struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// License names the terms the dataset is distributed under.
type License struct {
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Meta holds descriptive, human-authored metadata.
type Meta struct {
	AccessURL          string         `json:"accessURL,omitempty"`
	AccrualPeriodicity string         `json:"accrualPeriodicity,omitempty"`
	Citations          []*Citation    `json:"citations,omitempty"`
	Contributors       []*Contributor `json:"contributors,omitempty"`
	Description        string         `json:"description,omitempty"`
	DownloadURL        string         `json:"downloadURL,omitempty"`
	HomeURL            string         `json:"homeURL,omitempty"`
	Identifier         string         `json:"identifier,omitempty"`
	Keywords           []string       `json:"keywords,omitempty"`
	Language           []string       `json:"language,omitempty"`
	License            *License       `json:"license,omitempty"`
	Path               string         `json:"path,omitempty"`
	ReadmeURL          string         `json:"readmeURL,omitempty"`
	Title              string         `json:"title,omitempty"`
	Theme              []string       `json:"theme,omitempty"`
	Version            string         `json:"version,omitempty"`
}

// Readme is an embedded markdown script. ScriptBytes is base64 on the wire.
type Readme struct {
	ScriptBytes []byte `json:"scriptBytes,omitempty"`
}
