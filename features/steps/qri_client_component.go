package steps

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/ONSdigital/dp-qri-client/client"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

// RunFunc runs the command line application with args.
type RunFunc func(args []string, stdout, stderr io.Writer, deps client.Dependencies) error

// QriClientComponent drives the command line application against a scripted
// qri binary and a fake hosted API.
type QriClientComponent struct {
	ErrorFeature
	run    RunFunc
	server *httptest.Server
	deps   *External

	mu       sync.Mutex
	datasets map[string]string
	bodies   map[string]string
	requests []string

	stdout bytes.Buffer
	stderr bytes.Buffer
	runErr error
}

// NewQriClientComponent starts the fake hosted API.
func NewQriClientComponent(run RunFunc) *QriClientComponent {
	log.Namespace = "dp-qri-client"

	c := &QriClientComponent{run: run}

	r := mux.NewRouter()
	r.HandleFunc("/get/{username}/{name}", c.getHandler)
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	c.server = httptest.NewServer(r)

	c.Reset()
	return c
}

// Reset clears everything recorded by a scenario.
func (c *QriClientComponent) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ErrorFeature.Reset()
	c.datasets = map[string]string{}
	c.bodies = map[string]string{}
	c.requests = nil
	c.stdout.Reset()
	c.stderr.Reset()
	c.runErr = nil
	c.deps = &External{
		CloudURL: c.server.URL,
		Qri:      &FakeQri{Responses: map[string]QriResponse{}},
	}
}

// Close stops the fake hosted API.
func (c *QriClientComponent) Close() {
	c.server.Close()
}

func (c *QriClientComponent) getHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	ref := vars["username"] + "/" + vars["name"]

	c.mu.Lock()
	c.requests = append(c.requests, req.URL.RequestURI())
	dataset, ok := c.datasets[ref]
	body := c.bodies[ref]
	c.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "dataset %s not found", ref)
		return
	}
	if req.URL.Query().Get("component") == "body" {
		w.Header().Set("Content-Type", "text/csv")
		io.WriteString(w, body)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"data": {"dataset": %s}}`, dataset)
}

func (c *QriClientComponent) runCommand(line string) {
	c.stdout.Reset()
	c.stderr.Reset()
	c.runErr = c.run(splitArgs(line), &c.stdout, &c.stderr, c.deps)
}

// splitArgs splits a command line on spaces, keeping single-quoted text
// together.
func splitArgs(line string) []string {
	var args []string
	var current strings.Builder
	quoted, started := false, false
	for _, r := range line {
		switch {
		case r == '\'':
			quoted = !quoted
			started = true
		case r == ' ' && !quoted:
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if started {
		args = append(args, current.String())
	}
	return args
}
