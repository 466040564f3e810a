package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ONSdigital/dp-qri-client/client"
	"github.com/ONSdigital/dp-qri-client/config"
	"github.com/ONSdigital/dp-qri-client/external"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

const serviceName = "dp-qri-client"

var (
	// BuildTime represents the time in which the service was built
	BuildTime string
	// GitCommit represents the commit (SHA-1) hash of the service that is running
	GitCommit string
	// Version represents the version of the service that is running
	Version string
)

const clientKey = "client"

func makeApp(stdin io.Reader, stdout, stderr io.Writer, deps client.Dependencies) *cli.App {
	app := cli.NewApp()
	app.Name = "qri-client"
	app.Version = Version
	app.Usage = "List, fetch and pull datasets from a qri repository."
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Reader = stdin
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Write log events to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		return setup(c, deps)
	}
	app.ExitErrHandler = exitErrHandler
	app.Commands = []*cli.Command{
		&listCmdDef,
		&getCmdDef,
		&readmeCmdDef,
		&bodyCmdDef,
		&pullCmdDef,
		&addCmdDef,
		&sqlCmdDef,
		&saveCmdDef,
		&healthCmdDef,
	}
	return app
}

// setup configures logging and builds the client shared by every command.
func setup(c *cli.Context, deps client.Dependencies) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("unable to retrieve configuration: %w", err)
	}

	if c.Bool("verbose") || cfg.Verbose {
		log.SetDestination(c.App.ErrWriter, c.App.ErrWriter)
	} else {
		log.SetDestination(io.Discard, c.App.ErrWriter)
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log.Info(ctx, "config on startup", log.Data{"config": cfg, "build_time": BuildTime, "git_commit": GitCommit})

	qc, err := client.New(ctx, cfg, deps, c.App.Writer)
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[clientKey] = qc
	return nil
}

func clientFrom(c *cli.Context) *client.Client {
	return c.App.Metadata[clientKey].(*client.Client)
}

// Called after a command returns an non-nil error value.
// Prints the error to stderr.
func exitErrHandler(c *cli.Context, err error) {
	if err == nil {
		return
	}
	color.New(color.FgHiRed, color.Bold).Fprint(c.App.ErrWriter, "error: ")
	fmt.Fprintf(c.App.ErrWriter, "%s\n", err)
}

func main() {
	log.Namespace = serviceName

	err := makeApp(os.Stdin, os.Stdout, os.Stderr, &external.External{}).Run(os.Args)
	if err != nil {
		os.Exit(1)
	}
}
