package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-qri-client/backend"
	"github.com/ONSdigital/dp-qri-client/dataset"
	"github.com/ONSdigital/dp-qri-client/model"
	"github.com/ONSdigital/dp-qri-client/tabular"
	"github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var listCmdDef = cli.Command{
	Name:      "list",
	Usage:     "List the datasets in the repository",
	ArgsUsage: "[username]",
	Action: func(c *cli.Context) error {
		list, err := clientFrom(c).List(c.Context, c.Args().First())
		if err != nil {
			return err
		}
		return printList(c.App.Writer, list)
	},
}

var getCmdDef = cli.Command{
	Name:      "get",
	Usage:     "Print the metadata of a dataset as json",
	ArgsUsage: "<username/name>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("get requires exactly one reference")
		}
		d, err := clientFrom(c).Get(c.Context, c.Args().First())
		if err != nil {
			return err
		}
		view, err := newDatasetView(c, d)
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%s\n", b)
		return nil
	},
}

var readmeCmdDef = cli.Command{
	Name:      "readme",
	Usage:     "Print the readme of a dataset",
	ArgsUsage: "<username/name>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("readme requires exactly one reference")
		}
		d, err := clientFrom(c).Get(c.Context, c.Args().First())
		if err != nil {
			return err
		}
		readme, err := d.Readme(c.Context)
		if err != nil {
			return err
		}
		if readme == nil {
			return fmt.Errorf("%s has no readme", d.HumanRef())
		}
		fmt.Fprintln(c.App.Writer, readme.String())
		return nil
	},
}

var bodyCmdDef = cli.Command{
	Name:      "body",
	Usage:     "Print the body of a dataset as a table",
	ArgsUsage: "<username/name>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("body requires exactly one reference")
		}
		d, err := clientFrom(c).Get(c.Context, c.Args().First())
		if err != nil {
			return err
		}
		table, err := d.Body(c.Context)
		if err != nil {
			return err
		}
		return printTable(c.App.Writer, table)
	},
}

var pullCmdDef = cli.Command{
	Name:      "pull",
	Usage:     "Pull a dataset from the registry into the repository",
	ArgsUsage: "<username/name>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("pull requires exactly one reference")
		}
		_, err := clientFrom(c).Pull(c.Context, c.Args().First())
		return err
	},
}

var addCmdDef = cli.Command{
	Name:      "add",
	Usage:     "Alias for pull",
	ArgsUsage: "<username/name>",
	Action:    pullCmdDef.Action,
}

var sqlCmdDef = cli.Command{
	Name:      "sql",
	Usage:     "Run a sql query against the repository",
	ArgsUsage: "<query>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("sql requires exactly one query")
		}
		table, err := clientFrom(c).SQL(c.Context, c.Args().First())
		if err != nil {
			return err
		}
		return printTable(c.App.Writer, table)
	},
}

var saveCmdDef = cli.Command{
	Name:      "save",
	Usage:     "Commit a new version of a dataset",
	ArgsUsage: "<username/name>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      "body",
			Usage:     "Path to the new body",
			TakesFile: true,
			Required:  true,
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Title of the commit",
		},
		&cli.StringFlag{
			Name:  "message",
			Usage: "Message of the commit",
		},
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Save even if nothing changed",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("save requires exactly one reference")
		}
		params := backend.SaveParams{
			BodyPath: c.String("body"),
			Title:    c.String("title"),
			Message:  c.String("message"),
			Force:    c.Bool("force"),
		}
		if err := clientFrom(c).Save(c.Context, c.Args().First(), params); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Saved %s\n", c.Args().First())
		return nil
	},
}

var healthCmdDef = cli.Command{
	Name:  "health",
	Usage: "Check that the repository can be reached",
	Action: func(c *cli.Context) error {
		state, err := clientFrom(c).Health(c.Context)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%s: ", state.Name())
		statusColor(state.Status()).Fprint(c.App.Writer, state.Status())
		fmt.Fprintf(c.App.Writer, " %s\n", state.Message())
		if state.Status() == healthcheck.StatusCritical {
			return fmt.Errorf("%s backend is unhealthy", state.Name())
		}
		return nil
	},
}

func statusColor(status string) *color.Color {
	switch status {
	case healthcheck.StatusOK:
		return color.New(color.FgHiGreen, color.Bold)
	case healthcheck.StatusWarning:
		return color.New(color.FgHiYellow, color.Bold)
	default:
		return color.New(color.FgHiRed, color.Bold)
	}
}

type datasetView struct {
	Ref          string           `json:"ref"`
	Path         string           `json:"path,omitempty"`
	BodyPath     string           `json:"bodyPath,omitempty"`
	PreviousPath string           `json:"previousPath,omitempty"`
	Commit       *model.Commit    `json:"commit,omitempty"`
	Meta         *model.Meta      `json:"meta,omitempty"`
	Structure    *model.Structure `json:"structure,omitempty"`
}

func newDatasetView(c *cli.Context, d *dataset.Dataset) (*datasetView, error) {
	view := &datasetView{Ref: d.HumanRef(), Path: d.Path()}
	var err error
	if view.Commit, err = d.Commit(c.Context); err != nil {
		return nil, err
	}
	if view.Meta, err = d.Meta(c.Context); err != nil {
		return nil, err
	}
	if view.Structure, err = d.Structure(c.Context); err != nil {
		return nil, err
	}
	if view.BodyPath, err = d.BodyPath(c.Context); err != nil {
		return nil, err
	}
	if view.PreviousPath, err = d.PreviousPath(c.Context); err != nil {
		return nil, err
	}
	return view, nil
}

func printList(w io.Writer, list dataset.List) error {
	if list == nil {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REF\tROWS\tSIZE\tFORMAT")
	for _, d := range list {
		rows, size, format := "-", "-", "-"
		if info := d.VersionInfo(); info != nil {
			if info.BodyRows != nil {
				rows = fmt.Sprint(*info.BodyRows)
			}
			if info.BodySize != nil {
				size = units.HumanSize(float64(*info.BodySize))
			}
			if info.BodyFormat != "" {
				format = info.BodyFormat
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.HumanRef(), rows, size, format)
	}
	return tw.Flush()
}

func printTable(w io.Writer, table *tabular.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	names := table.Names()
	for i, name := range names {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, name)
	}
	fmt.Fprintln(tw)
	for i := 0; i < table.Rows(); i++ {
		row, err := table.Row(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			if j > 0 {
				fmt.Fprint(tw, "\t")
			}
			if v != nil {
				fmt.Fprint(tw, v)
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
