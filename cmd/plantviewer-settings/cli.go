package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"plantviewer/internal/config"
	"plantviewer/internal/models"
	"plantviewer/internal/repositories"
)

// newCLIApp builds the settings CLI. Output goes to out.
func newCLIApp(out io.Writer) *cli.App {
	app := &cli.App{
		Name:    "plantviewer-settings",
		Usage:   "Inspect and edit the Plant Viewer settings file",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to settings.json",
				EnvVars: []string{config.EnvSettingsPath},
			},
		},
		Commands: []*cli.Command{
			showCmd(),
			initCmd(),
			setCmd("set-imodel", "Set imodel_name", models.FieldIModelName),
			setCmd("set-project", "Set project_name", models.FieldProjectName),
			setCmd("set-drawing", "Set drawing_name", models.FieldDrawingName),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func repoFor(c *cli.Context) repositories.SettingsRepository {
	path := c.String("file")
	if path == "" {
		path = config.DefaultSettingsPath()
	}
	return repositories.NewSettingsRepository(path)
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the current settings",
		Action: func(c *cli.Context) error {
			record, err := repoFor(c).Load(c.Context)
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, record)
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write the default settings file if none exists",
		Action: func(c *cli.Context) error {
			repo := repoFor(c)
			created, err := repo.EnsureDefault(c.Context)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(c.App.Writer, "created %s\n", repo.Path())
			} else {
				fmt.Fprintf(c.App.Writer, "%s already exists\n", repo.Path())
			}
			return nil
		},
	}
}

func setCmd(name, usage string, field models.SettingsField) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "VALUE",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New(name + " takes exactly one value")
			}
			_, after, err := repoFor(c).Update(c.Context, field, c.Args().First())
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, after)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
