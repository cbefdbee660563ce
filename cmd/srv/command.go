package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "paio"
	app.Usage = "Personal quest and productivity server"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path of the configuration file",
			Value: "config.toml",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Used for start service api, it main service included all apis.`,
		},
		{
			Action:      server.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate the database to the latest version",
			Category:    "Database",
			Description: `Applies every pending schema migration, including seed data.`,
		},
	}

	s.app = app
}
