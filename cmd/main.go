package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func Main(info VersionTags) {
	app := NewApp(info)
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func NewApp(info VersionTags) *cli.App {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "grammarguide"
	app.Usage = "inspect the rules of an EBNF grammar"
	app.Version = info.Version
	app.Metadata = map[string]interface{}{
		"commit": info.GitCommit,
		"built":  info.BuildDate,
		"os":     info.BuildOS,
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "verbose logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			logrus.SetLevel(logrus.TraceLevel)
		}
		return nil
	}

	app.Commands = []cli.Command{parseCommand, graphCommand, treeCommand}
	return app
}
