package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "graphql-codegen",
		Short:         "Generate typed @mntm/graphql hooks and requests from GraphQL documents",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return run(cmd.Context(), afero.NewOsFs(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "config file (default: first of "+joinFilenames()+")")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show debug logs")

	return cmd
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		color.Red.Println(err)
		stop()
		os.Exit(1)
	}
}
