package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

type rootFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "intraship",
		Short:         "Render DHL Intraship shipment requests",
		Long:          "intraship validates shipment requests against the carrier rules and renders them into the Intraship XML structure.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "intraship.yaml", "path to the YAML configuration file")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if _, debug := os.LookupEnv("DEBUG"); debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show intraship version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "intraship %s (%s)\n", version, commit)
			return nil
		},
	}
}
