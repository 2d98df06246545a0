package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aria3ppp/intraship/internal/intraship/app"
	"github.com/aria3ppp/intraship/internal/intraship/app/config"
	"github.com/aria3ppp/intraship/internal/intraship/domain"
	"github.com/spf13/cobra"

	goccy_json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var (
		format     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "render <request-file>",
		Short: "Render a shipment request file to Intraship XML",
		Long:  "Read a JSON or YAML shipment request, apply the carrier rules and print the ShipmentOrder XML.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr())

			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			input, err := readRenderInput(args[0], format)
			if err != nil {
				return err
			}

			result, err := app.NewUseCase(cfg, nil, logger).Render(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("render failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), result.Document)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "request file format: json or yaml (default: from extension)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the render result as JSON")
	return cmd
}

func readRenderInput(path, format string) (*domain.RenderInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}

	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	var input domain.RenderInput
	switch format {
	case "json":
		err = goccy_json.Unmarshal(data, &input)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &input)
	default:
		return nil, fmt.Errorf("unsupported request format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &input, nil
}
