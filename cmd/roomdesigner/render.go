package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"roomdesigner/internal/config"
	"roomdesigner/internal/logger"
	"roomdesigner/internal/metrics"
	"roomdesigner/internal/plan2d"
)

func newRenderCmd(cfg *config.Config) *cobra.Command {
	var out, selected string

	cmd := &cobra.Command{
		Use:   "render <design-id>",
		Short: "Export the 2D plan of a design as PNG or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			e, err := openEnv(c.Context(), *cfg)
			if err != nil {
				return err
			}
			defer e.Close()

			d, ok := e.store.GetDesign(args[0])
			if !ok {
				return fmt.Errorf("design %s not found", args[0])
			}
			if out == "" {
				out = d.ID + ".png"
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()

			start := time.Now()
			switch strings.ToLower(filepath.Ext(out)) {
			case ".svg":
				_, err = f.WriteString(plan2d.RenderSVG(d.RoomSettings, d.Furniture, selected))
				metrics.ObserveRender("svg", time.Since(start))
			case ".png":
				err = plan2d.EncodePNG(f, plan2d.Render(d.RoomSettings, d.Furniture, selected))
				metrics.ObserveRender("png", time.Since(start))
			default:
				return fmt.Errorf("unsupported output %s: use .png or .svg", out)
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			logger.Log.WithField("design", d.ID).WithField("out", out).Info("Rendered plan")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (.png or .svg)")
	cmd.Flags().StringVar(&selected, "selected", "", "Item id to highlight")
	return cmd
}
