package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"goaffine/internal/console"
	"goaffine/internal/geom"
	"goaffine/internal/scene"
	"goaffine/internal/tui"
	"goaffine/internal/web"
	"goaffine/internal/window"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug     bool
		scenePath string
		wkt       string
	)

	loadScene := func() (scene.Scene, error) {
		switch {
		case scenePath != "":
			return scene.Load(scenePath)
		case wkt != "":
			poly, err := geom.ParsePolygonWKT(wkt)
			if err != nil {
				return scene.Scene{}, err
			}
			return scene.FromBase(poly), nil
		default:
			return scene.Default(), nil
		}
	}

	root := &cobra.Command{
		Use:          "goaffine",
		Short:        "goaffine — 2D affine transform explorer",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			scn, err := loadScene()
			if err != nil {
				return err
			}
			return tui.Run(scn, scene.DefaultNormalDemo())
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&scenePath, "scene", "", "YAML scene file defining the base polygon and variants")
	root.PersistentFlags().StringVar(&wkt, "wkt", "", "WKT POLYGON replacing the base shape")

	root.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "List every polygon's vertices and the normal demo on stdout",
		RunE: func(_ *cobra.Command, _ []string) error {
			scn, err := loadScene()
			if err != nil {
				return err
			}
			console.Print(os.Stdout, scn, scene.DefaultNormalDemo())
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "window",
		Short: "Show the scene in an interactive window",
		RunE: func(_ *cobra.Command, _ []string) error {
			scn, err := loadScene()
			if err != nil {
				return err
			}
			slog.Debug("opening window")
			return window.Run(scn)
		},
	})

	var out string
	htmlCmd := &cobra.Command{
		Use:   "html",
		Short: "Export the scene as a standalone HTML page with animated SVG",
		RunE: func(_ *cobra.Command, _ []string) error {
			scn, err := loadScene()
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := web.Export(f, scn, scene.DefaultNormalDemo()); err != nil {
				return err
			}
			slog.Info("wrote page", "path", out)
			return nil
		},
	}
	htmlCmd.Flags().StringVarP(&out, "out", "o", "goaffine.html", "output file")
	root.AddCommand(htmlCmd)

	return root
}
