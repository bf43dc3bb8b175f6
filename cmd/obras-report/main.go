package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nurpe/obras-portal/internal/app"
	"github.com/nurpe/obras-portal/internal/config"
	"github.com/nurpe/obras-portal/internal/logger"
	"github.com/nurpe/obras-portal/internal/service"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "obras-report",
		Short:         "Export portal reports to files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(dashboardCmd(), projectsCmd(), mapCmd())
	return root
}

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Write the admin dashboard workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			res, err := a.Reports.DashboardXLSX(cmd.Context())
			if err != nil {
				return err
			}
			return write(cmd, res)
		},
	}
	cmd.Flags().String("out", "", "Output file (defaults to the generated file name)")
	return cmd
}

func projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Write the filtered project list workbook",
		Long: `Write the filtered project list workbook.

Examples:
  obras-report projects --city=city-1 --status=in-progress
  obras-report projects --q="av. principal" --out obras.xlsx
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			res, err := a.Reports.ProjectsXLSX(cmd.Context(), filterFromFlags(cmd))
			if err != nil {
				return err
			}
			return write(cmd, res)
		},
	}
	addFilterFlags(cmd)
	cmd.Flags().String("out", "", "Output file (defaults to the generated file name)")
	return cmd
}

func mapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Render the project map to a PDF page",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			width, _ := cmd.Flags().GetFloat64("width")
			height, _ := cmd.Flags().GetFloat64("height")
			q := service.MapQuery{Filter: filterFromFlags(cmd), Width: width, Height: height}
			if cmd.Flags().Changed("zoom") {
				zoom, _ := cmd.Flags().GetInt("zoom")
				q.Zoom = &zoom
			}
			res, err := a.Reports.MapPDF(cmd.Context(), q)
			if err != nil {
				return err
			}
			return write(cmd, res)
		},
	}
	addFilterFlags(cmd)
	cmd.Flags().Float64("width", 800, "Map width in px")
	cmd.Flags().Float64("height", 600, "Map height in px")
	cmd.Flags().Int("zoom", 0, "Zoom level override")
	cmd.Flags().String("out", "", "Output file (defaults to the generated file name)")
	return cmd
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("city", service.AllFilter, "City id")
	cmd.Flags().String("district", service.AllFilter, "District name")
	cmd.Flags().String("status", service.AllFilter, "Project status")
	cmd.Flags().String("q", "", "Search text")
}

func filterFromFlags(cmd *cobra.Command) service.ProjectFilter {
	city, _ := cmd.Flags().GetString("city")
	district, _ := cmd.Flags().GetString("district")
	status, _ := cmd.Flags().GetString("status")
	search, _ := cmd.Flags().GetString("q")
	return service.ProjectFilter{CityID: city, District: district, Status: status, Search: search}
}

func build() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return app.New(cfg, logger.New(cfg.Environment))
}

func write(cmd *cobra.Command, res *service.ExportResult) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = res.FileName
	}
	if err := os.WriteFile(out, res.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", out, len(res.Content))
	return nil
}
