package main

import (
	"errors"
	"fmt"
	"os"

	widgetref "github.com/communitytech/widget-reference"
	"github.com/communitytech/widget-reference/pkg/config"
	"github.com/communitytech/widget-reference/pkg/wordpress"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = wordpress.Version

var (
	outputFile string
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "widget-reference [site-url] [username] [app-password]",
		Short: "Generate an Elementor widget reference from a live WordPress site",
		Long: "Queries the CommunityTech widget registry REST API and renders a condensed\n" +
			"markdown reference of every practical Elementor widget, grouped by category.\n\n" +
			"Credentials come from the three positional arguments, from the\n" +
			"WORDPRESS_API_URL, WORDPRESS_USERNAME and WORDPRESS_PASSWORD (or\n" +
			"WORDPRESS_APP_PASSWORD) environment variables, or from a YAML file passed\n" +
			"with --config. Requires the CommunityTech plugin on the target site.",
		Args: cobra.MaximumNArgs(3),
		Run:  run,
	}

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the markdown to a file instead of stdout")
	rootCmd.Flags().StringVar(&configFile, "config", "", "YAML file with site_url, username and password")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("widget-reference version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	creds, err := config.Resolve(args, configFile)
	if err != nil {
		if errors.Is(err, config.ErrNoCredentials) {
			fmt.Fprintln(os.Stderr, "Usage: widget-reference <site-url> <username> <app-password>")
			fmt.Fprintln(os.Stderr, "   Or set WORDPRESS_API_URL, WORDPRESS_USERNAME, WORDPRESS_PASSWORD env vars")
		} else {
			red.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	result, err := widgetref.Run(widgetref.Options{
		SiteURL:  creds.SiteURL,
		Username: creds.Username,
		Password: creds.Password,
		Logger:   &cliLogger{},
	})
	if err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if result.Skipped > 0 {
		color.New(color.FgYellow).Fprintf(os.Stderr, "%d of %d widgets skipped\n", result.Skipped, result.Total)
	}

	if outputFile == "" {
		fmt.Print(result.Markdown)
		return
	}

	if err := os.WriteFile(outputFile, []byte(result.Markdown), 0644); err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	green.Fprintf(os.Stderr, "Wrote %d widgets in %d categories to %s\n",
		result.Rendered, result.Categories, outputFile)
}

// cliLogger implements widgetref.Logger with colored stderr output. Stdout
// stays a clean markdown stream so the tool can be piped into a file.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}
