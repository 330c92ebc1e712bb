package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/proflink/proflink_backend/cmd/http"
	systemcmd "github.com/proflink/proflink_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "proflink",
	Short: "ProfLink student-faculty appointment platform.",
	Long: `ProfLink connects students with faculty members for consultations.
Students browse the faculty directory and request appointments; faculty accept,
decline, or propose new times, with notifications delivered in realtime.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
