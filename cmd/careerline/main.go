// Command careerline seeds demo data and drives the careers page API from a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"careerline.app/studio/common/id"
	"careerline.app/studio/common/logger"
	"careerline.app/studio/core/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "careerline",
	Short: "Careers page studio command line",
	Long:  "careerline seeds a demo company, lists public jobs and edits or publishes a careers page through the HTTP API.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(config.ServiceTypeCLI)
		if err != nil {
			return err
		}
		logger.Setup(cfg)
		return id.Init(3)
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
