// Command romibase generates the Pololu Romi base plate geometry and
// writes it out as OpenSCAD source plus CSV/HTML feature reports.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel = "info"

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "romibase",
		Short:         "Generate Pololu Romi base plate geometry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", logLevel,
		"log level (trace, debug, info, warn, error)")
	rootCmd.AddCommand(newGenerateCommand())

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("generation failed")
		os.Exit(1)
	}
}
