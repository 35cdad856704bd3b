package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "redpen-cli",
	Short: "redpen-cli is the command-line interface for the redpen webhook service.",
	Long:  `A CLI for administering the redpen review app: checking trigger parsing, verifying app credentials, and inspecting the delivery audit log.`,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("REDPEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
