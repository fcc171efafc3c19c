package cmd

import (
	"os"

	"github.com/mergington/activities/pkg/actclient"
	"github.com/mergington/activities/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "activitiesctl",
	Short: "Work with the Mergington activities server",
	Long: `activitiesctl lists activities and signs students up for them, or
unregisters them, by talking to a running activitiesd.`,
}

func newClient() *actclient.Client {
	return actclient.New(viper.GetString("server"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("server", "http://localhost:8000", "activitiesd base URL")
	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindEnv("server", config.ServerKey)

	rootCmd.AddCommand(listCmd, signupCmd, unregisterCmd)
}
