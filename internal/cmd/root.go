package cmd

import (
	"strings"

	"github.com/Iron-Ham/argue/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "argue",
	Short: "Abstract argumentation framework solver",
	Long: `Argue decides acceptance and verification problems over abstract
argumentation frameworks under Dung's complete and stable semantics.

Frameworks are read from APX files: "arg(name)." declares an argument,
"att(source,target)." declares an attack. Answers are printed to stdout
as YES or NO; diagnostics go to stderr.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/argue/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/argue")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ARGUE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., ARGUE_SOLVER_MAX_EXTENSIONS for solver.max_extensions
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
