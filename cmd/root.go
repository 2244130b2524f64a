package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "microbench",
	Short: "In-process micro-benchmark harness",
	Long: `microbench runs an operation in a warmup-then-measure loop, times every
measured invocation with the monotonic clock, and summarizes the samples
into quartiles, mean and standard deviation, optionally dropping
outliers through Tukey's fences first.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLog(viper.GetString("log-format"))
	},
}

// Execute runs the root command and all registered subcommands. It
// prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file (default ./microbench.yaml)")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format: 'json' or 'console'")
	viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig wires the optional config file and MICROBENCH_* environment
// variables into viper. Precedence is flag > env > file > default.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("microbench")
	}

	viper.SetEnvPrefix("MICROBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("path", viper.ConfigFileUsed()).Msg("Using config file")
	}
}

func setupLog(format string) {
	if strings.ToLower(format) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}
