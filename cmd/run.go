package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tclemos/microbench/workload"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a benchmark over one of the built-in workloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := workload.RunConfig{
			BenchmarkID:    viper.GetString("benchmark-id"),
			Iterations:     viper.GetInt("iterations"),
			Warmup:         viper.GetInt("warmup"),
			FilterOutliers: viper.GetBool("filter-outliers"),
			K:              viper.GetFloat64("k"),
			Workload: workload.Config{
				Type:           workload.Type(viper.GetString("workload")),
				SleepFor:       viper.GetDuration("sleep"),
				PayloadSize:    viper.GetInt("payload-size"),
				Path:           viper.GetString("db-path"),
				KeyCount:       viper.GetInt("key-count"),
				ValueSize:      viper.GetInt("value-size"),
				Seed:           viper.GetInt64("seed"),
				BlockCacheSize: viper.GetInt64("block-cache-size"),
				MDBX: workload.MDBXOptions{
					MapSize:     viper.GetInt64("mdbx-map-size"),
					MaxDBs:      viper.GetInt("mdbx-max-dbs"),
					MaxReaders:  viper.GetInt("mdbx-max-readers"),
					NoSync:      viper.GetBool("mdbx-no-sync"),
					NoMetaSync:  viper.GetBool("mdbx-no-meta-sync"),
					WriteMap:    viper.GetBool("mdbx-write-map"),
					NoReadahead: viper.GetBool("mdbx-no-readahead"),
				},
			},
		}

		result, err := workload.Run(cfg)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("workload", "sleep", "Workload type: sleep, hash, pebble-set, pebble-get, mdbx-set, mdbx-get")
	runCmd.Flags().Int("iterations", 100, "Total number of iterations")
	runCmd.Flags().Int("warmup", 5, "Leading iterations excluded from timing")
	runCmd.Flags().Bool("filter-outliers", true, "Drop samples outside Tukey's fences before summarizing")
	runCmd.Flags().Float64("k", 1.5, "Tukey fence coefficient (larger keeps more samples)")
	runCmd.Flags().String("benchmark-id", "default", "Optional benchmark ID tag for logs")

	// Workload configuration flags
	runCmd.Flags().Duration("sleep", time.Millisecond, "sleep: duration of each iteration")
	runCmd.Flags().Int("payload-size", 1024, "hash: payload size in bytes")
	runCmd.Flags().String("db-path", "dbs/microbench", "Path to store database files")
	runCmd.Flags().Int("key-count", 1000, "get workloads: number of keys preloaded during setup")
	runCmd.Flags().Int("value-size", 256, "Size of each value in bytes")
	runCmd.Flags().Int64("seed", 42, "Seed for deterministic key/value generation")
	runCmd.Flags().Int64("block-cache-size", 8<<20, "Pebble block cache size in bytes (negative for disabled)")

	// MDBX-specific configuration flags
	runCmd.Flags().Int64("mdbx-map-size", -1, "MDBX: Maximum map size in bytes (-1 for default)")
	runCmd.Flags().Int("mdbx-max-dbs", 0, "MDBX: Maximum number of databases (0 for default: 2)")
	runCmd.Flags().Int("mdbx-max-readers", 0, "MDBX: Maximum number of readers (0 for default: 128)")
	runCmd.Flags().Bool("mdbx-no-sync", false, "MDBX: Don't fsync after commit (improves performance, reduces durability)")
	runCmd.Flags().Bool("mdbx-no-meta-sync", false, "MDBX: Don't fsync metapage after commit")
	runCmd.Flags().Bool("mdbx-write-map", false, "MDBX: Use writeable memory map")
	runCmd.Flags().Bool("mdbx-no-readahead", false, "MDBX: Disable readahead")

	viper.BindPFlags(runCmd.Flags())
}
