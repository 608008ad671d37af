package kv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ValentinKolb/cstore/cmd/util"
	"github.com/ValentinKolb/cstore/rpc/client"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for cstore servers",
		Long:    "",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfKeyPrefix        = "__test"
	perfLargeValueSizeKB = 100
	perfNumThreads       = 10
	perfKeySpread        = 100
	perfOpsPerTest       = 10000
	perfSkip             = make([]string, 0)
)

func init() {
	// add flags
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. store,load)"))
	key = "threads"
	perfTestCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the benchmark"))
	key = "large-value-size"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How large the value for the store-large test should be (in KB)"))
	key = "keys"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the tests"))
	key = "ops"
	perfTestCmd.Flags().Int(key, 10000, util.WrapString("How many operations to perform per benchmark"))
	key = "csv"
	perfTestCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfLargeValueSizeKB = viper.GetInt("large-value-size")
	perfKeySpread = viper.GetInt("keys")
	perfNumThreads = viper.GetInt("threads")
	perfOpsPerTest = viper.GetInt("ops")
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	if perfNumThreads < 1 {
		return fmt.Errorf("threads must be at least 1, got %d", perfNumThreads)
	}
	if perfKeySpread < 1 {
		return fmt.Errorf("keys must be at least 1, got %d", perfKeySpread)
	}
	if perfOpsPerTest < 1 {
		return fmt.Errorf("ops must be at least 1, got %d", perfOpsPerTest)
	}

	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {

	fmt.Println("Performance testing tool for cstore servers")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(util.GetClientConfig().String())
	fmt.Printf("Threads: %d\n", perfNumThreads)
	fmt.Printf("Ops per benchmark: %d\n", perfOpsPerTest)
	fmt.Println()

	// Each thread gets its own client since a single connection only ever
	// carries one outstanding request
	clients, closeClients, err := createPerfClients(perfNumThreads)
	if err != nil {
		return err
	}
	defer closeClients()

	fmt.Println("starting tests...")

	// Create results map
	results := make(map[string]gometrics.Histogram)

	results["store"] = runBenchmark("store", clients, nil, func(c *client.Client, getKey func(int) string, i int) error {
		_, err := c.Store(getKey(i), []byte("test"))
		return err
	})

	largeValue := make([]byte, perfLargeValueSizeKB*1024)
	results["store-large"] = runBenchmark("store-large", clients, nil, func(c *client.Client, getKey func(int) string, i int) error {
		_, err := c.Store(getKey(i), largeValue)
		return err
	})

	results["load"] = runBenchmark("load", clients, seedKeys, func(c *client.Client, getKey func(int) string, i int) error {
		_, err := c.Load(getKey(i))
		return err
	})

	results["load-missing"] = runBenchmark("load-missing", clients, nil, func(c *client.Client, getKey func(int) string, i int) error {
		_, err := c.Load(fmt.Sprintf("%s/missing-%d", perfKeyPrefix, i%perfKeySpread))
		if errors.Is(err, client.ErrKeyNotFound) {
			return nil // expected outcome for this benchmark
		}
		return err
	})

	results["erase"] = runBenchmark("erase", clients, seedKeys, func(c *client.Client, getKey func(int) string, i int) error {
		_, err := c.Erase(getKey(i))
		return err
	})

	results["mixed"] = runBenchmark("mixed", clients, seedKeys, func(c *client.Client, getKey func(int) string, i int) error {
		var err error
		switch i % 3 {
		case 0:
			_, err = c.Store(getKey(i), []byte("test"))
		case 1:
			_, err = c.Load(getKey(i))
		case 2:
			_, err = c.Erase(getKey(i))
		}
		return err
	})

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// createPerfClients connects n independent clients to the configured server
func createPerfClients(n int) ([]*client.Client, func(), error) {
	config := util.GetClientConfig()

	s, err := util.GetSerializer()
	if err != nil {
		return nil, nil, err
	}

	clients := make([]*client.Client, n)
	for i := range clients {
		t, err := util.GetTransport()
		if err != nil {
			return nil, nil, err
		}
		c, err := client.NewRPCClient(*config, t, s)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect client %d: %w", i, err)
		}
		clients[i] = c
	}

	closeAll := func() {
		for _, c := range clients {
			_ = c.Close()
		}
	}
	return clients, closeAll, nil
}

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range perfSkip {
		if test == skip {
			return true
		}
	}
	return false
}

// creates an array of test keys and functions to work with them
func getKeys(prefix string) (func(int) string, func(func(string))) {
	keys := make([]string, perfKeySpread)
	for i := 0; i < perfKeySpread; i++ {
		keys[i] = fmt.Sprintf("%s-%s-%d", perfKeyPrefix, prefix, i)
	}

	// Function to get a key by index (with wraparound)
	getKey := func(i int) string {
		return keys[i%perfKeySpread]
	}

	// Function to iterate over all keys and apply a function to each
	iterateKeys := func(fn func(string)) {
		for _, key := range keys {
			fn(key)
		}
	}

	return getKey, iterateKeys
}

// seedKeys stores a small value under every benchmark key so that load and
// erase benchmarks operate on existing entries
func seedKeys(c *client.Client, iter func(func(string))) {
	iter(func(k string) {
		if _, err := c.Store(k, []byte("test")); err != nil {
			log.Printf("error seeding key %s: %v\n", k, err)
		}
	})
}

// runBenchmark spreads perfOpsPerTest operations over all clients and
// records per-operation latency in an exponentially decaying histogram
func runBenchmark(
	name string,
	clients []*client.Client,
	prepare func(*client.Client, func(func(string))),
	op func(c *client.Client, getKey func(int) string, i int) error,
) gometrics.Histogram {
	hist := gometrics.NewHistogram(gometrics.NewExpDecaySample(1028, 0.015))

	if shouldSkip(name) {
		printResult(name, hist, 0)
		return hist
	}

	// prepare keys
	getKey, iter := getKeys(name)
	if prepare != nil {
		prepare(clients[0], iter)
	}

	opsPerClient := perfOpsPerTest / len(clients)

	start := time.Now()
	var wg sync.WaitGroup
	for _, c := range clients {
		wg.Add(1)
		go func(c *client.Client) {
			defer wg.Done()
			for i := 0; i < opsPerClient; i++ {
				opStart := time.Now()
				if err := op(c, getKey, i); err != nil {
					log.Printf("(%s) - operation failed: %v\n", name, err)
					continue
				}
				hist.Update(time.Since(opStart).Nanoseconds())
			}
		}(c)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// cleanup
	iter(func(k string) {
		if _, err := clients[0].Erase(k); err != nil {
			log.Printf("(%s) - error erasing key: %v\n", name, err)
		}
	})

	printResult(name, hist, elapsed)
	return hist
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(test string, hist gometrics.Histogram, elapsed time.Duration) {
	if hist.Count() == 0 {
		fmt.Printf("%-20sskipped\n", test)
		return
	}

	opsPerSec := float64(hist.Count()) / elapsed.Seconds()
	ps := hist.Percentiles([]float64{0.5, 0.95, 0.99})

	fmt.Printf("%-20s%.0fns/op mean\tp50=%s p95=%s p99=%s\t%.0f ops/sec\n",
		test,
		hist.Mean(),
		time.Duration(int64(ps[0])),
		time.Duration(int64(ps[1])),
		time.Duration(int64(ps[2])),
		opsPerSec,
	)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results map[string]gometrics.Histogram) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Test", "Count", "MeanNs", "P50Ns", "P95Ns", "P99Ns", "MaxNs", "Skipped",
		"Endpoint", "TimeoutSec", "Serializer", "Transport",
		"Threads", "LargeValueSizeKB", "Keys Count",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	config := util.GetClientConfig()

	// Write test results
	for test, hist := range results {
		ps := hist.Percentiles([]float64{0.5, 0.95, 0.99})

		row := []string{
			test,
			strconv.FormatInt(hist.Count(), 10),
			fmt.Sprintf("%.0f", hist.Mean()),
			fmt.Sprintf("%.0f", ps[0]),
			fmt.Sprintf("%.0f", ps[1]),
			fmt.Sprintf("%.0f", ps[2]),
			strconv.FormatInt(hist.Max(), 10),
			strconv.FormatBool(hist.Count() == 0),
			config.Transport.Endpoint,
			strconv.Itoa(config.TimeoutSecond),
			viper.GetString("serializer"),
			viper.GetString("transport"),
			strconv.Itoa(perfNumThreads),
			strconv.Itoa(perfLargeValueSizeKB),
			strconv.Itoa(perfKeySpread),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for test %s: %v", test, err)
		}
	}

	return nil
}
