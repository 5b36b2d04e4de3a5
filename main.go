package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/questboard/api-contract-tests/apitests"
	"github.com/questboard/api-contract-tests/framework"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}
	cfg, err := resolveConfig(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		return 1
	}

	fmt.Println("🚀 Starting backend regression checks")
	fmt.Printf("📍 Testing: %s\n", cfg.baseURL)
	fmt.Println(strings.Repeat("=", 60))

	framework.PrintFilterDescription(params.filters)

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	client := apitests.NewAPIClient(cfg.baseURL, cfg.requestTimeout)
	results := apitests.RunTestSuite(client, cfg.identity, params.filters.AsFilter, testLogger)

	fmt.Println(strings.Repeat("=", 60))
	framework.PrintResults(results)

	if !results.OK() {
		fmt.Println("To rerun only the failed checks:")
		fmt.Printf("  %s\n", rerunFailedCommand(args[0], params, cfg, results))
		return 1
	}
	return 0
}
