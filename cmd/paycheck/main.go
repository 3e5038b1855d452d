/*
main.go - Paycheck engine command line

PURPOSE:
  Runs the paycheck service against an employee directory and prints the
  result. Handles configuration, dependency wiring, and the demo data seed.

COMMANDS:
  calculate  Compute one paycheck and print it as JSON
  seed       Write the demo directory into a SQLite file

ENVIRONMENT:
  PAYCHECK_DB     SQLite directory path (default: in-memory demo data)
  PAYCHECK_RULES  JSON rule set replacing the built-in bi-weekly model
  LOG_LEVEL       debug, info, warn, error (default: info)
  LOG_FORMAT      console or json (default: console)

EXAMPLES:
  # Demo employee 1, first half of June 2024
  ./paycheck calculate --employee 1 --start 2024-06-01

  # Against a seeded SQLite directory
  ./paycheck seed --db ./payroll.db
  PAYCHECK_DB=./payroll.db ./paycheck calculate --employee 3 --start 2024-12-23

EXIT CODES:
  0 success
  1 unexpected failure (storage, configuration)
  2 bad input (invalid employee data, malformed period)
  3 employee or dependents not found
  4 unsupported periodicity

SEE ALSO:
  - payroll/service.go: Orchestration
  - factory/ruleset.go: Rule set JSON
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/warp/paycheck-engine/generic"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case generic.IsNotFound(err):
		return 3
	case generic.IsClientError(err):
		return 2
	case generic.IsUnsupported(err):
		return 4
	default:
		return 1
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "paycheck",
		Short:         "Compute employee paychecks and benefit deductions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCalculateCmd(), newSeedCmd())
	return root
}
