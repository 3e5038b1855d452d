package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/warp/paycheck-engine/config"
	"github.com/warp/paycheck-engine/factory"
	"github.com/warp/paycheck-engine/generic"
	"github.com/warp/paycheck-engine/payroll"
	"github.com/warp/paycheck-engine/store/memory"
	"github.com/warp/paycheck-engine/store/sqlite"
)

// =============================================================================
// CALCULATE
// =============================================================================

func newCalculateCmd() *cobra.Command {
	var (
		employeeID  int
		start       string
		periodicity string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a paycheck for one employee and pay period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			startDate, err := generic.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid --start %q: %w", start, err)
			}

			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := cfg.NewLogger()

			svc, closeFn, err := buildService(cfg, log)
			if err != nil {
				return err
			}
			defer closeFn()

			paycheck, err := svc.CalculatePaycheck(cmd.Context(),
				payroll.EmployeeID(employeeID), startDate, payroll.Periodicity(periodicity))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), paycheck.Response())
		},
	}

	cmd.Flags().IntVar(&employeeID, "employee", 0, "employee ID")
	cmd.Flags().StringVar(&start, "start", "", "first day of the pay period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&periodicity, "periodicity", string(payroll.PeriodicityBiWeekly), "pay periodicity")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

// buildService wires the directory, model and validator from cfg.
func buildService(cfg *config.Config, log zerolog.Logger) (*payroll.PaycheckService, func(), error) {
	model, err := loadModel(cfg.RulesPath)
	if err != nil {
		return nil, nil, err
	}

	if cfg.DBPath == "" {
		log.Debug().Msg("using in-memory demo directory")
		dir := memory.NewDemoDirectory()
		return payroll.NewPaycheckService(dir, dir, model, payroll.DefaultValidator(), log), func() {}, nil
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open directory %s: %w", cfg.DBPath, err)
	}
	log.Debug().Str("db", cfg.DBPath).Msg("using sqlite directory")
	closeFn := func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("close directory")
		}
	}
	return payroll.NewPaycheckService(store, store, model, payroll.DefaultValidator(), log), closeFn, nil
}

func loadModel(path string) (*payroll.Model, error) {
	if path == "" {
		return payroll.NewBiWeeklyModel(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}
	model, err := factory.NewRuleSetFactory().ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("rule set %s: %w", path, err)
	}
	return model, nil
}

// =============================================================================
// SEED
// =============================================================================

func newSeedCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the demo employees and dependents into a SQLite directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := cfg.NewLogger()

			store, err := sqlite.New(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			employees, dependents := memory.DemoEmployees(), memory.DemoDependents()
			if err := store.Seed(cmd.Context(), employees, dependents); err != nil {
				return err
			}
			log.Info().Str("db", dbPath).
				Int("employees", len(employees)).
				Int("dependents", len(dependents)).
				Msg("directory seeded")
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "payroll.db", "SQLite database path")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
