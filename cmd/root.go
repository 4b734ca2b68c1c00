package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/adherence-sim/adherence-sim/sim"
)

var (
	// CLI flags for the simulation run
	seed         int64  // Seed for all random draws
	logLevel     string // Log verbosity level
	outputPath   string // Path of the results JSON document
	scenarioFile string // YAML file with scenario presets
	scenarioName string // Name of the preset to run

	// CLI flags for cohort shape
	totalMembers      int     // Cohort size across both arms
	interventionRatio float64 // Fraction assigned to the intervention arm
	observationDays   int     // PDC observation window in days

	// CLI flags for calibration
	adherenceThreshold       float64 // PDC cutoff for the adherent flag
	interventionAdherence    float64 // Target adherence rate, intervention arm
	controlAdherence         float64 // Target adherence rate, control arm
	adherentAdmissionProb    float64 // Admission probability, adherent members
	nonAdherentAdmissionProb float64 // Admission probability, non-adherent members
	unitCost                 float64 // Dollar cost per admission
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "adherence-sim",
	Short: "Cohort simulator for medication-adherence program impact",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the adherence-impact simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := configFromFlags()
		if scenarioFile != "" {
			cfg, err = GetScenarioConfig(scenarioFile, scenarioName)
			if err != nil {
				logrus.Fatalf("Could not load scenario %q from %s: %v", scenarioName, scenarioFile, err)
			}
		}

		logrus.Infof("Starting simulation with seed=%d, members=%d, ratio=%.4f",
			seed, cfg.TotalMembers, cfg.InterventionRatio)
		startTime := time.Now()

		s := sim.NewSimulator(cfg, seed)
		results, err := s.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		results.Print()
		if err := results.WriteFile(outputPath); err != nil {
			logrus.Fatalf("Could not write results: %v", err)
		}

		logrus.Infof("Results written to %s in %v", outputPath, time.Since(startTime))
	},
}

// validateCmd checks a scenario file without running anything
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario preset file",
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioFile == "" {
			logrus.Fatalf("No scenario file provided; use --scenario")
		}
		cfg, err := LoadScenarioConfig(scenarioFile)
		if err != nil {
			logrus.Fatalf("Could not load %s: %v", scenarioFile, err)
		}
		for name := range cfg.Scenarios {
			if _, err := GetScenarioConfig(scenarioFile, name); err != nil {
				logrus.Fatalf("Scenario %q is invalid: %v", name, err)
			}
			logrus.Infof("Scenario %q is valid", name)
		}
	},
}

// configFromFlags assembles a sim.Config from the flag values.
func configFromFlags() *sim.Config {
	return &sim.Config{
		TotalMembers:             totalMembers,
		InterventionRatio:        interventionRatio,
		ObservationDays:          observationDays,
		AdherenceThreshold:       adherenceThreshold,
		InterventionAdherence:    interventionAdherence,
		ControlAdherence:         controlAdherence,
		AdherentAdmissionProb:    adherentAdmissionProb,
		NonAdherentAdmissionProb: nonAdherentAdmissionProb,
		UnitCost:                 unitCost,
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for all random draws")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&outputPath, "output", "results.json", "Path of the results JSON document")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML file with scenario presets (overrides cohort/calibration flags)")
	runCmd.Flags().StringVar(&scenarioName, "scenario-name", "baseline", "Preset to run from the scenario file")

	// Cohort shape
	runCmd.Flags().IntVar(&totalMembers, "members", sim.DefaultTotalMembers, "Cohort size across both arms")
	runCmd.Flags().Float64Var(&interventionRatio, "intervention-ratio", sim.DefaultInterventionRatio, "Fraction of the cohort assigned to the intervention arm")
	runCmd.Flags().IntVar(&observationDays, "observation-days", sim.DefaultObservationDays, "PDC observation window in days")

	// Calibration
	runCmd.Flags().Float64Var(&adherenceThreshold, "adherence-threshold", sim.DefaultAdherenceThreshold, "PDC cutoff for the adherent flag")
	runCmd.Flags().Float64Var(&interventionAdherence, "intervention-adherence", sim.DefaultInterventionAdherence, "Target adherence rate for the intervention arm")
	runCmd.Flags().Float64Var(&controlAdherence, "control-adherence", sim.DefaultControlAdherence, "Target adherence rate for the control arm")
	runCmd.Flags().Float64Var(&adherentAdmissionProb, "adherent-admission-prob", sim.DefaultAdherentAdmissionProb, "Admission probability for adherent members")
	runCmd.Flags().Float64Var(&nonAdherentAdmissionProb, "non-adherent-admission-prob", sim.DefaultNonAdherentAdmissionProb, "Admission probability for non-adherent members")
	runCmd.Flags().Float64Var(&unitCost, "unit-cost", sim.DefaultUnitCost, "Dollar cost per hospital admission")

	validateCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML file with scenario presets")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
