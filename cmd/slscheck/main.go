package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/qrioso-software/slscheck/internal/config"
	"github.com/qrioso-software/slscheck/internal/validate"
	"github.com/qrioso-software/slscheck/internal/watch"
)

func main() {
	var cfgPath string
	var watchMode bool

	root := &cobra.Command{
		Use:   "slscheck",
		Short: "slscheck: pre-deploy validation for serverless descriptors",
	}

	// ===== slscheck validate =====
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validates the deployment descriptor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !watchMode {
				return runValidation(cfgPath)
			}

			// In watch mode a failed run is reported, not returned:
			// the watcher keeps going until interrupted.
			runOnce := func() {
				if err := runValidation(cfgPath); err != nil {
					reportFailure(err)
				} else {
					log.Println("✅ Descriptor is valid")
				}
			}
			runOnce()

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			w, err := watch.New(cfg.RootPath, runOnce)
			if err != nil {
				return err
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sig
				w.Stop()
			}()

			return w.Start()
		},
	}
	validateCmd.Flags().StringVarP(&cfgPath, "config", "c", "serverless.yml", "Path of the descriptor YAML")
	validateCmd.Flags().BoolVar(&watchMode, "watch", false, "Re-validate on file changes")

	// ===== slscheck doctor =====
	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Checks that the environment is ready for validation",
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := os.Stat(cfgPath); err != nil {
				log.Printf("❌ Descriptor %s not found", cfgPath)
			} else {
				log.Printf("✅ Descriptor %s OK", cfgPath)
			}

			cfg, _ := config.Load(cfgPath)
			settings, err := config.LoadSettings(cfg)
			if err != nil {
				log.Printf("❌ Could not resolve settings: %v", err)
				return
			}

			checkCredential := func(name, value string) {
				switch {
				case value == "":
					log.Printf("❌ %s not set", name)
				case len(value) != settings.CredentialLength:
					log.Printf("❌ %s has %d characters, expected %d", name, len(value), settings.CredentialLength)
				default:
					log.Printf("✅ %s OK", name)
				}
			}
			checkCredential("secret key", settings.Credentials.Token)
			checkCredential("project id", settings.Credentials.Project)
		},
	}
	doctorCmd.Flags().StringVarP(&cfgPath, "config", "c", "serverless.yml", "Path of the descriptor YAML")

	root.AddCommand(validateCmd, doctorCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runValidation(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings(cfg)
	if err != nil {
		return err
	}

	return validate.Run(cfg, settings.Credentials, validate.Options{
		CredentialLength: settings.CredentialLength,
	})
}

// reportFailure prints a batched validation error message by message;
// anything else is a single fatal line.
func reportFailure(err error) {
	if verr, ok := err.(*validate.Error); ok {
		log.Printf("❌ Validation failed with %d error(s):", len(verr.Messages))
		for _, msg := range verr.Messages {
			fmt.Fprintf(os.Stderr, "  - %s\n", msg)
		}
		return
	}
	log.Printf("❌ %v", err)
}
