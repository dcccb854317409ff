// internal/validate/validate.go
package validate

import (
	"fmt"

	"github.com/qrioso-software/slscheck/internal/config"
)

type Options struct {
	// CredentialLength is the exact length secret keys and project
	// identifiers must have. Zero means config.DefaultCredentialLength.
	CredentialLength int
}

// Run validates a deployment descriptor before deployment. The service
// path and credential checks are preconditions: they fail fast with a
// single error. Namespace and application checks aggregate, so the
// result of a content failure is every message at once.
func Run(cfg *config.ServerlessConfig, creds config.Credentials, opts Options) error {
	length := opts.CredentialLength
	if length == 0 {
		length = config.DefaultCredentialLength
	}

	if cfg == nil || cfg.RootPath == "" {
		return fmt.Errorf("unable to establish the service path, check that the config file lives in your service directory")
	}

	if len(creds.Token) != length || len(creds.Project) != length {
		return fmt.Errorf("invalid credentials: secret key and project id must be %d characters long", length)
	}

	report := &Report{}

	envMsgs, err := validateEnv(&cfg.Provider.Env)
	if err != nil {
		return err
	}
	report.Extend(envMsgs)

	report.Extend(validateApplications(cfg))

	return report.Err()
}
