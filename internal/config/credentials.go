// internal/config/credentials.go
package config

import (
	"github.com/spf13/viper"
)

// DefaultCredentialLength is the expected length of Scaleway secret keys
// and project identifiers (UUID form). Overridable via the
// credential_length setting should the platform format ever change.
const DefaultCredentialLength = 36

type Credentials struct {
	Token   string
	Project string
}

// Settings holds everything slscheck resolves outside the descriptor
// itself: the credential pair and the expected identifier length.
type Settings struct {
	Credentials      Credentials
	CredentialLength int
}

// LoadSettings resolves credentials from the environment (SCW_SECRET_KEY,
// SCW_DEFAULT_PROJECT_ID) and an optional slscheck.yml settings file in
// the service directory. Inline provider credentials from the descriptor
// take lowest precedence.
func LoadSettings(cfg *ServerlessConfig) (Settings, error) {
	v := viper.New()
	v.SetConfigName("slscheck")
	v.SetConfigType("yaml")
	if cfg != nil && cfg.RootPath != "" {
		v.AddConfigPath(cfg.RootPath)
	}
	v.AddConfigPath(".")

	v.SetDefault("credential_length", DefaultCredentialLength)

	v.BindEnv("secret_key", "SCW_SECRET_KEY")
	v.BindEnv("project_id", "SCW_DEFAULT_PROJECT_ID")

	if err := v.ReadInConfig(); err != nil {
		// A missing settings file is fine; env vars and defaults carry.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Settings{}, err
		}
	}

	s := Settings{
		Credentials: Credentials{
			Token:   v.GetString("secret_key"),
			Project: v.GetString("project_id"),
		},
		CredentialLength: v.GetInt("credential_length"),
	}

	if cfg != nil {
		if s.Credentials.Token == "" {
			s.Credentials.Token = cfg.Provider.Token
		}
		if s.Credentials.Project == "" {
			s.Credentials.Project = cfg.Provider.Project
		}
	}

	return s, nil
}
