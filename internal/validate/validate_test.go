package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrioso-software/slscheck/internal/config"
)

func validCreds() config.Credentials {
	return config.Credentials{
		Token:   strings.Repeat("a", config.DefaultCredentialLength),
		Project: strings.Repeat("b", config.DefaultCredentialLength),
	}
}

const golangService = `
service: svc
provider:
  name: scaleway
  runtime: golang
functions:
  hello:
    handler: hello.Handle
`

func TestRunSucceeds(t *testing.T) {
	cfg := parseConfig(t, t.TempDir(), golangService)
	assert.NoError(t, Run(cfg, validCreds(), Options{}))
}

func TestRunRequiresServicePath(t *testing.T) {
	cfg := parseConfig(t, "", golangService)
	err := Run(cfg, validCreds(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service path")
}

func TestRunRejectsBadCredentialLength(t *testing.T) {
	cfg := parseConfig(t, t.TempDir(), golangService)

	cases := []config.Credentials{
		{Token: strings.Repeat("a", 35), Project: strings.Repeat("b", 36)},
		{Token: strings.Repeat("a", 36), Project: strings.Repeat("b", 37)},
		{Token: "", Project: ""},
	}
	for _, creds := range cases {
		err := Run(cfg, creds, Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "36 characters")
		// Precondition failures are single fatal errors, never batched.
		assert.NotIsType(t, &Error{}, err)
	}
}

func TestRunHonorsConfiguredCredentialLength(t *testing.T) {
	cfg := parseConfig(t, t.TempDir(), golangService)
	creds := config.Credentials{Token: "12345678", Project: "87654321"}

	assert.NoError(t, Run(cfg, creds, Options{CredentialLength: 8}))
	assert.Error(t, Run(cfg, validCreds(), Options{CredentialLength: 8}))
}

func TestRunBatchesContentErrors(t *testing.T) {
	cfg := parseConfig(t, t.TempDir(), `
service: broken
provider:
  name: scaleway
  runtime: node
  env:
    COUNT: 5
functions:
  hello:
    handler: hello.handle
    events:
      - http:
          path: /hello
`)
	err := Run(cfg, validCreds(), Options{})
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok, "content failures must surface as *Error")
	require.Len(t, verr.Messages, 3)
	assert.Contains(t, verr.Messages[0], "COUNT")
	assert.Contains(t, verr.Messages[1], "hello")
	assert.Contains(t, verr.Messages[2], `"http"`)

	for _, msg := range verr.Messages {
		assert.Contains(t, err.Error(), msg)
	}
}

func TestRunEnvShapeIsFatal(t *testing.T) {
	cfg := parseConfig(t, t.TempDir(), `
service: broken
provider:
  name: scaleway
  runtime: node
  env: notamap
functions:
  hello:
    handler: hello.handle
`)
	err := Run(cfg, validCreds(), Options{})
	require.Error(t, err)
	assert.NotIsType(t, &Error{}, err)
	assert.Contains(t, err.Error(), "string-keyed map")
}
