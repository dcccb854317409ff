// internal/validate/applications.go
package validate

import (
	"fmt"

	"github.com/qrioso-software/slscheck/internal/config"
)

// validateApplications checks every function and container. All
// findings are content errors: the walk never stops early, so the user
// sees everything wrong with the descriptor in one report.
func validateApplications(cfg *config.ServerlessConfig) []string {
	var msgs []string
	defaultRuntime := cfg.Provider.Runtime

	if cfg.Functions.Len() > 0 && !supportedRuntime(defaultRuntime) {
		msgs = append(msgs, unsupportedRuntimeMessage(defaultRuntime))
	}

	for _, name := range cfg.Functions.Names() {
		fn := cfg.Functions.Get(name)

		runtime := defaultRuntime
		if fn.Runtime != "" {
			runtime = fn.Runtime
		}

		// Go functions are built as packages, not handler files; none
		// of the handler or trigger checks apply.
		if runtime == runtimeGolang {
			continue
		}

		if fn.Runtime != "" && !supportedRuntime(fn.Runtime) {
			// Known quirk: the message names the service default
			// runtime, not the function's own override.
			msgs = append(msgs, unsupportedRuntimeMessage(defaultRuntime))
		}

		if !resolveHandler(cfg.RootPath, fn.Handler, runtimeExtensions[runtime]) {
			msgs = append(msgs, fmt.Sprintf("Handler file defined for function %s does not exist (handler: %s)", name, fn.Handler))
		}

		if fn.Events == nil {
			fn.Events = []config.Trigger{}
		}
		msgs = append(msgs, validateTriggers(fn.Events)...)
	}

	containers := 0
	if cfg.Custom != nil {
		containers = cfg.Custom.Containers.Len()
		for _, name := range cfg.Custom.Containers.Names() {
			ct := cfg.Custom.Containers.Get(name)
			if ct.Events == nil {
				ct.Events = []config.Trigger{}
			}
			msgs = append(msgs, validateTriggers(ct.Events)...)
		}
	}

	if cfg.Functions.Len() == 0 && containers == 0 {
		msgs = append(msgs, "at least one function or container must be defined")
	}

	return msgs
}
