// internal/validate/runtimes.go
package validate

import "strings"

const runtimeGolang = "golang"

// runtimeExtensions maps each supported runtime to the source file
// extensions a handler may resolve to, in probe order. Closed set: the
// platform decides which runtimes exist, not the user.
var runtimeExtensions = map[string][]string{
	"node":        {"ts", "js"},
	"python":      {"py"},
	"php":         {"php"},
	"rust":        {"rs"},
	runtimeGolang: {"go"},
}

// runtimeNames lists the supported runtimes for error messages.
var runtimeNames = []string{"node", "python", "php", "rust", runtimeGolang}

func supportedRuntime(name string) bool {
	_, ok := runtimeExtensions[name]
	return ok
}

func unsupportedRuntimeMessage(runtime string) string {
	return "Runtime " + runtime + " is not supported, supported runtimes are: " + strings.Join(runtimeNames, ", ")
}
