// internal/validate/triggers.go
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/qrioso-software/slscheck/internal/config"
)

// triggerValidator checks the payload of one trigger kind.
type triggerValidator func(payload *yaml.Node) error

// Adding a trigger kind means adding one entry here and one name to
// triggerKinds; the dispatch loop stays untouched.
var triggerValidators = map[string]triggerValidator{
	"schedule": validateSchedule,
}

var triggerKinds = []string{"schedule"}

// validateTriggers walks an event list in order. Every trigger must be
// a single-key mapping from a registered kind to its payload; failures
// from kind validators are captured as messages, never propagated.
func validateTriggers(triggers []config.Trigger) []string {
	var msgs []string
	for i := range triggers {
		kinds := triggers[i].Kinds()
		if len(kinds) != 1 {
			msgs = append(msgs, "trigger must contain exactly one event type")
			continue
		}

		kind := kinds[0]
		check, ok := triggerValidators[kind]
		if !ok {
			msgs = append(msgs, fmt.Sprintf("unknown event type %q, supported event types are: %s", kind, strings.Join(triggerKinds, ", ")))
			continue
		}

		if err := check(triggers[i].Payload(kind)); err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	return msgs
}

type scheduleConfig struct {
	Rate string `yaml:"rate"`
}

// Per-field patterns for the 5-field cron grammar: minute, hour, day of
// month, month, day of week. Each field is "*", "*/n" with n >= 1, or a
// literal within the field's range. Ranges, lists and names are not
// part of this grammar.
var cronFields = []*regexp.Regexp{
	cronField(`[0-9]|[1-5][0-9]`),      // minute 0-59
	cronField(`[0-9]|1[0-9]|2[0-3]`),   // hour 0-23
	cronField(`[1-9]|[12][0-9]|3[01]`), // day of month 1-31
	cronField(`[1-9]|1[0-2]`),          // month 1-12
	cronField(`[0-6]`),                 // day of week 0-6
}

func cronField(literal string) *regexp.Regexp {
	return regexp.MustCompile(`^(\*|\*/[1-9][0-9]*|` + literal + `)$`)
}

func validateSchedule(payload *yaml.Node) error {
	var sc scheduleConfig
	if payload != nil {
		if err := payload.Decode(&sc); err != nil {
			return fmt.Errorf("schedule event is malformed: %v", err)
		}
	}

	if !validRate(sc.Rate) {
		return fmt.Errorf("schedule rate %q is invalid, must be a 5-field cron expression such as \"1 * * * *\"", sc.Rate)
	}
	return nil
}

func validRate(rate string) bool {
	fields := strings.Fields(rate)
	if len(fields) != len(cronFields) {
		return false
	}
	for i, field := range fields {
		if !cronFields[i].MatchString(field) {
			return false
		}
	}
	return true
}
