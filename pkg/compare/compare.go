// Package compare checks string attributes against an expectation.
package compare

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/devicelab-dev/xcuikit/pkg/core"
	"github.com/devicelab-dev/xcuikit/pkg/textutil"
)

// Mode is the kind of check a Comparison performs.
type Mode int

const (
	ModeDontCheck Mode = iota
	ModeContains
	ModeExactMatch
)

// Comparison is an expectation on a string value.
type Comparison struct {
	Mode     Mode
	Expected string
}

// Contains expects the value to contain expected.
func Contains(expected string) Comparison {
	return Comparison{Mode: ModeContains, Expected: expected}
}

// ExactMatch expects the value to equal expected.
func ExactMatch(expected string) Comparison {
	return Comparison{Mode: ModeExactMatch, Expected: expected}
}

// DontCheck accepts any value.
func DontCheck() Comparison {
	return Comparison{Mode: ModeDontCheck}
}

// String returns the verb used in failure messages.
func (c Comparison) String() string {
	switch c.Mode {
	case ModeContains:
		return "contain"
	case ModeExactMatch:
		return "exactly match"
	default:
		return "not check"
	}
}

// Compare checks value, naming it name in the failure message.
func (c Comparison) Compare(name, value string) error {
	switch c.Mode {
	case ModeContains:
		if !strings.Contains(value, c.Expected) {
			return c.mismatch(name, value)
		}
	case ModeExactMatch:
		if value != c.Expected {
			return c.mismatch(name, value)
		}
	}
	return nil
}

func (c Comparison) mismatch(name, value string) *core.TestingError {
	msg := fmt.Sprintf("Expected %s:\n[%s]\n\n to %s:\n [%s]",
		name, textutil.EscapeNewlines(value), c, textutil.EscapeNewlines(c.Expected))

	if strings.Contains(value, "\n") || strings.Contains(c.Expected, "\n") {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(c.Expected),
			B:        difflib.SplitLines(value),
			FromFile: "expected",
			ToFile:   "actual",
			Context:  2,
		})
		if err == nil && diff != "" {
			msg += "\n\n" + diff
		}
	}
	return core.NewTestingError("%s", msg)
}
