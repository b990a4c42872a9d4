// Package detect identifies the CI service the process runs under.
package detect

import (
	"os"
	"strconv"
	"strings"

	"github.com/dkoosis/xcfo/pkg/render"
)

// Platform is a recognised build environment.
type Platform int

const (
	Local Platform = iota
	GitHubActions
	AzureDevOps
	TeamCity
	// GenericCI is a CI service with no annotation dialect of its own.
	GenericCI
)

func (p Platform) String() string {
	switch p {
	case GitHubActions:
		return "github-actions"
	case AzureDevOps:
		return "azure-devops"
	case TeamCity:
		return "teamcity"
	case GenericCI:
		return "ci"
	default:
		return "local"
	}
}

// IsCI reports whether p is any CI service.
func (p Platform) IsCI() bool { return p != Local }

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// FromEnv inspects the environment through lookup. A nil lookup reads the
// process environment.
func FromEnv(lookup LookupFunc) Platform {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	switch {
	case truthy(lookup, "GITHUB_ACTIONS"):
		return GitHubActions
	case truthy(lookup, "TF_BUILD"):
		return AzureDevOps
	case set(lookup, "TEAMCITY_VERSION"):
		return TeamCity
	case truthy(lookup, "CI"):
		return GenericCI
	default:
		return Local
	}
}

// DefaultRenderer names the renderer whose output p understands.
func DefaultRenderer(p Platform) string {
	switch p {
	case GitHubActions:
		return render.NameGitHubActions
	case AzureDevOps:
		return render.NameAzureDevOps
	case TeamCity:
		return render.NameTeamCity
	default:
		return render.NameTerminal
	}
}

func set(lookup LookupFunc, key string) bool {
	v, ok := lookup(key)
	return ok && strings.TrimSpace(v) != ""
}

func truthy(lookup LookupFunc, key string) bool {
	v, ok := lookup(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
