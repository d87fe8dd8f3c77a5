package installer

import (
	"fmt"
	"sort"
	"strings"
)

type InstallState struct {
	RuntimePath string
	EnvVars     map[string]string
}

func NewInstallState(runtimePath string) *InstallState {
	return &InstallState{
		RuntimePath: runtimePath,
		EnvVars:     make(map[string]string),
	}
}

// Render returns the collected variables as .env content, sorted by key.
func (s *InstallState) Render() string {
	keys := make([]string, 0, len(s.EnvVars))
	for k := range s.EnvVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%s=%s\n", k, s.EnvVars[k]))
	}
	return sb.String()
}
