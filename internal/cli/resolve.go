package cli

import (
	"fmt"
	"os"
	"path/filepath"
)

// AdjacentConfigName is the config filename looked for next to the
// workflow file before any explicit flag is considered.
const AdjacentConfigName = "wedge_config.json"

// ResolveConfigPath finds the sweep config for a workflow: a
// wedge_config.json adjacent to the workflow wins, then the explicit
// path as given, then the explicit path relative to the workflow's
// directory.
func ResolveConfigPath(workflowPath, explicit string) (string, error) {
	adjacent := filepath.Join(filepath.Dir(workflowPath), AdjacentConfigName)
	if fileExists(adjacent) {
		return adjacent, nil
	}
	if explicit != "" {
		if fileExists(explicit) {
			return explicit, nil
		}
		candidate := filepath.Join(filepath.Dir(workflowPath), explicit)
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("a %s is required, either next to the workflow or via --config", AdjacentConfigName)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
