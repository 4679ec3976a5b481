package commands

import "strings"

// mutatingCommandIDs lists registry command IDs that write local state
// (the config file or the history database). The commands dump exposes
// this so wrappers can tell side-effect-free commands apart.
var mutatingCommandIDs = map[string]struct{}{
	"gen":           {},
	"config_init":   {},
	"config_set":    {},
	"config_unset":  {},
	"history_clear": {},
}

func init() {
	for id := range mutatingCommandIDs {
		meta, ok := Registry[id]
		if !ok {
			continue
		}
		meta.MutatesState = true
		Registry[id] = meta
	}
}

// ResolveCommandID resolves a CLI command path to a registry command ID.
// Example: "config set" -> "config_set"
func ResolveCommandID(path string) (string, bool) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", false
	}

	if _, ok := Registry[trimmed]; ok {
		return trimmed, true
	}

	underscored := strings.ReplaceAll(trimmed, " ", "_")
	if _, ok := Registry[underscored]; ok {
		return underscored, true
	}

	return "", false
}

// LookupMetaByPath resolves a CLI command path and returns the registry metadata.
func LookupMetaByPath(path string) (string, Meta, bool) {
	id, ok := ResolveCommandID(path)
	if !ok {
		return "", Meta{}, false
	}
	meta, ok := Registry[id]
	return id, meta, ok
}

// GetCommandMeta returns the metadata for a registry command ID.
func GetCommandMeta(id string) (Meta, bool) {
	meta, ok := Registry[id]
	return meta, ok
}

// AllCommandNames returns all registered command IDs.
func AllCommandNames() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	return names
}
