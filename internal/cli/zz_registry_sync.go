package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dateseq/dateseq/internal/commands"
)

// syncRegistryMetadata pushes registry descriptions and examples onto the
// cobra tree so --help output and the commands dump never disagree.
func syncRegistryMetadata(root *cobra.Command) {
	type node struct {
		cmd  *cobra.Command
		path string
	}

	stack := []node{{cmd: root}}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.path != "" {
			applyRegistryMetadata(n.cmd, n.path)
		}
		for _, child := range n.cmd.Commands() {
			childPath := child.Name()
			if n.path != "" {
				childPath = n.path + " " + child.Name()
			}
			stack = append(stack, node{cmd: child, path: childPath})
		}
	}
}

func applyRegistryMetadata(cmd *cobra.Command, path string) {
	meta, ok := lookupRegistryMeta(path)
	if !ok {
		return
	}

	// Use strings stay defined in the CLI; the registry does not model
	// variadic usage.
	if meta.Description != "" {
		cmd.Short = meta.Description
	}

	if meta.LongDesc == "" && len(meta.Examples) == 0 {
		return
	}
	// A hand-written Long survives unless the registry carries its own.
	if meta.LongDesc != "" || cmd.Long == "" {
		cmd.Long = longHelp(meta)
	}
}

func lookupRegistryMeta(path string) (commands.Meta, bool) {
	_, meta, ok := commands.LookupMetaByPath(path)
	return meta, ok
}

// longHelp renders the registry long description with its examples block.
func longHelp(meta commands.Meta) string {
	long := meta.Description
	if meta.LongDesc != "" {
		long = meta.LongDesc
	}
	if len(meta.Examples) == 0 {
		return long
	}

	var b strings.Builder
	b.WriteString(long)
	b.WriteString("\n\nExamples:")
	for _, ex := range meta.Examples {
		b.WriteString("\n  ")
		b.WriteString(ex)
	}
	return b.String()
}
