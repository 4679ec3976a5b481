package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dateseq/dateseq/internal/commands"
	"github.com/dateseq/dateseq/internal/ui"
)

// commandView is the machine-readable shape of one registry entry.
type commandView struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	LongDesc     string            `json:"long_desc,omitempty"`
	Args         []commandArgView  `json:"args,omitempty"`
	Flags        []commandFlagView `json:"flags,omitempty"`
	Examples     []string          `json:"examples,omitempty"`
	MutatesState bool              `json:"mutates_state"`
}

type commandArgView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

type commandFlagView struct {
	Name        string `json:"name"`
	Short       string `json:"short,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
}

var commandsCmd = &cobra.Command{
	Use:   "commands [command]",
	Short: "Describe dsq commands in machine-readable form",
	Long: `Describe dsq commands in machine-readable form.

Without arguments, lists every registered command. With a command name
or path ("config set"), prints that command's full metadata. Combine
with --json for agent and script use.

Examples:
  dsq commands
  dsq commands gen --json
  dsq commands "config set"`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return outputCommandDetail(strings.Join(args, " "))
		}
		return outputCommandList()
	},
}

func outputCommandList() error {
	ids := commands.AllCommandNames()
	sort.Strings(ids)

	if isJSONOutput() {
		views := make([]commandView, 0, len(ids))
		for _, id := range ids {
			meta, _ := commands.GetCommandMeta(id)
			views = append(views, commandViewFromMeta(id, meta))
		}
		outputSuccess(map[string]interface{}{"commands": views}, &Meta{Count: len(views)})
		return nil
	}

	fmt.Println(ui.Header("Commands"))
	tbl := ui.NewTable(2)
	for _, id := range ids {
		meta, _ := commands.GetCommandMeta(id)
		name := meta.Name
		if meta.MutatesState {
			name += " *"
		}
		tbl.AddRow("  dsq "+name, meta.Description)
	}
	fmt.Print(tbl.String())
	fmt.Println()
	fmt.Println(ui.Hint("* mutates state (config, history, or the generation log)"))
	fmt.Println(ui.Hint("Use 'dsq commands <name>' for args, flags, and examples."))
	return nil
}

func outputCommandDetail(path string) error {
	id, meta, ok := commands.LookupMetaByPath(path)
	if !ok {
		return handleErrorMsg(ErrInvalidInput,
			fmt.Sprintf("unknown command: %s", path),
			"Run 'dsq commands' to list registered commands")
	}

	if isJSONOutput() {
		outputSuccess(commandViewFromMeta(id, meta), nil)
		return nil
	}

	fmt.Printf("%s  %s\n", ui.Header("dsq "+meta.Name), ui.Hint("["+id+"]"))
	fmt.Println(meta.Description)
	if meta.LongDesc != "" {
		fmt.Println()
		fmt.Println(meta.LongDesc)
	}

	if len(meta.Args) > 0 {
		fmt.Println()
		fmt.Println("Arguments:")
		tbl := ui.NewTable(2)
		for _, arg := range meta.Args {
			label := "[" + arg.Name + "]"
			if arg.Required {
				label = "<" + arg.Name + ">"
			}
			tbl.AddRow("  "+label, arg.Description)
		}
		fmt.Print(tbl.String())
	}

	if len(meta.Flags) > 0 {
		fmt.Println()
		fmt.Println("Flags:")
		tbl := ui.NewTable(2)
		for _, flag := range meta.Flags {
			label := "--" + flag.Name
			if flag.Short != "" {
				label = "-" + flag.Short + ", " + label
			}
			desc := flag.Description
			if flag.Default != "" {
				desc = fmt.Sprintf("%s (default %q)", desc, flag.Default)
			}
			tbl.AddRow("  "+label, desc)
		}
		fmt.Print(tbl.String())
	}

	if len(meta.Examples) > 0 {
		fmt.Println()
		fmt.Println("Examples:")
		for _, ex := range meta.Examples {
			fmt.Printf("  %s\n", ex)
		}
	}

	if meta.MutatesState {
		fmt.Println()
		fmt.Println(ui.Hint("This command mutates state."))
	}
	return nil
}

func commandViewFromMeta(id string, meta commands.Meta) commandView {
	view := commandView{
		ID:           id,
		Name:         meta.Name,
		Description:  meta.Description,
		LongDesc:     meta.LongDesc,
		Examples:     meta.Examples,
		MutatesState: meta.MutatesState,
	}
	for _, arg := range meta.Args {
		view.Args = append(view.Args, commandArgView{
			Name:        arg.Name,
			Description: arg.Description,
			Required:    arg.Required,
		})
	}
	for _, flag := range meta.Flags {
		view.Flags = append(view.Flags, commandFlagView{
			Name:        flag.Name,
			Short:       flag.Short,
			Description: flag.Description,
			Type:        string(flag.Type),
			Default:     flag.Default,
		})
	}
	return view
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
