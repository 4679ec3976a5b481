// Package commands provides a central registry of dsq CLI commands.
// This registry is the single source of truth for command metadata,
// used by the CLI help sync, the commands dump, and shell tooling.
package commands

// Meta defines metadata for a CLI command.
type Meta struct {
	Name         string     // Command name (e.g., "gen", "config set")
	Description  string     // Short description
	LongDesc     string     // Long description (for --help)
	Args         []ArgMeta  // Positional arguments
	Flags        []FlagMeta // Command flags
	Examples     []string   // Usage examples
	MutatesState bool       // Whether the command writes config or history state
}

// ArgMeta defines a positional argument.
type ArgMeta struct {
	Name        string   // Argument name
	Description string   // Description
	Required    bool     // Is this argument required?
	Completions []string // Static completions (if any)
}

// FlagMeta defines a command flag.
type FlagMeta struct {
	Name        string   // Flag name (e.g., "increment", "reverse")
	Short       string   // Short flag (e.g., "n" for -n)
	Description string   // Description
	Type        FlagType // Type of flag
	Default     string   // Default value
	Examples    []string // Example values
}

// FlagType represents the type of a flag.
type FlagType string

const (
	FlagTypeString FlagType = "string"
	FlagTypeBool   FlagType = "bool"
	FlagTypeInt    FlagType = "int"
)

// Registry holds all registered commands.
var Registry = map[string]Meta{
	"gen": {
		Name:        "gen",
		Description: "Generate a sequence of dates",
		LongDesc: `Generate an evenly stepped sequence of calendar dates.

The sequence runs from --begin-date to --end-date, stepping by --increment
days. Either endpoint may be omitted (it defaults to today) or given as the
keywords today, tomorrow, or yesterday. When the endpoints are ordered
against the sign of the increment, the increment's direction is flipped so
the sequence still runs from begin to end.

--days emits a fixed-size window of days starting at the begin date and
takes precedence over --end-date. A negative --days extends the window
backward in time.

--reverse swaps the endpoints and negates the increment, so the same window
is emitted in the opposite order.

Dates are parsed with --input-format and rendered with --output-format,
both strftime format strings defaulting to %Y-%m-%d.`,
		Flags: []FlagMeta{
			{Name: "separator", Short: "s", Description: `Separator between dates (\t, \n, \r are unescaped)`, Type: FlagTypeString, Default: `\n`, Examples: []string{",", `\t`, " "}},
			{Name: "output-format", Short: "o", Description: "strftime format for emitted dates", Type: FlagTypeString, Examples: []string{"%d/%m/%Y", "%Y-%j"}},
			{Name: "input-format", Short: "i", Description: "strftime format for parsing the endpoint dates", Type: FlagTypeString, Examples: []string{"%d/%m/%Y"}},
			{Name: "begin-date", Short: "b", Description: "First date in the sequence (today, tomorrow, yesterday, or a date)", Type: FlagTypeString, Examples: []string{"2026-01-01", "today"}},
			{Name: "end-date", Short: "e", Description: "Last date in the sequence", Type: FlagTypeString, Examples: []string{"2026-01-31", "tomorrow"}},
			{Name: "increment", Short: "n", Description: "Days between emitted dates (negative steps backward)", Type: FlagTypeInt, Default: "1"},
			{Name: "days", Short: "d", Description: "Emit this many days from the begin date (overrides --end-date)", Type: FlagTypeInt, Default: "0"},
			{Name: "reverse", Short: "r", Description: "Emit the sequence in reverse order", Type: FlagTypeBool},
		},
		Examples: []string{
			"dsq gen -b 2026-01-01 -e 2026-01-07",
			"dsq gen -d 10",
			"dsq gen -b 2026-01-01 -e 2026-03-01 -n 7",
			"dsq gen -d 10 -r",
			"dsq gen -b 01/01/2026 -i %d/%m/%Y -o %Y-%j",
			"dsq gen -d 5 -s , --json",
		},
	},
	"version": {
		Name:        "version",
		Description: "Show dsq version and build information",
		Examples: []string{
			"dsq version",
			"dsq version --json",
		},
	},
	"config_init": {
		Name:        "config init",
		Description: "Create a starter configuration file",
		LongDesc: `Write a commented starter config to the dateseq config directory.

Fails if the file already exists unless --force is given.`,
		Flags: []FlagMeta{
			{Name: "force", Description: "Overwrite an existing config file", Type: FlagTypeBool},
		},
		Examples: []string{
			"dsq config init",
			"dsq config init --force",
		},
	},
	"config_set": {
		Name:        "config set",
		Description: "Set one or more config.toml fields",
		LongDesc: `Set configuration fields and write the config file.

Fields map to config.toml keys:
  --separator            defaults.separator
  --output-format        defaults.output_format
  --input-format         defaults.input_format
  --history-disabled     history.disabled (true/false)
  --history-max-entries  history.max_entries (positive integer)
  --accent               ui.accent (hex, ANSI 256 code, or "none")
  --code-theme           ui.code_theme`,
		Flags: []FlagMeta{
			{Name: "separator", Description: "Set default gen separator", Type: FlagTypeString, Examples: []string{",", `\t`}},
			{Name: "output-format", Description: "Set default strftime output format", Type: FlagTypeString, Examples: []string{"%d/%m/%Y"}},
			{Name: "input-format", Description: "Set default strftime input format", Type: FlagTypeString},
			{Name: "history-disabled", Description: "Enable or disable history recording (true|false)", Type: FlagTypeString},
			{Name: "history-max-entries", Description: "Set history retention cap", Type: FlagTypeInt},
			{Name: "accent", Description: "Set accent color (ANSI 0-255 or #RRGGBB)", Type: FlagTypeString, Examples: []string{"#7aa2f7", "39", "none"}},
			{Name: "code-theme", Description: "Set markdown code theme name", Type: FlagTypeString, Examples: []string{"dracula", "monokai"}},
		},
		Examples: []string{
			"dsq config set --output-format %d/%m/%Y",
			"dsq config set --history-max-entries 1000",
			"dsq config set --accent '#7aa2f7' --code-theme monokai",
		},
	},
	"config_unset": {
		Name:        "config unset",
		Description: "Clear one or more config.toml fields",
		Flags: []FlagMeta{
			{Name: "separator", Description: "Clear defaults.separator", Type: FlagTypeBool},
			{Name: "output-format", Description: "Clear defaults.output_format", Type: FlagTypeBool},
			{Name: "input-format", Description: "Clear defaults.input_format", Type: FlagTypeBool},
			{Name: "history-disabled", Description: "Clear history.disabled", Type: FlagTypeBool},
			{Name: "history-max-entries", Description: "Clear history.max_entries", Type: FlagTypeBool},
			{Name: "accent", Description: "Clear ui.accent", Type: FlagTypeBool},
			{Name: "code-theme", Description: "Clear ui.code_theme", Type: FlagTypeBool},
		},
		Examples: []string{
			"dsq config unset --output-format",
			"dsq config unset --accent --code-theme",
		},
	},
	"config_show": {
		Name:        "config show",
		Description: "Show the effective configuration",
		Examples: []string{
			"dsq config show",
			"dsq config show --json",
		},
	},
	"history_list": {
		Name:        "history list",
		Description: "List recorded generations, most recent first",
		Flags: []FlagMeta{
			{Name: "limit", Short: "n", Description: "Maximum number of entries", Type: FlagTypeInt, Default: "20"},
			{Name: "pipe", Description: "Force pipe-friendly tab-separated output", Type: FlagTypeBool},
			{Name: "no-pipe", Description: "Force human-readable output", Type: FlagTypeBool},
		},
		Examples: []string{
			"dsq history list",
			"dsq history list -n 5 --json",
		},
	},
	"history_clear": {
		Name:        "history clear",
		Description: "Delete all recorded generations",
		Examples: []string{
			"dsq history clear",
		},
	},
	"docs": {
		Name:        "docs",
		Description: "Browse long-form Markdown documentation",
		LongDesc: `Browse long-form documentation bundled into the dsq binary.

Use this command for guides and references. When run in a terminal with fzf
installed, 'dsq docs' opens an interactive selector. For command-level usage,
use 'dsq help <command>'.`,
		Args: []ArgMeta{
			{Name: "topic", Description: "Docs topic to open", Required: false},
		},
		Examples: []string{
			"dsq docs",
			"dsq docs getting-started",
			"dsq docs list",
		},
	},
	"docs_list": {
		Name:        "docs list",
		Description: "List documentation topics",
		Examples: []string{
			"dsq docs list",
		},
	},
	"docs_search": {
		Name:        "docs search",
		Description: "Search long-form Markdown documentation",
		Args: []ArgMeta{
			{Name: "query", Description: "Search query", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "limit", Short: "n", Description: "Maximum number of matches", Type: FlagTypeInt, Default: "20"},
		},
		Examples: []string{
			"dsq docs search separator",
			"dsq docs search \"output format\" --limit 10",
		},
	},
	"docs_outline": {
		Name:        "docs outline",
		Description: "Show the heading outline of a docs topic",
		Args: []ArgMeta{
			{Name: "topic", Description: "Docs topic to outline", Required: true},
		},
		Examples: []string{
			"dsq docs outline format-codes",
			"dsq docs outline getting-started --json",
		},
	},
	"commands": {
		Name:        "commands",
		Description: "Show command metadata",
		LongDesc: `Dump the command metadata registry.

Without arguments, lists every command with its description. With a command
path, shows the full metadata for that command. Intended for scripts and
shell tooling; pair with --json for machine-readable output.`,
		Args: []ArgMeta{
			{Name: "command", Description: "Command path (e.g., \"gen\" or \"config set\")", Required: false},
		},
		Examples: []string{
			"dsq commands --json",
			"dsq commands gen",
			"dsq commands \"config set\"",
		},
	},
}
