package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dateseq/dateseq/internal/config"
)

type globalConfigContext struct {
	cfg          *config.Config
	configPath   string
	configExists bool
}

var (
	configSetSeparator    string
	configSetOutputFormat string
	configSetInputFormat  string
	configSetHistoryOff   string
	configSetHistoryMax   int
	configSetAccent       string
	configSetCodeTheme    string

	configUnsetSeparator    bool
	configUnsetOutputFormat bool
	configUnsetInputFormat  bool
	configUnsetHistoryOff   bool
	configUnsetHistoryMax   bool
	configUnsetAccent       bool
	configUnsetCodeTheme    bool

	configInitForce bool
)

func loadGlobalConfigContextAllowMissing() (*globalConfigContext, error) {
	resolvedPath := config.DefaultPath()
	if strings.TrimSpace(configPath) != "" {
		resolvedPath = configPath
	}

	exists := true
	if _, err := os.Stat(resolvedPath); os.IsNotExist(err) {
		exists = false
	}

	loadedCfg := &config.Config{}
	if exists {
		var err error
		loadedCfg, err = config.LoadFrom(resolvedPath)
		if err != nil {
			return nil, err
		}
		if loadedCfg == nil {
			loadedCfg = &config.Config{}
		}
	}

	return &globalConfigContext{
		cfg:          loadedCfg,
		configPath:   resolvedPath,
		configExists: exists,
	}, nil
}

func configData(ctx *globalConfigContext) map[string]interface{} {
	return map[string]interface{}{
		"config_path": ctx.configPath,
		"exists":      ctx.configExists,
		"defaults": map[string]interface{}{
			"separator":     ctx.cfg.Defaults.Separator,
			"output_format": ctx.cfg.Defaults.OutputFormat,
			"input_format":  ctx.cfg.Defaults.InputFormat,
		},
		"history": map[string]interface{}{
			"disabled":    ctx.cfg.History.Disabled,
			"max_entries": ctx.cfg.History.MaxEntries,
		},
		"ui": map[string]interface{}{
			"accent":     strings.TrimSpace(ctx.cfg.UI.Accent),
			"code_theme": strings.TrimSpace(ctx.cfg.UI.CodeTheme),
		},
	}
}

func normalizeBoolValue(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	ctx, err := loadGlobalConfigContextAllowMissing()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(configData(ctx), nil)
		return nil
	}

	if !ctx.configExists {
		fmt.Printf("Config file does not exist: %s\n", ctx.configPath)
		fmt.Println("Run 'dsq config init' to create it.")
		return nil
	}

	fmt.Printf("config: %s\n", ctx.configPath)

	if v := ctx.cfg.Defaults.Separator; v != "" {
		fmt.Printf("defaults.separator: %q\n", v)
	}
	if v := strings.TrimSpace(ctx.cfg.Defaults.OutputFormat); v != "" {
		fmt.Printf("defaults.output_format: %s\n", v)
	}
	if v := strings.TrimSpace(ctx.cfg.Defaults.InputFormat); v != "" {
		fmt.Printf("defaults.input_format: %s\n", v)
	}
	if ctx.cfg.History.Disabled {
		fmt.Printf("history.disabled: %t\n", ctx.cfg.History.Disabled)
	}
	if ctx.cfg.History.MaxEntries > 0 {
		fmt.Printf("history.max_entries: %d\n", ctx.cfg.History.MaxEntries)
	}
	if v := strings.TrimSpace(ctx.cfg.UI.Accent); v != "" {
		fmt.Printf("ui.accent: %s\n", v)
	}
	if v := strings.TrimSpace(ctx.cfg.UI.CodeTheme); v != "" {
		fmt.Printf("ui.code_theme: %s\n", v)
	}

	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global dsq config.toml settings",
	Long: `Manage global dsq config.toml settings.

Use this to initialize, inspect, and edit machine-level configuration.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default global config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := config.DefaultPath()
		if strings.TrimSpace(configPath) != "" {
			targetPath = configPath
		}

		createdPath, created, err := config.CreateDefaultAt(targetPath, configInitForce)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": createdPath,
				"created":     created,
			}, nil)
			return nil
		}

		if created {
			fmt.Printf("Created config: %s\n", createdPath)
		} else {
			fmt.Printf("Config already exists: %s\n", createdPath)
			fmt.Println("Use --force to overwrite it with the defaults.")
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one or more config.toml fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		changed := make([]string, 0, 7)

		if cmd.Flags().Changed("separator") {
			value := configSetSeparator
			if strings.TrimSpace(value) == "" {
				return handleErrorMsg(ErrInvalidInput,
					`separator cannot be empty or whitespace-only; use the \t, \n, or \r escape forms`, "")
			}
			ctx.cfg.Defaults.Separator = value
			changed = append(changed, "defaults.separator")
		}

		if cmd.Flags().Changed("output-format") {
			value := strings.TrimSpace(configSetOutputFormat)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "output-format cannot be empty; use 'dsq config unset --output-format' to clear it", "")
			}
			ctx.cfg.Defaults.OutputFormat = value
			changed = append(changed, "defaults.output_format")
		}

		if cmd.Flags().Changed("input-format") {
			value := strings.TrimSpace(configSetInputFormat)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "input-format cannot be empty; use 'dsq config unset --input-format' to clear it", "")
			}
			ctx.cfg.Defaults.InputFormat = value
			changed = append(changed, "defaults.input_format")
		}

		if cmd.Flags().Changed("history-disabled") {
			value, ok := normalizeBoolValue(configSetHistoryOff)
			if !ok {
				return handleErrorMsg(ErrInvalidInput, "history-disabled must be true or false", "")
			}
			ctx.cfg.History.Disabled = value
			changed = append(changed, "history.disabled")
		}

		if cmd.Flags().Changed("history-max-entries") {
			if configSetHistoryMax <= 0 {
				return handleErrorMsg(ErrInvalidInput, "history-max-entries must be a positive integer", "")
			}
			ctx.cfg.History.MaxEntries = configSetHistoryMax
			changed = append(changed, "history.max_entries")
		}

		if cmd.Flags().Changed("accent") {
			value := strings.TrimSpace(configSetAccent)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "accent cannot be empty; use 'dsq config unset --accent' to clear it", "")
			}
			ctx.cfg.UI.Accent = value
			changed = append(changed, "ui.accent")
		}

		if cmd.Flags().Changed("code-theme") {
			value := strings.TrimSpace(configSetCodeTheme)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "code-theme cannot be empty; use 'dsq config unset --code-theme' to clear it", "")
			}
			ctx.cfg.UI.CodeTheme = value
			changed = append(changed, "ui.code_theme")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields provided; set at least one of --separator/--output-format/--input-format/--history-disabled/--history-max-entries/--accent/--code-theme", "")
		}

		if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		ctx.configExists = true
		if isJSONOutput() {
			data := configData(ctx)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Updated config: %s\n", ctx.configPath)
		fmt.Printf("changed: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Clear one or more config.toml fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if !ctx.configExists {
			return handleErrorMsg(ErrFileNotFound, fmt.Sprintf("config file not found: %s", ctx.configPath), "Run 'dsq config init' first")
		}

		changed := make([]string, 0, 7)
		if configUnsetSeparator {
			ctx.cfg.Defaults.Separator = ""
			changed = append(changed, "defaults.separator")
		}
		if configUnsetOutputFormat {
			ctx.cfg.Defaults.OutputFormat = ""
			changed = append(changed, "defaults.output_format")
		}
		if configUnsetInputFormat {
			ctx.cfg.Defaults.InputFormat = ""
			changed = append(changed, "defaults.input_format")
		}
		if configUnsetHistoryOff {
			ctx.cfg.History.Disabled = false
			changed = append(changed, "history.disabled")
		}
		if configUnsetHistoryMax {
			ctx.cfg.History.MaxEntries = 0
			changed = append(changed, "history.max_entries")
		}
		if configUnsetAccent {
			ctx.cfg.UI.Accent = ""
			changed = append(changed, "ui.accent")
		}
		if configUnsetCodeTheme {
			ctx.cfg.UI.CodeTheme = ""
			changed = append(changed, "ui.code_theme")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields selected; pass one or more unset flags", "")
		}

		if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			data := configData(ctx)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Updated config: %s\n", ctx.configPath)
		fmt.Printf("cleared: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current config.toml values",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configSetCmd.Flags().StringVar(&configSetSeparator, "separator", "", "Set default gen separator")
	configSetCmd.Flags().StringVar(&configSetOutputFormat, "output-format", "", "Set default strftime output format")
	configSetCmd.Flags().StringVar(&configSetInputFormat, "input-format", "", "Set default strftime input format")
	configSetCmd.Flags().StringVar(&configSetHistoryOff, "history-disabled", "", "Enable or disable history recording (true|false)")
	configSetCmd.Flags().IntVar(&configSetHistoryMax, "history-max-entries", 0, "Set history retention cap")
	configSetCmd.Flags().StringVar(&configSetAccent, "accent", "", "Set accent color (ANSI 0-255 or #RRGGBB)")
	configSetCmd.Flags().StringVar(&configSetCodeTheme, "code-theme", "", "Set markdown code theme name")

	configUnsetCmd.Flags().BoolVar(&configUnsetSeparator, "separator", false, "Clear defaults.separator")
	configUnsetCmd.Flags().BoolVar(&configUnsetOutputFormat, "output-format", false, "Clear defaults.output_format")
	configUnsetCmd.Flags().BoolVar(&configUnsetInputFormat, "input-format", false, "Clear defaults.input_format")
	configUnsetCmd.Flags().BoolVar(&configUnsetHistoryOff, "history-disabled", false, "Clear history.disabled")
	configUnsetCmd.Flags().BoolVar(&configUnsetHistoryMax, "history-max-entries", false, "Clear history.max_entries")
	configUnsetCmd.Flags().BoolVar(&configUnsetAccent, "accent", false, "Clear ui.accent")
	configUnsetCmd.Flags().BoolVar(&configUnsetCodeTheme, "code-theme", false, "Clear ui.code_theme")

	rootCmd.AddCommand(configCmd)
}
