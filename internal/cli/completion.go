package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waffle/pkg/pipeline"
	"github.com/matzehuels/waffle/pkg/render/styles"
)

// Extensions offered when completing positional file arguments.
var (
	chartExtensions  = []string{"toml", "yaml", "yml", "json"}
	layoutExtensions = []string{"json"}
	dataExtensions   = []string{"csv", "xlsx"}
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for waffle.

Completions cover subcommands, chart and layout files, data files for --data,
and the values of --format and --style.

  bash:        source <(waffle completion bash)
  zsh:         waffle completion zsh > "${fpath[1]}/_waffle"
  fish:        waffle completion fish > ~/.config/fish/completions/waffle.fish
  powershell:  waffle completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// registerCompletions wires file and flag value completion into the
// subcommands of root.
func registerCompletions(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		switch cmd.Name() {
		case "plan", "layout", "render", "preview", "watch":
			cmd.ValidArgsFunction = completeFiles(chartExtensions)
		case "visualize":
			cmd.ValidArgsFunction = completeFiles(layoutExtensions)
		}
		if cmd.Flags().Lookup("data") != nil {
			_ = cmd.RegisterFlagCompletionFunc("data", completeFiles(dataExtensions))
		}
		if cmd.Flags().Lookup("format") != nil {
			_ = cmd.RegisterFlagCompletionFunc("format", completeList(pipeline.ValidFormats))
		}
		if cmd.Flags().Lookup("style") != nil {
			_ = cmd.RegisterFlagCompletionFunc("style", completeList(styles.Names))
		}
	}
}

type completionFunc = func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective)

// completeFiles completes the single file argument of a command with one of
// exts.
func completeFiles(exts []string) completionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return exts, cobra.ShellCompDirectiveFilterFileExt
	}
}

// completeList completes a comma-separated list of values, offering the
// entries not yet typed.
func completeList(values []string) completionFunc {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		prefix, typed := "", map[string]bool{}
		if i := strings.LastIndex(toComplete, ","); i >= 0 {
			prefix = toComplete[:i+1]
			for _, v := range strings.Split(toComplete[:i], ",") {
				typed[strings.TrimSpace(v)] = true
			}
		}
		var out []string
		for _, v := range values {
			if !typed[v] {
				out = append(out, prefix+v)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}
