package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"wirelog/internal/global"
)

const (
	RootCLICommand  string = "root"
	helpMenuTrailer string = `
Report bugs to: <https://github.com/wirelog/wirelog/issues>
wirelog home page: <https://github.com/wirelog/wirelog>
`
)

// Full standardized help menu (wraps option printer as well)
func PrintHelpMenu(fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	const baseIndentSpaces = 2

	var curCmdSet *global.CommandSet
	usageParts := []string{os.Args[0]}

	// Find the command in tree
	if command == "" || command == RootCLICommand {
		curCmdSet = rootCmd
	} else if cmd, ok := rootCmd.ChildCommands[command]; ok {
		curCmdSet = cmd
		usageParts = append(usageParts, cmd.CommandName)
	} else {
		fmt.Printf("Unknown command: %s\n", command)
		return
	}

	// Build full usage path
	if curCmdSet == rootCmd && len(curCmdSet.ChildCommands) > 0 {
		usageParts = append(usageParts, "[subcommand]")
	}
	if curCmdSet.UsageOption != "" {
		usageParts = append(usageParts, curCmdSet.UsageOption)
	}

	fmt.Printf("Usage: %s\n\n", strings.Join(usageParts, " "))

	// Description
	if curCmdSet == rootCmd {
		fmt.Println(curCmdSet.Description)
		fmt.Println(curCmdSet.FullDescription)
		fmt.Println()
	} else if curCmdSet.FullDescription != "" {
		fmt.Println("  Description:")
		fmt.Printf("    %s\n\n", curCmdSet.FullDescription)
	}

	// Subcommands
	if len(curCmdSet.ChildCommands) > 0 {
		indent := strings.Repeat(" ", baseIndentSpaces)
		fmt.Printf("%sSubcommands:\n", indent)

		// Sort subcommand names and compute padding
		maxLen := 0
		subNames := make([]string, 0, len(curCmdSet.ChildCommands))
		for name := range curCmdSet.ChildCommands {
			subNames = append(subNames, name)
			if len(name) > maxLen {
				maxLen = len(name)
			}
		}
		sort.Strings(subNames)

		cmdIndent := strings.Repeat(" ", baseIndentSpaces+2)
		for _, name := range subNames {
			sub := curCmdSet.ChildCommands[name]
			padding := strings.Repeat(" ", maxLen-len(name)+2)
			fmt.Printf("%s%s%s - %s\n", cmdIndent, name, padding, sub.Description)
		}
		fmt.Println()
	}

	// Flags
	printFlagOptions(fs, baseIndentSpaces)

	// Top-level trailer
	if curCmdSet == rootCmd {
		fmt.Print(helpMenuTrailer)
	}
}

// Custom printer to deduplicate short/long usages and indent automatically
func printFlagOptions(fs *flag.FlagSet, baseIndentSpaces int) {
	// accounts for short arg prefix, short arg name, and joiner, like "-c, "
	const longOnlyOffset = 4
	const argToUsageSpaces = 2

	type optInfo struct {
		names      []string
		usage      string
		defaultVal string
		hasShort   bool
	}

	// Deduplicate short/long forms of the same option by exact usage text match
	seen := make(map[string]*optInfo)
	fs.VisitAll(func(arg *flag.Flag) {
		opt, dup := seen[arg.Usage]
		if !dup {
			opt = &optInfo{usage: arg.Usage, defaultVal: arg.DefValue}
			seen[arg.Usage] = opt
		}

		// Short args always lead the name list
		if len(arg.Name) == 1 {
			opt.names = append([]string{"-" + arg.Name}, opt.names...)
			opt.hasShort = true
		} else {
			opt.names = append(opt.names, "--"+arg.Name)
		}
	})

	// Deduplicated option list, sorted for stable output
	opts := make([]*optInfo, 0, len(seen))
	for _, opt := range seen {
		opts = append(opts, opt)
	}
	sort.Slice(opts, func(indexA, indexB int) bool {
		return strings.ToLower(opts[indexA].names[0]) < strings.ToLower(opts[indexB].names[0])
	})

	// Calculate max length flags for alignment (long-only options line up
	// with the long forms of short options)
	maxLen := 0
	for _, opt := range opts {
		leftLen := len(strings.Join(opt.names, ", "))
		if !opt.hasShort {
			leftLen += longOnlyOffset
		}
		if leftLen > maxLen {
			maxLen = leftLen
		}
	}

	// Print option list
	fmt.Printf("%sOptions:\n", strings.Repeat(" ", baseIndentSpaces))
	for _, opt := range opts {
		left := strings.Join(opt.names, ", ")

		indentSpaces := baseIndentSpaces
		leftLen := len(left)
		if !opt.hasShort {
			indentSpaces += longOnlyOffset
			leftLen += longOnlyOffset
		}

		// Skip printing any "empty" defaults
		desc := opt.usage
		if opt.defaultVal != "" && opt.defaultVal != "false" && opt.defaultVal != "0" {
			desc += fmt.Sprintf(" [default: %s]", opt.defaultVal)
		}

		fmt.Printf("%s%s%s%s\n",
			strings.Repeat(" ", indentSpaces),
			left,
			strings.Repeat(" ", maxLen-leftLen+argToUsageSpaces),
			desc)
	}
}
