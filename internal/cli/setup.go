package cli

import (
	"flag"
	"fmt"
	"os"

	"wirelog/internal/daemon"
	"wirelog/internal/global"
)

// Setup options
func SetupMode(commandname string, args []string) {
	var newSendConf bool
	var newRecvConf bool
	var templateConfPath string

	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	commandFlags.StringVar(&templateConfPath, "c", "", "Path to template config file")
	commandFlags.StringVar(&templateConfPath, "config", "", "Path to template config file")
	commandFlags.BoolVar(&newSendConf, "send-config-template", false, "Create new template config for the sender daemon (using config-path argument)")
	commandFlags.BoolVar(&newRecvConf, "recv-config-template", false, "Create new template config for the receiver daemon (using config-path argument)")

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
	}
	if len(args) < 1 {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
		os.Exit(1)
	}
	commandFlags.Parse(args[0:])

	var err error

	if newSendConf {
		err = daemon.CreateSendTemplateConfig(templateConfPath)
	} else if newRecvConf {
		err = daemon.CreateRecvTemplateConfig(templateConfPath)
	} else {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully wrote template configuration file to '%s'\n", templateConfPath)
}
