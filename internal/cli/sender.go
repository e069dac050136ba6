package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"wirelog/internal/daemon"
	"wirelog/internal/global"
	"wirelog/internal/logctx"
)

func SendMode(ctx context.Context, commandname string, args []string) (exitCode int) {
	var configPath string
	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	SetCommon(commandFlags, &configPath)

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
	}
	if len(args) < 1 {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
		os.Exit(1)
	}
	commandFlags.Parse(args[0:])
	logctx.SetLogLevel(ctx, global.Verbosity)

	cfg, err := daemon.LoadSendConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sendDaemon := daemon.NewSendDaemon(cfg)
	err = sendDaemon.Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting sending daemon: %v\n", err)
		os.Exit(1)
	}

	sendDaemon.Run()
	sendDaemon.Shutdown()

	// Fatal messages halt the whole process, not just the input pump
	if sendDaemon.TerminateRequested.Load() {
		exitCode = 1
	}
	return
}
