package cli

import "wirelog/internal/global"

func DefineOptions() (cmdOpts *global.CommandSet) {
	// Root level
	root := &global.CommandSet{
		Description:     "Wire Logger (wirelog)",
		FullDescription: "  Decouples message production from delivery, locally or across the network",
		CommandName:     RootCLICommand,
		ChildCommands:   make(map[string]*global.CommandSet),
	}

	// Sending
	root.ChildCommands["send"] = &global.CommandSet{
		CommandName:     "send",
		UsageOption:     "-c </path/to/config.json>",
		Description:     "Send Messages",
		FullDescription: "Reads messages from standard input and delivers them to the configured console, file, or network sink",
		ChildCommands:   nil,
	}

	// Receiving
	root.ChildCommands["receive"] = &global.CommandSet{
		CommandName:     "receive",
		UsageOption:     "-c </path/to/config.json>",
		Description:     "Receive Messages",
		FullDescription: "Listens for message datagrams, filters by severity, and re-logs accepted messages to configured outputs",
		ChildCommands:   nil,
	}

	// Setup
	root.ChildCommands["configure"] = &global.CommandSet{
		CommandName:     "configure",
		UsageOption:     "-c </path/to/config.json>",
		Description:     "Setup Actions",
		FullDescription: "Generate template configuration files for the send and receive daemons",
		ChildCommands:   nil,
	}

	// Version Info
	root.ChildCommands["version"] = &global.CommandSet{
		CommandName:     "version",
		Description:     "Show Version Information",
		FullDescription: "Display meta information about program",
	}

	cmdOpts = root
	return
}
