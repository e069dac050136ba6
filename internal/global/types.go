package global

type CommandSet struct {
	CommandName     string                 // Exact name of cli command
	UsageOption     string                 // Expected command value in usage top line
	Description     string                 // Short text displayed on parent command
	FullDescription string                 // Long text displayed on current command
	ChildCommands   map[string]*CommandSet // Available subcommands
}

type CtxKey string

// Sending Daemon

type SendConfig struct {
	Level   string      `json:"level"`
	Target  string      `json:"target"` // console, file, or network
	File    FileTarget  `json:"file,omitempty"`
	Network SendNetwork `json:"network,omitempty"`
}

type FileTarget struct {
	Path string `json:"path"`
}

type SendNetwork struct {
	LocalAddress  string `json:"localAddress,omitempty"`
	RemoteAddress string `json:"remoteAddress"`
}

// Receiving Daemon

type RecvConfig struct {
	Level         string      `json:"level"`
	ListenAddress string      `json:"listenAddress"`
	QueueCapacity int         `json:"queueCapacity,omitempty"` // 0 derives from system memory
	PollTimeout   string      `json:"pollTimeout,omitempty"`
	KernelFilter  bool        `json:"kernelFilter,omitempty"`
	Outputs       RecvOutputs `json:"outputs"`
}

type RecvOutputs struct {
	Stdout        bool   `json:"stdout"`
	FilePath      string `json:"filePath,omitempty"`
	BeatsEndpoint string `json:"beatsEndpoint,omitempty"`
}
