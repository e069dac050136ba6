package global

import "time"

const (
	// Descriptive Names for available verbosity levels
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
	VerbosityFullData
	VerbosityDebug

	// Descriptive names for available severity levels
	ErrorLog string = "Error"
	WarnLog  string = "Warn"
	InfoLog  string = "Info"
)

const (
	ProgVersion  string = "v0.1.0"
	ProgBaseName string = "wirelog"

	// Context keys
	LoggerKey  CtxKey = "logger"  // Event queue (mostly for variable log verbosity handling)
	LogTagsKey CtxKey = "logtags" // List of tags in order of broad->specific appended/popped at various parts of the program

	DefaultConfigPath    string = "/etc/wirelog.json"
	DefaultLogFilePath   string = "log.txt"
	DefaultLocalAddress  string = "0.0.0.0:0"
	DefaultListenAddress string = "0.0.0.0:8517"

	// Inbound queue sizing for the receive daemon (capacity 0 in config derives
	// one from available memory, clamped to this window)
	DefaultMinQueueCapacity int = 1024
	DefaultMaxQueueCapacity int = 16384

	// Timeout values
	ReceiveShutdownTimeout time.Duration = 20 * time.Second
	SendShutdownTimeout    time.Duration = 5 * time.Second
	DefaultPollTimeout     time.Duration = 500 * time.Millisecond

	// Namespacing Name Components
	NSTest    string = "Test"
	NSCLI     string = "CLI"
	NSRecv    string = "Receiver"
	NSSend    string = "Sender"
	NSQueue   string = "Queue"
	NSWorker  string = "Worker"
	NSWatcher string = "Watcher"
	NSFilter  string = "Filter"
	NSForward string = "Forward"
	NSDaemon  string = "Daemon"
)
