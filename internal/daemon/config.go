package daemon

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"wirelog/internal/global"
	"wirelog/pkg/protocol"
	"wirelog/pkg/sender"

	"github.com/pbnjay/memory"
)

// Loads JSON send config from file
func LoadSendConfig(path string) (cfg global.SendConfig, err error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read config file: %v", err)
		return
	}

	err = json.Unmarshal(configFile, &cfg)
	if err != nil {
		err = fmt.Errorf("invalid config syntax in '%s': %v", path, err)
		return
	}

	setSendDefaults(&cfg)
	err = validateSendConfig(cfg)
	return
}

// Loads JSON receive config from file
func LoadRecvConfig(path string) (cfg global.RecvConfig, err error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read config file: %v", err)
		return
	}

	err = json.Unmarshal(configFile, &cfg)
	if err != nil {
		err = fmt.Errorf("invalid config syntax in '%s': %v", path, err)
		return
	}

	setRecvDefaults(&cfg)
	err = validateRecvConfig(cfg)
	return
}

// Sets defaults for any missing values
func setSendDefaults(cfg *global.SendConfig) {
	if cfg.Level == "" {
		cfg.Level = protocol.LevelInformation.String()
	}
	if cfg.Target == "" {
		cfg.Target = sender.TargetConsole.String()
	}
	if cfg.File.Path == "" {
		cfg.File.Path = global.DefaultLogFilePath
	}
	if cfg.Network.LocalAddress == "" {
		cfg.Network.LocalAddress = global.DefaultLocalAddress
	}
}

// Sets defaults for any missing values
func setRecvDefaults(cfg *global.RecvConfig) {
	if cfg.Level == "" {
		cfg.Level = protocol.LevelTrace.String()
	}
	if cfg.ListenAddress == "" {
		cfg.ListenAddress = global.DefaultListenAddress
	}
	if cfg.QueueCapacity == 0 {
		cfg.QueueCapacity = deriveQueueCapacity()
	}
	if cfg.PollTimeout == "" {
		cfg.PollTimeout = global.DefaultPollTimeout.String()
	}
	if !cfg.Outputs.Stdout && cfg.Outputs.FilePath == "" && cfg.Outputs.BeatsEndpoint == "" {
		cfg.Outputs.Stdout = true
	}
}

func validateSendConfig(cfg global.SendConfig) (err error) {
	_, err = protocol.LevelFromName(cfg.Level)
	if err != nil {
		return
	}

	_, err = targetFromName(cfg.Target)
	if err != nil {
		return
	}

	if cfg.Target == sender.TargetNetwork.String() && cfg.Network.RemoteAddress == "" {
		err = fmt.Errorf("network target requires a remote address")
		return
	}
	return
}

func validateRecvConfig(cfg global.RecvConfig) (err error) {
	_, err = protocol.LevelFromName(cfg.Level)
	if err != nil {
		return
	}

	_, err = time.ParseDuration(cfg.PollTimeout)
	if err != nil {
		err = fmt.Errorf("failed to parse poll timeout: %v", err)
		return
	}

	if cfg.QueueCapacity < 0 {
		err = fmt.Errorf("queue capacity cannot be negative")
		return
	}
	return
}

// Maps a target keyword onto a sink target
func targetFromName(name string) (target sender.Target, err error) {
	switch name {
	case sender.TargetConsole.String():
		target = sender.TargetConsole
	case sender.TargetFile.String():
		target = sender.TargetFile
	case sender.TargetNetwork.String():
		target = sender.TargetNetwork
	default:
		err = fmt.Errorf("unknown sink target: %s", name)
	}
	return
}

// Sizes the application queue from system memory, one slot per MiB clamped to
// a sane window
func deriveQueueCapacity() (capacity int) {
	totalMem := memory.TotalMemory()

	capacity = int(totalMem / (1 << 20))
	if capacity < global.DefaultMinQueueCapacity {
		capacity = global.DefaultMinQueueCapacity
	}
	if capacity > global.DefaultMaxQueueCapacity {
		capacity = global.DefaultMaxQueueCapacity
	}
	return
}
