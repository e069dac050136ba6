package daemon

import (
	"encoding/json"
	"fmt"
	"os"

	"wirelog/internal/global"
	"wirelog/pkg/protocol"
	"wirelog/pkg/sender"
)

// Writes a starter send config with every field populated
func CreateSendTemplateConfig(filepath string) (err error) {
	if filepath == "" {
		err = fmt.Errorf("specify template file path via the --config/-c arguments")
		return
	}

	var newCfg global.SendConfig
	newCfg.Level = protocol.LevelInformation.String()
	newCfg.Target = sender.TargetNetwork.String()
	newCfg.File.Path = global.DefaultLogFilePath
	newCfg.Network.LocalAddress = global.DefaultLocalAddress
	newCfg.Network.RemoteAddress = "[::1]:8517"

	err = writeTemplateConfig(filepath, newCfg)
	return
}

// Writes a starter receive config with every field populated
func CreateRecvTemplateConfig(filepath string) (err error) {
	if filepath == "" {
		err = fmt.Errorf("specify template file path via the --config/-c arguments")
		return
	}

	var newCfg global.RecvConfig
	newCfg.Level = protocol.LevelTrace.String()
	newCfg.ListenAddress = global.DefaultListenAddress
	newCfg.QueueCapacity = 0 // derive from system memory
	newCfg.PollTimeout = global.DefaultPollTimeout.String()
	newCfg.KernelFilter = true
	newCfg.Outputs.Stdout = true
	newCfg.Outputs.FilePath = "/var/log/wirelog.log"
	newCfg.Outputs.BeatsEndpoint = "localhost:5044"

	err = writeTemplateConfig(filepath, newCfg)
	return
}

func writeTemplateConfig(filepath string, cfg any) (err error) {
	newConfFile, err := os.OpenFile(filepath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer newConfFile.Close()

	confBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		err = fmt.Errorf("error marshaling new config: %v", err)
		return
	}
	confBytes = append(confBytes, []byte("\n")...)

	_, err = newConfFile.Write(confBytes)
	if err != nil {
		err = fmt.Errorf("failed to write config to file: %v", err)
		return
	}
	return
}
