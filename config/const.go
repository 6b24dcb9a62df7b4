package config

const (
	// Section is the settings namespace, mirroring the editor extension id.
	Section = "slicer-runner"

	CommandID         = Section + ".execute"
	OutputChannelName = "Slicer Response"
	ProgressTitle     = "Sending script to Slicer..."

	// MaxScriptSize bounds request bodies on the stand-in server only.
	MaxScriptSize = 1024 * 1024 * 2 // 2 MB

	DefaultServePort = 2016 // Slicer WebServer default
	DefaultServeRPM  = 120
)
