package config

import "flag"

var (
	Dev          bool
	LogPath      string
	MetadataPath string
	Model        string
)

func Init() {
	flag.BoolVar(&Dev, "dev", false, "Development mode")
	flag.StringVar(&LogPath, "logPath", "", "Path to save the log file")
	flag.StringVar(&MetadataPath, "metadata", "metadata.json", "Path to the persona metadata file")
	flag.StringVar(&Model, "model", DefaultModel, "Gemini model to chat with")
	flag.Parse()
}
