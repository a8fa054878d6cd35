package cmd

import (
	"context"
	"log"

	"github.com/bz888/banter/internal/api"
	"github.com/bz888/banter/internal/chat"
	"github.com/bz888/banter/internal/config"
	"github.com/bz888/banter/internal/logger"
	"github.com/bz888/banter/internal/ui"
	"github.com/joho/godotenv"
)

func init() {
	config.Init()
}

func Execute() {
	ui.Init()
	debugConsole, err := ui.GetDebugConsole()

	if err != nil {
		log.Fatal(err)
	}

	logger.InitLogger(config.Dev, config.LogPath, debugConsole)
	localLogger := logger.NewLogger("cmd")

	// a missing .env is fine, the key may already be in the environment
	if err := godotenv.Load(); err == nil {
		localLogger.Info("Loaded .env")
	}

	api.Init()

	store := chat.NewStore()
	conversation := chat.NewLog()

	var client *api.Client
	meta, startupErr := config.LoadMetadata(config.MetadataPath)
	if startupErr == nil {
		client, startupErr = api.NewClient(context.Background(), config.Model, meta.Prompt)
	}

	var backend chat.Backend
	if startupErr != nil {
		localLogger.Error("Startup configuration failed: ", startupErr)
		backend = api.Unavailable{Reason: startupErr.Error()}
		conversation.Append(chat.NewModelTurn("**Error:** configuration failed: "+startupErr.Error(), nil))
	} else {
		backend = client
	}

	session := chat.NewSession(backend, store, conversation)

	ui.Bind(session, store, conversation, meta)
	ui.Run()

	if client != nil {
		if err := client.Close(); err != nil {
			localLogger.Error("Failed to close the Gemini client: ", err)
		}
	}
}
