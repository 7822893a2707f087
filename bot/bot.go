package bot

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/f8wq/TFL-Manager/command"
	"github.com/f8wq/TFL-Manager/config"
	"github.com/f8wq/TFL-Manager/db"
	"github.com/f8wq/TFL-Manager/gateway"
	"github.com/f8wq/TFL-Manager/handler/record"
	"github.com/f8wq/TFL-Manager/keepalive"
)

var dg *discordgo.Session

// Start starts the bot and blocks until SIGINT or SIGTERM.
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return
	}
	log.Printf("Token loaded (length: %d)", len(config.Cfg.Token))

	// The liveness endpoint comes up first so the process monitor sees an open port.
	alive := keepalive.New(config.Cfg.Keepalive)
	if err := alive.Start(); err != nil {
		log.Printf("Error starting keepalive: %v", err)
		return
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := alive.Shutdown(ctx); err != nil {
			log.Printf("Error stopping keepalive: %v", err)
		}
	}()

	store, err := db.Open(config.Cfg.RecordBot.Store)
	if err != nil {
		log.Printf("Error opening submission store: %v", err)
		return
	}

	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Printf("Error creating Discord session: %v", err)
		return
	}
	// Events are handled one at a time, in arrival order.
	dg.SyncEvents = true

	lifecycle := record.NewLifecycle(record.Settings{
		ApprovalChannelID: config.Cfg.RecordBot.ApprovalChannelID,
		FinalChannelID:    config.Cfg.RecordBot.FinalChannelID,
		ApproverRole:      config.Cfg.RecordBot.ApproverRole,
	}, store, gateway.NewDiscord(dg))
	record.RegisterHandlers(lifecycle)
	registerEventHandlers(dg, lifecycle)

	err = dg.Open()
	if err != nil {
		log.Printf("Error opening connection: %v", err)
		return
	}
	defer dg.Close()
	log.Printf("%s has connected to Discord!", dg.State.User.Username)

	registerCommands(dg, config.Cfg.Commands.Allowguilds)
	alive.SetReady(true)

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	alive.SetReady(false)
}

// registerCommands creates the slash commands in every allowed guild, or
// globally when no guild is configured.
func registerCommands(s *discordgo.Session, guildIDs []string) {
	if len(guildIDs) == 0 {
		guildIDs = []string{""}
	}
	for _, guildID := range guildIDs {
		for _, cmd := range command.AllCommands {
			if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
				log.Printf("Cannot create '%v' command in guild %q: %v", cmd.Name, guildID, err)
			}
		}
	}
	log.Printf("Commands synced.")
}

// GetSession returns the current Discord session.
func GetSession() *discordgo.Session {
	return dg
}
