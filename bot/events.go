package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/f8wq/TFL-Manager/handler"
	"github.com/f8wq/TFL-Manager/handler/record"
)

func registerEventHandlers(s *discordgo.Session, lifecycle *record.Lifecycle) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(lifecycle.MessageReactionAdd)

	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildMembers
}
