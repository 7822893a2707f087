package command

import (
	"github.com/f8wq/TFL-Manager/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.RecordCommand,
	def.RecordSubmitCommand,
}
