package def

import "github.com/bwmarrin/discordgo"

// Option names of /record_submit.
const (
	OptionLevel      = "level"
	OptionCompletion = "completion"
	OptionFramerate  = "framerate"
	OptionUsername   = "username"
)

var RecordCommand = &discordgo.ApplicationCommand{
	Name:        "record",
	Description: "Manage level completion records",
}

var RecordSubmitCommand = &discordgo.ApplicationCommand{
	Name:        "record_submit",
	Description: "Submit a level completion record",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionLevel,
			Description: "Enter the level name",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionCompletion,
			Description: "Describe the completion details",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionFramerate,
			Description: "Enter the framerate",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionUsername,
			Description: "Enter the username",
			Required:    true,
		},
	},
}
