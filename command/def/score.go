package def

import (
	"github.com/bwmarrin/discordgo"
)

// ScoreCommand shows the current score of the selected user.
var ScoreCommand = &discordgo.ApplicationCommand{
	Name:        "score",
	Description: "Get a user's score",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to get the score of",
			Required:    true,
		},
	},
}
