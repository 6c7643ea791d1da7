package def

import (
	"github.com/bwmarrin/discordgo"
)

// GifCommand searches giphy for the given keywords and relays one of the
// results.
var GifCommand = &discordgo.ApplicationCommand{
	Name:        "gif",
	Description: "Send a gif",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "keywords",
			Description: "The keywords to find the gif by",
			Required:    true,
		},
	},
}
