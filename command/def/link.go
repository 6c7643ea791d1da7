package def

import (
	"github.com/bwmarrin/discordgo"
)

// LinkCommand relays a link the same way a meme is relayed, so reactions
// on it count towards the sender's score as well.
var LinkCommand = &discordgo.ApplicationCommand{
	Name:        "link",
	Description: "Send a link",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "link",
			Description: "The link to be sent",
			Required:    true,
		},
	},
}
