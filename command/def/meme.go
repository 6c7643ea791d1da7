package def

import (
	"github.com/bwmarrin/discordgo"
)

// MemeCommand posts a meme on the invoking user's behalf. The first
// attachment is required, up to three more plus an optional text content
// may be added.
var MemeCommand = &discordgo.ApplicationCommand{
	Name:        "meme",
	Description: "Send a meme",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionAttachment,
			Name:        "attachment",
			Description: "A file containing a meme",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionAttachment,
			Name:        "attachment1",
			Description: "A file containing a meme",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionAttachment,
			Name:        "attachment2",
			Description: "A file containing a meme",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionAttachment,
			Name:        "attachment3",
			Description: "A file containing a meme",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "content",
			Description: "The optional content of the meme",
			Required:    false,
		},
	},
}
