package meme

import (
	"fmt"
	"log"

	"github.com/lpoto/memsther/authorship"
	"github.com/lpoto/memsther/utils"

	"github.com/bwmarrin/discordgo"
)

// linkCommandHandler relays a link the same way a meme is relayed. The
// acknowledgement keeps the authorship frame so votes on it count too.
func linkCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var url string
	for _, option := range i.ApplicationCommandData().Options {
		if option.Type == discordgo.ApplicationCommandOptionString {
			url = option.StringValue()
		}
	}
	if url == "" {
		log.Printf("Received link command with no string option")
		return
	}

	if !utils.IsURL(url) {
		respondEphemeral(s, i, fmt.Sprintf("_%s_  is not a valid link", url))
		return
	}

	content := fmt.Sprintf("%s just sent a link: %s", authorship.Mention(interactionUserID(i)), url)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.Printf("Failed to respond to a valid link: %v", err)
		return
	}

	message, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		return
	}
	addVoteReactions(s, message.ChannelID, message.ID)
}
