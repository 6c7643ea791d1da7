package meme

import (
	"log"

	"github.com/lpoto/memsther/vote"

	"github.com/bwmarrin/discordgo"
)

// respondEphemeral answers an interaction with a message only the invoking
// user can see.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

// addVoteReactions seeds an acknowledgement message with the two vote
// emojis so members can vote with a single click.
func addVoteReactions(s *discordgo.Session, channelID, messageID string) {
	for _, emoji := range []string{vote.EmojiUpvote, vote.EmojiDownvote} {
		if err := s.MessageReactionAdd(channelID, messageID, emoji); err != nil {
			log.Printf("Error when reacting to message %s: %v", messageID, err)
		}
	}
}

// interactionUserID resolves the invoking user both in guilds (Member) and
// in direct messages (User).
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
