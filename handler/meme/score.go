package meme

import (
	"fmt"
	"log"

	"github.com/lpoto/memsther/db"

	"github.com/bwmarrin/discordgo"
)

// scoreCommandHandler answers with the selected user's score in the
// current guild.
func scoreCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		return
	}

	var user *discordgo.User
	for _, option := range i.ApplicationCommandData().Options {
		if option.Type == discordgo.ApplicationCommandOptionUser {
			user = option.UserValue(s)
		}
	}
	if user == nil {
		log.Printf("Received score command with no user option")
		return
	}

	score, err := db.GetScore(user.ID, i.GuildID)
	if err != nil {
		log.Printf("Failed to get user score: %v", err)
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("**_%s_** has a score of **_%d_**", user.Username, score))
}
