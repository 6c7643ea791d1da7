package meme

import (
	"fmt"
	"log"
	"strings"

	"github.com/lpoto/memsther/db"

	"github.com/bwmarrin/discordgo"
)

const leaderboardLimit = 20

// leaderboardCommandHandler answers with the guild's top positive scores.
func leaderboardCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		log.Printf("No guild id on the leaderboard command")
		return
	}

	scores, err := db.GetTopScores(i.GuildID, leaderboardLimit)
	if err != nil {
		log.Printf("Error when fetching scores: %v", err)
		respondEphemeral(s, i, "No positive scores were found in this server")
		return
	}
	if len(scores) == 0 {
		respondEphemeral(s, i, "No positive scores were found in this server")
		return
	}

	var lines []string
	for _, score := range scores {
		member, err := s.GuildMember(i.GuildID, score.UserID)
		if err != nil {
			// Users that have since left the guild are skipped.
			continue
		}
		lines = append(lines, fmt.Sprintf("**_%s_**: %d", memberDisplayName(member), score.Score))
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "Leaderboard",
				Description: strings.Join(lines, "\n"),
				Footer: &discordgo.MessageEmbedFooter{
					Text: fmt.Sprintf("Showing top %d result/s", len(scores)),
				},
			}},
		},
	})
	if err != nil {
		log.Printf("Failed to respond with a leaderboard: %v", err)
	}
}

func memberDisplayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User != nil {
		return member.User.Username
	}
	return ""
}
