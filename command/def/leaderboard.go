package def

import (
	"github.com/bwmarrin/discordgo"
)

// LeaderboardCommand shows the guild's top scores.
var LeaderboardCommand = &discordgo.ApplicationCommand{
	Name:        "leaderboard",
	Description: "Show the server's leaderboard",
}
