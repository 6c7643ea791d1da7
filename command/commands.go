package command

import (
	"github.com/lpoto/memsther/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.MemeCommand,
	def.ScoreCommand,
	def.LinkCommand,
	def.GifCommand,
	def.LeaderboardCommand,
}
