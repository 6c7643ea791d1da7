package meme

import (
	"github.com/lpoto/memsther/command/def"
	"github.com/lpoto/memsther/handler"
)

// RegisterHandlers registers all slash command handlers for the meme package.
func RegisterHandlers() {
	handler.AddCommandHandler(def.MemeCommand.Name, memeCommandHandler)
	handler.AddCommandHandler(def.ScoreCommand.Name, scoreCommandHandler)
	handler.AddCommandHandler(def.LinkCommand.Name, linkCommandHandler)
	handler.AddCommandHandler(def.GifCommand.Name, gifCommandHandler)
	handler.AddCommandHandler(def.LeaderboardCommand.Name, leaderboardCommandHandler)
}
