package bot

import (
	"github.com/lpoto/memsther/handler"
	"github.com/lpoto/memsther/handler/meme"

	"github.com/bwmarrin/discordgo"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(meme.MessageReactionAdd)
	s.AddHandler(meme.MessageReactionRemove)

	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions | discordgo.IntentMessageContent
}
