package meme

import (
	"errors"
	"log"

	"github.com/lpoto/memsther/authorship"
	"github.com/lpoto/memsther/db"
	"github.com/lpoto/memsther/vote"

	"github.com/bwmarrin/discordgo"
)

// fetcher is the slice of the discord session the reaction path needs to
// resolve the reacted-to message.
type fetcher interface {
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// scoreStore applies signed deltas to the per-guild reputation counters.
type scoreStore interface {
	AddScore(userID, guildID string, delta int64) error
}

// liveStore routes deltas to the sqlite-backed score table.
type liveStore struct{}

func (liveStore) AddScore(userID, guildID string, delta int64) error {
	return db.AddScore(userID, guildID, delta)
}

// MessageReactionAdd handles reaction additions.
func MessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	handleReaction(s, botUserID(s), r.MessageReaction, vote.Add, liveStore{})
}

// MessageReactionRemove handles reaction removals.
func MessageReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	handleReaction(s, botUserID(s), r.MessageReaction, vote.Remove, liveStore{})
}

// handleReaction wires one reaction event through the authorship codec, the
// vote gates and the score store. Every rejection is a normal no-op; nothing
// here escalates back to the gateway.
func handleReaction(f fetcher, botID string, r *discordgo.MessageReaction, action vote.Action, scores scoreStore) {
	kind := vote.KindOf(r.Emoji.Name)
	if kind == vote.None {
		return
	}
	if r.GuildID == "" {
		log.Printf("No guild id on reaction to message %s, ignoring", r.MessageID)
		return
	}

	message, err := f.ChannelMessage(r.ChannelID, r.MessageID)
	if err != nil {
		log.Printf("Could not fetch reacted-to message %s: %v", r.MessageID, err)
		return
	}

	authorID, err := authorship.Decode(message.Content)
	if err != nil {
		if !errors.Is(err, authorship.ErrNotSubmission) {
			log.Printf("Could not decode author of message %s: %v", r.MessageID, err)
		}
		return
	}

	decision := vote.Ballot{
		Kind:     kind,
		Action:   action,
		VoterID:  r.UserID,
		SenderID: messageSenderID(message),
		AuthorID: authorID,
		BotID:    botID,
	}.Decide()
	if !decision.Accept {
		log.Printf("Ignoring reaction on message %s: %s", r.MessageID, decision.Reason)
		return
	}

	if err := scores.AddScore(decision.TargetID, r.GuildID, decision.Delta); err != nil {
		log.Printf("Could not update user %s's score: %v", decision.TargetID, err)
		return
	}
	log.Printf("Updated user %s's score by %+d", decision.TargetID, decision.Delta)
}

// botUserID returns the bot's own user id once the ready handshake has
// populated the session state, and "" before that.
func botUserID(s *discordgo.Session) string {
	if s.State == nil || s.State.User == nil {
		return ""
	}
	return s.State.User.ID
}

func messageSenderID(m *discordgo.Message) string {
	if m.Author == nil {
		return ""
	}
	return m.Author.ID
}
