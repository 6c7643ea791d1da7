package meme

import (
	"errors"
	"testing"

	"github.com/lpoto/memsther/authorship"
	"github.com/lpoto/memsther/vote"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotID = "99"

type fakeFetcher struct {
	message *discordgo.Message
	err     error
	calls   int
}

func (f *fakeFetcher) ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.calls++
	return f.message, f.err
}

type recordedDelta struct {
	userID  string
	guildID string
	delta   int64
}

type fakeStore struct {
	deltas []recordedDelta
	err    error
}

func (f *fakeStore) AddScore(userID, guildID string, delta int64) error {
	if f.err != nil {
		return f.err
	}
	f.deltas = append(f.deltas, recordedDelta{userID, guildID, delta})
	return nil
}

// botMessage is an acknowledgement message as the bot would have posted it.
func botMessage(content string) *discordgo.Message {
	return &discordgo.Message{
		Content: content,
		Author:  &discordgo.User{ID: testBotID},
	}
}

func reactionBy(userID, emoji string) *discordgo.MessageReaction {
	return &discordgo.MessageReaction{
		UserID:    userID,
		MessageID: "1000",
		ChannelID: "2000",
		GuildID:   "9",
		Emoji:     discordgo.Emoji{Name: emoji},
	}
}

func TestUpvoteIncrementsAuthorScore(t *testing.T) {
	store := &fakeStore{}
	f := &fakeFetcher{message: botMessage(authorship.Encode("42"))}

	handleReaction(f, testBotID, reactionBy("7", vote.EmojiUpvote), vote.Add, store)

	require.Len(t, store.deltas, 1)
	assert.Equal(t, recordedDelta{"42", "9", 1}, store.deltas[0])
}

func TestDownvoteDecrementsAuthorScore(t *testing.T) {
	store := &fakeStore{}
	f := &fakeFetcher{message: botMessage(authorship.Encode("42"))}

	handleReaction(f, testBotID, reactionBy("7", vote.EmojiDownvote), vote.Add, store)

	require.Len(t, store.deltas, 1)
	assert.Equal(t, recordedDelta{"42", "9", -1}, store.deltas[0])
}

func TestToggleNetsToZero(t *testing.T) {
	store := &fakeStore{}
	f := &fakeFetcher{message: botMessage(authorship.Encode("42"))}

	handleReaction(f, testBotID, reactionBy("7", vote.EmojiUpvote), vote.Add, store)
	handleReaction(f, testBotID, reactionBy("7", vote.EmojiUpvote), vote.Remove, store)

	require.Len(t, store.deltas, 2)
	assert.Zero(t, store.deltas[0].delta+store.deltas[1].delta)
}

func TestSelfVoteAppliesNoDelta(t *testing.T) {
	store := &fakeStore{}
	f := &fakeFetcher{message: botMessage(authorship.Encode("42"))}

	handleReaction(f, testBotID, reactionBy("42", vote.EmojiUpvote), vote.Add, store)

	assert.Empty(t, store.deltas)
}

func TestBotReactionAppliesNoDelta(t *testing.T) {
	store := &fakeStore{}
	f := &fakeFetcher{message: botMessage(authorship.Encode("42"))}

	handleReaction(f, testBotID, reactionBy(testBotID, vote.EmojiUpvote), vote.Add, store)

	assert.Empty(t, store.deltas)
}

func TestUnrelatedMessageAppliesNoDelta(t *testing.T) {
	store := &fakeStore{}
	f := &fakeFetcher{message: botMessage("just some chatter")}

	handleReaction(f, testBotID, reactionBy("7", vote.EmojiUpvote), vote.Add, store)

	assert.Empty(t, store.deltas)
}

func TestForeignMessageAppliesNoDelta(t *testing.T) {
	store := &fakeStore{}
	// A regular member happened to post text matching the frame.
	f := &fakeFetcher{message: &discordgo.Message{
		Content: authorship.Encode("42"),
		Author:  &discordgo.User{ID: "7"},
	}}

	handleReaction(f, testBotID, reactionBy("8", vote.EmojiUpvote), vote.Add, store)

	assert.Empty(t, store.deltas)
}

func TestUnknownEmojiSkipsMessageFetch(t *testing.T) {
	store := &fakeStore{}
	f := &fakeFetcher{err: errors.New("should not be called")}

	handleReaction(f, testBotID, reactionBy("7", "🔥"), vote.Add, store)

	assert.Zero(t, f.calls)
	assert.Empty(t, store.deltas)
}

func TestMissingGuildAppliesNoDelta(t *testing.T) {
	store := &fakeStore{}
	f := &fakeFetcher{message: botMessage(authorship.Encode("42"))}

	r := reactionBy("7", vote.EmojiUpvote)
	r.GuildID = ""
	handleReaction(f, testBotID, r, vote.Add, store)

	assert.Empty(t, store.deltas)
}

func TestBotIdentityUnknownAppliesNoDelta(t *testing.T) {
	store := &fakeStore{}
	f := &fakeFetcher{message: botMessage(authorship.Encode("42"))}

	handleReaction(f, "", reactionBy("7", vote.EmojiUpvote), vote.Add, store)

	assert.Empty(t, store.deltas)
}

func TestUnfetchableMessageAppliesNoDelta(t *testing.T) {
	store := &fakeStore{}
	f := &fakeFetcher{err: errors.New("message was deleted")}

	handleReaction(f, testBotID, reactionBy("7", vote.EmojiUpvote), vote.Add, store)

	assert.Empty(t, store.deltas)
}

func TestStoreFailureIsDropped(t *testing.T) {
	store := &fakeStore{err: errors.New("store unavailable")}
	f := &fakeFetcher{message: botMessage(authorship.Encode("42"))}

	// Must not panic or retry, the event is simply dropped.
	handleReaction(f, testBotID, reactionBy("7", vote.EmojiUpvote), vote.Add, store)

	assert.Empty(t, store.deltas)
}
