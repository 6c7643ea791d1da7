package vote

// Emoji names recognized as votes. These are also the two reactions the
// bot seeds every acknowledgement message with.
const (
	EmojiUpvote   = "👍"
	EmojiDownvote = "👎"
)

// Kind is the closed set of reaction kinds that play a role in scoring.
type Kind int

const (
	// None marks an emoji with no vote semantics.
	None Kind = iota
	// Upvote carries +1 semantics when added.
	Upvote
	// Downvote carries -1 semantics when added.
	Downvote
)

// KindOf maps a unicode emoji name onto its vote kind.
func KindOf(emojiName string) Kind {
	switch emojiName {
	case EmojiUpvote:
		return Upvote
	case EmojiDownvote:
		return Downvote
	default:
		return None
	}
}

// Action says whether a reaction was added to or removed from a message.
type Action int

const (
	Add Action = iota
	Remove
)

// Reason explains why a ballot was rejected.
type Reason string

const (
	ReasonUnknownEmoji   Reason = "emoji is not a vote"
	ReasonBotNotReady    Reason = "bot identity not yet known"
	ReasonForeignMessage Reason = "message was not sent by the bot"
	ReasonNoVoter        Reason = "no voter id on the reaction"
	ReasonSelfVote       Reason = "author voted on their own submission"
	ReasonBotReaction    Reason = "reaction belongs to the bot itself"
)

// Ballot is one reaction edge held against a submission message, together
// with everything the decision depends on.
type Ballot struct {
	Kind   Kind
	Action Action
	// VoterID is the user that toggled the reaction, empty when the
	// gateway did not include one.
	VoterID string
	// SenderID is the author of the message that was reacted to.
	SenderID string
	// AuthorID is the submission author decoded out of the message text.
	AuthorID string
	// BotID is the bot's own user id, empty before the ready handshake.
	BotID string
}

// Decision is the outcome of a ballot: an accepted signed delta against a
// target user, or a reject reason. Deciding has no side effects either way.
type Decision struct {
	Accept   bool
	Reason   Reason
	TargetID string
	Delta    int64
}

// Decide runs the eligibility gates in a fixed order; the first failing
// gate rejects the ballot.
func (b Ballot) Decide() Decision {
	if b.Kind == None {
		return rejected(ReasonUnknownEmoji)
	}
	if b.BotID == "" {
		return rejected(ReasonBotNotReady)
	}
	if b.SenderID != b.BotID {
		return rejected(ReasonForeignMessage)
	}
	if b.VoterID == "" {
		return rejected(ReasonNoVoter)
	}
	if b.VoterID == b.AuthorID {
		return rejected(ReasonSelfVote)
	}
	if b.VoterID == b.BotID {
		return rejected(ReasonBotReaction)
	}
	return Decision{Accept: true, TargetID: b.AuthorID, Delta: b.delta()}
}

// delta resolves the sign purely from (kind, action): removing a reaction
// undoes the effect its addition had.
func (b Ballot) delta() int64 {
	d := int64(1)
	if b.Kind == Downvote {
		d = -1
	}
	if b.Action == Remove {
		d = -d
	}
	return d
}

func rejected(r Reason) Decision {
	return Decision{Reason: r}
}
