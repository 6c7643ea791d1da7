package authorship

import (
	"errors"
	"strconv"
	"strings"
)

// The author of a submission is recorded nowhere but in the text of the
// bot's own acknowledgement message. The frame is a mention token followed
// by a fixed marker phrase:
//
//	<@!1234567890> just sent a meme!
//
// Decoding only requires the text after the identifier to start with the
// marker, so the optional meme content appended below the phrase and the
// link acknowledgement ("just sent a link: ...") stay decodable.
const (
	prefix = "<@!"
	marker = "> just sent a"

	memePhrase = "> just sent a meme!"
)

var (
	// ErrNotSubmission marks text that does not match the acknowledgement
	// frame. Most messages in a guild are unrelated to submissions, so this
	// is the common outcome.
	ErrNotSubmission = errors.New("not a submission acknowledgement")

	// ErrMalformedIdentifier marks a matching frame whose identifier field
	// does not parse as an unsigned integer.
	ErrMalformedIdentifier = errors.New("malformed author identifier")
)

// Encode builds the public acknowledgement for a meme submission, embedding
// the author's id so Decode can recover it for scoring later.
func Encode(userID string) string {
	return prefix + userID + memePhrase
}

// Mention builds just the mention token for the given user. Acknowledgement
// phrases built on top of it stay decodable as long as the text following
// the token starts with the marker phrase.
func Mention(userID string) string {
	return prefix + userID + ">"
}

// Decode extracts the submission author's id out of arbitrary message text.
// It never panics; any text not matching the frame yields ErrNotSubmission,
// and a matching frame with an unparseable identifier field yields
// ErrMalformedIdentifier.
func Decode(text string) (string, error) {
	text = strings.TrimSpace(text)
	if len(text) < len(prefix)+1+len(marker) {
		return "", ErrNotSubmission
	}
	if text[:len(prefix)] != prefix {
		return "", ErrNotSubmission
	}

	rest := text[len(prefix):]
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 || !strings.HasPrefix(rest[i:], marker) {
		return "", ErrNotSubmission
	}

	id, err := strconv.ParseUint(rest[:i], 10, 64)
	if err != nil {
		return "", ErrMalformedIdentifier
	}
	return strconv.FormatUint(id, 10), nil
}
