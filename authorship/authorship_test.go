package authorship_test

import (
	"testing"

	"github.com/lpoto/memsther/authorship"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodedRoundTrip(t *testing.T) {
	ids := []string{"0", "7", "42", "155149108183695360", "18446744073709551615"}
	for _, id := range ids {
		decoded, err := authorship.Decode(authorship.Encode(id))
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeToleratesSurroundingText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"meme content below the phrase", authorship.Encode("42") + "\n\nfresh memes"},
		{"leading and trailing whitespace", "  " + authorship.Encode("42") + "  \n"},
		{"link acknowledgement", authorship.Mention("42") + " just sent a link: https://example.com"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			decoded, err := authorship.Decode(test.text)
			require.NoError(t, err)
			assert.Equal(t, "42", decoded)
		})
	}
}

func TestDecodeRejectsUnrelatedText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "   \n "},
		{"shorter than the frame", "<@!"},
		{"plain chatter", "lol nice meme"},
		{"wrong mention prefix", "<@&42> just sent a meme!"},
		{"no identifier digits", "<@!> just sent a meme!"},
		{"identifier interrupted", "<@!4a2> just sent a meme!"},
		{"wrong phrase after identifier", "<@!42> has joined the server"},
		{"mention without a phrase", "<@!42>"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := authorship.Decode(test.text)
			assert.ErrorIs(t, err, authorship.ErrNotSubmission)
		})
	}
}

func TestDecodeMalformedIdentifier(t *testing.T) {
	// 21 digits, one past the unsigned 64-bit range.
	_, err := authorship.Decode("<@!184467440737095516150> just sent a meme!")
	assert.ErrorIs(t, err, authorship.ErrMalformedIdentifier)
}
