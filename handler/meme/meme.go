package meme

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/lpoto/memsther/authorship"

	"github.com/bwmarrin/discordgo"
)

// memeCommandHandler relays a user's meme as the bot's own message, with
// the author's id encoded into the acknowledgement text so reactions on it
// can be resolved back to them.
func memeCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	content := authorship.Encode(interactionUserID(i))
	for _, option := range data.Options {
		if option.Type == discordgo.ApplicationCommandOptionString {
			content = fmt.Sprintf("%s\n\n%s", content, option.StringValue())
		}
	}

	// Re-uploading attachments may take a while, defer the response so the
	// interaction does not time out.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Printf("Failed to defer meme interaction: %v", err)
		return
	}

	files, closeFiles, err := downloadAttachments(data)
	defer closeFiles()
	if err != nil {
		log.Printf("Failed to download meme attachments: %v", err)
		deleteResponse(s, i)
		return
	}

	message, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Files:   files,
	})
	if err != nil {
		log.Printf("Failed to respond with meme: %v", err)
		deleteResponse(s, i)
		return
	}

	addVoteReactions(s, message.ChannelID, message.ID)
}

// downloadAttachments fetches the attachments referenced by the command
// options so they can be re-uploaded on the bot's own message.
func downloadAttachments(data discordgo.ApplicationCommandInteractionData) ([]*discordgo.File, func(), error) {
	var files []*discordgo.File
	var bodies []io.Closer

	closeAll := func() {
		for _, body := range bodies {
			body.Close()
		}
	}

	if data.Resolved == nil {
		return nil, closeAll, nil
	}
	for _, option := range data.Options {
		if option.Type != discordgo.ApplicationCommandOptionAttachment {
			continue
		}
		id, ok := option.Value.(string)
		if !ok {
			continue
		}
		attachment, ok := data.Resolved.Attachments[id]
		if !ok {
			continue
		}

		resp, err := http.Get(attachment.URL)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		bodies = append(bodies, resp.Body)
		files = append(files, &discordgo.File{
			Name:        attachment.Filename,
			ContentType: attachment.ContentType,
			Reader:      resp.Body,
		})
	}
	return files, closeAll, nil
}

func deleteResponse(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := s.InteractionResponseDelete(i.Interaction); err != nil {
		log.Printf("Failed to delete interaction response: %v", err)
	}
}
