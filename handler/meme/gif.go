package meme

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"

	"github.com/lpoto/memsther/config"

	"github.com/bwmarrin/discordgo"
)

const giphySearchURL = "https://api.giphy.com/v1/gifs/search"

type gifResponse struct {
	Data []gif `json:"data"`
}

type gif struct {
	URL string `json:"url"`
}

// gifCommandHandler looks the keywords up on giphy and relays a random
// result.
func gifCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var keywords string
	for _, option := range i.ApplicationCommandData().Options {
		if option.Type == discordgo.ApplicationCommandOptionString {
			keywords = option.StringValue()
		}
	}
	if keywords == "" {
		log.Printf("Received gif command with no string option")
		return
	}

	gifURL, err := searchGif(keywords, config.Cfg.GiphyKey)
	if err != nil {
		log.Printf("Failed to fetch a gif: %v", err)
		respondEphemeral(s, i, "Could not find any gifs")
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: gifURL},
	})
	if err != nil {
		log.Printf("Failed to respond with a gif: %v", err)
		return
	}

	message, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		return
	}
	addVoteReactions(s, message.ChannelID, message.ID)
}

// searchGif queries the giphy search api and picks a random entry out of
// the first page of results.
func searchGif(keywords, apiKey string) (string, error) {
	query := url.Values{}
	query.Set("q", keywords)
	query.Set("api_key", apiKey)
	query.Set("limit", "15")
	query.Set("lang", "en")

	resp, err := http.Get(giphySearchURL + "?" + query.Encode())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("giphy search returned status %d", resp.StatusCode)
	}

	var result gifResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Data) == 0 {
		return "", fmt.Errorf("found no gif results for %q", keywords)
	}
	return result.Data[rand.Intn(len(result.Data))].URL, nil
}
