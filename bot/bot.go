package bot

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lpoto/memsther/command"
	"github.com/lpoto/memsther/config"
	"github.com/lpoto/memsther/db"
	"github.com/lpoto/memsther/handler/meme"

	"github.com/bwmarrin/discordgo"
)

var dg *discordgo.Session

// Start wires the bot together and blocks until the process is signalled
// to stop.
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return
	}

	db.InitDB(config.Cfg.Database)

	meme.RegisterHandlers()

	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Printf("Error creating Discord session: %v", err)
		return
	}

	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		log.Printf("error opening connection, %v", err)
		return
	}

	if err := syncCommands(dg); err != nil {
		log.Fatalf("Cannot sync application commands: %v", err)
	}

	if err := dg.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{{
			Name: "Go, I'm in Go btw.",
			Type: discordgo.ActivityTypeCompeting,
		}},
	}); err != nil {
		log.Printf("Failed to update activity status: %v", err)
	}

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}

// syncCommands reconciles the registered global application commands with
// command.AllCommands: stale commands are deleted, missing ones created.
// Commands that already exist are left alone so the bot does not hit
// discord's registration limits on every restart.
func syncCommands(s *discordgo.Session) error {
	appID := s.State.User.ID

	registered, err := s.ApplicationCommands(appID, "")
	if err != nil {
		return err
	}

	wanted := make(map[string]bool, len(command.AllCommands))
	for _, cmd := range command.AllCommands {
		wanted[cmd.Name] = true
	}

	existing := make(map[string]bool, len(registered))
	for _, cmd := range registered {
		if !wanted[cmd.Name] {
			log.Printf("Deleting stale '%s' command", cmd.Name)
			if err := s.ApplicationCommandDelete(appID, "", cmd.ID); err != nil {
				return err
			}
			continue
		}
		existing[cmd.Name] = true
	}

	for _, cmd := range command.AllCommands {
		if existing[cmd.Name] {
			continue
		}
		if _, err := s.ApplicationCommandCreate(appID, "", cmd); err != nil {
			return err
		}
		log.Printf("Registered '%s' slash command", cmd.Name)
	}
	return nil
}
