package main

import (
	"github.com/lpoto/memsther/bot"
)

func main() {
	bot.Start()
}
