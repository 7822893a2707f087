package main

import "github.com/f8wq/TFL-Manager/bot"

func main() {
	bot.Start()
}
