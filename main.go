package main

import "github.com/LILHARSHNIK999/chatbot-google-Gemini/cli"

func main() {
	cli.Execute()
}
