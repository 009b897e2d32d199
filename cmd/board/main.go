package main

import (
	"log"
	"os"

	boardcmd "github.com/mapauhernandez/happy-robot-acme-demo/internal/cmd/board"
)

func main() {
	log.SetPrefix("[BOARD] ")
	if err := boardcmd.NewApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatalf("board: %v", err)
	}
}
