// Interactive CLI for the trip planner: reads user messages from stdin
// and threads an in-memory conversation history through the
// orchestrator.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/destinai/destinai/agent"
	"github.com/destinai/destinai/bootstrap"
	"github.com/destinai/destinai/config"
	logcontext "github.com/destinai/destinai/context"
	"github.com/destinai/destinai/log"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()
	log.Init()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(ctx, "Failed to load config: %v", err)
	}

	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(ctx, "Setup failed: %v", err)
	}

	fmt.Println("Describe your trip (type 'exit' to quit):")

	var history []agent.Turn
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			break
		}

		stepCtx := logcontext.WithRequestID(ctx, logcontext.NewRequestID())
		var reply string
		reply, history = app.Orchestrator.HandleMessage(stepCtx, history, line)

		fmt.Println("\n--- Trip Planner ---")
		fmt.Println(reply)
		fmt.Println("--------------------")
	}
}
