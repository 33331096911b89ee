// drivethru — a conversational drive-thru ordering assistant.
//
// Usage:
//
//	drivethru [-offline] [-verbose] [-quiet]
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/drivethru/internal/conversation"
	"github.com/hammamikhairi/drivethru/internal/display"
	"github.com/hammamikhairi/drivethru/internal/domain"
	"github.com/hammamikhairi/drivethru/internal/engine"
	"github.com/hammamikhairi/drivethru/internal/gpt"
	"github.com/hammamikhairi/drivethru/internal/logger"
	"github.com/hammamikhairi/drivethru/internal/menu"
	"github.com/hammamikhairi/drivethru/internal/storage"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".drivethru-logs/drivethru.log", "file to write logs to (use \"stderr\" to log to console)")
	offline := flag.Bool("offline", false, "serve the built-in menu instead of fetching the live one")
	menuURL := flag.String("menu-url", menu.DefaultMenuURL, "menu page to fetch")
	noAI := flag.Bool("no-ai", false, "disable the LLM intent extractor even if GPT keys are set")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the conversation stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	var source domain.MenuSource
	if *offline {
		source = menu.NewStaticSource(log)
	} else {
		source = menu.NewHTTPSource(log, menu.WithURL(*menuURL))
	}
	archive := storage.NewMemoryArchive(log)
	eng := engine.New(source, archive, log)
	parser := conversation.NewKeywordParser(log)
	handler := conversation.NewHandler(eng, log)
	notifier := conversation.NewCLINotifier(log, nil)

	// Build the LLM extractor if credentials are available. The keyword
	// parser stays first in line; the agent only sees what it can't place.
	var agent *gpt.Agent
	gptKey := os.Getenv("GPT_CHAT_KEY")
	gptEndpoint := os.Getenv("GPT_CHAT_ENDPOINT")
	if gptKey != "" && gptEndpoint != "" && !*noAI {
		agent = gpt.NewAgent(gpt.NewClient(gptEndpoint, gptKey, log), log)
		log.Info("LLM intent extractor enabled")
	} else if !*noAI {
		log.Info("LLM intent extractor disabled: set GPT_CHAT_KEY and GPT_CHAT_ENDPOINT env vars to enable")
	}

	fmt.Print(display.RenderBanner())
	fmt.Println("Welcome to the AI Drive-Thru!")
	fmt.Println("I'll fetch the latest menu for you...")

	if err := eng.Refresh(ctx); err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			notifier.NotifyUrgent(ctx, "I couldn't load the menu right now, so it may look empty. You can still try again later.")
		}
	} else {
		fmt.Println("Menu loaded! You can ask me to show the menu, add items to your order, or checkout.")
	}
	fmt.Println("Type 'quit' to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		intent, err := parser.Parse(ctx, input)
		if err != nil {
			log.Error("parse failed: %v", err)
			continue
		}
		if intent.Type == domain.IntentUnknown && agent != nil {
			intent, _ = agent.Parse(ctx, input)
		}

		result := handler.Handle(ctx, intent)
		switch result.Kind {
		case domain.ResultFailure:
			notifier.NotifyUrgent(ctx, result.Message)
		default:
			notifier.Notify(ctx, result.Message)
		}
		fmt.Println()

		if intent.Type == domain.IntentQuit {
			break
		}
	}

	log.Info("session %s over, %d completed orders", eng.SessionID(), completedCount(ctx, eng))
}

func completedCount(ctx context.Context, eng *engine.Engine) int {
	history, err := eng.History(ctx)
	if err != nil {
		return 0
	}
	return len(history)
}
