// chat is a local console frontend for the support bot.
//
// It reads utterances line by line, applies transcript corrections (the same
// fixes used for recognized speech), and prints the bot's replies. Saying
// "bye", "exit", or "goodbye" ends the session.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/prushal/supportbot/internal/classify"
	"github.com/prushal/supportbot/internal/corpus"
	"github.com/prushal/supportbot/internal/dispatch"
	"github.com/prushal/supportbot/internal/followup"
	"github.com/prushal/supportbot/internal/match"
	"github.com/prushal/supportbot/internal/session"
	"github.com/prushal/supportbot/internal/smalltalk"
	"github.com/prushal/supportbot/internal/spell"
	"github.com/prushal/supportbot/internal/transcript"
)

const sessionID = "console"

func main() {
	godotenv.Load()

	corpusPath := os.Getenv("CORPUS_PATH")
	if corpusPath == "" {
		corpusPath = "content.json"
	}

	faqs, err := corpus.Load(corpusPath)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}

	corrector := transcript.NewCorrector()
	if path := os.Getenv("CORRECTIONS_PATH"); path != "" {
		loaded, err := transcript.LoadCorrector(path)
		if err != nil {
			log.Printf("Warning: failed to load corrections, using built-ins: %v", err)
		} else {
			corrector = loaded
		}
	}

	dispatcher := dispatch.New(
		session.NewStore(),
		followup.New(nil),
		classify.New(faqs, match.New(faqs.Vocabulary()), spell.NewNormalizer(faqs.Vocabulary()), nil),
		smalltalk.New(nil),
	)

	fmt.Println("Prushal support bot. Say 'bye' or 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}

		utterance := corrector.Apply(scanner.Text())

		res, err := dispatcher.Respond(sessionID, utterance)
		if err != nil {
			if errors.Is(err, dispatch.ErrEmptyUtterance) {
				continue
			}
			log.Printf("Error: %v", err)
			continue
		}

		fmt.Printf("Bot: %s\n", res.Text)

		if res.Category == dispatch.CategoryFarewell {
			break
		}
	}
}
