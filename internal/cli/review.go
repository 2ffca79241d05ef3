package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/render"
)

func (a *App) cmdReview(ctx context.Context, args []string) int {
	limit := a.Config.ReviewLimit
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			fmt.Fprintf(a.Out, "✗ card count must be a positive number, got %q\n", args[0])
			return 1
		}
		limit = parsed
	}

	cards, err := a.Flashcards.DueCards(ctx, limit)
	if err != nil {
		return a.fail(err)
	}
	if len(cards) == 0 {
		fmt.Fprintln(a.Out, "No cards to review. Create some flashcard decks first!")
		return 0
	}

	fmt.Fprintf(a.Out, "\n📚 FLASHCARD REVIEW SESSION (%d cards)\n", len(cards))
	fmt.Fprintln(a.Out, strings.Repeat("=", 60))

	scanner := bufio.NewScanner(a.In)
	for i, card := range cards {
		fmt.Fprintf(a.Out, "\n[%d/%d] %s\n", i+1, len(cards), card.Topic)
		fmt.Fprintf(a.Out, "\nQ: %s\n", card.Question)

		fmt.Fprint(a.Out, "Press Enter to reveal answer...")
		if !scanner.Scan() {
			fmt.Fprintln(a.Out)
			break
		}
		fmt.Fprintf(a.Out, "A: %s\n", card.Answer)

		outcome, ok := a.promptOutcome(scanner)
		if !ok {
			break
		}
		if _, err := a.Flashcards.ReviewCard(ctx, card.ID, outcome); err != nil {
			return a.fail(err)
		}
	}

	fmt.Fprintln(a.Out, "\n✓ Review session complete!")

	decks, err := a.Flashcards.Decks(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out, render.FlashcardStats(decks))
	return 0
}

// promptOutcome keeps asking until the answer parses. ok is false once
// stdin is closed mid-session.
func (a *App) promptOutcome(scanner *bufio.Scanner) (models.ReviewOutcome, bool) {
	for {
		fmt.Fprint(a.Out, "\nHow did you do? (easy/hard/difficult/mastered): ")
		if !scanner.Scan() {
			fmt.Fprintln(a.Out)
			return "", false
		}
		if outcome, ok := models.ParseOutcome(scanner.Text()); ok {
			return outcome, true
		}
		fmt.Fprintln(a.Out, "Invalid input. Use: easy, hard, difficult, or mastered")
	}
}
