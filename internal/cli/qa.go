package cli

import (
	"context"
	"fmt"
	"os"
)

// Ask reads a question and prints the answer with its confidence and
// source documents.
func (a *App) Ask(ctx context.Context) error {
	question, err := getSimpleText(a.reader, "Enter your question", os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.qa.Ask(ctx, question)
	if err != nil {
		a.notifier.Error("Could not get an answer")
		return nil
	}

	printlnFn(resp.Answer)
	printlnFn(fmt.Sprintf("confidence: %.2f", resp.Confidence))
	for _, src := range resp.SourceDocuments {
		printlnFn(fmt.Sprintf("source: %s: %s", src.Title, src.Excerpt))
	}
	return nil
}

// Faq lists the seeded FAQ entries.
func (a *App) Faq(ctx context.Context) error {
	items, err := a.qa.Items(ctx)
	if err != nil {
		a.notifier.Error("Could not load FAQ")
		return nil
	}

	for _, item := range items {
		printlnFn(fmt.Sprintf("[%s] %s (%d votes)", item.Category, item.Question, item.Votes))
		printlnFn("  " + item.Answer)
	}
	return nil
}
