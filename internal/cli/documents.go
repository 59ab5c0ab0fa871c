package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkhromov/docboard/internal/common"
)

// documentMessage maps a document-service error to notification text.
func documentMessage(err error, fallback string) string {
	if errors.Is(err, common.ErrNotFound) {
		return "Document not found"
	}
	return fallback
}

// Docs lists the document collection.
func (a *App) Docs(ctx context.Context) error {
	docs, err := a.docs.List(ctx)
	if err != nil {
		a.notifier.Error("Could not load documents")
		return nil
	}

	printlnFn(fmt.Sprintf("%-36s  %-28s  %-10s  %s", "ID", "TITLE", "STATE", "MODIFIED"))
	for _, d := range docs {
		printlnFn(fmt.Sprintf("%-36s  %-28s  %-10s  %s",
			d.ID, d.Title, d.State, d.LastModified.Format("2006-01-02 15:04")))
	}
	return nil
}

// ShowDoc prints a single document by id.
func (a *App) ShowDoc(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter document id", os.Stdout)
	if err != nil {
		return err
	}

	doc, err := a.docs.Get(ctx, id)
	if err != nil {
		a.notifier.Error(documentMessage(err, "Could not load document"))
		return nil
	}

	printlnFn("Title:   ", doc.Title)
	printlnFn("State:   ", string(doc.State))
	printlnFn("Author:  ", doc.CreatedBy)
	printlnFn("Modified:", doc.LastModified.Format("2006-01-02 15:04"))
	printlnFn()
	printlnFn(doc.Content)
	return nil
}

// Upload reads a title and a multi-line body and stores a new document
// attributed to the current session.
func (a *App) Upload(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		return err
	}

	cur := a.session.Current()
	if cur == nil {
		a.notifier.Error("Please log in first")
		return nil
	}

	doc, err := a.docs.Upload(ctx, title, content, cur.Email)
	if err != nil {
		a.notifier.Error("Could not upload document")
		return nil
	}

	a.log.Info(ctx, "document uploaded", "id", doc.ID, "title", doc.Title)
	a.notifier.Success("Document uploaded successfully!")
	return nil
}

// RemoveDoc deletes a document by id.
func (a *App) RemoveDoc(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter document id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.docs.Delete(ctx, id); err != nil {
		a.notifier.Error(documentMessage(err, "Could not delete document"))
		return nil
	}

	a.notifier.Success("Document deleted successfully!")
	return nil
}
