// Package qa implements the question-answering surface: a seeded FAQ list
// and a canned answering service.
package qa

// Item is one FAQ entry.
type Item struct {
	ID       string
	Question string
	Answer   string
	Category string
	Votes    int
}

// SourceDocument references a document an answer was drawn from.
type SourceDocument struct {
	ID      string
	Title   string
	Excerpt string
}

// Response is the answer to an ad-hoc question.
type Response struct {
	Answer          string
	Confidence      float64
	SourceDocuments []SourceDocument
}
