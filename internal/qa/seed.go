package qa

// Seed returns the fixed FAQ entries the dashboard starts with.
func Seed() []Item {
	return []Item{
		{
			ID:       "1",
			Question: "How many vacation days do employees get?",
			Answer:   "Full-time employees are entitled to 20 days of paid vacation per year.",
			Category: "General",
			Votes:    42,
		},
		{
			ID:       "2",
			Question: "How do I reset my account password?",
			Answer:   "Ask an administrator to set a new password for your account from the admin dashboard.",
			Category: "Support",
			Votes:    17,
		},
		{
			ID:       "3",
			Question: "Which file formats can be uploaded?",
			Answer:   "Plain-text documents are supported; uploads start in the queued ingestion state.",
			Category: "Technical",
			Votes:    9,
		},
		{
			ID:       "4",
			Question: "Who do I contact about invoices?",
			Answer:   "Invoice questions are handled by the billing team via the finance inbox.",
			Category: "Billing",
			Votes:    3,
		},
	}
}

// cannedResponse is the fixed answer returned for every ad-hoc question.
func cannedResponse() Response {
	return Response{
		Answer:     "According to the company handbook, employees are entitled to 20 days of paid vacation per year.",
		Confidence: 0.95,
		SourceDocuments: []SourceDocument{
			{
				ID:      "1",
				Title:   "Company Handbook",
				Excerpt: "Full-time employees are entitled to 20 days of paid vacation per year, which can be taken after completing the probation period.",
			},
		},
	}
}
