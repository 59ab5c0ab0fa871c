package documents

import "time"

// Seed returns the fixed documents the collection starts with.
func Seed(now time.Time) []*Document {
	return []*Document{
		{
			ID:           "1",
			Title:        "Company Handbook",
			Content:      "Full-time employees are entitled to 20 days of paid vacation per year, which can be taken after completing the probation period.",
			LastModified: now,
			CreatedBy:    "admin@example.com",
			State:        StateCompleted,
		},
		{
			ID:           "2",
			Title:        "Onboarding Checklist",
			Content:      "Request hardware, set up accounts, complete security training, and meet your onboarding buddy during the first week.",
			LastModified: now,
			CreatedBy:    "admin@example.com",
			State:        StateCompleted,
		},
		{
			ID:           "3",
			Title:        "Expense Policy",
			Content:      "Expenses above 50 EUR require prior manager approval. Receipts must be submitted within 30 days.",
			LastModified: now,
			CreatedBy:    "user@example.com",
			State:        StateProcessing,
		},
	}
}
