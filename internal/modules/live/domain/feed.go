package domain

type FeedLine struct {
	Speaker    string
	Text       string
	Confidence int
}

// MockFeed is the fixed courtroom script ingested during a session.
func MockFeed() []FeedLine {
	return []FeedLine{
		{Speaker: "Judge", Text: "Court is now in session. Please be seated.", Confidence: 95},
		{Speaker: "Clerk", Text: "Case number 2025-CR-001, State versus John Smith.", Confidence: 92},
		{Speaker: "Lawyer", Text: "Your Honor, the defense is ready to proceed.", Confidence: 88},
		{Speaker: "Judge", Text: "Very well. Please call your first witness.", Confidence: 96},
		{Speaker: "Lawyer", Text: "The prosecution calls Officer Martinez to the stand.", Confidence: 90},
		{Speaker: "Witness", Text: "I swear to tell the truth, the whole truth, and nothing but the truth.", Confidence: 85},
		{Speaker: "Lawyer", Text: "Objection, Your Honor.", Confidence: 89},
		{Speaker: "Judge", Text: "Objection sustained.", Confidence: 94},
	}
}
