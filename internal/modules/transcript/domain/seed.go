package domain

// SeedRecords is shown when nothing has been persisted yet. The second
// record predates OriginalText and exercises the viewer fallback.
func SeedRecords() []Record {
	return []Record{
		{
			ID:         "seed-rec-1",
			CaseNumber: "2025-CR-001",
			CaseTitle:  "State vs. John Smith",
			Date:       "2025-01-15",
			Duration:   "01:45:30",
			Language:   "en",
			ClerkName:  "Sarah Johnson",
			Status:     StatusCompleted,
			FileSize:   "45.2 MB",
			Entries: []Entry{
				{ID: "seed-rec-1-1", Timestamp: "09:00:15", Speaker: SpeakerJudge, Text: "Court is now in session. Please be seated.", OriginalText: "Court is now in session. Please be seated.", Confidence: 95},
				{ID: "seed-rec-1-2", Timestamp: "09:00:45", Speaker: SpeakerClerk, Text: "Case number 2025-CR-001, State versus John Smith.", OriginalText: "Case number 2025-CR-001, State versus John Smith.", Confidence: 92, IsBookmarked: true},
				{ID: "seed-rec-1-3", Timestamp: "09:01:10", Speaker: SpeakerLawyer, Text: "Your Honor, the defense is ready to proceed.", OriginalText: "Your Honor, the defense is ready to proceed.", Confidence: 88},
			},
		},
		{
			ID:         "seed-rec-2",
			CaseNumber: "2025-CV-045",
			CaseTitle:  "Johnson vs. ABC Corporation",
			Date:       "2025-01-14",
			Duration:   "02:15:45",
			Language:   "ar",
			ClerkName:  "Michael Brown",
			Status:     StatusCompleted,
			FileSize:   "58.7 MB",
			Entries: []Entry{
				{ID: "seed-rec-2-1", Timestamp: "14:00:05", Speaker: SpeakerJudge, Text: "Order in the court.", Confidence: 96},
				{ID: "seed-rec-2-2", Timestamp: "14:02:30", Speaker: SpeakerWitness, Text: "Please state your name for the record.", Confidence: 84},
			},
		},
		{
			ID:         "seed-rec-3",
			CaseNumber: "2025-FM-012",
			CaseTitle:  "In re Custody of Minor Child",
			Date:       "2025-01-13",
			Duration:   "00:40:12",
			Language:   "fr",
			ClerkName:  "Sarah Johnson",
			Status:     StatusProcessing,
			FileSize:   "12.9 MB",
			Entries: []Entry{
				{ID: "seed-rec-3-1", Timestamp: "10:30:00", Speaker: SpeakerJudge, Text: "La cour va suspendre brièvement l'audience.", OriginalText: "The court will take a short recess.", Confidence: 93},
			},
		},
	}
}
