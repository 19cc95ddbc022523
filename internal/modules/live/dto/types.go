package dto

type ArmInput struct {
	CaseNumber string
	Language   string
}

type EntryOutput struct {
	ID           string
	Timestamp    string
	Speaker      string
	Text         string
	OriginalText string
	Confidence   int
	IsBookmarked bool
}

type SnapshotOutput struct {
	State           string
	CaseNumber      string
	Language        string
	DisplayLanguage string
	Elapsed         string
	Entries         []EntryOutput
	CurrentSpeaker  string
	Confidence      int
	Remaining       int
}

type SaveOutput struct {
	RecordID   string
	CaseNumber string
	CaseTitle  string
	Entries    int
	Duration   string
	FileSize   string
}
