package dto

type EntryInput struct {
	ID           string
	Timestamp    string
	Speaker      string
	Text         string
	OriginalText string
	Confidence   int
	IsBookmarked bool
}

type AppendRecordInput struct {
	CaseNumber string
	CaseTitle  string
	Date       string
	Duration   string
	Language   string
	ClerkName  string
	Status     string
	FileSize   string
	Entries    []EntryInput
}

type ListRecordsInput struct {
	CaseNumber string
}

type GetRecordInput struct {
	ID string
	// Language re-renders entries for display; empty keeps the stored text.
	Language string
	Search   string
}

type ToggleBookmarkInput struct {
	RecordID string
	EntryID  string
}

type SearchInput struct {
	Query string
	Limit int
}

type RenderEntriesInput struct {
	Entries  []EntryOutput
	Language string
	Search   string
}

// ReindexInput rebuilds the record index. Reload first drops the cached
// records so the rebuild reads storage again.
type ReindexInput struct {
	Reload bool
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

type RecordOutput struct {
	ID         string
	CaseNumber string
	CaseTitle  string
	Date       string
	Duration   string
	Language   string
	ClerkName  string
	Status     string
	FileSize   string
	EntryCount int
	Bookmarks  int
}

type RecordDetailOutput struct {
	RecordOutput
	DisplayLanguage string
	Entries         []EntryOutput
}
