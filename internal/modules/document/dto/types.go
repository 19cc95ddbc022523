package dto

type SaveDocumentInput struct {
	ID         string
	Title      string
	CaseNumber string
	Kind       string
	Content    string
}

type ListDocumentsInput struct {
	CaseNumber string
}

type DocumentOutput struct {
	ID         string
	Title      string
	CaseNumber string
	Kind       string
	Status     string
	Content    string
	UpdatedAt  string
}
