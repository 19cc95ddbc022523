package dto

type CreateCaseInput struct {
	CaseNumber  string
	Title       string
	Type        string
	Judge       string
	NextHearing string
	Priority    string
}

type UpdateStatusInput struct {
	CaseNumber string
	Status     string
}

type ListCasesInput struct {
	Status string
}

type CaseOutput struct {
	ID          string
	CaseNumber  string
	Title       string
	Type        string
	Status      string
	Judge       string
	NextHearing string
	Priority    string
	CreatedAt   string
}
