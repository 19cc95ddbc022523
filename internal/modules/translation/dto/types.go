package dto

type TranslateInput struct {
	Text     string
	Language string
}

type TranslateOutput struct {
	Text     string
	Language string
	// Matched is false when no exact mapping existed and Text is the input.
	Matched bool
}

type LanguageOutput struct {
	Code    string
	Name    string
	Phrases int
}
