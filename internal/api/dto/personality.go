package dto

// AnalyzeRequest carries quiz answers keyed by question ID
type AnalyzeRequest struct {
	Answers map[string]string `json:"answers" validate:"required,min=1"`
}

// PackageRequest asks for a full trip package built from quiz answers
type PackageRequest struct {
	Answers map[string]string `json:"answers" validate:"required,min=1"`
}
