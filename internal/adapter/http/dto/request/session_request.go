package request

// SelectionRequest replaces a framework variable selection wholesale.
type SelectionRequest struct {
	IDs []int `json:"ids"`
}

// SectionRequest records the dashboard section the user navigated to.
type SectionRequest struct {
	Section string `json:"section" binding:"required"`
}
