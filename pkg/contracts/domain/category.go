package domain

// Category groups transactions for reporting. Color and Icon are
// presentation hints; the export engine carries them through to the
// resolved record untouched.
type Category struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}
