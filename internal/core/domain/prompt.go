package domain

// SelectPrompt asks for exactly one option.
type SelectPrompt struct {
	Label   string
	Options []Option
	// Cursor is the index of the option highlighted when the prompt opens.
	Cursor int
}

// MultiSelectPrompt asks for any number of dependencies.
type MultiSelectPrompt struct {
	Label    string
	Options  []FlatDependency
	PageSize int
}

// TextPrompt asks for a free-text answer.
type TextPrompt struct {
	Label string
	// Placeholder is shown while the answer is empty, usually the catalog default.
	Placeholder string
	// Reason explains why the previous answer was rejected. Empty on the first attempt.
	Reason string
	// DefaultOnEmpty marks an empty answer as a request for Placeholder.
	DefaultOnEmpty bool
}
