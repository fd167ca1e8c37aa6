package homework

// Item is a single submission as returned by the status API.
type Item struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Lesson  string `json:"lesson,omitempty"`  // lesson_name upstream
	Comment string `json:"comment,omitempty"` // reviewer_comment upstream
}
