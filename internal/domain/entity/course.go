package entity

// Course represents a single course recommendation entry.
type Course struct {
	Platform   string `json:"platform"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Difficulty string `json:"difficulty"`
}
