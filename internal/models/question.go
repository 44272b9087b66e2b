package models

// Question is a single multiple-choice quiz question. Correct is the index
// into Options. Date is set only on daily quiz copies.
type Question struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Correct    int      `json:"correct"`
	Reference  string   `json:"reference,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Category   string   `json:"category,omitempty"`
	Date       string   `json:"date,omitempty"`
}
