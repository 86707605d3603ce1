package models

// Label identifies one of the four answer options by position
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels lists all answer labels in option order
var Labels = []Label{LabelA, LabelB, LabelC, LabelD}

// Valid reports whether the label is one of A-D.
func (l Label) Valid() bool {
	switch l {
	case LabelA, LabelB, LabelC, LabelD:
		return true
	}
	return false
}

// Question is a single trivia question with staged clues.
// Immutable once fetched; owned by one match session for the
// lifetime of a round.
type Question struct {
	// ID is the unique identifier for the question
	ID string `json:"id"`

	// Category is the subject area of the question
	Category string `json:"category"`

	// Clues are revealed sequentially, in order
	Clues []string `json:"clues"`

	// Answers are the four option strings, labeled A-D by position
	Answers []string `json:"answers"`

	// Correct is the label of the correct option
	Correct Label `json:"correct"`
}

// QuestionView is the client-facing form of a question. It never
// carries the correct label; that is only revealed through round
// resolution.
type QuestionView struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Clues    []string `json:"clues"`
	Answers  []string `json:"answers"`
}

// View returns the question stripped of the correct label.
func (q *Question) View() QuestionView {
	return QuestionView{
		ID:       q.ID,
		Category: q.Category,
		Clues:    q.Clues,
		Answers:  q.Answers,
	}
}
