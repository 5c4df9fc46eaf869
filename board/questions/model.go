package questions

import (
	"strings"
	"time"
)

// Question is a timed multiple-choice item. Comments holds the ids of
// its discussion, resolved through board/comments.
type Question struct {
	Id            string   `json:"id"`
	SectionId     string   `json:"sectionId"`
	Section       string   `json:"section"`
	TopicId       string   `json:"topicId"`
	Topic         string   `json:"topic"`
	SourceId      string   `json:"sourceId"`
	Source        string   `json:"source"`
	QuestionText  string   `json:"questionText"`
	OptionA       string   `json:"optionA"`
	OptionB       string   `json:"optionB"`
	OptionC       string   `json:"optionC"`
	OptionD       string   `json:"optionD"`
	CorrectAnswer string   `json:"correctAnswer"`
	SubmittedBy   string   `json:"submittedBy"`
	Comments      []string `json:"comments"`
	Submitted     string   `json:"dateTimeSubmitted"`
}

type Questions []Question

// Option letters in display order.
var Letters = []string{"A", "B", "C", "D"}

// Options in display order, keyed by letter.
func (q Question) Options() map[string]string {
	return map[string]string{
		"A": q.OptionA,
		"B": q.OptionB,
		"C": q.OptionC,
		"D": q.OptionD,
	}
}

// IsCorrect checks a chosen option letter against the answer key.
func (q Question) IsCorrect(option string) bool {
	return strings.EqualFold(strings.TrimSpace(option), strings.TrimSpace(q.CorrectAnswer))
}

// Filters narrow a practice set.
type Filters struct {
	CategoryId string
	TopicId    string
	SourceId   string
}

// Result of answering a timed question.
type Result struct {
	QuestionId string
	Correct    bool
	Elapsed    time.Duration
}

// Submission is a user-contributed question awaiting review.
type Submission struct {
	SectionId     string `json:"sectionId"`
	TopicId       string `json:"topicId"`
	SourceId      string `json:"sourceId"`
	QuestionText  string `json:"questionText"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	CorrectAnswer string `json:"correctAnswer"`
	SubmittedBy   string `json:"submittedBy"`
}
