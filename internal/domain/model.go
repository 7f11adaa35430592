package domain

type ReviewStatus string

const (
	StatusReviewing ReviewStatus = "reviewing"
	StatusApproved  ReviewStatus = "approved"
	StatusRejected  ReviewStatus = "rejected"
)

// Verdicts maps every recognized review status to the text sent to the operator.
var Verdicts = map[ReviewStatus]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

func (s ReviewStatus) Known() bool {
	_, ok := Verdicts[s]
	return ok
}

type Homework struct {
	ID              int64        `json:"id"`
	Name            string       `json:"homework_name"`
	Status          ReviewStatus `json:"status"`
	LessonName      string       `json:"lesson_name,omitempty"`
	ReviewerComment string       `json:"reviewer_comment,omitempty"`
	DateUpdated     string       `json:"date_updated,omitempty"`
}
