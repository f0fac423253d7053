package domain

// QuestionOption is one selectable answer for a hygiene question. Points is
// its contribution on the 0-100 scale.
type QuestionOption struct {
	Value  int    `json:"value"`
	Text   string `json:"text"`
	Points int    `json:"points"`
}

// Question is one entry of the hygiene questionnaire.
type Question struct {
	ID       string           `json:"id"`
	Category string           `json:"category"`
	Text     string           `json:"text"`
	Options  []QuestionOption `json:"options"`
}

// QuestionnaireCategory groups questions and carries the weight used when
// folding category scores into the overall score. Security-critical
// categories weigh more than informational ones.
type QuestionnaireCategory struct {
	Name      string     `json:"name"`
	Weight    float64    `json:"weight"`
	Questions []Question `json:"questions"`
}

// Questionnaire is a versioned questionnaire definition. Submissions are
// validated against the active version; partial submissions are rejected.
type Questionnaire struct {
	Version    string                  `json:"version"`
	Categories []QuestionnaireCategory `json:"categories"`
}

// QuestionCount returns the total number of questions across all categories.
func (q Questionnaire) QuestionCount() int {
	n := 0
	for _, c := range q.Categories {
		n += len(c.Questions)
	}

	return n
}

// HygieneAnswer is one answered question of a submission.
type HygieneAnswer struct {
	QuestionID string `json:"questionId"`
	// Value is the selected option's value; it must match one of the
	// question's options.
	Value    int    `json:"value"`
	Category string `json:"category,omitempty"`
}

// CategoryScore is the normalized 0-100 score of one category.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// RecommendationPriority orders hygiene recommendations by urgency.
type RecommendationPriority string

const (
	PriorityLow    RecommendationPriority = "LOW"
	PriorityMedium RecommendationPriority = "MEDIUM"
	PriorityHigh   RecommendationPriority = "HIGH"
)

// HygieneRecommendation is one improvement suggestion, selected from a fixed
// per-category, per-score-band catalog.
type HygieneRecommendation struct {
	Category string                 `json:"category"`
	Text     string                 `json:"text"`
	Priority RecommendationPriority `json:"priority"`
}

// ActionPlan buckets recommendation texts by urgency. It is derived strictly
// from priorities (high -> immediate, medium -> short term, low -> long term)
// preserving recommendation generation order within each bucket.
type ActionPlan struct {
	Immediate []string `json:"immediate,omitempty"`
	ShortTerm []string `json:"shortTerm,omitempty"`
	LongTerm  []string `json:"longTerm,omitempty"`
}

// HygieneReport is the scored outcome of one questionnaire submission.
type HygieneReport struct {
	QuestionnaireVersion string `json:"questionnaireVersion"`
	// OverallScore is the weighted mean of category scores, rounded.
	OverallScore int       `json:"overallScore"`
	RiskLevel    RiskLevel `json:"riskLevel"`
	// CategoryScores maps category name to its score.
	CategoryScores map[string]CategoryScore `json:"categoryScores"`
	// Strengths lists categories scoring high, best first.
	Strengths []CategoryScore `json:"strengths,omitempty"`
	// Weaknesses lists categories scoring low, worst first.
	Weaknesses      []CategoryScore         `json:"weaknesses,omitempty"`
	Recommendations []HygieneRecommendation `json:"recommendations,omitempty"`
	ActionPlan      ActionPlan              `json:"actionPlan"`
	// NarrativeSummary is a generated human-readable summary. Empty when the
	// narrative generator was unavailable; scores are unaffected.
	NarrativeSummary string `json:"narrativeSummary,omitempty"`
}
