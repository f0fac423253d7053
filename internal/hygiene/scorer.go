package hygiene

import (
	"context"
	"math"
	"sort"
	"time"

	"guardian/pkg/domain"
	"guardian/pkg/logger"
	"guardian/pkg/narrative"
	"guardian/pkg/serrors"

	"go.uber.org/zap"
)

// Options carries the scoring thresholds. All boundaries are inclusive on
// the lower edge of each band.
type Options struct {
	// HighRiskBelow rates overall scores under it as high risk.
	HighRiskBelow int
	// MediumRiskBelow rates overall scores under it (and at or above
	// HighRiskBelow) as medium risk; everything at or above is low risk.
	MediumRiskBelow int
	// StrengthMin is the minimum category score listed as a strength.
	StrengthMin int
	// WeaknessBelow lists category scores under it as weaknesses.
	WeaknessBelow int
	// HighPriorityBelow assigns high priority to category recommendations
	// under it.
	HighPriorityBelow int
	// MediumPriorityBelow assigns medium priority under it; low priority
	// applies up to RecommendBelow.
	MediumPriorityBelow int
	// RecommendBelow is the category score under which a recommendation is
	// generated at all.
	RecommendBelow int
	// NarrativeTimeout bounds the optional summary generation.
	NarrativeTimeout time.Duration
}

// DefaultOptions returns the standard scoring bands.
func DefaultOptions() Options {
	return Options{
		HighRiskBelow:       40,
		MediumRiskBelow:     70,
		StrengthMin:         80,
		WeaknessBelow:       50,
		HighPriorityBelow:   30,
		MediumPriorityBelow: 60,
		RecommendBelow:      80,
		NarrativeTimeout:    10 * time.Second,
	}
}

// Scorer converts complete questionnaire submissions into hygiene reports.
// Scoring itself is a pure function of the answers and the questionnaire;
// only the optional narrative generation performs I/O.
type Scorer struct {
	questionnaire domain.Questionnaire
	generator     narrative.Generator
	options       Options
}

// NewScorer constructs a Scorer for one questionnaire version. generator may
// be nil, in which case reports carry no narrative summary.
func NewScorer(questionnaire domain.Questionnaire, generator narrative.Generator, options Options) *Scorer {
	defaults := DefaultOptions()
	if options.HighRiskBelow <= 0 {
		options.HighRiskBelow = defaults.HighRiskBelow
	}
	if options.MediumRiskBelow <= 0 {
		options.MediumRiskBelow = defaults.MediumRiskBelow
	}
	if options.StrengthMin <= 0 {
		options.StrengthMin = defaults.StrengthMin
	}
	if options.WeaknessBelow <= 0 {
		options.WeaknessBelow = defaults.WeaknessBelow
	}
	if options.HighPriorityBelow <= 0 {
		options.HighPriorityBelow = defaults.HighPriorityBelow
	}
	if options.MediumPriorityBelow <= 0 {
		options.MediumPriorityBelow = defaults.MediumPriorityBelow
	}
	if options.RecommendBelow <= 0 {
		options.RecommendBelow = defaults.RecommendBelow
	}
	if options.NarrativeTimeout <= 0 {
		options.NarrativeTimeout = defaults.NarrativeTimeout
	}

	return &Scorer{
		questionnaire: questionnaire,
		generator:     generator,
		options:       options,
	}
}

// Questionnaire returns the definition submissions are validated against.
func (s *Scorer) Questionnaire() domain.Questionnaire {
	return s.questionnaire
}

// Score validates a submission and produces the hygiene report. Partial or
// inconsistent submissions are rejected before any scoring happens.
func (s *Scorer) Score(ctx context.Context,
	answers map[string]domain.HygieneAnswer) (domain.HygieneReport, error) {
	points, err := s.validate(answers)
	if err != nil {
		return domain.HygieneReport{}, err
	}

	report := domain.HygieneReport{
		QuestionnaireVersion: s.questionnaire.Version,
		CategoryScores:       make(map[string]domain.CategoryScore, len(s.questionnaire.Categories)),
	}

	// category scores: mean of the selected options' points
	var weightedSum, weightSum float64
	for _, category := range s.questionnaire.Categories {
		sum := 0
		for _, question := range category.Questions {
			sum += points[question.ID]
		}
		score := int(math.Round(float64(sum) / float64(len(category.Questions))))
		report.CategoryScores[category.Name] = domain.CategoryScore{
			Category: category.Name,
			Score:    score,
		}
		weightedSum += float64(score) * category.Weight
		weightSum += category.Weight
	}
	report.OverallScore = int(math.Round(weightedSum / weightSum))
	report.RiskLevel = s.riskLevel(report.OverallScore)

	s.fillStrengthsAndWeaknesses(&report)
	s.fillRecommendations(&report)
	report.ActionPlan = buildActionPlan(report.Recommendations)

	s.fillNarrative(ctx, &report)

	return report, nil
}

// validate checks that the submission covers every question with a valid
// option and nothing else, returning the selected points per question.
func (s *Scorer) validate(answers map[string]domain.HygieneAnswer) (map[string]int, error) {
	points := make(map[string]int, s.questionnaire.QuestionCount())
	for _, category := range s.questionnaire.Categories {
		for _, question := range category.Questions {
			answer, ok := answers[question.ID]
			if !ok {
				return nil, serrors.With(serrors.ErrBadRequest,
					"incomplete submission: question %q is unanswered", question.ID)
			}
			option, ok := findOption(question, answer.Value)
			if !ok {
				return nil, serrors.With(serrors.ErrBadRequest,
					"invalid value %d for question %q", answer.Value, question.ID)
			}
			points[question.ID] = option.Points
		}
	}
	if len(answers) != len(points) {
		return nil, serrors.With(serrors.ErrBadRequest,
			"submission answers questions outside questionnaire version %s", s.questionnaire.Version)
	}

	return points, nil
}

func findOption(question domain.Question, value int) (domain.QuestionOption, bool) {
	for _, o := range question.Options {
		if o.Value == value {
			return o, true
		}
	}

	return domain.QuestionOption{}, false
}

func (s *Scorer) riskLevel(overall int) domain.RiskLevel {
	switch {
	case overall < s.options.HighRiskBelow:
		return domain.RiskHigh
	case overall < s.options.MediumRiskBelow:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// fillStrengthsAndWeaknesses sorts strengths descending and weaknesses
// ascending so the most notable item leads each list.
func (s *Scorer) fillStrengthsAndWeaknesses(report *domain.HygieneReport) {
	for _, cs := range report.CategoryScores {
		switch {
		case cs.Score >= s.options.StrengthMin:
			report.Strengths = append(report.Strengths, cs)
		case cs.Score < s.options.WeaknessBelow:
			report.Weaknesses = append(report.Weaknesses, cs)
		}
	}
	sort.Slice(report.Strengths, func(i, j int) bool {
		if report.Strengths[i].Score != report.Strengths[j].Score {
			return report.Strengths[i].Score > report.Strengths[j].Score
		}

		return report.Strengths[i].Category < report.Strengths[j].Category
	})
	sort.Slice(report.Weaknesses, func(i, j int) bool {
		if report.Weaknesses[i].Score != report.Weaknesses[j].Score {
			return report.Weaknesses[i].Score < report.Weaknesses[j].Score
		}

		return report.Weaknesses[i].Category < report.Weaknesses[j].Category
	})
}

// fillRecommendations walks categories in questionnaire order so generation
// order, and with it action plan bucket order, stays deterministic.
func (s *Scorer) fillRecommendations(report *domain.HygieneReport) {
	for _, category := range s.questionnaire.Categories {
		score := report.CategoryScores[category.Name].Score
		if score >= s.options.RecommendBelow {
			continue
		}

		var (
			band     scoreBand
			priority domain.RecommendationPriority
		)
		switch {
		case score < s.options.HighPriorityBelow:
			band, priority = bandHigh, domain.PriorityHigh
		case score < s.options.MediumPriorityBelow:
			band, priority = bandMedium, domain.PriorityMedium
		default:
			band, priority = bandLow, domain.PriorityLow
		}

		report.Recommendations = append(report.Recommendations, domain.HygieneRecommendation{
			Category: category.Name,
			Text:     recommendationText(category.Name, band),
			Priority: priority,
		})
	}
}

// buildActionPlan buckets recommendation texts strictly by priority,
// preserving generation order within each bucket.
func buildActionPlan(recommendations []domain.HygieneRecommendation) domain.ActionPlan {
	var plan domain.ActionPlan
	for _, r := range recommendations {
		switch r.Priority {
		case domain.PriorityHigh:
			plan.Immediate = append(plan.Immediate, r.Text)
		case domain.PriorityMedium:
			plan.ShortTerm = append(plan.ShortTerm, r.Text)
		case domain.PriorityLow:
			plan.LongTerm = append(plan.LongTerm, r.Text)
		}
	}

	return plan
}

// fillNarrative asks the optional generator for a summary. Failure leaves
// the summary empty and the rest of the report untouched.
func (s *Scorer) fillNarrative(ctx context.Context, report *domain.HygieneReport) {
	if s.generator == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.options.NarrativeTimeout)
	defer cancel()

	summary, err := s.generator.Summarize(ctx, *report)
	if err != nil {
		logger.Warn(ctx, "narrative generation failed, omitting summary", zap.Error(err))

		return
	}
	report.NarrativeSummary = summary
}
