package weakness

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/abhisek/quizmate/internal/conceptgraph"
	"github.com/abhisek/quizmate/internal/ledger"
	"github.com/abhisek/quizmate/internal/store"
)

// Weakness thresholds and heuristic constants. These come from observed
// tuning, not derivation; treat as configuration.
const (
	weakAccuracy         = 0.60
	weakAccuracySampled  = 0.70
	weakSampleSize       = 5
	weakCategoryAccuracy = 0.65
	responseTimeNormMs   = 30000.0
)

// categoryWeights bias category priorities toward foundational material.
var categoryWeights = map[conceptgraph.Category]float64{
	conceptgraph.CategoryFundamentals:   3.0,
	conceptgraph.CategoryDataStructures: 2.5,
	conceptgraph.CategoryAlgorithms:     2.5,
	conceptgraph.CategoryOOP:            2.0,
	conceptgraph.CategoryDatabase:       1.8,
	conceptgraph.CategorySystemDesign:   1.5,
}

// Analyzer converts ledger aggregates into prioritized weakness reports.
// It holds no state beyond the last computed report.
type Analyzer struct {
	stateRepo store.StateRepo
	last      *Report
}

// NewAnalyzer creates an analyzer, restoring the last persisted report so
// targeted topics survive restarts.
func NewAnalyzer(ctx context.Context, stateRepo store.StateRepo) *Analyzer {
	a := &Analyzer{stateRepo: stateRepo}
	if stateRepo != nil {
		var saved Report
		if found, err := stateRepo.Get(ctx, store.StateKeyWeakness, &saved); err == nil && found {
			a.last = &saved
		}
	}
	return a
}

// Analyze computes a full weakness report from the given aggregates.
// Pure given its inputs; calling it twice on unchanged aggregates yields
// an identical report (deterministic iteration throughout).
func (a *Analyzer) Analyze(ctx context.Context, aggr ledger.Aggregates, weekly ledger.WeeklyStats) *Report {
	report := &Report{
		Timestamp:          time.Now(),
		ConceptWeaknesses:  a.analyzeConcepts(aggr.TopicStats),
		CategoryWeaknesses: a.analyzeCategories(aggr.TopicStats),
	}
	report.MasteryLevels = masteryLevels(report.ConceptWeaknesses)
	report.ConfidenceScores = confidenceScores(aggr, weekly)
	report.OverallWeaknesses = overallWeaknesses(report)
	report.RecommendedActions = recommendedActions(report)
	report.LearningPath = learningPath(report)

	a.last = report
	if a.stateRepo != nil {
		// Persistence failure is not fatal to the analysis.
		_ = a.stateRepo.Set(ctx, store.StateKeyWeakness, report)
	}
	return report
}

// LastReport returns the most recent report, or nil if none computed.
func (a *Analyzer) LastReport() *Report {
	return a.last
}

// TargetedTopics returns the top-limit weaknesses from the last report as
// selection targets. Returns nil when no analysis has run yet.
func (a *Analyzer) TargetedTopics(limit int) []TargetedTopic {
	if a.last == nil {
		return nil
	}
	weaknesses := a.last.OverallWeaknesses
	if limit > 0 && len(weaknesses) > limit {
		weaknesses = weaknesses[:limit]
	}

	out := make([]TargetedTopic, 0, len(weaknesses))
	for _, w := range weaknesses {
		out = append(out, TargetedTopic{
			Topic:      w.Name,
			Priority:   w.Priority,
			Difficulty: conceptgraph.DifficultyOf(w.Name),
			Reason:     w.Description,
		})
	}
	return out
}

// analyzeConcepts maps topic stats onto canonical concepts. Topics that
// normalize to the same concept have their counters merged.
func (a *Analyzer) analyzeConcepts(topicStats map[string]ledger.TopicStat) map[string]ConceptWeakness {
	merged := make(map[string]ledger.TopicStat)
	for _, topic := range sortedKeys(topicStats) {
		concept := conceptgraph.NormalizeTopic(topic)
		m := merged[concept]
		stats := topicStats[topic]
		m.Correct += stats.Correct
		m.Total += stats.Total
		m.TotalTimeMs += stats.TotalTimeMs
		merged[concept] = m
	}

	out := make(map[string]ConceptWeakness, len(merged))
	for concept, stats := range merged {
		accuracy := float64(stats.Correct) / math.Max(float64(stats.Total), 1)
		avgRT := float64(stats.TotalTimeMs) / math.Max(float64(stats.Total), 1)

		out[concept] = ConceptWeakness{
			Accuracy:          accuracy,
			TotalQuestions:    stats.Total,
			CorrectAnswers:    stats.Correct,
			AvgResponseTimeMs: avgRT,
			WeaknessScore:     weaknessScore(accuracy, avgRT, stats.Total),
			IsWeak:            accuracy < weakAccuracy || (stats.Total >= weakSampleSize && accuracy < weakAccuracySampled),
			Category:          conceptgraph.CategoryOf(concept),
			Difficulty:        conceptgraph.DifficultyOf(concept),
			Weight:            conceptgraph.WeightOf(concept),
		}
	}
	return out
}

func (a *Analyzer) analyzeCategories(topicStats map[string]ledger.TopicStat) map[string]CategoryWeakness {
	type catAgg struct {
		total    int
		correct  int
		timeMs   int64
		concepts []string
	}
	cats := make(map[conceptgraph.Category]*catAgg)

	for _, topic := range sortedKeys(topicStats) {
		concept := conceptgraph.NormalizeTopic(topic)
		category := conceptgraph.CategoryOf(concept)
		stats := topicStats[topic]

		agg, ok := cats[category]
		if !ok {
			agg = &catAgg{}
			cats[category] = agg
		}
		agg.total += stats.Total
		agg.correct += stats.Correct
		agg.timeMs += stats.TotalTimeMs
		if !contains(agg.concepts, concept) {
			agg.concepts = append(agg.concepts, concept)
		}
	}

	out := make(map[string]CategoryWeakness, len(cats))
	for category, agg := range cats {
		accuracy := float64(agg.correct) / math.Max(float64(agg.total), 1)
		avgRT := float64(agg.timeMs) / math.Max(float64(agg.total), 1)

		out[string(category)] = CategoryWeakness{
			Accuracy:          accuracy,
			TotalQuestions:    agg.total,
			CorrectAnswers:    agg.correct,
			AvgResponseTimeMs: avgRT,
			ConceptCount:      len(agg.concepts),
			IsWeak:            accuracy < weakCategoryAccuracy,
			WeaknessScore:     weaknessScore(accuracy, avgRT, agg.total),
			Concepts:          agg.concepts,
		}
	}
	return out
}

// weaknessScore combines inverse accuracy, a response-time penalty
// normalized to 30 seconds, and a low-sample penalty. Higher = weaker.
func weaknessScore(accuracy, avgResponseTimeMs float64, totalQuestions int) float64 {
	accuracyScore := (1 - accuracy) * 100
	timeScore := math.Min(avgResponseTimeMs/responseTimeNormMs, 1) * 20
	confidenceScore := math.Max(0, float64(10-totalQuestions)) * 5
	return accuracyScore + timeScore + confidenceScore
}

func severityOf(score float64) Severity {
	switch {
	case score >= 80:
		return SeverityCritical
	case score >= 60:
		return SeverityHigh
	case score >= 40:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func conceptPriority(concept string, data ConceptWeakness) float64 {
	weight := conceptgraph.WeightOf(concept)
	sev := severityOf(data.WeaknessScore)
	return weight * severityMultiplier[sev] * (1 - data.Accuracy)
}

func categoryPriority(category string, data CategoryWeakness) float64 {
	weight, ok := categoryWeights[conceptgraph.Category(category)]
	if !ok {
		weight = 1.0
	}
	return weight * (1 - data.Accuracy) * float64(data.ConceptCount)
}

func impactOf(concept string) string {
	dependents := conceptgraph.Dependents(concept)
	weight := conceptgraph.WeightOf(concept)
	switch {
	case len(dependents) >= 3 && weight >= 1.5:
		return "high"
	case len(dependents) >= 2 || weight >= 1.3:
		return "medium"
	default:
		return "low"
	}
}

func masteryLevels(concepts map[string]ConceptWeakness) map[string]Mastery {
	out := make(map[string]Mastery, len(concepts))
	for concept, data := range concepts {
		level := MasteryNovice
		switch {
		case data.Accuracy >= ThresholdExpert:
			level = MasteryExpert
		case data.Accuracy >= ThresholdAdvanced:
			level = MasteryAdvanced
		case data.Accuracy >= ThresholdIntermediate:
			level = MasteryIntermediate
		case data.Accuracy >= ThresholdBeginner:
			level = MasteryBeginner
		}

		out[concept] = Mastery{
			Level:           level,
			Score:           data.Accuracy,
			Confidence:      sampleConfidence(data.TotalQuestions),
			QuestionsNeeded: questionsNeeded(data.Accuracy),
		}
	}
	return out
}

func sampleConfidence(totalQuestions int) Confidence {
	if totalQuestions < 3 {
		return ConfidenceLow
	}
	if totalQuestions < 8 {
		return ConfidenceMedium
	}
	return ConfidenceHigh
}

// questionsNeeded estimates attempts required to reach the next mastery
// threshold. Returns 0 at expert level.
func questionsNeeded(accuracy float64) int {
	var next float64
	switch {
	case accuracy < ThresholdBeginner:
		next = ThresholdBeginner
	case accuracy < ThresholdIntermediate:
		next = ThresholdIntermediate
	case accuracy < ThresholdAdvanced:
		next = ThresholdAdvanced
	case accuracy < ThresholdExpert:
		next = ThresholdExpert
	default:
		return 0
	}
	return int(math.Ceil((next - accuracy) * 20))
}

func confidenceScores(aggr ledger.Aggregates, weekly ledger.WeeklyStats) ConfidenceScores {
	overall := float64(aggr.OverallAccuracy)
	recent := float64(weekly.Accuracy)

	cs := ConfidenceScores{
		Overall:      math.Min(100, (overall+recent)/2),
		Trend:        "stable",
		ByDifficulty: make(map[string]int),
	}
	if recent > overall+5 {
		cs.Trend = "improving"
	} else if recent < overall-5 {
		cs.Trend = "declining"
	}

	for level, stats := range aggr.LevelStats {
		accuracy := float64(stats.Correct) / math.Max(float64(stats.Total), 1)
		cs.ByDifficulty[level] = int(math.Round(accuracy * 100))
	}
	return cs
}

func overallWeaknesses(report *Report) []Weakness {
	var out []Weakness

	for _, concept := range sortedKeys(report.ConceptWeaknesses) {
		data := report.ConceptWeaknesses[concept]
		if !data.IsWeak {
			continue
		}
		out = append(out, Weakness{
			Type:        "concept",
			Name:        concept,
			Severity:    severityOf(data.WeaknessScore),
			Description: fmt.Sprintf("Low accuracy in %s (%d%%)", concept, int(math.Round(data.Accuracy*100))),
			Impact:      impactOf(concept),
			Priority:    conceptPriority(concept, data),
		})
	}

	for _, category := range sortedKeys(report.CategoryWeaknesses) {
		data := report.CategoryWeaknesses[category]
		if !data.IsWeak {
			continue
		}
		out = append(out, Weakness{
			Type:        "category",
			Name:        category,
			Severity:    severityOf(data.WeaknessScore),
			Description: fmt.Sprintf("Struggling with %s concepts (%d%% accuracy)", category, int(math.Round(data.Accuracy*100))),
			Impact:      "high",
			Priority:    categoryPriority(category, data),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
