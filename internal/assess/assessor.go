package assess

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizmate/internal/ledger"
	"github.com/abhisek/quizmate/internal/store"
	"github.com/abhisek/quizmate/internal/weakness"
)

// maxHistory caps the retained assessment history.
const maxHistory = 10

// Assessor turns ledger aggregates into a comprehensive skill assessment,
// optionally sharpened by a weakness report.
type Assessor struct {
	stateRepo store.StateRepo
	history   []Assessment
	now       func() time.Time
}

type savedAssessments struct {
	History []Assessment `json:"assessments"`
}

// NewAssessor creates an assessor, restoring persisted history.
func NewAssessor(ctx context.Context, stateRepo store.StateRepo) *Assessor {
	a := &Assessor{stateRepo: stateRepo, now: time.Now}
	if stateRepo != nil {
		var saved savedAssessments
		if found, err := stateRepo.Get(ctx, store.StateKeyAssessments, &saved); err == nil && found {
			a.history = saved.History
		}
	}
	return a
}

// Assess runs a full assessment over the given aggregates. The weakness
// report may be nil; when present, confirmed weak concepts get a score
// penalty. interviewScores are mock-interview results oldest first; recent
// passing scores raise the estimated success rate. The result is appended
// to history and persisted.
func (a *Assessor) Assess(ctx context.Context, aggr ledger.Aggregates, report *weakness.Report, interviewScores []int) *Assessment {
	now := a.now()
	assessment := &Assessment{
		ID:          fmt.Sprintf("assessment_%d_%s", now.UnixMilli(), uuid.NewString()[:8]),
		Timestamp:   now,
		DataQuality: dataQuality(aggr),
	}

	assessment.SkillScores = skillScores(aggr, report)
	assessment.SubcategoryScores = subcategoryScores(assessment.SkillScores)
	assessment.CategoryScores = categoryScores(assessment.SubcategoryScores)
	assessment.OverallScore = overallScore(assessment.CategoryScores)
	assessment.ExperienceLevel = experienceLevel(assessment.CategoryScores)
	assessment.InterviewReadiness = interviewReadiness(assessment, interviewScores)
	assessment.Strengths = identifyStrengths(assessment)
	assessment.Weaknesses = identifyWeaknesses(assessment)
	assessment.Recommendations = recommendations(assessment)
	assessment.Certifications = checkCertifications(assessment, now)
	assessment.BenchmarkComparison = compareToBenchmarks(assessment.CategoryScores)
	assessment.ConfidenceLevel = confidenceLevel(assessment)

	a.history = append(a.history, *assessment)
	if len(a.history) > maxHistory {
		a.history = a.history[len(a.history)-maxHistory:]
	}
	if a.stateRepo != nil {
		_ = a.stateRepo.Set(ctx, store.StateKeyAssessments, savedAssessments{History: a.history})
	}
	return assessment
}

// Latest returns the most recent assessment, or nil when none exist.
func (a *Assessor) Latest() *Assessment {
	if len(a.history) == 0 {
		return nil
	}
	latest := a.history[len(a.history)-1]
	return &latest
}

// History returns all retained assessments, oldest first.
func (a *Assessor) History() []Assessment {
	out := make([]Assessment, len(a.history))
	copy(out, a.history)
	return out
}

// skillsForTopic maps a quiz topic to the skills it exercises.
func skillsForTopic(topic string) []string {
	key := strings.ToLower(topic)
	if skills, ok := topicSkillMap[key]; ok {
		return skills
	}
	return []string{strings.Join(strings.Fields(key), "-")}
}

// skillScores distributes topic statistics over skills, merging multiple
// source topics per skill with a question-count weighted average.
func skillScores(aggr ledger.Aggregates, report *weakness.Report) map[string]SkillScore {
	scores := make(map[string]SkillScore)

	for _, topic := range sortedKeys(aggr.TopicStats) {
		stats := aggr.TopicStats[topic]
		accuracy := float64(stats.Correct) / math.Max(float64(stats.Total), 1)
		responseTime := float64(stats.TotalTimeMs) / math.Max(float64(stats.Total), 1)

		for _, skill := range skillsForTopic(topic) {
			s := scores[skill]
			existing := float64(s.QuestionsAnswered)
			added := float64(stats.Total)
			total := existing + added
			if total == 0 {
				continue
			}

			s.Accuracy = (s.Accuracy*existing + accuracy*added) / total
			s.AvgResponseTimeMs = (s.AvgResponseTimeMs*existing + responseTime*added) / total
			s.QuestionsAnswered = int(total)
			s.Sources = append(s.Sources, topic)
			s.Confidence = skillConfidence(s.QuestionsAnswered, s.Accuracy)
			s.Score = finalSkillScore(s.Accuracy, s.AvgResponseTimeMs, s.Confidence, s.QuestionsAnswered)
			scores[skill] = s
		}
	}

	if report != nil {
		for concept, data := range report.ConceptWeaknesses {
			if s, ok := scores[concept]; ok && data.IsWeak {
				s.Score *= 0.9
				s.Confidence = weakness.ConfidenceLow
				scores[concept] = s
			}
		}
	}
	return scores
}

func skillConfidence(questionCount int, accuracy float64) weakness.Confidence {
	switch {
	case questionCount < 3:
		return weakness.ConfidenceLow
	case questionCount < 8:
		return weakness.ConfidenceMedium
	case accuracy >= 0.8:
		return weakness.ConfidenceHigh
	default:
		return weakness.ConfidenceMedium
	}
}

// finalSkillScore blends accuracy (70%) with a speed score (30%) anchored
// at 30 seconds per question, scaled by confidence, plus a small bonus for
// sample size. Capped at 100.
func finalSkillScore(accuracy, avgResponseTimeMs float64, confidence weakness.Confidence, questionCount int) float64 {
	baseScore := accuracy * 100
	timeScore := math.Max(0, 100-(avgResponseTimeMs/1000-30)*2)

	multiplier := 1.0
	switch confidence {
	case weakness.ConfidenceLow:
		multiplier = 0.8
	case weakness.ConfidenceHigh:
		multiplier = 1.1
	}

	countBonus := math.Min(10, float64(questionCount)*0.5)
	return math.Min(100, math.Round((baseScore*0.7+timeScore*0.3)*multiplier+countBonus))
}

func subcategoryScores(skills map[string]SkillScore) map[string]SubcategoryScore {
	out := make(map[string]SubcategoryScore)
	for _, cat := range skillCategories {
		for _, sub := range cat.subcategories {
			var totalScore float64
			var totalQuestions, skillCount int
			for _, skill := range sub.skills {
				if s, ok := skills[skill]; ok {
					totalScore += s.Score
					totalQuestions += s.QuestionsAnswered
					skillCount++
				}
			}

			score := 0.0
			if skillCount > 0 {
				score = totalScore / float64(skillCount)
			}
			out[sub.key] = SubcategoryScore{
				Score:          score,
				SkillCount:     skillCount,
				TotalQuestions: totalQuestions,
				Confidence:     subcategoryConfidence(sub.skills, skills),
			}
		}
	}
	return out
}

func subcategoryConfidence(skillKeys []string, skills map[string]SkillScore) weakness.Confidence {
	var high, medium int
	for _, key := range skillKeys {
		switch skills[key].Confidence {
		case weakness.ConfidenceHigh:
			high++
		case weakness.ConfidenceMedium:
			medium++
		}
	}
	n := float64(len(skillKeys))
	if float64(high) >= n*0.6 {
		return weakness.ConfidenceHigh
	}
	if float64(high+medium) >= n*0.7 {
		return weakness.ConfidenceMedium
	}
	return weakness.ConfidenceLow
}

func categoryScores(subs map[string]SubcategoryScore) map[string]CategoryScore {
	out := make(map[string]CategoryScore)
	for _, cat := range skillCategories {
		var weightedScore, totalWeight float64
		var count int
		for _, sub := range cat.subcategories {
			if s, ok := subs[sub.key]; ok {
				weightedScore += s.Score * sub.weight
				totalWeight += sub.weight
				count++
			}
		}

		score := 0.0
		if totalWeight > 0 {
			score = weightedScore / totalWeight
		}
		out[cat.key] = CategoryScore{
			Score:            score,
			SubcategoryCount: count,
			Confidence:       categoryConfidence(cat.subcategories, subs),
		}
	}
	return out
}

func categoryConfidence(subDefs []subcategoryDef, subs map[string]SubcategoryScore) weakness.Confidence {
	var high, medium int
	for _, sub := range subDefs {
		switch subs[sub.key].Confidence {
		case weakness.ConfidenceHigh:
			high++
		case weakness.ConfidenceMedium:
			medium++
		}
	}
	n := float64(len(subDefs))
	if float64(high) >= n*0.5 {
		return weakness.ConfidenceHigh
	}
	if float64(high+medium) >= n*0.6 {
		return weakness.ConfidenceMedium
	}
	return weakness.ConfidenceLow
}

func overallScore(categories map[string]CategoryScore) int {
	var weightedScore, totalWeight float64
	for _, cat := range skillCategories {
		if s, ok := categories[cat.key]; ok {
			weightedScore += s.Score * cat.weight
			totalWeight += cat.weight
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(weightedScore / totalWeight))
}

// experienceLevel finds the highest benchmark tier whose per-category
// requirements are all met. Below entry level the result is "beginner".
func experienceLevel(categories map[string]CategoryScore) ExperienceLevel {
	for i := len(industryBenchmarks) - 1; i >= 0; i-- {
		tier := industryBenchmarks[i]
		meets := true
		for cat, required := range tier.requirements {
			if categories[cat].Score < required {
				meets = false
				break
			}
		}
		if meets {
			return ExperienceLevel{
				Level:      tier.key,
				Name:       tier.name,
				Confidence: levelConfidence(categories, tier.requirements),
			}
		}
	}
	return ExperienceLevel{Level: "beginner", Name: "Beginner (< 1 year)", Confidence: weakness.ConfidenceLow}
}

func levelConfidence(categories map[string]CategoryScore, requirements map[string]float64) weakness.Confidence {
	var totalGap float64
	var count int
	for cat, required := range requirements {
		totalGap += math.Max(0, required-categories[cat].Score)
		count++
	}
	avgGap := totalGap / float64(count)
	switch {
	case avgGap <= 5:
		return weakness.ConfidenceHigh
	case avgGap <= 15:
		return weakness.ConfidenceMedium
	default:
		return weakness.ConfidenceLow
	}
}

func interviewReadiness(assessment *Assessment, interviewScores []int) Readiness {
	cats := assessment.CategoryScores
	score := func(key string) float64 { return cats[key].Score }

	r := Readiness{
		Overall: math.Min(100, float64(assessment.OverallScore)+readinessBonus(cats)),
		ByCompany: map[string]int{
			"startup":    roundScore(score("coding-proficiency")*0.4 + score("problem-solving")*0.4 + score("communication")*0.2),
			"big-tech":   roundScore(score("technical-skills")*0.5 + score("problem-solving")*0.3 + score("coding-proficiency")*0.2),
			"enterprise": roundScore(score("technical-skills")*0.3 + score("coding-proficiency")*0.3 + score("communication")*0.4),
			"consulting": roundScore(score("problem-solving")*0.4 + score("communication")*0.4 + score("technical-skills")*0.2),
		},
		ByRole: map[string]int{
			"frontend":     roundScore(float64(assessment.OverallScore) * 0.9),
			"backend":      roundScore(score("technical-skills")*0.6 + score("problem-solving")*0.4),
			"fullstack":    assessment.OverallScore,
			"data-science": roundScore(score("problem-solving")*0.5 + score("technical-skills")*0.5),
		},
	}
	rate := math.Min(95, float64(assessment.OverallScore)*0.8+20)
	if len(interviewScores) > 0 {
		recent := interviewScores
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		passed := 0
		for _, s := range recent {
			if s >= passingInterviewScore {
				passed++
			}
		}
		rate += float64(passed) / float64(len(recent)) * 10
	}
	r.EstimatedSuccessRate = roundScore(rate)
	r.Recommendations = interviewRecommendations(cats)
	return r
}

// passingInterviewScore is the mock-interview score counted as a success
// when adjusting the estimated rate.
const passingInterviewScore = 70

// readinessBonus rewards balanced category scores: lower variance means a
// higher bonus, up to 10 points.
func readinessBonus(categories map[string]CategoryScore) float64 {
	var sum float64
	for _, cat := range skillCategories {
		sum += categories[cat.key].Score
	}
	avg := sum / float64(len(skillCategories))

	var variance float64
	for _, cat := range skillCategories {
		d := categories[cat.key].Score - avg
		variance += d * d
	}
	variance /= float64(len(skillCategories))
	return math.Max(0, 10-variance/10)
}

// interviewRecommendations names the two weakest categories under 75.
func interviewRecommendations(categories map[string]CategoryScore) []string {
	type entry struct {
		def   categoryDef
		score float64
	}
	entries := make([]entry, 0, len(skillCategories))
	for _, cat := range skillCategories {
		entries = append(entries, entry{def: cat, score: categories[cat.key].Score})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score < entries[j].score })

	var out []string
	for _, e := range entries[:2] {
		if e.score < 75 {
			out = append(out, fmt.Sprintf("Focus on %s - current score: %d%%", e.def.name, roundScore(e.score)))
		}
	}
	return out
}

func identifyStrengths(assessment *Assessment) []Strength {
	var strengths []Strength

	for _, cat := range skillCategories {
		if data := assessment.CategoryScores[cat.key]; data.Score >= 80 {
			strengths = append(strengths, Strength{
				Type: "category", Name: cat.key, Score: data.Score, Level: "high",
				Description: fmt.Sprintf("Strong performance in %s", cat.name),
			})
		}
		for _, sub := range cat.subcategories {
			if data := assessment.SubcategoryScores[sub.key]; data.Score >= 85 {
				strengths = append(strengths, Strength{
					Type: "subcategory", Name: sub.key, Score: data.Score, Level: "high",
					Description: fmt.Sprintf("Excellent %s skills", sub.name),
				})
			}
		}
	}

	for _, skill := range sortedKeys(assessment.SkillScores) {
		data := assessment.SkillScores[skill]
		if data.Score >= 90 && data.Confidence != weakness.ConfidenceLow {
			strengths = append(strengths, Strength{
				Type: "skill", Name: skill, Score: data.Score, Level: "expert",
				Description: fmt.Sprintf("Mastery of %s", strings.ReplaceAll(skill, "-", " ")),
			})
		}
	}

	sort.SliceStable(strengths, func(i, j int) bool { return strengths[i].Score > strengths[j].Score })
	if len(strengths) > 10 {
		strengths = strengths[:10]
	}
	return strengths
}

func identifyWeaknesses(assessment *Assessment) []WeakSpot {
	var weaknesses []WeakSpot

	for _, cat := range skillCategories {
		if data := assessment.CategoryScores[cat.key]; data.Score < 60 {
			severity := weakness.SeverityHigh
			if data.Score < 40 {
				severity = weakness.SeverityCritical
			}
			weaknesses = append(weaknesses, WeakSpot{
				Type: "category", Name: cat.key, Score: data.Score, Severity: severity,
				Description: fmt.Sprintf("Needs improvement in %s", cat.name),
				Impact:      "high",
			})
		}
		for _, sub := range cat.subcategories {
			if data := assessment.SubcategoryScores[sub.key]; data.Score < 65 {
				severity := weakness.SeverityMedium
				if data.Score < 45 {
					severity = weakness.SeverityCritical
				}
				weaknesses = append(weaknesses, WeakSpot{
					Type: "subcategory", Name: sub.key, Score: data.Score, Severity: severity,
					Description: fmt.Sprintf("Weak %s skills", sub.name),
					Impact:      "medium",
				})
			}
		}
	}

	for _, skill := range sortedKeys(assessment.SkillScores) {
		data := assessment.SkillScores[skill]
		if data.Score < 70 && data.QuestionsAnswered >= 3 {
			severity := weakness.SeverityLow
			if data.Score < 50 {
				severity = weakness.SeverityCritical
			}
			weaknesses = append(weaknesses, WeakSpot{
				Type: "skill", Name: skill, Score: data.Score, Severity: severity,
				Description: fmt.Sprintf("Needs practice with %s", strings.ReplaceAll(skill, "-", " ")),
				Impact:      "low",
			})
		}
	}

	sort.SliceStable(weaknesses, func(i, j int) bool { return weaknesses[i].Score < weaknesses[j].Score })
	if len(weaknesses) > 15 {
		weaknesses = weaknesses[:15]
	}
	return weaknesses
}

func recommendations(assessment *Assessment) []Recommendation {
	var recs []Recommendation

	for _, w := range assessment.Weaknesses {
		if w.Severity != weakness.SeverityCritical && w.Severity != weakness.SeverityHigh {
			continue
		}
		priority := "medium"
		if w.Severity == weakness.SeverityCritical {
			priority = "high"
		}
		recs = append(recs, Recommendation{
			Type:          "improvement",
			Priority:      priority,
			Category:      w.Type,
			Title:         fmt.Sprintf("Improve %s", strings.ReplaceAll(w.Name, "-", " ")),
			Description:   w.Description,
			EstimatedTime: improvementTime[w.Severity],
			Actions:       improvementActionsFor(w),
		})
	}

	if assessment.ExperienceLevel.Level != "expert-level" {
		if next, ok := nextExperienceLevel(assessment.ExperienceLevel.Level); ok {
			recs = append(recs, Recommendation{
				Type:          "progression",
				Priority:      "medium",
				Category:      "career",
				Title:         fmt.Sprintf("Progress to %s", next.name),
				Description:   fmt.Sprintf("Focus on key areas to reach %s", next.name),
				EstimatedTime: "3-6 months",
				Actions:       progressionActions(assessment.CategoryScores, next),
			})
		}
	}

	if assessment.InterviewReadiness.Overall < 75 {
		recs = append(recs, Recommendation{
			Type:          "interview-prep",
			Priority:      "high",
			Category:      "interview",
			Title:         "Improve Interview Readiness",
			Description:   "Focus on areas that will boost your interview performance",
			EstimatedTime: "2-4 weeks",
			Actions:       assessment.InterviewReadiness.Recommendations,
		})
	}

	priorityOrder := map[string]int{"high": 3, "medium": 2, "low": 1}
	sort.SliceStable(recs, func(i, j int) bool {
		return priorityOrder[recs[i].Priority] > priorityOrder[recs[j].Priority]
	})
	return recs
}

func improvementActionsFor(w WeakSpot) []string {
	if actions, ok := improvementActions[w.Name]; ok {
		return actions
	}
	return []string{fmt.Sprintf("Practice %s", strings.ReplaceAll(w.Name, "-", " "))}
}

func nextExperienceLevel(current string) (benchmarkDef, bool) {
	for i, tier := range industryBenchmarks {
		if tier.key == current && i < len(industryBenchmarks)-1 {
			return industryBenchmarks[i+1], true
		}
	}
	return benchmarkDef{}, false
}

func progressionActions(categories map[string]CategoryScore, next benchmarkDef) []string {
	var actions []string
	for _, cat := range skillCategories {
		required, ok := next.requirements[cat.key]
		if !ok {
			continue
		}
		current := categories[cat.key].Score
		if current < required {
			actions = append(actions, fmt.Sprintf("Improve %s by %d points", cat.name, roundScore(required-current)))
		}
	}
	return actions
}

func checkCertifications(assessment *Assessment, now time.Time) []Certification {
	var certs []Certification
	for _, cert := range certificationLevels {
		if assessment.OverallScore < cert.overall {
			continue
		}
		qualifies := true
		for cat, required := range cert.categories {
			if assessment.CategoryScores[cat].Score < required {
				qualifies = false
				break
			}
		}
		if qualifies {
			certs = append(certs, Certification{
				Level:       cert.key,
				Name:        cert.name,
				Badge:       cert.badge,
				Description: cert.description,
				EarnedAt:    now,
				Score:       assessment.OverallScore,
			})
		}
	}
	return certs
}

func compareToBenchmarks(categories map[string]CategoryScore) map[string]BenchmarkComparison {
	out := make(map[string]BenchmarkComparison, len(industryBenchmarks))
	for _, tier := range industryBenchmarks {
		gaps := make(map[string]BenchmarkGap, len(tier.requirements))
		var overallGap float64
		var met int

		for _, cat := range skillCategories {
			required, ok := tier.requirements[cat.key]
			if !ok {
				continue
			}
			current := categories[cat.key].Score
			gap := required - current
			gaps[cat.key] = BenchmarkGap{
				Current:  current,
				Required: required,
				Gap:      gap,
				Meets:    gap <= 0,
			}
			if gap <= 0 {
				met++
			}
			overallGap += math.Max(0, gap)
		}

		out[tier.key] = BenchmarkComparison{
			Name:            tier.name,
			SalaryRange:     tier.salaryRange,
			CommonRoles:     tier.commonRoles,
			Gaps:            gaps,
			OverallGap:      overallGap,
			CategoriesMet:   met,
			TotalCategories: len(tier.requirements),
			Readiness:       float64(met) / float64(len(tier.requirements)),
		}
	}
	return out
}

func dataQuality(aggr ledger.Aggregates) weakness.Confidence {
	total := aggr.TotalQuestions
	topics := len(aggr.TopicStats)
	switch {
	case total >= 50 && topics >= 5:
		return weakness.ConfidenceHigh
	case total >= 20 && topics >= 3:
		return weakness.ConfidenceMedium
	default:
		return weakness.ConfidenceLow
	}
}

func confidenceLevel(assessment *Assessment) weakness.Confidence {
	var high int
	for _, data := range assessment.CategoryScores {
		if data.Confidence == weakness.ConfidenceHigh {
			high++
		}
	}
	switch {
	case assessment.DataQuality == weakness.ConfidenceHigh && high >= 3:
		return weakness.ConfidenceHigh
	case assessment.DataQuality == weakness.ConfidenceMedium && high >= 2:
		return weakness.ConfidenceMedium
	default:
		return weakness.ConfidenceLow
	}
}

func roundScore(v float64) int {
	return int(math.Round(v))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
