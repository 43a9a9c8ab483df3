package ledger

import "time"

// achievementRule pairs an achievement's identity with its earn condition.
type achievementRule struct {
	id          string
	name        string
	description string
	earned      func(st *state) bool
}

var achievementRules = []achievementRule{
	{
		id: "first_question", name: "Getting Started",
		description: "Answered your first question",
		earned: func(st *state) bool {
			return st.Totals.QuestionsAnswered >= 1
		},
	},
	{
		id: "streak_5", name: "On Fire!",
		description: "5 correct answers in a row",
		earned: func(st *state) bool {
			return st.Totals.CurrentStreak >= 5
		},
	},
	{
		id: "streak_10", name: "Unstoppable!",
		description: "10 correct answers in a row",
		earned: func(st *state) bool {
			return st.Totals.CurrentStreak >= 10
		},
	},
	{
		id: "streak_25", name: "Legend!",
		description: "25 correct answers in a row",
		earned: func(st *state) bool {
			return st.Totals.CurrentStreak >= 25
		},
	},
	{
		id: "hundred_questions", name: "Century Club",
		description: "Answered 100 questions",
		earned: func(st *state) bool {
			return st.Totals.QuestionsAnswered >= 100
		},
	},
	{
		id: "accuracy_90", name: "Perfectionist",
		description: "90%+ accuracy with 50+ questions",
		earned: func(st *state) bool {
			if st.Totals.QuestionsAnswered < 50 {
				return false
			}
			return float64(st.Totals.CorrectAnswers)/float64(st.Totals.QuestionsAnswered) >= 0.9
		},
	},
	{
		id: "topic_master", name: "Topic Master",
		description: "100% accuracy in any topic (10+ questions)",
		earned: func(st *state) bool {
			for _, stat := range st.TopicStats {
				if stat.Total >= 10 && stat.Accuracy == 100 {
					return true
				}
			}
			return false
		},
	},
}

// evaluateAchievements awards any rule whose condition now holds.
// Already-earned achievements never fire again, so repeated evaluation
// is idempotent. Returns the newly earned achievements.
func (s *Service) evaluateAchievements(now time.Time) []Achievement {
	earned := make(map[string]bool, len(s.state.Achievements))
	for _, a := range s.state.Achievements {
		earned[a.ID] = true
	}

	var fresh []Achievement
	for _, rule := range achievementRules {
		if earned[rule.id] || !rule.earned(&s.state) {
			continue
		}
		a := Achievement{
			ID:          rule.id,
			Name:        rule.name,
			Description: rule.description,
			EarnedAt:    now,
		}
		s.state.Achievements = append(s.state.Achievements, a)
		fresh = append(fresh, a)
	}
	return fresh
}
