package ledger

import "testing"

func countAchievement(s *Service, id string) int {
	n := 0
	for _, a := range s.Achievements() {
		if a.ID == id {
			n++
		}
	}
	return n
}

func TestFirstQuestionAchievement(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")

	record(t, s, "arrays", "beginner", "static", false)
	if countAchievement(s, "first_question") != 1 {
		t.Error("expected first_question after one attempt")
	}
}

func TestStreakAchievementsFireOnce(t *testing.T) {
	s := newTestService(t)

	// 25 consecutive correct answers across consecutive days.
	days := []string{"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04", "2026-08-05"}
	for _, day := range days {
		setDay(s, day)
		for i := 0; i < 5; i++ {
			record(t, s, "arrays", "beginner", "static", true)
		}
	}

	for _, id := range []string{"streak_5", "streak_10", "streak_25"} {
		if got := countAchievement(s, id); got != 1 {
			t.Errorf("%s earned %d times, want exactly 1", id, got)
		}
	}

	// Keep answering; streak stays >= 25 but nothing re-fires.
	setDay(s, "2026-08-06")
	for i := 0; i < 3; i++ {
		record(t, s, "arrays", "beginner", "static", true)
	}
	if got := countAchievement(s, "streak_25"); got != 1 {
		t.Errorf("streak_25 earned %d times after re-evaluation, want 1", got)
	}
}

func TestTopicMasterAchievement(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")

	for i := 0; i < 9; i++ {
		record(t, s, "recursion", "advanced", "ai", true)
	}
	if countAchievement(s, "topic_master") != 0 {
		t.Error("topic_master should need 10+ questions")
	}

	record(t, s, "recursion", "advanced", "ai", true)
	if countAchievement(s, "topic_master") != 1 {
		t.Error("expected topic_master at 10/10 correct")
	}
}

func TestAccuracy90Achievement(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")

	// 46 correct, 4 incorrect = 92% over 50 questions.
	for i := 0; i < 4; i++ {
		record(t, s, "arrays", "beginner", "static", false)
	}
	for i := 0; i < 46; i++ {
		record(t, s, "arrays", "beginner", "static", true)
	}

	if countAchievement(s, "accuracy_90") != 1 {
		t.Error("expected accuracy_90 with 92% over 50 questions")
	}
}

func TestHundredQuestionsAchievement(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")

	for i := 0; i < 100; i++ {
		record(t, s, "arrays", "beginner", "static", i%2 == 0)
	}
	if countAchievement(s, "hundred_questions") != 1 {
		t.Error("expected hundred_questions at 100 attempts")
	}
}
