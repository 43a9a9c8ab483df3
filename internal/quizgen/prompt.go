package quizgen

import "strings"

const systemPrompt = `You are an expert educator who creates high-quality multiple-choice questions for learning. Always respond with valid JSON in the exact format requested.`

const defaultPrompt = `Generate a comprehensive multiple-choice question about the given topic and difficulty level.

Requirements:
- Create 1 question with exactly 4 options (A, B, C, D)
- Make the question appropriate for the specified difficulty level
- Ensure only one correct answer
- Provide detailed explanations for ALL options (correct and incorrect)
- Focus on practical, applicable knowledge
- Make explanations educational and helpful for learning

Topic: {topic}
Difficulty Level: {level}

Response format (JSON):
{
  "question": "Your question here?",
  "options": ["Option A", "Option B", "Option C", "Option D"],
  "correct": 0,
  "explanation": "Clear explanation of why the correct answer is right and its practical applications.",
  "explanations": {
    "0": "Detailed explanation for option A - why it's correct/incorrect and where it's used",
    "1": "Detailed explanation for option B - why it's correct/incorrect and where it's used",
    "2": "Detailed explanation for option C - why it's correct/incorrect and where it's used",
    "3": "Detailed explanation for option D - why it's correct/incorrect and where it's used"
  }
}

IMPORTANT:
- The "explanation" field should explain the correct answer and its practical applications
- The "explanations" object must contain detailed explanations for ALL 4 options
- For incorrect options, explain WHY they are wrong and where they might be confused with the correct answer
- For the correct option, explain WHY it's right and provide real-world usage examples
- Make sure the question tests understanding, not just memorization.`

// buildUserMessage constructs the user message from GenerateInput and Config.
func buildUserMessage(input GenerateInput, cfg Config) string {
	prompt := defaultPrompt
	if cfg.CustomPrompt != "" {
		prompt = cfg.CustomPrompt
	}

	topic := input.Topic
	if input.TopicDetails != "" {
		topic += " (" + input.TopicDetails + ")"
	}

	prompt = strings.Replace(prompt, "{topic}", topic, 1)
	prompt = strings.Replace(prompt, "{level}", input.Level, 1)
	return prompt
}
