package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/logger"

	"github.com/google/uuid"
)

// Adapter implements domain.Analyzer on top of a Generator. Every
// operation degrades to deterministic content when the generator is
// absent or failing; nothing here ever panics or leaks a transport
// error past the Analyzer contract.
type Adapter struct {
	gen     Generator
	timeout time.Duration
}

// NewAdapter wraps gen. A nil gen is valid and yields fully degraded
// behavior, matching a deployment without AI credentials.
func NewAdapter(gen Generator, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &Adapter{gen: gen, timeout: timeout}
}

// DegradedAnalysis is the deterministic result returned when scoring is
// impossible. Score 0 and "Keep on File" keep the candidate parked
// without crashing the pipeline.
func DegradedAnalysis() *domain.AIAnalysisResult {
	return &domain.AIAnalysisResult{
		Score:             0,
		Summary:           "Analysis failed or AI service unavailable. Please check configuration.",
		Pros:              []string{},
		Cons:              []string{"System error during analysis"},
		ExperienceRating:  "Unknown",
		SkillsAnalysis:    []domain.SkillMatch{},
		RecommendedAction: domain.ActionKeepOnFile,
	}
}

type analysisPayload struct {
	Score          float64 `json:"score"`
	Summary        string  `json:"summary"`
	ContactDetails *struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Location string `json:"location"`
		LinkedIn string `json:"linkedin"`
	} `json:"contactDetails"`
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
	ExperienceRating string   `json:"experienceRating"`
	SkillsAnalysis   []struct {
		Skill     string `json:"skill"`
		Present   bool   `json:"present"`
		Relevance string `json:"relevance"`
	} `json:"skillsAnalysis"`
	RecommendedAction string `json:"recommendedAction"`
}

func analysisSchema() map[string]any {
	return schemaObject(map[string]any{
		"score":   schemaNumber("A score from 0 to 100 indicating fit."),
		"summary": schemaString("A brief summary of the candidate's suitability."),
		"contactDetails": schemaObject(map[string]any{
			"name":     schemaString(""),
			"email":    schemaString(""),
			"phone":    schemaString(""),
			"location": schemaString(""),
			"linkedin": schemaString(""),
		}),
		"pros":             schemaArray(schemaString("")),
		"cons":             schemaArray(schemaString("")),
		"experienceRating": schemaString("Assessed level: Junior, Mid, Senior, or Expert."),
		"skillsAnalysis": schemaArray(schemaObject(map[string]any{
			"skill":     schemaString(""),
			"present":   schemaBool(),
			"relevance": schemaString(""),
		})),
		"recommendedAction": schemaEnum("Interview", "Keep on File", "Reject"),
	})
}

// AnalyzeResume scores a resume against a job context. It always
// returns a usable result; a non-nil error marks the result as the
// degraded placeholder so the caller can record a FAILED run.
func (a *Adapter) AnalyzeResume(ctx context.Context, resumeText, jobContext string) (*domain.AIAnalysisResult, error) {
	if a.gen == nil {
		return DegradedAnalysis(), fmt.Errorf("ai: generator not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`You are an expert Technical Recruiter and HR Specialist.
Analyze the following resume text against the provided job description.

TASKS:
1. Extract the candidate's contact information (Name, Email, Phone, Location, LinkedIn) from the resume text accurately.
2. Analyze the fit for the job description.
3. Score the candidate from 0 to 100.

Note: The resume text is raw extraction. Ignore artifacts/whitespace.

JOB DESCRIPTION:
%s

RESUME TEXT:
%s

Provide a strict JSON response.`, jobContext, resumeText)

	var payload analysisPayload
	if err := a.gen.GenerateJSON(ctx, prompt, analysisSchema(), &payload); err != nil {
		logger.Log.Warn("AI analysis degraded", "error", err)
		return DegradedAnalysis(), err
	}

	result := &domain.AIAnalysisResult{
		Score:             clampScore(payload.Score),
		Summary:           payload.Summary,
		Pros:              orEmpty(payload.Pros),
		Cons:              orEmpty(payload.Cons),
		ExperienceRating:  payload.ExperienceRating,
		SkillsAnalysis:    []domain.SkillMatch{},
		RecommendedAction: normalizeAction(payload.RecommendedAction),
	}
	if payload.ContactDetails != nil {
		result.ContactDetails = &domain.ContactDetails{
			Name:     payload.ContactDetails.Name,
			Email:    payload.ContactDetails.Email,
			Phone:    payload.ContactDetails.Phone,
			Location: payload.ContactDetails.Location,
			LinkedIn: payload.ContactDetails.LinkedIn,
		}
	}
	for _, s := range payload.SkillsAnalysis {
		result.SkillsAnalysis = append(result.SkillsAnalysis, domain.SkillMatch{
			Skill:     s.Skill,
			Present:   s.Present,
			Relevance: s.Relevance,
		})
	}
	return result, nil
}

func (a *Adapter) GenerateJobDescription(ctx context.Context, title string, keywords []string) string {
	fallback := "Could not generate description."
	if a.gen == nil {
		return "AI generation not available - API key not configured"
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Write a professional job description for a "%s". Include these keywords: %s. Keep it under 200 words.`,
		title, strings.Join(keywords, ", "))
	text, err := a.gen.GenerateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		return fallback
	}
	return strings.TrimSpace(text)
}

func (a *Adapter) GenerateWeightedSkills(ctx context.Context, title string) []domain.WeightedSkill {
	if a.gen == nil {
		return []domain.WeightedSkill{}
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Generate a list of 6-10 key technical and soft skills for a "%s" role.
Assign a relevance weight from 1 to 10 for each skill (10 being mandatory/critical, 1 being nice-to-have).
Return a strict JSON array of objects with "skill" (string) and "weight" (number) properties.`, title)

	schema := schemaArray(schemaObject(map[string]any{
		"skill":  schemaString(""),
		"weight": schemaNumber(""),
	}))
	var payload []struct {
		Skill  string  `json:"skill"`
		Weight float64 `json:"weight"`
	}
	if err := a.gen.GenerateJSON(ctx, prompt, schema, &payload); err != nil {
		logger.Log.Warn("weighted skill generation degraded", "error", err)
		return []domain.WeightedSkill{}
	}
	skills := make([]domain.WeightedSkill, 0, len(payload))
	for _, p := range payload {
		if strings.TrimSpace(p.Skill) == "" {
			continue
		}
		w := p.Weight
		if w < 1 {
			w = 1
		}
		if w > 10 {
			w = 10
		}
		skills = append(skills, domain.WeightedSkill{Skill: p.Skill, Weight: w})
	}
	return skills
}

func (a *Adapter) GenerateFocusAreas(ctx context.Context, title, description string) []string {
	if a.gen == nil {
		return []string{"Technical Skills", "Experience", "Cultural Fit"}
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Identify 3-5 key focus areas or question categories for interviewing a %s.
Examples: "System Design", "Cultural Fit", "React Proficiency", "Problem Solving".
Job Description Context: %s...
Return a strict JSON array of strings.`, title, truncate(description, 300))

	var areas []string
	if err := a.gen.GenerateJSON(ctx, prompt, schemaArray(schemaString("")), &areas); err != nil || len(areas) == 0 {
		return []string{"General", "Technical", "Behavioral"}
	}
	return areas
}

type questionPayload struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`
	FocusArea string `json:"focusArea"`
}

func questionSchema() map[string]any {
	return schemaArray(schemaObject(map[string]any{
		"id":        schemaString(""),
		"text":      schemaString(""),
		"type":      schemaEnum("technical", "behavioral", "general"),
		"focusArea": schemaString(""),
	}))
}

func (a *Adapter) GenerateQuestions(ctx context.Context, title, description string) []domain.InterviewQuestion {
	if a.gen == nil {
		return defaultQuestions()
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Create 5 interview questions for a %s role.
Job Description: %s...

Include a mix of Technical and Behavioral questions.
Return strictly a JSON array of objects with 'id', 'text' and 'type' (technical, behavioral or general).`,
		title, truncate(description, 500))

	var payload []questionPayload
	if err := a.gen.GenerateJSON(ctx, prompt, questionSchema(), &payload); err != nil || len(payload) == 0 {
		return defaultQuestions()
	}
	return toQuestions(payload)
}

func (a *Adapter) GenerateQuestionsByFocus(ctx context.Context, title, focusArea string) []domain.InterviewQuestion {
	if a.gen == nil {
		return []domain.InterviewQuestion{{
			ID:        uuid.NewString(),
			Text:      fmt.Sprintf("Tell us about your experience with %s.", focusArea),
			Type:      domain.QuestionTechnical,
			FocusArea: focusArea,
		}}
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Generate 2 specific interview questions for a %s related to the focus area: "%s".
Return a JSON array of objects with 'id' (random string), 'text', 'type' (use 'technical' or 'behavioral'), and 'focusArea' ("%s").`,
		title, focusArea, focusArea)

	var payload []questionPayload
	if err := a.gen.GenerateJSON(ctx, prompt, questionSchema(), &payload); err != nil {
		return []domain.InterviewQuestion{}
	}
	questions := toQuestions(payload)
	for i := range questions {
		if questions[i].FocusArea == "" {
			questions[i].FocusArea = focusArea
		}
	}
	return questions
}

func (a *Adapter) GenerateEmail(ctx context.Context, emailType domain.EmailType, jobTitle, candidateName string) domain.EmailContent {
	fallback := domain.EmailContent{
		Subject: fmt.Sprintf("Update regarding %s", jobTitle),
		Body:    "Please contact us for an update.",
	}
	if a.gen == nil {
		return fallback
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	subjectPrompt := fmt.Sprintf(`Generate a professional email subject line for a %s email to candidate %s for the role of %s. Return just the string.`,
		emailType, candidateName, jobTitle)
	if subject, err := a.gen.GenerateText(ctx, subjectPrompt); err == nil && strings.TrimSpace(subject) != "" {
		fallback.Subject = strings.TrimSpace(subject)
	}

	bodyPrompt := fmt.Sprintf(`Write a professional email body for a %s email to candidate %s for the role of %s. Keep it concise and polite. Return just the string.`,
		emailType, candidateName, jobTitle)
	if body, err := a.gen.GenerateText(ctx, bodyPrompt); err == nil && strings.TrimSpace(body) != "" {
		fallback.Body = strings.TrimSpace(body)
	}
	return fallback
}

func (a *Adapter) CompareCandidates(ctx context.Context, candidates []domain.Candidate, jobTitle string) string {
	if a.gen == nil {
		return "AI comparison not available - API key not configured"
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var sb strings.Builder
	for _, c := range candidates {
		var score float64
		summary, pros, cons := "", "", ""
		if c.Analysis != nil {
			score = c.Analysis.Score
			summary = c.Analysis.Summary
			pros = strings.Join(c.Analysis.Pros, ", ")
			cons = strings.Join(c.Analysis.Cons, ", ")
		}
		fmt.Fprintf(&sb, "Candidate: %s\nScore: %.0f/100\nSummary: %s\nStrengths: %s\nWeaknesses: %s\n\n",
			c.Name, score, summary, pros, cons)
	}

	prompt := fmt.Sprintf(`Compare the following candidates for the role of %s.
Provide a side-by-side analysis, highlighting who is better suited for specific aspects of the role.
Conclude with a final recommendation.
Use Markdown formatting.

%s`, jobTitle, sb.String())

	text, err := a.gen.GenerateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		return "Error comparing candidates."
	}
	return text
}

func defaultQuestions() []domain.InterviewQuestion {
	return []domain.InterviewQuestion{
		{ID: "1", Text: "Tell us about yourself.", Type: domain.QuestionGeneral},
		{ID: "2", Text: "Why do you want this job?", Type: domain.QuestionGeneral},
	}
}

func toQuestions(payload []questionPayload) []domain.InterviewQuestion {
	questions := make([]domain.InterviewQuestion, 0, len(payload))
	for _, p := range payload {
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		qt := domain.QuestionType(p.Type)
		switch qt {
		case domain.QuestionTechnical, domain.QuestionBehavioral, domain.QuestionGeneral:
		default:
			qt = domain.QuestionGeneral
		}
		questions = append(questions, domain.InterviewQuestion{
			ID:        id,
			Text:      p.Text,
			Type:      qt,
			FocusArea: p.FocusArea,
		})
	}
	return questions
}

func normalizeAction(s string) domain.RecommendedAction {
	switch domain.RecommendedAction(s) {
	case domain.ActionInterview, domain.ActionReject, domain.ActionKeepOnFile:
		return domain.RecommendedAction(s)
	default:
		return domain.ActionKeepOnFile
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
