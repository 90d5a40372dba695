package ai

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"recruitpro-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text     string
	textErr  error
	jsonBody string
	jsonErr  error
	prompts  []string
}

func (s *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.text, s.textErr
}

func (s *stubGenerator) GenerateJSON(_ context.Context, prompt string, _ map[string]any, out any) error {
	s.prompts = append(s.prompts, prompt)
	if s.jsonErr != nil {
		return s.jsonErr
	}
	return json.Unmarshal([]byte(s.jsonBody), out)
}

func TestAnalyzeResume_Success(t *testing.T) {
	gen := &stubGenerator{jsonBody: `{
		"score": 87,
		"summary": "Strong backend engineer.",
		"contactDetails": {"name": "Jane Doe", "email": "jane@example.com"},
		"pros": ["Go expertise"],
		"cons": ["No Kubernetes"],
		"experienceRating": "Senior",
		"skillsAnalysis": [{"skill": "Go", "present": true, "relevance": "Core language"}],
		"recommendedAction": "Interview"
	}`}
	adapter := NewAdapter(gen, time.Second)

	result, err := adapter.AnalyzeResume(context.Background(), "resume text", "job context")
	require.NoError(t, err)
	assert.Equal(t, float64(87), result.Score)
	assert.Equal(t, "Strong backend engineer.", result.Summary)
	require.NotNil(t, result.ContactDetails)
	assert.Equal(t, "jane@example.com", result.ContactDetails.Email)
	assert.Equal(t, domain.ActionInterview, result.RecommendedAction)
	require.Len(t, result.SkillsAnalysis, 1)
	assert.True(t, result.SkillsAnalysis[0].Present)
}

func TestAnalyzeResume_GeneratorFailureDegrades(t *testing.T) {
	gen := &stubGenerator{jsonErr: errors.New("upstream 500")}
	adapter := NewAdapter(gen, time.Second)

	result, err := adapter.AnalyzeResume(context.Background(), "resume", "job")
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, float64(0), result.Score)
	assert.Equal(t, []string{"System error during analysis"}, result.Cons)
	assert.Equal(t, "Unknown", result.ExperienceRating)
	assert.Equal(t, domain.ActionKeepOnFile, result.RecommendedAction)
	assert.NotNil(t, result.Pros)
}

func TestAnalyzeResume_NoGenerator(t *testing.T) {
	adapter := NewAdapter(nil, time.Second)

	result, err := adapter.AnalyzeResume(context.Background(), "resume", "job")
	require.Error(t, err)
	assert.Equal(t, DegradedAnalysis(), result)
}

func TestAnalyzeResume_ClampsScoreAndAction(t *testing.T) {
	gen := &stubGenerator{jsonBody: `{"score": 140, "summary": "x", "recommendedAction": "Hire Immediately"}`}
	adapter := NewAdapter(gen, time.Second)

	result, err := adapter.AnalyzeResume(context.Background(), "resume", "job")
	require.NoError(t, err)
	assert.Equal(t, float64(100), result.Score)
	assert.Equal(t, domain.ActionKeepOnFile, result.RecommendedAction)
}

func TestGenerateJobDescription_Fallbacks(t *testing.T) {
	unconfigured := NewAdapter(nil, time.Second)
	assert.Equal(t, "AI generation not available - API key not configured",
		unconfigured.GenerateJobDescription(context.Background(), "Engineer", nil))

	failing := NewAdapter(&stubGenerator{textErr: errors.New("timeout")}, time.Second)
	assert.Equal(t, "Could not generate description.",
		failing.GenerateJobDescription(context.Background(), "Engineer", []string{"go"}))
}

func TestGenerateWeightedSkills_ClampsWeights(t *testing.T) {
	gen := &stubGenerator{jsonBody: `[{"skill": "Go", "weight": 15}, {"skill": "SQL", "weight": 0}, {"skill": "", "weight": 5}]`}
	adapter := NewAdapter(gen, time.Second)

	skills := adapter.GenerateWeightedSkills(context.Background(), "Backend Engineer")
	require.Len(t, skills, 2)
	assert.Equal(t, float64(10), skills[0].Weight)
	assert.Equal(t, float64(1), skills[1].Weight)
}

func TestGenerateWeightedSkills_DegradesToEmpty(t *testing.T) {
	adapter := NewAdapter(&stubGenerator{jsonErr: errors.New("boom")}, time.Second)
	assert.Empty(t, adapter.GenerateWeightedSkills(context.Background(), "Engineer"))
}

func TestGenerateFocusAreas_Fallbacks(t *testing.T) {
	unconfigured := NewAdapter(nil, time.Second)
	assert.Equal(t, []string{"Technical Skills", "Experience", "Cultural Fit"},
		unconfigured.GenerateFocusAreas(context.Background(), "Engineer", "desc"))

	failing := NewAdapter(&stubGenerator{jsonErr: errors.New("boom")}, time.Second)
	assert.Equal(t, []string{"General", "Technical", "Behavioral"},
		failing.GenerateFocusAreas(context.Background(), "Engineer", "desc"))
}

func TestGenerateQuestions_FallbackPair(t *testing.T) {
	adapter := NewAdapter(&stubGenerator{jsonErr: errors.New("boom")}, time.Second)

	questions := adapter.GenerateQuestions(context.Background(), "Engineer", "desc")
	require.Len(t, questions, 2)
	assert.Equal(t, "Tell us about yourself.", questions[0].Text)
	assert.Equal(t, domain.QuestionGeneral, questions[0].Type)
}

func TestGenerateQuestions_NormalizesTypeAndID(t *testing.T) {
	gen := &stubGenerator{jsonBody: `[{"text": "Explain goroutines.", "type": "weird"}]`}
	adapter := NewAdapter(gen, time.Second)

	questions := adapter.GenerateQuestions(context.Background(), "Engineer", "desc")
	require.Len(t, questions, 1)
	assert.NotEmpty(t, questions[0].ID)
	assert.Equal(t, domain.QuestionGeneral, questions[0].Type)
}

func TestGenerateQuestionsByFocus_SetsFocusArea(t *testing.T) {
	gen := &stubGenerator{jsonBody: `[{"id": "q1", "text": "Design a cache.", "type": "technical"}]`}
	adapter := NewAdapter(gen, time.Second)

	questions := adapter.GenerateQuestionsByFocus(context.Background(), "Engineer", "System Design")
	require.Len(t, questions, 1)
	assert.Equal(t, "System Design", questions[0].FocusArea)
}

func TestGenerateEmail_Fallbacks(t *testing.T) {
	adapter := NewAdapter(&stubGenerator{textErr: errors.New("boom")}, time.Second)

	email := adapter.GenerateEmail(context.Background(), domain.EmailInvite, "Backend Engineer", "Jane")
	assert.Equal(t, "Update regarding Backend Engineer", email.Subject)
	assert.Equal(t, "Please contact us for an update.", email.Body)
}

func TestCompareCandidates_IncludesAnalysisData(t *testing.T) {
	gen := &stubGenerator{text: "## Verdict\nJane wins."}
	adapter := NewAdapter(gen, time.Second)

	candidates := []domain.Candidate{
		{Name: "Jane", Analysis: &domain.AIAnalysisResult{Score: 91, Summary: "great", Pros: []string{"Go"}, Cons: []string{"none"}}},
		{Name: "Bob"},
	}
	verdict := adapter.CompareCandidates(context.Background(), candidates, "Backend Engineer")
	assert.Equal(t, "## Verdict\nJane wins.", verdict)
	require.NotEmpty(t, gen.prompts)
	assert.Contains(t, gen.prompts[0], "Candidate: Jane")
	assert.Contains(t, gen.prompts[0], "Score: 91/100")
	assert.Contains(t, gen.prompts[0], "Candidate: Bob")
}

func TestCompareCandidates_ErrorFallback(t *testing.T) {
	adapter := NewAdapter(&stubGenerator{textErr: errors.New("boom")}, time.Second)
	assert.Equal(t, "Error comparing candidates.",
		adapter.CompareCandidates(context.Background(), []domain.Candidate{{Name: "Jane"}}, "Engineer"))
}
