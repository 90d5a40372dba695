package domain

import "context"

type RecommendedAction string

const (
	ActionInterview  RecommendedAction = "Interview"
	ActionKeepOnFile RecommendedAction = "Keep on File"
	ActionReject     RecommendedAction = "Reject"
)

// SkillMatch reports presence and relevance ("High", "Medium", "Low")
// of one job skill in a resume.
type SkillMatch struct {
	Skill     string `json:"skill"`
	Present   bool   `json:"present"`
	Relevance string `json:"relevance"`
}

type ContactDetails struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
}

// AIAnalysisResult is the structured verdict of one scoring run.
// Present on a candidate only once its analysis status is COMPLETED.
type AIAnalysisResult struct {
	Score             float64           `json:"score"` // 0-100
	Summary           string            `json:"summary"`
	ContactDetails    *ContactDetails   `json:"contact_details,omitempty"`
	Pros              []string          `json:"pros"`
	Cons              []string          `json:"cons"`
	ExperienceRating  string            `json:"experience_rating"` // Junior/Mid/Senior/Expert/Unknown
	SkillsAnalysis    []SkillMatch      `json:"skills_analysis"`
	RecommendedAction RecommendedAction `json:"recommended_action"`
}

// EmailContent is a generated outreach subject/body pair.
type EmailContent struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailType selects the tone of generated outreach.
type EmailType string

const (
	EmailInvite EmailType = "invite"
	EmailReject EmailType = "reject"
	EmailOffer  EmailType = "offer"
)

// Analyzer is the AI service boundary. Implementations must tolerate the
// backing model being entirely absent: AnalyzeResume returns a
// deterministic degraded result plus a non-nil error marking the
// degradation, and the generate helpers fall back to fixed content with
// a nil error. No method may panic or propagate a transport failure.
type Analyzer interface {
	AnalyzeResume(ctx context.Context, resumeText, jobContext string) (*AIAnalysisResult, error)
	GenerateJobDescription(ctx context.Context, title string, keywords []string) string
	GenerateWeightedSkills(ctx context.Context, title string) []WeightedSkill
	GenerateFocusAreas(ctx context.Context, title, description string) []string
	GenerateQuestions(ctx context.Context, title, description string) []InterviewQuestion
	GenerateQuestionsByFocus(ctx context.Context, title, focusArea string) []InterviewQuestion
	GenerateEmail(ctx context.Context, emailType EmailType, jobTitle, candidateName string) EmailContent
	CompareCandidates(ctx context.Context, candidates []Candidate, jobTitle string) string
}
