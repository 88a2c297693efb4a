package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/keywords"
)

const (
	// Prompt size bounds. Truncation applies to provider input only; the
	// local fallback scans the full text.
	maxExtractionInputChars = 5000
	maxResumeContentChars   = 15000

	// Minimum fallback keyword count before role enrichment kicks in
	minFallbackKeywords = 5

	// Re-analysis throttle per application
	reanalysisInterval = time.Hour
)

// Sentinel analysis values persisted when the provider response cannot be
// parsed. Callers rely on the strengths entry to distinguish a parse failure
// from a genuinely empty verdict.
const (
	parseErrorStrength   = "Error parsing AI response"
	parseErrorSuggestion = "Please try again later"
)

// Canned replies for the offline chat assistant, checked in priority order.
var chatFallbackRules = []struct {
	triggers []string
	reply    string
}{
	{[]string{"resume", "cv"}, "For resumes, focus on quantifiable achievements and tailoring keywords to the job description."},
	{[]string{"interview"}, "For interviews, practice the STAR method (Situation, Task, Action, Result) to answer behavioral questions."},
	{[]string{"salary", "negotiation"}, "Research industry standards for your role and location before negotiating. Don't be afraid to ask for what you're worth."},
	{[]string{"skill", "technolog"}, "Top in-demand skills currently include React, Node.js, Python, AWS, and Data Analysis."},
}

const chatFallbackDefault = "That's an interesting topic! As an AI assistant, I recommend checking our 'Keywords' tool to optimize your application."

type aiUsecase struct {
	generator  domain.TextGenerator
	resumeRepo domain.ResumeRepository
	jobRepo    domain.JobRepository
	appRepo    domain.ApplicationRepository
	log        *slog.Logger
}

// NewAIUsecase creates the AI analysis usecase. generator may be nil when no
// provider is configured; every operation then takes its deterministic
// fallback path.
func NewAIUsecase(
	generator domain.TextGenerator,
	resumeRepo domain.ResumeRepository,
	jobRepo domain.JobRepository,
	appRepo domain.ApplicationRepository,
	log *slog.Logger,
) domain.AIUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &aiUsecase{
		generator:  generator,
		resumeRepo: resumeRepo,
		jobRepo:    jobRepo,
		appRepo:    appRepo,
		log:        log,
	}
}

// generate guards the provider boundary. A nil generator counts as a
// provider failure like any other.
func (u *aiUsecase) generate(ctx context.Context, prompt string) (string, error) {
	if u.generator == nil {
		return "", errors.New("generative provider not configured")
	}
	return u.generator.GenerateText(ctx, prompt)
}

// ExtractKeywords returns ranked keywords for a job description or role.
// The provider is the primary strategy; any failure on that path degrades to
// the local taxonomy matcher and never reaches the caller as an error.
func (u *aiUsecase) ExtractKeywords(ctx context.Context, jobDescription, role string) (*domain.ExtractionResult, error) {
	if jobDescription == "" && role == "" {
		return nil, apperror.BadRequest("Please provide job description or role")
	}

	inputText := jobDescription
	if inputText == "" {
		inputText = role
	}

	result, err := u.extractWithProvider(ctx, inputText)
	if err != nil {
		u.log.Warn("keyword extraction degraded to local matcher", "error", err)
		return u.extractLocally(inputText), nil
	}
	return result, nil
}

func (u *aiUsecase) extractWithProvider(ctx context.Context, inputText string) (*domain.ExtractionResult, error) {
	prompt := fmt.Sprintf(`Act as an ATS expert. Extract the top 10-15 most important technical and soft skill keywords from the following job description.

Job Description:
"%s"

Output ONLY a JSON array of strings. Example: ["react", "python"].`, truncate(inputText, maxExtractionInputChars))

	raw, err := u.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed []string
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("provider returned non-array response: %w", err)
	}

	kws := make([]string, 0, len(parsed))
	for _, k := range parsed {
		kws = append(kws, strings.ToLower(k))
	}

	return &domain.ExtractionResult{Keywords: kws, Source: domain.SourceAI}, nil
}

func (u *aiUsecase) extractLocally(inputText string) *domain.ExtractionResult {
	kws := keywords.Match(inputText)
	if len(kws) < minFallbackKeywords {
		seen := make(map[string]bool, len(kws))
		for _, k := range kws {
			seen[k] = true
		}
		for _, k := range keywords.RoleDefaults(inputText) {
			if !seen[k] {
				kws = append(kws, k)
			}
		}
	}
	return &domain.ExtractionResult{Keywords: kws, Source: domain.SourceLocalFallback}
}

// AnalyzeResume scores a resume against a job and persists the verdict on
// the existing application. Preconditions fail fast and in order; the
// throttle is checked before any provider call. Unlike extraction and chat
// there is no scoring fallback: a failed or unparsable provider response
// yields a zero-score result with sentinel strengths, which is still
// persisted and returned.
func (u *aiUsecase) AnalyzeResume(ctx context.Context, userID string, resumeID, jobID int64) (*domain.AnalysisResult, error) {
	if resumeID == 0 || jobID == 0 {
		return nil, apperror.BadRequest("Please provide resumeId and jobId")
	}

	resume, err := u.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return nil, apperror.NotFound("Resume not found")
	}
	if resume.UserID != userID {
		return nil, apperror.Unauthorized("Unauthorized to access this resume")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	app, err := u.appRepo.GetByUserAndJob(ctx, userID, jobID)
	if err != nil {
		return nil, apperror.NotFound("Application not found. Please apply to the job first.")
	}

	if app.AnalyzedAt != nil && time.Since(*app.AnalyzedAt) < reanalysisInterval {
		return nil, apperror.TooManyRequests("Analysis already performed recently. Please wait before retrying.")
	}

	result := u.runAnalysis(ctx, job, resume)

	// The throttle check above and this write are not atomic: two requests
	// that both saw a stale analyzedAt will both reach this point, and the
	// later write wins.
	now := time.Now()
	if err := u.appRepo.UpdateAnalysis(ctx, app.ID, *result, now); err != nil {
		return nil, apperror.Internal(err)
	}

	return result, nil
}

func (u *aiUsecase) runAnalysis(ctx context.Context, job *domain.Job, resume *domain.Resume) *domain.AnalysisResult {
	content := string(resume.Content)
	if content == "" {
		content = "{}"
	}

	prompt := fmt.Sprintf(`Act as a strict ATS (Applicant Tracking System).
Compare the Resume against the Job Description.

JOB TITLE: %s
JOB DESCRIPTION: %s
REQUIRED SKILLS: %s
EXPERIENCE LEVEL: %s

RESUME CONTENT:
%s

TASK:
1. Calculate an ATS Score (0-100) based on keyword matching, relevance, and experience alignment.
2. Identify matched keywords (present in both).
3. Identify missing keywords (critical for job but missing in resume).
4. List key strengths of the resume for this role.
5. Provide actionable suggestions to improve the score.

OUTPUT FORMAT:
Strict JSON object only. No markdown. No text.
{
  "atsScore": number,
  "matchedKeywords": ["string"],
  "missingKeywords": ["string"],
  "strengths": ["string"],
  "suggestions": ["string"]
}`,
		job.Title, job.Description, strings.Join(job.Skills, ", "), job.ExperienceLevel,
		truncate(content, maxResumeContentChars))

	raw, err := u.generate(ctx, prompt)
	if err != nil {
		u.log.Warn("resume analysis provider call failed", "job_id", job.ID, "error", err)
		return parseErrorResult()
	}

	return coerceAnalysis(raw, u.log)
}

// coerceAnalysis turns the raw provider response into a fully-defaulted
// AnalysisResult. The payload is untrusted: every field is coerced
// independently, so a response that parses but has the wrong shape still
// yields a usable value.
func coerceAnalysis(raw string, log *slog.Logger) *domain.AnalysisResult {
	var payload map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &payload); err != nil {
		log.Warn("resume analysis response unparsable", "error", err)
		return parseErrorResult()
	}

	return &domain.AnalysisResult{
		ATSScore:        coerceScore(payload["atsScore"]),
		MatchedKeywords: coerceStringSlice(payload["matchedKeywords"]),
		MissingKeywords: coerceStringSlice(payload["missingKeywords"]),
		Strengths:       coerceStringSlice(payload["strengths"]),
		Suggestions:     coerceStringSlice(payload["suggestions"]),
	}
}

// parseErrorResult is the defaulted verdict for a failed or unparsable
// provider response. The sentinel strengths entry is deliberate: it lets the
// caller tell a parse failure apart from an AI verdict that was simply empty.
func parseErrorResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ATSScore:        0,
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
		Strengths:       []string{parseErrorStrength},
		Suggestions:     []string{parseErrorSuggestion},
	}
}

// coerceScore accepts only numeric values that round into [0,100];
// everything else defaults to 0.
func coerceScore(v any) int {
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	n := int(math.Round(f))
	if n < 0 || n > 100 {
		return 0
	}
	return n
}

func coerceStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Chat produces a reply to a single message given caller-supplied history.
// The history window is trusted and forwarded as-is; the caller caps it to
// the most recent turns. Any provider failure degrades to the rule table.
func (u *aiUsecase) Chat(ctx context.Context, message string, history []domain.ChatTurn) (*domain.ChatReply, error) {
	if message == "" {
		return nil, apperror.BadRequest("Message is required")
	}

	if u.generator != nil {
		reply, err := u.generator.ChatReply(ctx, history, message)
		if err == nil {
			return &domain.ChatReply{Reply: reply, Source: domain.SourceAI}, nil
		}
		u.log.Warn("chat degraded to canned replies", "error", err)
	}

	return &domain.ChatReply{Reply: fallbackChatReply(message), Source: domain.SourceLocalFallback}, nil
}

// fallbackChatReply walks the rule table in priority order; first match wins.
func fallbackChatReply(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range chatFallbackRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.reply
			}
		}
	}
	return chatFallbackDefault
}

func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
