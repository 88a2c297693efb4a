// Package keywords provides the deterministic local keyword detector used
// when the generative provider is unavailable. It only detects terms from a
// fixed vocabulary; it never invents new ones.
package keywords

import "strings"

// vocabulary is the fixed skill taxonomy scanned on the fallback path.
// Matching is case-insensitive substring containment, so multi-word entries
// like "machine learning" match as written.
var vocabulary = []string{
	"react", "angular", "vue", "node.js", "express", "mongodb", "sql", "postgresql",
	"python", "java", "c++", "c#", "aws", "azure", "docker", "kubernetes", "git",
	"ci/cd", "agile", "scrum", "rest api", "graphql", "typescript", "javascript",
	"html", "css", "tailwind", "redux", "jest", "machine learning", "ai", "data analysis",
}

// Role-heuristic enrichment lists, appended when plain matching yields too
// few results.
var (
	frontendDefaults = []string{"react", "javascript", "css", "html", "responsive design"}
	backendDefaults  = []string{"node.js", "database", "api", "server", "security"}
)

// Match returns the vocabulary terms contained in text, in vocabulary order
// and without duplicates. Pure function; matching the same text twice yields
// the same result.
func Match(text string) []string {
	found := []string{}
	if text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, term := range vocabulary {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

// RoleDefaults returns a fixed enrichment list when text mentions a frontend
// or backend role, nil otherwise. Frontend wins when both appear. Best-effort
// enrichment only, not a correctness guarantee.
func RoleDefaults(text string) []string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "frontend"):
		return frontendDefaults
	case strings.Contains(lower, "backend"):
		return backendDefaults
	default:
		return nil
	}
}
