package keywords_test

import (
	"testing"

	"go-jobportal-backend/pkg/keywords"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	t.Run("Should detect known stack terms", func(t *testing.T) {
		got := keywords.Match("React, Node.js, and MongoDB required")
		assert.Contains(t, got, "react")
		assert.Contains(t, got, "node.js")
		assert.Contains(t, got, "mongodb")
	})

	t.Run("Should be case-insensitive", func(t *testing.T) {
		got := keywords.Match("EXPERT IN PYTHON AND DOCKER")
		assert.Contains(t, got, "python")
		assert.Contains(t, got, "docker")
	})

	t.Run("Should be deterministic and idempotent", func(t *testing.T) {
		text := "TypeScript, GraphQL, AWS, Kubernetes and CI/CD pipelines"
		first := keywords.Match(text)
		second := keywords.Match(text)
		assert.Equal(t, first, second)
	})

	t.Run("Should not duplicate repeated terms", func(t *testing.T) {
		got := keywords.Match("java java java")
		count := 0
		for _, k := range got {
			if k == "java" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("Should return empty slice for empty or unknown text", func(t *testing.T) {
		assert.Empty(t, keywords.Match(""))
		assert.Empty(t, keywords.Match("professional basket weaving"))
	})
}

func TestRoleDefaults(t *testing.T) {
	t.Run("Frontend role gets frontend defaults", func(t *testing.T) {
		got := keywords.RoleDefaults("Senior Frontend Engineer")
		assert.Equal(t, []string{"react", "javascript", "css", "html", "responsive design"}, got)
	})

	t.Run("Backend role gets backend defaults", func(t *testing.T) {
		got := keywords.RoleDefaults("backend developer")
		assert.Equal(t, []string{"node.js", "database", "api", "server", "security"}, got)
	})

	t.Run("Frontend wins when both roles are mentioned", func(t *testing.T) {
		got := keywords.RoleDefaults("frontend and backend duties")
		assert.Contains(t, got, "react")
	})

	t.Run("Unrelated role yields nil", func(t *testing.T) {
		assert.Nil(t, keywords.RoleDefaults("data scientist"))
	})
}
