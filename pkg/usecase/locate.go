package usecase

import (
	"strings"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

// containerMatcher returns the first container accepted by one matching rule.
type containerMatcher func(candidate string, containers []model.ContainerSummary) (types.ContainerName, bool)

// Tried in order, first hit wins.
var containerMatchers = []containerMatcher{
	matchExactName,
	matchContainedName,
	matchNormalizedName,
}

// LocateContainer finds the container deployed for candidate, usually a repository or job name.
func LocateContainer(candidate string, containers []model.ContainerSummary) (types.ContainerName, bool) {
	if strings.TrimSpace(candidate) == "" {
		return "", false
	}
	for _, match := range containerMatchers {
		if name, ok := match(candidate, containers); ok {
			return name, true
		}
	}
	return "", false
}

func matchExactName(candidate string, containers []model.ContainerSummary) (types.ContainerName, bool) {
	for _, c := range containers {
		if strings.EqualFold(string(c.Name), candidate) {
			return c.Name, true
		}
	}
	return "", false
}

func matchContainedName(candidate string, containers []model.ContainerSummary) (types.ContainerName, bool) {
	lower := strings.ToLower(candidate)
	for _, c := range containers {
		if strings.Contains(strings.ToLower(string(c.Name)), lower) {
			return c.Name, true
		}
	}
	return "", false
}

func matchNormalizedName(candidate string, containers []model.ContainerSummary) (types.ContainerName, bool) {
	normalized := normalizeName(candidate)
	if normalized == "" {
		return "", false
	}
	for _, c := range containers {
		if strings.Contains(normalizeName(string(c.Name)), normalized) {
			return c.Name, true
		}
	}
	return "", false
}

// normalizeName lowercases and drops every character other than a-z and 0-9.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
