package service

import (
	"sort"
	"strings"
)

func maskEmailAddress(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" {
		return "***"
	}
	local := []rune(parts[0])
	domain := parts[1]
	masked := string(local[:1]) + "***"
	if len(local) > 2 {
		masked += string(local[len(local)-1:])
	}
	return masked + "@" + domain
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
