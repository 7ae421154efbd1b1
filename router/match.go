package router

import "strings"

func normalizePath(p string) string {
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

func isParam(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

// MatchPattern checks if an actual path matches a route pattern.
// Trailing slashes are ignored on both sides.
func MatchPattern(pattern, path string) bool {
	pattern = normalizePath(pattern)
	path = normalizePath(path)

	if pattern == path {
		return true
	}

	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")

	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if isParam(patternParts[i]) {
			if pathParts[i] == "" {
				return false
			}
			continue
		}
		if patternParts[i] != pathParts[i] {
			return false
		}
	}

	return true
}

// ExtractParams parses URL parameters from a path based on route pattern.
func ExtractParams(pattern, path string) map[string]string {
	routeParts := strings.Split(strings.Trim(normalizePath(pattern), "/"), "/")
	actualParts := strings.Split(strings.Trim(normalizePath(path), "/"), "/")

	params := make(map[string]string)

	for i := range routeParts {
		if i >= len(actualParts) {
			break
		}
		if isParam(routeParts[i]) {
			params[strings.Trim(routeParts[i], "{}")] = actualParts[i]
		}
	}

	return params
}
