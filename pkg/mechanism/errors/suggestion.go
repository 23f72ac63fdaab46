package errors

import (
	"fmt"
	"strings"
)

// SuggestKey suggests a valid key when an unrecognized one is found.
// It uses Levenshtein distance to find the closest candidate.
func SuggestKey(unknown string, validKeys []string) string {
	if len(validKeys) == 0 {
		return ""
	}

	minDistance := 1000
	var bestMatch string

	for _, key := range validKeys {
		dist := levenshteinDistance(unknown, key)
		if dist < minDistance {
			minDistance = dist
			bestMatch = key
		}
	}

	// Only suggest if the distance is reasonable (< 5 edits)
	if minDistance < 5 {
		return fmt.Sprintf("Did you mean '%s'?", bestMatch)
	}

	if len(validKeys) > 5 {
		return fmt.Sprintf("Valid keys include: %s, ...", strings.Join(validKeys[:5], ", "))
	}
	return fmt.Sprintf("Valid keys: %s", strings.Join(validKeys, ", "))
}

// SuggestType suggests a known type tag when an unknown one is found.
func SuggestType(unknown string, validTypes []string) string {
	if len(validTypes) == 0 {
		return ""
	}

	minDistance := 1000
	var bestMatch string

	for _, t := range validTypes {
		dist := levenshteinDistance(unknown, t)
		if dist < minDistance {
			minDistance = dist
			bestMatch = t
		}
	}

	if minDistance < 5 {
		return fmt.Sprintf("Did you mean '%s'?", bestMatch)
	}
	return fmt.Sprintf("Valid types: %s", strings.Join(validTypes, ", "))
}

// SuggestMissingKey suggests adding a required key.
func SuggestMissingKey(key string) string {
	return fmt.Sprintf("Add '%s' to the object", key)
}

// SuggestCommentPrefix reminds the user that free-form keys need the comment prefix.
func SuggestCommentPrefix(key string) string {
	return fmt.Sprintf("Prefix custom keys with '__' (for example '__%s') to keep them as comments", key)
}

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	r1, r2 := []rune(s1), []rune(s2)
	len1, len2 := len(r1), len(r2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // Deletion
				matrix[i][j-1]+1,      // Insertion
				matrix[i-1][j-1]+cost, // Substitution
			)
		}
	}

	return matrix[len1][len2]
}
