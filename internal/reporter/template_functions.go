package reporter

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"unicode"
)

// titleCase converts string to title case (replaces deprecated strings.Title)
func titleCase(s string) string {
	if s == "" {
		return s
	}

	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// GetCommonTemplateFunctions returns common functions for templates
func GetCommonTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"json": func(v any) (template.JS, error) {
			data, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return template.JS(data), nil
		},
		"title": titleCase,
		"inc": func(i int) int {
			return i + 1
		},
		"percent": func(f float64) string {
			return fmt.Sprintf("%.1f%%", f*100)
		},
		"plural": func(n int, singular, plural string) string {
			if n == 1 {
				return singular
			}
			return plural
		},
	}
}

// GetDiffTemplateFunctions returns functions specific for comparison pages
func GetDiffTemplateFunctions() template.FuncMap {
	funcMap := GetCommonTemplateFunctions()
	funcMap["summary"] = NewDiffUtils().CreateDiffSummary
	return funcMap
}
