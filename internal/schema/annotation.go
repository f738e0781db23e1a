package schema

import (
	"strings"

	"github.com/koskimas/tlgen/internal/model"
)

const (
	annotationPrefix  = "//@"
	descriptionPrefix = "//@description"
	classPrefix       = "//@class"
	annotationMarker  = "@"
)

var nullablePhrases = []string{
	"may be null",
	"pass null",
}

// NullableFields returns the names of the fields whose annotation text says
// they may be null. Lines starting with `//@description` or `//@class` are
// not field annotations and are skipped.
func NullableFields(comments []Line) map[string]bool {
	nullable := make(map[string]bool)

	for _, l := range comments {
		if !strings.HasPrefix(l.Text, annotationPrefix) ||
			strings.HasPrefix(l.Text, descriptionPrefix) ||
			strings.HasPrefix(l.Text, classPrefix) {
			continue
		}

		for _, mention := range strings.Split(l.Text, annotationMarker)[1:] {
			name, text, _ := strings.Cut(mention, " ")

			if isNullableText(strings.TrimSpace(text)) {
				nullable[name] = true
			}
		}
	}

	return nullable
}

func isNullableText(text string) bool {
	for _, p := range nullablePhrases {
		if strings.Contains(text, p) {
			return true
		}
	}

	return false
}

// parseClassMarker parses `//@class Name @description text`.
func parseClassMarker(l Line) (model.ClassMarker, bool) {
	if !strings.HasPrefix(l.Text, classPrefix+" ") {
		return model.ClassMarker{}, false
	}

	parts := strings.SplitN(l.Text, " ", 4)

	marker := model.ClassMarker{
		Name: parts[1],
		Line: l.Number,
	}

	if len(parts) == 4 {
		marker.Description = parts[3]
	}

	return marker, marker.Name != ""
}

func classMarkers(comments []Line) []model.ClassMarker {
	var markers []model.ClassMarker

	for _, l := range comments {
		if m, ok := parseClassMarker(l); ok {
			markers = append(markers, m)
		}
	}

	return markers
}
