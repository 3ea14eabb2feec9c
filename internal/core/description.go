package core

import (
	"fmt"
	"strings"

	"cran-recipes/internal/shared"
	"cran-recipes/internal/types"
)

// ClearWhitespace strips trailing spaces and collapses runs of blank
// lines left behind by how upstream renders DESCRIPTION metadata.
func ClearWhitespace(text string) string {
	var lines []string
	last := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line != "" || last != "" {
			lines = append(lines, line)
		}
		last = line
	}
	return strings.Join(lines, "\n")
}

// JoinContinuationLines folds indented continuation lines into the
// preceding logical line, per the DCF convention used by DESCRIPTION
// files. A continuation with no line to continue is a structural error.
func JoinContinuationLines(lines []string) ([]string, error) {
	var out []string
	for _, line := range lines {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if len(out) == 0 {
				return nil, shared.ManifestParseError(
					fmt.Sprintf("continuation line with no preceding field (%s)", strings.TrimSpace(line)))
			}
			out[len(out)-1] += " " + strings.TrimSpace(line)
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// ParseDescription parses raw DESCRIPTION bytes into a NativeManifest.
// Every logical line must carry a colon-delimited key; unknown fields
// are preserved as-is. OrigLines holds the joined logical lines
// verbatim for the provenance comment.
func ParseDescription(data []byte) (types.NativeManifest, error) {
	text := ClearWhitespace(string(data))
	logical, err := JoinContinuationLines(strings.Split(text, "\n"))
	if err != nil {
		return types.NativeManifest{}, err
	}

	fields := map[string]string{}
	var origLines []string
	for _, line := range logical {
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ": ")
		if !found {
			key, value, found = strings.Cut(line, ":")
		}
		if !found {
			return types.NativeManifest{}, shared.ManifestParseError(
				fmt.Sprintf("could not parse metadata (%s)", line))
		}
		fields[key] = value
		origLines = append(origLines, line)
	}
	return types.NativeManifest{Fields: fields, OrigLines: origLines}, nil
}
