// Package command parses the body of a /task chat command.
//
// The body has exactly four non-empty lines:
//
//	space[.folder].list
//	title
//	description
//	fields
package command

import (
	"fmt"
	"strings"

	"clickup-task-bot/internal/task"
)

const (
	// Separator splits the location line into space, folder and list.
	Separator = "."

	lineCount = 4
)

const (
	lineMeta = iota
	lineTitle
	lineDescription
	lineFields
)

// Parse turns a raw command body into a task.Request.
func Parse(raw string) (task.Request, error) {
	lines := tokenize(raw)
	if len(lines) != lineCount {
		return task.Request{}, &task.ParseError{
			Kind:   task.WrongLineCount,
			Detail: fmt.Sprintf("expected %d non-empty lines, got %d", lineCount, len(lines)),
		}
	}

	loc, err := parseLocation(lines[lineMeta])
	if err != nil {
		return task.Request{}, err
	}

	return task.Request{
		Location:        loc,
		Title:           lines[lineTitle],
		Description:     lines[lineDescription],
		CustomFieldsRaw: lines[lineFields],
	}, nil
}

// tokenize splits raw into trimmed lines, dropping blank ones.
// A trailing empty segment directly after the description line stands for an
// empty fields line, so "space.list\ntitle\ndescription\n" is a complete command.
func tokenize(raw string) []string {
	segments := strings.Split(raw, "\n")
	var lines []string
	for i, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			if i == len(segments)-1 && len(lines) == lineFields {
				lines = append(lines, "")
			}
			continue
		}
		lines = append(lines, seg)
	}
	return lines
}

// parseLocation splits "space.list" or "space.folder.list".
// A single separator means no folder: it is doubled so the three-way split
// always applies and yields an empty folder segment.
func parseLocation(meta string) (task.Location, error) {
	if strings.Count(meta, Separator) == 1 {
		meta = strings.Replace(meta, Separator, Separator+Separator, 1)
	}

	parts := strings.Split(meta, Separator)
	if len(parts) != 3 {
		return task.Location{}, &task.ParseError{
			Kind:   task.MalformedLocation,
			Detail: fmt.Sprintf("expected space[.folder].list, got %q", meta),
		}
	}

	loc := task.Location{
		Space:  strings.TrimSpace(parts[0]),
		Folder: strings.TrimSpace(parts[1]),
		List:   strings.TrimSpace(parts[2]),
	}
	if loc.Space == "" || loc.List == "" {
		return task.Location{}, &task.ParseError{
			Kind:   task.MalformedLocation,
			Detail: fmt.Sprintf("space and list must not be empty in %q", meta),
		}
	}
	return loc, nil
}
