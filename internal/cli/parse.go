package cli

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/assistant/internal/common"
	"github.com/google/shlex"
)

// parseInput splits line shell-style. The command is lowercased; an empty
// line yields an empty command.
func parseInput(line string) (string, []string, error) {
	// shlex drops the backslash of "\n", keep it for unescapeBody
	parts, err := shlex.Split(strings.ReplaceAll(line, `\n`, `\\n`))
	if err != nil {
		return "", nil, common.Usagef("Invalid input: %v", err)
	}
	if len(parts) == 0 {
		return "", nil, nil
	}
	return strings.ToLower(parts[0]), parts[1:], nil
}

// requireArgs fails with a usage error when fewer than len(names) args are given.
func requireArgs(cmd string, args []string, names ...string) error {
	if len(args) >= len(names) {
		return nil
	}
	word := "arguments"
	if len(names) == 1 {
		word = "argument"
	}
	return common.Usagef("%s command requires %d %s: %s", cmd, len(names), word, joinWords(names))
}

func joinWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	default:
		return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
	}
}

// rest joins args from index i with single spaces.
func rest(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return strings.Join(args[i:], " ")
}

func parseNoteID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, common.Usagef("Note id must be an integer, got %q", raw)
	}
	return id, nil
}

func parseDays(raw string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, common.Usagef("Number of days must be an integer, got %q", raw)
	}
	return days, nil
}

// splitTags splits a comma separated list, skipping blank items.
func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// bodyUnescaper turns `\n` into a newline. Single quotes keep the doubled
// backslash parseInput adds, so `\\n` maps to a newline as well.
var bodyUnescaper = strings.NewReplacer(`\\n`, "\n", `\n`, "\n")

// unescapeBody turns the two characters `\n` into a newline.
func unescapeBody(s string) string {
	return bodyUnescaper.Replace(s)
}
