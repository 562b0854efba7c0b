// pkg/osascript/classify.go

package osascript

import (
	"fmt"
	"regexp"
	"strings"
)

// rule maps a raw osascript failure to a classified, user-facing error.
// Rules are evaluated in order and the first match wins, so the specific
// patterns must stay ahead of the generic fallbacks.
type rule struct {
	pattern *regexp.Regexp
	kind    ErrorKind
	entity  string
	message func(match []string) string
}

var classifyRules = []rule{
	{
		pattern: regexp.MustCompile(`(?i)not authorized to send apple events|not authori[sz]ed|\(-1743\)`),
		kind:    KindPermission,
		message: func([]string) string {
			return "Not authorized to automate Notes. Grant permission under System Settings > Privacy & Security > Automation."
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)application isn.?t running|\(-600\)`),
		kind:    KindConnectionLost,
		message: func([]string) string {
			return "Notes is not running. Open the Notes app and try again."
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)connection is invalid|\(-609\)|lost connection`),
		kind:    KindConnectionLost,
		message: func([]string) string {
			return "Lost the connection to Notes. Reopen the Notes app and try again."
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)event timed out|\(-1712\)|is busy`),
		kind:    KindTransientBusy,
		message: func([]string) string {
			return "Notes is busy and did not respond in time. It usually recovers within a few seconds."
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)can.?t get note "(.*?)"`),
		kind:    KindNotFound,
		entity:  "note",
		message: func(m []string) string {
			return fmt.Sprintf("Note %q not found. Note names are case-sensitive; use the list command to see valid names.", m[1])
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)can.?t get folder "(.*?)"`),
		kind:    KindNotFound,
		entity:  "folder",
		message: func(m []string) string {
			return fmt.Sprintf("Folder %q not found. Folder names are case-sensitive; use the list command to see valid names.", m[1])
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)can.?t get (note|folder|account) id`),
		kind:    KindNotFound,
		message: func(m []string) string {
			return fmt.Sprintf("No %s with that identifier. It may have been deleted or synced away; use the list command to find current identifiers.", strings.ToLower(m[1]))
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)duplicate folder name|folder .* already exists|already exists`),
		kind:    KindAlreadyExists,
		entity:  "folder",
		message: func([]string) string {
			return "A folder with that name already exists. Choose a different name or use the existing folder."
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)can.?t be deleted|cannot delete`),
		kind:    KindLocked,
		message: func([]string) string {
			return "Notes refused to delete that item. Built-in folders and items still syncing cannot be deleted."
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)locked|password.?protected|access not allowed`),
		kind:    KindLocked,
		message: func([]string) string {
			return "That item is locked or password protected. Unlock it in the Notes app first."
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)syntax error|expected .* but found|execution error: .*\(-2741\)`),
		kind:    KindSyntax,
		message: func([]string) string {
			return "The generated AppleScript was rejected by the interpreter. This is an internal error; rerun with verbose logging and report it."
		},
	},
}

// genericGet catches any remaining "can't get X" failure and surfaces the
// missing reference.
var genericGet = regexp.MustCompile(`(?i)can.?t get ([^.]+)`)

// Classify maps raw osascript stderr text to a structured error. It is
// total: any input, including the empty string, yields an ErrorInfo.
func Classify(raw string) *ErrorInfo {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return newErrorInfo(KindUnknown, "", "Unknown AppleScript error (no output from interpreter).")
	}

	for _, r := range classifyRules {
		if m := r.pattern.FindStringSubmatch(trimmed); m != nil {
			return newErrorInfo(r.kind, r.entity, r.message(m))
		}
	}

	if m := genericGet.FindStringSubmatch(trimmed); m != nil {
		ref := strings.TrimSpace(m[1])
		return newErrorInfo(KindNotFound, "", fmt.Sprintf("Could not resolve %s. Use the list command to find valid names.", ref))
	}

	return newErrorInfo(KindUnknown, "", trimmed)
}
