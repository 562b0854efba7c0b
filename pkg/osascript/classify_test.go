package osascript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		raw         string
		wantKind    ErrorKind
		wantEntity  string
		msgContains []string
	}{
		{
			name:        "permission_denied",
			raw:         "osascript: execution error: Not authorized to send Apple events to Notes. (-1743)",
			wantKind:    KindPermission,
			msgContains: []string{"Automation", "permission"},
		},
		{
			name:        "app_not_running",
			raw:         "execution error: Notes got an error: Application isn't running. (-600)",
			wantKind:    KindConnectionLost,
			msgContains: []string{"not running"},
		},
		{
			name:        "connection_invalid",
			raw:         "execution error: The connection is invalid. (-609)",
			wantKind:    KindConnectionLost,
			msgContains: []string{"connection"},
		},
		{
			name:        "apple_event_timeout_is_busy",
			raw:         "execution error: Notes got an error: AppleEvent timed out. (-1712)",
			wantKind:    KindTransientBusy,
			msgContains: []string{"busy"},
		},
		{
			name:        "note_not_found_by_name",
			raw:         `execution error: Notes got an error: Can't get note "Foo". (-1728)`,
			wantKind:    KindNotFound,
			wantEntity:  "note",
			msgContains: []string{`"Foo"`, "case-sensitive"},
		},
		{
			name:        "folder_not_found_by_name",
			raw:         `execution error: Notes got an error: Can't get folder "Archive". (-1728)`,
			wantKind:    KindNotFound,
			wantEntity:  "folder",
			msgContains: []string{`"Archive"`},
		},
		{
			name:        "not_found_by_id",
			raw:         `execution error: Notes got an error: Can't get note id "x-coredata://ABC". (-1728)`,
			wantKind:    KindNotFound,
			msgContains: []string{"identifier"},
		},
		{
			name:        "folder_already_exists",
			raw:         "execution error: Notes got an error: Duplicate folder name. (-10000)",
			wantKind:    KindAlreadyExists,
			wantEntity:  "folder",
			msgContains: []string{"already exists"},
		},
		{
			name:        "delete_blocked",
			raw:         "execution error: Notes got an error: The folder can't be deleted. (-10006)",
			wantKind:    KindLocked,
			msgContains: []string{"delete"},
		},
		{
			name:        "password_protected",
			raw:         "execution error: Notes got an error: The note is password-protected.",
			wantKind:    KindLocked,
			msgContains: []string{"locked or password protected"},
		},
		{
			name:        "syntax_error",
			raw:         `syntax error: Expected end of line but found identifier. (-2741)`,
			wantKind:    KindSyntax,
			msgContains: []string{"internal error"},
		},
		{
			name:        "generic_cant_get_fallback",
			raw:         "execution error: Can't get attachment 3 of note 1. (-1728)",
			wantKind:    KindNotFound,
			msgContains: []string{"attachment 3 of note 1"},
		},
		{
			name:        "unknown_passes_through_trimmed",
			raw:         "  something nobody has seen before  ",
			wantKind:    KindUnknown,
			msgContains: []string{"something nobody has seen before"},
		},
		{
			name:        "empty_input",
			raw:         "",
			wantKind:    KindUnknown,
			msgContains: []string{"Unknown AppleScript error"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := Classify(tt.raw)
			require.NotNil(t, info)
			assert.Equal(t, tt.wantKind, info.Kind, "message: %s", info.Message)
			if tt.wantEntity != "" {
				assert.Equal(t, tt.wantEntity, info.Entity)
			}
			for _, frag := range tt.msgContains {
				assert.Contains(t, info.Message, frag)
			}
		})
	}
}

func TestClassifyRetryableDerivedFromKind(t *testing.T) {
	t.Parallel()
	retryable := map[ErrorKind]bool{
		KindTimeout:        true,
		KindTransientBusy:  true,
		KindConnectionLost: true,
		KindPermission:     false,
		KindNotFound:       false,
		KindAlreadyExists:  false,
		KindLocked:         false,
		KindSyntax:         false,
		KindUnknown:        false,
	}
	for kind, want := range retryable {
		assert.Equal(t, want, kindRetryable(kind), "kind %s", kind)
	}
}
