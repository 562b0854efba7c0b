// pkg/notes/notes.go

package notes

import (
	"context"
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Note is one note as the bridge sees it. Body holds the HTML fragment
// Notes stores; callers that want plain text strip the markup themselves.
type Note struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
	Body string `json:"body,omitempty" yaml:"body,omitempty"`
}

// CreateNote makes a new note, optionally inside a named folder, and
// returns its identifier.
func (s *Service) CreateNote(ctx context.Context, title, body, folder string) (Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Note{}, cerr.New("note title must not be empty")
	}

	script := fmt.Sprintf(`tell application "Notes"
	set theNote to make new note%s with properties {name:%s, body:%s}
	return id of theNote as string
end tell`, folderTarget(folder), scriptString(title), scriptString(bodyHTML(body)))

	id, err := s.run(ctx, script)
	if err != nil {
		return Note{}, err
	}

	otelzap.Ctx(ctx).Info("note created",
		zap.String("title", title),
		zap.String("folder", folder))
	return Note{ID: id, Name: title}, nil
}

// GetNote fetches a note by exact name.
func (s *Service) GetNote(ctx context.Context, title string) (Note, error) {
	script := fmt.Sprintf(`tell application "Notes"
	set theNote to note %s
	return (id of theNote as string) & %s & (name of theNote as string) & %s & (body of theNote as string)
end tell`, scriptString(title), scriptString(fieldSep), scriptString(fieldSep))

	raw, err := s.run(ctx, script)
	if err != nil {
		return Note{}, err
	}

	parts := strings.SplitN(raw, fieldSep, 3)
	if len(parts) != 3 {
		return Note{}, cerr.Newf("unexpected note payload: %d fields", len(parts))
	}
	return Note{ID: parts[0], Name: parts[1], Body: parts[2]}, nil
}

// DeleteNote moves a note to Recently Deleted.
func (s *Service) DeleteNote(ctx context.Context, title string) error {
	script := fmt.Sprintf(`tell application "Notes"
	delete note %s
end tell`, scriptString(title))

	if _, err := s.run(ctx, script); err != nil {
		return err
	}
	otelzap.Ctx(ctx).Info("note deleted", zap.String("title", title))
	return nil
}

// ListNotes returns note names, optionally scoped to a folder and bounded
// by limit (0 means unbounded).
func (s *Service) ListNotes(ctx context.Context, folder string, limit int) ([]string, error) {
	collection := "notes"
	if folder != "" {
		collection = fmt.Sprintf("notes of folder %s", scriptString(folder))
	}
	raw, err := s.run(ctx, listScript(collection, limit))
	if err != nil {
		return nil, err
	}
	return splitLines(raw), nil
}

// SearchNotes returns names of notes whose name contains the query.
func (s *Service) SearchNotes(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, cerr.New("search query must not be empty")
	}
	collection := fmt.Sprintf("(notes whose name contains %s)", scriptString(query))
	raw, err := s.run(ctx, listScript(collection, limit))
	if err != nil {
		return nil, err
	}
	return splitLines(raw), nil
}
