// pkg/notes/export.go

package notes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ExportNote fetches a note and writes its HTML body to destDir,
// returning the file path. An existing file with the same name is never
// overwritten; a short random suffix is appended instead.
func (s *Service) ExportNote(ctx context.Context, title, destDir string) (string, error) {
	note, err := s.GetNote(ctx, title)
	if err != nil {
		return "", err
	}

	if destDir == "" {
		destDir = "."
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", cerr.Wrap(err, "create export directory")
	}

	path := filepath.Join(destDir, exportFileName(note.Name)+".html")
	if _, err := os.Stat(path); err == nil {
		suffix := uuid.New().String()[:8]
		path = filepath.Join(destDir, exportFileName(note.Name)+"-"+suffix+".html")
	}

	doc := fmt.Sprintf("<!DOCTYPE html>\n<html>\n<body>\n%s\n</body>\n</html>\n", note.Body)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", cerr.Wrap(err, "write export file")
	}

	otelzap.Ctx(ctx).Info("note exported",
		zap.String("title", note.Name),
		zap.String("path", path))
	return path, nil
}

// exportFileName strips characters that are unsafe in file names.
func exportFileName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		default:
			return r
		}
	}, strings.TrimSpace(name))
	if cleaned == "" {
		cleaned = "note"
	}
	return cleaned
}
