// pkg/notes/folders.go

package notes

import (
	"context"
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// CreateFolder makes a new top-level folder in the default account.
func (s *Service) CreateFolder(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return cerr.New("folder name must not be empty")
	}

	script := fmt.Sprintf(`tell application "Notes"
	make new folder with properties {name:%s}
end tell`, scriptString(name))

	if _, err := s.run(ctx, script); err != nil {
		return err
	}
	otelzap.Ctx(ctx).Info("folder created", zap.String("name", name))
	return nil
}

// DeleteFolder removes a folder by name. Notes itself refuses to delete
// built-in folders; that refusal surfaces as a classified locked error.
func (s *Service) DeleteFolder(ctx context.Context, name string) error {
	script := fmt.Sprintf(`tell application "Notes"
	delete folder %s
end tell`, scriptString(name))

	if _, err := s.run(ctx, script); err != nil {
		return err
	}
	otelzap.Ctx(ctx).Info("folder deleted", zap.String("name", name))
	return nil
}

// ListFolders returns all folder names.
func (s *Service) ListFolders(ctx context.Context) ([]string, error) {
	raw, err := s.run(ctx, listScript("folders", 0))
	if err != nil {
		return nil, err
	}
	return splitLines(raw), nil
}

// ListAccounts returns all account names.
func (s *Service) ListAccounts(ctx context.Context) ([]string, error) {
	raw, err := s.run(ctx, listScript("accounts", 0))
	if err != nil {
		return nil, err
	}
	return splitLines(raw), nil
}
