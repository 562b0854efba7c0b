// pkg/notes/stats.go

package notes

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// Stats are the headline counts, gathered in one script round-trip.
type Stats struct {
	Notes    int `json:"notes" yaml:"notes"`
	Folders  int `json:"folders" yaml:"folders"`
	Accounts int `json:"accounts" yaml:"accounts"`
}

// Stats counts notes, folders, and accounts.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	script := fmt.Sprintf(`tell application "Notes"
	return ((count of notes) as string) & %s & ((count of folders) as string) & %s & ((count of accounts) as string)
end tell`, scriptString(fieldSep), scriptString(fieldSep))

	raw, err := s.run(ctx, script)
	if err != nil {
		return Stats{}, err
	}

	parts := strings.Split(raw, fieldSep)
	if len(parts) != 3 {
		return Stats{}, cerr.Newf("unexpected stats payload: %q", raw)
	}

	var st Stats
	for i, dst := range []*int{&st.Notes, &st.Folders, &st.Accounts} {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return Stats{}, cerr.Wrapf(err, "parse stats field %d", i)
		}
		*dst = n
	}
	return st, nil
}
