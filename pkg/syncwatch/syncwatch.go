// pkg/syncwatch/syncwatch.go

package syncwatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Package syncwatch keeps a time-cached view of iCloud background
// activity against the Notes store so callers can tell whether results
// may be stale. It reads a secondary signal only - the on-disk sqlite
// store that Notes itself owns - and never writes anything.

const (
	// DefaultTTL bounds how long a cached status is served.
	DefaultTTL = 2 * time.Second

	// DefaultRecentThreshold is how recently the store must have changed
	// for the change to count as current activity.
	DefaultRecentThreshold = 5 * time.Second

	probeTimeout = 5 * time.Second
)

// relativeStorePath locates NoteStore.sqlite under the user home.
var relativeStorePath = filepath.Join(
	"Library", "Group Containers", "group.com.apple.notes", "NoteStore.sqlite")

// pendingQuery counts objects the sync engine still has to reconcile.
const pendingQuery = `SELECT count(*) FROM ZICCLOUDSYNCINGOBJECT WHERE ZNEEDSINITIALFETCHFROMCLOUD = 1 OR ZMARKEDFORDELETION = 1;`

// Status is one observation of background sync activity. A probe failure
// is data, not an error: ProbeError is set and ActivityDetected is false.
type Status struct {
	ActivityDetected       bool    `json:"activity_detected" yaml:"activity_detected"`
	PendingCount           int     `json:"pending_count" yaml:"pending_count"`
	SecondsSinceLastChange float64 `json:"seconds_since_last_change" yaml:"seconds_since_last_change"`
	RecentActivity         bool    `json:"recent_activity" yaml:"recent_activity"`
	Warning                string  `json:"warning,omitempty" yaml:"warning,omitempty"`
	ProbeError             string  `json:"probe_error,omitempty" yaml:"probe_error,omitempty"`
}

// MarshalJSON renders an unknown store age as null, since encoding/json
// refuses +Inf.
func (s Status) MarshalJSON() ([]byte, error) {
	type alias Status
	out := struct {
		alias
		SecondsSinceLastChange interface{} `json:"seconds_since_last_change"`
	}{alias: alias(s)}
	if !math.IsInf(s.SecondsSinceLastChange, 0) {
		out.SecondsSinceLastChange = s.SecondsSinceLastChange
	}
	return json.Marshal(out)
}

// probeResult is the raw signal before derivation.
type probeResult struct {
	reachable  bool
	probeError string
	modTime    time.Time
	hasModTime bool
	pending    int
}

type probeFunc func() probeResult

// Options configures a Monitor; zero values take the package defaults.
type Options struct {
	Logger          *zap.Logger
	StorePath       string
	TTL             time.Duration
	RecentThreshold time.Duration
}

// Monitor owns the TTL cache. All access goes through the mutex so a
// concurrent caller sees a consistent timestamp/value pair.
type Monitor struct {
	log             *zap.Logger
	storePath       string
	ttl             time.Duration
	recentThreshold time.Duration

	mu       sync.Mutex
	cached   *Status
	cachedAt time.Time

	// injectable for tests
	now   func() time.Time
	probe probeFunc
}

// New builds a Monitor over the real Notes store.
func New(opts Options) *Monitor {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	threshold := opts.RecentThreshold
	if threshold <= 0 {
		threshold = DefaultRecentThreshold
	}
	storePath := opts.StorePath
	if storePath == "" {
		storePath = defaultStorePath()
	}

	m := &Monitor{
		log:             log,
		storePath:       storePath,
		ttl:             ttl,
		recentThreshold: threshold,
		now:             time.Now,
	}
	m.probe = m.defaultProbe
	return m
}

// Status returns the current view of sync activity. With useCache true a
// cached entry younger than the TTL is returned as-is; otherwise a fresh
// probe runs. A fresh read always repopulates the cache, so a forced read
// still benefits later cached callers.
func (m *Monitor) Status(useCache bool) Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	if useCache && m.cached != nil && m.now().Sub(m.cachedAt) < m.ttl {
		return *m.cached
	}

	st := m.read()
	m.cached = &st
	m.cachedAt = m.now()
	return st
}

// Clear drops the cached entry. Primarily for test isolation.
func (m *Monitor) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cached = nil
	m.cachedAt = time.Time{}
}

func (m *Monitor) read() Status {
	res := m.probe()
	if !res.reachable {
		return Status{
			ActivityDetected:       false,
			SecondsSinceLastChange: math.Inf(1),
			ProbeError:             res.probeError,
		}
	}

	st := Status{
		PendingCount:           res.pending,
		SecondsSinceLastChange: math.Inf(1),
		ProbeError:             res.probeError,
	}
	if res.hasModTime {
		st.SecondsSinceLastChange = m.now().Sub(res.modTime).Seconds()
		st.RecentActivity = st.SecondsSinceLastChange < m.recentThreshold.Seconds()
	}
	st.ActivityDetected = st.PendingCount > 0 || st.RecentActivity

	var reasons []string
	if st.PendingCount > 0 {
		reasons = append(reasons, fmt.Sprintf("%d pending sync items", st.PendingCount))
	}
	if st.RecentActivity {
		reasons = append(reasons, fmt.Sprintf("store changed %.1fs ago", st.SecondsSinceLastChange))
	}
	if len(reasons) > 0 {
		st.Warning = "Background sync activity detected: " + strings.Join(reasons, "; ") + ". Results may change shortly."
	}
	return st
}

// defaultProbe stats the store file and counts pending objects through the
// sqlite3 command-line tool in read-only mode. A missing store or a failed
// count never raises an error; it is reported inside the result.
func (m *Monitor) defaultProbe() probeResult {
	fi, err := os.Stat(m.storePath)
	if err != nil {
		return probeResult{
			reachable:  false,
			probeError: fmt.Sprintf("Notes store not reachable: %v", err),
		}
	}

	res := probeResult{reachable: true, modTime: fi.ModTime(), hasModTime: true}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "sqlite3", "-readonly", m.storePath, pendingQuery)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		res.probeError = fmt.Sprintf("pending-count query failed: %v", err)
		if s := strings.TrimSpace(stderr.String()); s != "" {
			res.probeError += ": " + s
		}
		return res
	}

	n, err := strconv.Atoi(strings.TrimSpace(stdout.String()))
	if err != nil {
		res.probeError = fmt.Sprintf("pending-count query returned %q", strings.TrimSpace(stdout.String()))
		return res
	}
	res.pending = n
	return res
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return relativeStorePath
	}
	return filepath.Join(home, relativeStorePath)
}
