package playerindex

import (
	"errors"
	"regexp"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
)

// ErrNotLoaded is returned by Search before the first successful load.
var ErrNotLoaded = errors.New("player index not loaded")

// Index is the thread-safe, read-mostly player name index. It is populated
// once by a Loader and never mutated afterwards.
type Index struct {
	mu      sync.RWMutex
	players []players.Player
	folded  []string
	loaded  bool
}

// New constructs an empty Index.
func New() *Index {
	return &Index{}
}

// Set replaces the indexed players with a copy of list.
func (i *Index) Set(list []players.Player) {
	cp := make([]players.Player, len(list))
	copy(cp, list)
	folded := make([]string, len(cp))
	for n, p := range cp {
		folded[n] = fold(p.FullName)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.players = cp
	i.folded = folded
	i.loaded = true
}

// Loaded reports whether Set has been called.
func (i *Index) Loaded() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.loaded
}

// Len returns the number of indexed players.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.players)
}

// Search returns players whose full name matches fragment, in index order.
// The fragment is a case-insensitive regular expression; both sides are
// stripped of diacritics first. A fragment that does not compile is matched
// literally.
func (i *Index) Search(fragment string) ([]players.Player, error) {
	re := compileFragment(fold(fragment))

	i.mu.RLock()
	defer i.mu.RUnlock()
	if !i.loaded {
		return nil, ErrNotLoaded
	}

	var out []players.Player
	for n, name := range i.folded {
		if re.MatchString(name) {
			out = append(out, i.players[n])
		}
	}
	return out, nil
}

func compileFragment(fragment string) *regexp.Regexp {
	re, err := regexp.Compile("(?i)" + fragment)
	if err != nil {
		return regexp.MustCompile("(?i)" + regexp.QuoteMeta(fragment))
	}
	return re
}

// fold strips combining marks so "Jokić" compares equal to "Jokic".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
