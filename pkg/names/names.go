// Package names generates repository names from random words.
package names

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	petname "github.com/dustinkirkland/golang-petname"
)

const (
	DefaultWords     = 2
	DefaultSeparator = "_"
)

// WordSource supplies single words on demand
type WordSource interface {
	Word() string
}

// PetnameSource draws random English words from the petname word lists
type PetnameSource struct{}

// Word returns a random word
func (PetnameSource) Word() string {
	return petname.Generate(1, "")
}

// StaticSource returns its words in order and wraps around at the end
type StaticSource struct {
	mu    sync.Mutex
	words []string
	next  int
}

// NewStaticSource creates a source that cycles through words
func NewStaticSource(words ...string) *StaticSource {
	return &StaticSource{words: words}
}

// Word returns the next word, or "" when the source is empty
func (s *StaticSource) Word() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.words) == 0 {
		return ""
	}
	w := s.words[s.next%len(s.words)]
	s.next++
	return w
}

// Generator builds names of Words words joined by Separator
type Generator struct {
	Source    WordSource
	Words     int
	Separator string
}

// NewGenerator returns a generator with the default shape, word_word
func NewGenerator(src WordSource) *Generator {
	return &Generator{
		Source:    src,
		Words:     DefaultWords,
		Separator: DefaultSeparator,
	}
}

// Next draws the words for one name. A word that is empty, contains
// whitespace or contains the separator is an error, so every name has
// exactly Words non-empty segments.
func (g *Generator) Next() (string, error) {
	if g.Source == nil {
		return "", fmt.Errorf("no word source configured")
	}
	if g.Words < 2 {
		return "", fmt.Errorf("word count must be at least 2, got %d", g.Words)
	}

	words := make([]string, 0, g.Words)
	for i := 0; i < g.Words; i++ {
		w := g.Source.Word()
		if err := g.checkWord(w); err != nil {
			return "", err
		}
		words = append(words, w)
	}

	return strings.Join(words, g.Separator), nil
}

func (g *Generator) checkWord(w string) error {
	if w == "" {
		return fmt.Errorf("word source returned an empty word")
	}
	if strings.IndexFunc(w, unicode.IsSpace) >= 0 {
		return fmt.Errorf("word %q contains whitespace", w)
	}
	if g.Separator != "" && strings.Contains(w, g.Separator) {
		return fmt.Errorf("word %q contains the separator %q", w, g.Separator)
	}
	return nil
}
