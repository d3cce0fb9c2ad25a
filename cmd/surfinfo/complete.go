package main

import (
	"strings"

	"golang.org/x/exp/slices"
)

// completer suggests words by prefix for readline and by trigram
// similarity for misspellings.
type completer struct {
	words []string
	// arg returns the words that may follow the named command.
	arg   map[string][]string
	grams map[string][]string
}

func newCompleter(commands []string, arg map[string][]string) *completer {
	c := &completer{arg: arg, grams: make(map[string][]string)}
	c.index(commands...)
	for _, ws := range arg {
		c.index(ws...)
	}
	return c
}

func (c *completer) index(ws ...string) {
	for _, w := range ws {
		if i, found := slices.BinarySearch(c.words, w); !found {
			c.words = slices.Insert(c.words, i, w)
		}
		for _, g := range trigrams(w) {
			if i, found := slices.BinarySearch(c.grams[g], w); !found {
				c.grams[g] = slices.Insert(c.grams[g], i, w)
			}
		}
	}
}

// trigrams returns the sorted distinct trigrams of s, padded so short
// words and word starts carry weight.
func trigrams(s string) []string {
	s = "\x00\x00" + strings.ToLower(s) + "\x00"
	var gs []string
	for i := 0; i+3 <= len(s); i++ {
		gs = append(gs, s[i:i+3])
	}
	slices.Sort(gs)
	return slices.Compact(gs)
}

// Match returns indexed words sharing at least min of the trigrams of s,
// best first.
func (c *completer) Match(s string, min float64) []string {
	q := trigrams(s)
	score := make(map[string]int)
	for _, g := range q {
		for _, w := range c.grams[g] {
			score[w]++
		}
	}
	var ws []string
	for w, n := range score {
		if float64(n)/float64(len(q)) >= min {
			ws = append(ws, w)
		}
	}
	slices.SortFunc(ws, func(a, b string) bool {
		if score[a] != score[b] {
			return score[a] > score[b]
		}
		return a < b
	})
	return ws
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	fields := strings.Fields(string(line[:pos]))
	if pos > 0 && line[pos-1] == ' ' {
		fields = append(fields, "")
	}

	var prefix string
	var candidates []string
	switch len(fields) {
	case 0:
		candidates = c.commands()
	case 1:
		prefix, candidates = fields[0], c.commands()
	default:
		prefix, candidates = fields[len(fields)-1], c.arg[fields[0]]
		if len(fields) > 2 {
			candidates = nil
		}
	}

	for _, w := range candidates {
		if strings.HasPrefix(w, prefix) {
			newLine = append(newLine, []rune(strings.TrimPrefix(w, prefix)+" "))
		}
	}
	return newLine, len([]rune(prefix))
}

func (c *completer) commands() []string {
	var cs []string
	for _, w := range c.words {
		if _, ok := commands[w]; ok {
			cs = append(cs, w)
		}
	}
	return cs
}
