// Package responder answers chat messages from a table of known phrases.
//
// Lookups are exact and case-insensitive: a prefix or an extension of a
// known phrase does not match.
package responder

import "strings"

// Phrase is a known phrase with its canned response.
type Phrase struct {
	Phrase   string `mapstructure:"phrase"`
	Response string `mapstructure:"response"`
}

type node struct {
	children map[rune]*node
	terminal bool
	response string
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie maps phrases to responses, one edge per character.
type Trie struct {
	root *node
	size int
}

// NewTrie returns an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

func normalize(s string) string {
	return strings.ToLower(s)
}

// Insert stores the response for the phrase, replacing any previous response.
func (t *Trie) Insert(phrase, response string) {
	n := t.root
	for _, r := range normalize(phrase) {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	if !n.terminal {
		t.size++
	}
	n.terminal = true
	n.response = response
}

// InsertAll inserts every phrase in order.
func (t *Trie) InsertAll(phrases []Phrase) {
	for _, p := range phrases {
		t.Insert(p.Phrase, p.Response)
	}
}

// Lookup returns the response stored for exactly this phrase. The boolean is
// false when no phrase matched; a matched empty response returns ("", true).
func (t *Trie) Lookup(query string) (string, bool) {
	n := t.root
	for _, r := range normalize(query) {
		child, ok := n.children[r]
		if !ok {
			return "", false
		}
		n = child
	}
	if !n.terminal {
		return "", false
	}
	return n.response, true
}

// Len returns the number of stored phrases.
func (t *Trie) Len() int {
	return t.size
}
