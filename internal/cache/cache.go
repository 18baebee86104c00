// Package cache is ambient dev tooling: an on-disk cache of tokenized
// .reproto files keyed by content hash, so a CLI invocation that re-reads
// the same unmodified file can skip re-lexing it. It sits next to the
// core, consuming package token's output; nothing in source, token,
// lexer, diag, ast, parser, or pathspec depends on it.
package cache

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/nezdolik/reproto/internal/source"
	"github.com/nezdolik/reproto/internal/token"
)

// schemaVersion guards against stale entries after the payload shape changes.
const schemaVersion uint16 = 1

// Digest is a content hash used as the cache key.
type Digest [sha256.Size]byte

// HashContent computes the cache key for a file's raw bytes.
func HashContent(content []byte) Digest {
	return sha256.Sum256(content)
}

// tokenRecord is the on-disk shape of a token.Token: plain fields only, so
// msgpack can round-trip it without reaching into internal/source for a
// FileSet to resolve spans against.
type tokenRecord struct {
	Kind  uint16
	Text  string
	Start uint32
	End   uint32
}

// payload is the on-disk shape of one cache entry.
type payload struct {
	Schema uint16
	Tokens []tokenRecord
}

// TokenCache stores lexed token streams on disk, keyed by content hash.
// Safe for concurrent use.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// Open returns a TokenCache rooted at dir, creating it if needed.
func Open(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, fmt.Sprintf("%x.mp", key))
}

// Put writes toks to the cache under key, replacing any prior entry
// atomically.
func (c *TokenCache) Put(key Digest, toks []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := payload{Schema: schemaVersion, Tokens: make([]tokenRecord, len(toks))}
	for i, t := range toks {
		p.Tokens[i] = tokenRecord{Kind: uint16(t.Kind), Text: t.Text, Start: t.Span.Start, End: t.Span.End}
	}

	dest := c.pathFor(key)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if err := msgpack.NewEncoder(f).Encode(&p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, dest)
}

// Get returns the cached token stream for key, and whether it was present.
// The returned tokens carry Kind/Text/Span only; Leading trivia is not
// cached (doc comments are re-derived from source when needed).
func (c *TokenCache) Get(key Digest) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, false, err
	}
	if p.Schema != schemaVersion {
		return nil, false, nil
	}

	toks := make([]token.Token, len(p.Tokens))
	for i, r := range p.Tokens {
		// File is left zero: a cached entry is content-addressed, not tied
		// to any particular FileSet, so the caller re-associates spans with
		// whatever FileID it loaded the file under before resolving them.
		toks[i] = token.Token{
			Kind: token.Kind(r.Kind),
			Text: r.Text,
			Span: source.Span{Start: r.Start, End: r.End},
		}
	}
	return toks, true, nil
}
