package source

import (
	"path/filepath"
	"slices"
	"strings"
)

// normalizeCRLF rewrites "\r\n" to "\n", leaving lone "\r" bytes untouched.
// It returns the (possibly unchanged) content and whether any rewrite happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol converts a byte offset into a 1-based LineCol via binary search
// over the file's newline index.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	// hi is the index of the last newline at or before off, so off lies on
	// line hi+2, which begins right after that newline. An offset holding a
	// '\n' byte therefore resolves to column 0 of the following line.
	if hi < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	return LineCol{Line: uint32(hi + 2), Col: off - lineIdx[hi]}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath resolves p to an absolute, slash-normalized path.
func AbsolutePath(p string) (string, error) {
	abs, err := filepath.Abs(filepath.FromSlash(p))
	if err != nil {
		return "", err
	}
	return normalizePath(abs), nil
}

// RelativePath expresses target relative to base. If target does not live
// under base, the absolute, slash-normalized form of target is returned
// instead of a "../.." escape, so rendered paths never wander outside the
// project root a caller cares about.
func RelativePath(target, base string) (string, error) {
	absBase, err := AbsolutePath(base)
	if err != nil {
		return "", err
	}
	absTarget, err := AbsolutePath(target)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(filepath.FromSlash(absBase), filepath.FromSlash(absTarget))
	if err != nil {
		return "", err
	}
	rel = normalizePath(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return absTarget, nil
	}
	return rel, nil
}

// BaseName returns the final path element.
func BaseName(p string) string {
	return filepath.Base(filepath.FromSlash(p))
}
