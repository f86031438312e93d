package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var ErrNotText = errors.New("not valid UTF-8 text") // sentinel error

// CountReader streams r line by line and counts line-terminated segments and
// whitespace-delimited words. A trailing segment without a terminator still
// counts when it has content, so the totals match what line splitting yields.
// size is the number of bytes consumed.
func CountReader(r io.Reader) (words, lines int, size int64, err error) {
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		b, err := br.ReadBytes('\n')
		if len(b) > 0 {
			// A '\n' byte never occurs inside a multi-byte rune, so
			// validating per line segment is exact.
			if !utf8.Valid(b) {
				return 0, 0, 0, ErrNotText
			}
			size += int64(len(b))
			lines++
			words += len(strings.Fields(string(b)))
		}
		if err != nil {
			if err != io.EOF {
				return 0, 0, 0, err
			}
			break
		}
	}
	return words, lines, size, nil
}

// CountFile opens path as text and returns its record plus the number of
// bytes read. Open errors come back unwrapped; decode errors carry the path.
func CountFile(path string) (DocStat, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return DocStat{}, 0, err
	}
	defer f.Close()

	words, lines, size, err := CountReader(f)
	if err != nil {
		return DocStat{}, 0, fmt.Errorf("%s: %w", path, err)
	}
	return DocStat{
		Name:  filepath.Base(path),
		Path:  filepath.ToSlash(path),
		Words: words,
		Lines: lines,
	}, size, nil
}
