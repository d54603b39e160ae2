// Package intsource reads whitespace-separated integers from a text source.
package intsource

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strconv"
)

// Read parses integers from r until the first token which is not a base-10 integer, or end of input.
//
// Tokens are split on any whitespace. A token must be a complete integer (an optional sign followed by digits) which fits in an int; "12abc" ends the sequence.
func Read(r io.Reader) []int {
	var out []int
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			break
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		slog.Debug("stopped reading integers", "err", err, "count", len(out))
	}
	return out
}

// ReadFile reads integers from the file at path, or from stdin if path is "-". If the file can not be opened, an empty sequence is returned.
func ReadFile(path string) []int {
	out, err := ReadFileErr(path)
	if err != nil {
		slog.Debug("could not open integer source", "path", path, "err", err)
	}
	return out
}

// ReadFileErr is like ReadFile, but also reports the error from opening the file.
func ReadFileErr(path string) ([]int, error) {
	if path == "-" {
		return Read(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f), nil
}
