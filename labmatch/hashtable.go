package labmatch

import (
	"bufio"
	"io"
	"strings"
)

// Entry is one identifier and its lowercase hex digest from a hash
// table file.
type Entry struct {
	Identifier string
	Digest     string
}

// Table holds hash table entries in file order so matching output is
// deterministic.
type Table []Entry

// LoadTable parses identifier:hexdigest lines. Empty lines and lines
// without a colon are skipped silently; the skip count is returned so
// callers can log an aggregate. Digests are lowercased on the way in.
func LoadTable(r io.Reader) (Table, int, error) {
	var table Table
	skipped := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.Contains(line, ":") {
			skipped++
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		table = append(table, Entry{
			Identifier: strings.TrimSpace(parts[0]),
			Digest:     strings.ToLower(strings.TrimSpace(parts[1])),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}

	return table, skipped, nil
}

// ReadCandidates reads at most maxChecks candidate lines. Remaining
// lines are ignored without error; the cap bounds worst-case matching
// cost.
func ReadCandidates(r io.Reader, maxChecks int) ([]string, error) {
	var candidates []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(candidates) >= maxChecks {
			break
		}
		candidates = append(candidates, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
