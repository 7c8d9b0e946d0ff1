// Package store implements the flat text format used to keep a filter's
// block-list on disk: one domain per line, lines starting with '#' are
// comments, blank lines are ignored.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// ReadFilterFile reads the domain list from path.
//
// Surrounding whitespace is trimmed from every line; empty lines and
// comment lines are skipped. The remaining lines are returned in file
// order — no sorting and no deduplication. A missing file is not an
// error: the caller gets a nil slice and decides whether absence is
// fatal.
func ReadFilterFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open filter file: %w", err)
	}
	defer file.Close()

	var domains []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains = append(domains, line)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("read filter file: %w", err)
	}

	return domains, nil
}

// WriteFilterFile overwrites path with a header comment block titled with
// label, a blank line, then the domains in lexicographic order, one per
// line. The input slice is not modified.
func WriteFilterFile(path string, domains []string, label string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create filter file: %w", err)
	}

	sorted := slices.Clone(domains)
	slices.Sort(sorted)

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# %s\n", label)
	fmt.Fprintln(w, "# Lines starting with '#' are comments")
	fmt.Fprintln(w, "# Edit this file and run 'sync' to update the controller")
	fmt.Fprintln(w)
	for _, domain := range sorted {
		fmt.Fprintln(w, domain)
	}

	if err = w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("write filter file: %w", err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("close filter file: %w", err)
	}

	return nil
}
