// Package envfile reads the optional .env file that supplies extra variables
// to wrapped tools. Entries never override variables already present in the
// caller's environment.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

// Entry is one assignment in file order.
type Entry struct {
	Key   string
	Value string
}

// Load reads and parses the env file at path. A missing file yields an empty map.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf(messages.EnvfileReadPathFailedFmt, path, err)
	}
	env, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf(messages.EnvfileInvalidFmt, path, err)
	}
	return env, nil
}

// Parse reads .env content into a key-value map. Later assignments win.
func Parse(content string) (map[string]string, error) {
	entries, err := Entries(content)
	if err != nil {
		return nil, err
	}
	env := make(map[string]string, len(entries))
	for _, e := range entries {
		env[e.Key] = e.Value
	}
	return env, nil
}

// Entries returns the assignments in content in the order they appear.
func Entries(content string) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(strings.NewReader(content))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		entry, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if ok {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}
	return entries, nil
}

// parseLine returns ok=false for blank and comment lines.
func parseLine(line string) (Entry, bool, error) {
	text := strings.TrimSpace(line)
	if text == "" || text[0] == '#' {
		return Entry{}, false, nil
	}
	text = strings.TrimSpace(strings.TrimPrefix(text, "export "))

	key, raw, found := strings.Cut(text, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return Entry{}, false, errors.New(messages.EnvfileExpectedKeyValue)
	}
	value, err := unquote(strings.TrimSpace(raw))
	if err != nil {
		return Entry{}, false, err
	}
	return Entry{Key: key, Value: value}, true, nil
}

// unquote strips single or double quotes. Double-quoted values honor
// backslash escapes for \\, \", \n and \r; single-quoted values are literal.
func unquote(raw string) (string, error) {
	if raw == "" || (raw[0] != '"' && raw[0] != '\'') {
		return raw, nil
	}
	quote := raw[0]
	var b strings.Builder
	for i := 1; i < len(raw); i++ {
		c := raw[i]
		if quote == '"' && c == '\\' && i+1 < len(raw) {
			i++
			switch raw[i] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case '\\', '"':
				b.WriteByte(raw[i])
			default:
				b.WriteByte('\\')
				b.WriteByte(raw[i])
			}
			continue
		}
		if c == quote {
			rest := strings.TrimSpace(raw[i+1:])
			if rest != "" && rest[0] != '#' {
				return "", errors.New(messages.EnvfileInvalidQuotedSuffix)
			}
			return b.String(), nil
		}
		b.WriteByte(c)
	}
	return "", errors.New(messages.EnvfileUnterminatedQuotedValue)
}
