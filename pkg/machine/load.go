package machine

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrArtifactMissing is returned by LoadHack, which is the one artifact every
// test folder must carry; the others (.asm, .tst, .cmp) are all optional.
var ErrArtifactMissing = errors.New("required artifact missing")

// Artifacts is everything a single test folder can hold: the assembled
// program, its optional disassembly, an optional test script (already split
// into one command string per line) and an optional expected-output table
// (header row first, one signal name per column).
type Artifacts struct {
	Words   []uint16
	ASM     []string
	Script  []string
	Results [][]string
}

// Load reads dir/name.hack (required), dir/name.asm, dir/name.tst and
// dir/name.cmp (all optional) and returns them reshaped the way the rest of
// this package expects to consume them.
func Load(dir, name string) (*Artifacts, error) {
	words, err := loadHack(filepath.Join(dir, name+".hack"))
	if err != nil {
		return nil, err
	}

	asm, err := loadASM(filepath.Join(dir, name+".asm"))
	if err != nil {
		return nil, err
	}

	script, err := loadScript(filepath.Join(dir, name+".tst"))
	if err != nil {
		return nil, err
	}

	results, err := loadResults(filepath.Join(dir, name+".cmp"))
	if err != nil {
		return nil, err
	}

	return &Artifacts{Words: words, ASM: asm, Script: script, Results: results}, nil
}

func readLines(path string) ([]string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, false, errors.Wrapf(err, "reading %s", path)
	}
	return lines, true, nil
}

func loadHack(path string) ([]uint16, error) {
	lines, present, err := readLines(path)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, errors.Wrapf(ErrArtifactMissing, "%s", path)
	}

	words := make([]uint16, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 2, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing machine word %q in %s", line, path)
		}
		words = append(words, uint16(v))
	}
	return words, nil
}

// loadASM reformats the .asm source: strip comments and blank lines, then
// fold every bare (LABEL) line down into the instruction line that follows
// it, since the symbol scanner and the ROM's line-for-line disassembly both
// expect one entry per machine word.
func loadASM(path string) ([]string, error) {
	raw, present, err := readLines(path)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	for i := len(lines) - 2; i >= 0; i-- {
		if strings.Contains(lines[i], "(") {
			lines[i+1] = lines[i] + " " + lines[i+1]
			lines[i] = ""
		}
	}

	out := lines[:0]
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

var formattingSuffix = regexp.MustCompile(`%\S*`)

// loadScript reformats a .tst file into one command string per entry: comments
// stripped, each line split on commas and semicolons, field-width
// formatting suffixes (e.g. "PC%B2.2.2") dropped, and everything lowercased.
func loadScript(path string) ([]string, error) {
	raw, present, err := readLines(path)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	var script []string
	for _, line := range raw {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ';' }) {
			field = formattingSuffix.ReplaceAllString(field, "")
			field = strings.TrimSpace(field)
			if field != "" {
				script = append(script, strings.ToLower(field))
			}
		}
	}
	return script, nil
}

var whitespaceRun = regexp.MustCompile(`[ \t]+`)

// loadResults reshapes a .cmp file into a row-major table: strip all
// whitespace, trim the leading/trailing "|" column separators, split and
// lowercase. A header field missing its closing "]" gets one appended.
func loadResults(path string) ([][]string, error) {
	raw, present, err := readLines(path)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	results := make([][]string, 0, len(raw))
	for _, line := range raw {
		line = whitespaceRun.ReplaceAllString(line, "")
		line = strings.Trim(line, "|")
		fields := strings.Split(strings.ToLower(line), "|")
		results = append(results, fields)
	}

	if len(results) > 0 {
		for i, field := range results[0] {
			if !strings.HasSuffix(field, "]") {
				results[0][i] = field + "]"
			}
		}
	}
	return results, nil
}
