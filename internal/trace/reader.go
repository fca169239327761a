// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX Trace Reader
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// CBP-style branch traces are routinely gigabytes uncompressed and shipped gzipped. Reader
// transparently unwraps gzip the way sneller's blockfmt readers sniff their input before
// deciding how to decode it: peek the first two bytes, and if they're the gzip magic, wrap the
// stream in a gzip.Reader before handing it to the line scanner. Otherwise read the plain
// text format directly.
//
// Plain text format: one record per line, whitespace-separated fields
//
//	<address> <flags> <taken> <target>
//
// address/flags/target accept "0x"-prefixed hex or plain decimal; taken accepts "1"/"t"/"true"/
// "taken" or "0"/"f"/"false"/"not-taken"/"nottaken", case-insensitively. Blank lines and lines
// starting with '#' are skipped.
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/suprax-arch/tage/internal/branch"
)

var gzipMagic = [2]byte{0x1f, 0x8b}

// Reader yields Records one at a time from an underlying byte stream.
type Reader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
}

// NewReader wraps r, transparently decompressing gzip input. The returned Reader's Close
// releases any gzip.Reader it allocated; closing the caller's r remains the caller's job.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("trace: peek header: %w", err)
	}

	var body io.Reader = br
	var closer io.Closer
	if len(magic) == 2 && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("trace: open gzip stream: %w", err)
		}
		body, closer = gz, gz
	}

	return &Reader{scanner: bufio.NewScanner(body), closer: closer}, nil
}

// Close releases resources allocated by NewReader (the gzip reader, if any).
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Next returns the next Record, or io.EOF once the stream is exhausted.
func (r *Reader) Next() (Record, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return Record{}, fmt.Errorf("trace: line %d: %w", r.line, err)
		}
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("trace: scan: %w", err)
	}
	return Record{}, io.EOF
}

func parseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Record{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}

	addr, err := parseUint(fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("address: %w", err)
	}
	flags, err := parseUint(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("flags: %w", err)
	}
	taken, err := parseBool(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("taken: %w", err)
	}
	target, err := parseUint(fields[3])
	if err != nil {
		return Record{}, fmt.Errorf("target: %w", err)
	}

	return Record{
		Address: addr,
		Flags:   branch.Flags(flags),
		Taken:   taken,
		Target:  target,
	}, nil
}

func parseUint(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "t", "true", "taken":
		return true, nil
	case "0", "f", "false", "not-taken", "nottaken":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized boolean %q", s)
	}
}
