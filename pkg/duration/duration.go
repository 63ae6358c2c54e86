// Package duration provides a time.Duration wrapper that serializes as a
// compact human-readable string in JSON and YAML, and accepts a day suffix
// ("7d") on top of the standard Go duration syntax.
package duration

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a serializable freshness window.
type Duration time.Duration

// Days returns a Duration of n days.
func Days(n int) Duration {
	return Duration(time.Duration(n) * 24 * time.Hour)
}

// Hours returns a Duration of n hours.
func Hours(n int) Duration {
	return Duration(time.Duration(n) * time.Hour)
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String formats the duration compactly, dropping zero-valued trailing units:
// 168h, 1h30m, 45s.
func (d Duration) String() string {
	td := time.Duration(d)
	if td == 0 {
		return "0s"
	}

	var b strings.Builder
	if td < 0 {
		b.WriteByte('-')
		td = -td
	}

	hours := td / time.Hour
	td -= hours * time.Hour
	minutes := td / time.Minute
	td -= minutes * time.Minute

	if hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	if td > 0 {
		// Sub-minute remainder: time.Duration formats it as "30s", "1.5s", etc.
		b.WriteString(td.String())
	}

	return b.String()
}

// Parse parses a duration string. Supported forms:
//   - Go duration syntax ("168h", "1h30m", "90s")
//   - a leading day component ("7d", "1d12h")
//   - a bare integer, interpreted as seconds ("604800")
func Parse(s string) (Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}

	// Bare integer means seconds
	if digits == len(s) {
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		return Duration(time.Duration(secs) * time.Second), nil
	}

	// Day component followed by optional Go duration syntax
	if digits > 0 && s[digits] == 'd' {
		days, err := strconv.Atoi(s[:digits])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		total := time.Duration(days) * 24 * time.Hour
		if rest := s[digits+1:]; rest != "" {
			rd, err := time.ParseDuration(rest)
			if err != nil {
				return 0, fmt.Errorf("invalid duration %q: %w", s, err)
			}
			total += rd
		}
		return Duration(total), nil
	}

	td, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return Duration(td), nil
}

// MarshalJSON encodes the duration as its compact string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes either a duration string or a number of seconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := Parse(s)
		if err != nil {
			return err
		}
		*d = v
		return nil
	}

	var secs float64
	if err := json.Unmarshal(data, &secs); err == nil {
		*d = Duration(time.Duration(secs * float64(time.Second)))
		return nil
	}

	return fmt.Errorf("invalid duration value: %s", string(data))
}

// MarshalYAML encodes the duration as its compact string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML decodes either a duration string or a number of seconds.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err == nil {
		v, err := Parse(s)
		if err != nil {
			return err
		}
		*d = v
		return nil
	}

	var secs float64
	if err := n.Decode(&secs); err == nil {
		*d = Duration(time.Duration(secs * float64(time.Second)))
		return nil
	}

	return fmt.Errorf("invalid duration value: %s", n.Value)
}
