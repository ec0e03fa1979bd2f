package feed

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bft-labs/statship/internal/domain"
)

var statsdLine = regexp.MustCompile(`^(.+):([^:|]*)\|(c|g|ms)$`)

// Metric is one parsed input line.
type Metric struct {
	Name  string
	Value string
	Kind  domain.Kind
}

// ParseLine accepts either a StatsD line ("name:value|type") or
// whitespace-separated fields ("name value [type]"). Blank lines and lines
// starting with '#' report ok == false.
func ParseLine(line string, defaultKind domain.Kind) (m Metric, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Metric{}, false, nil
	}

	if parts := statsdLine.FindStringSubmatch(line); parts != nil {
		kind, err := domain.ParseKind(parts[3])
		if err != nil {
			return Metric{}, false, err
		}
		return Metric{Name: parts[1], Value: parts[2], Kind: kind}, true, nil
	}

	fields := strings.Fields(line)
	switch len(fields) {
	case 2:
		return Metric{Name: fields[0], Value: fields[1], Kind: defaultKind}, true, nil
	case 3:
		kind, err := domain.ParseKind(fields[2])
		if err != nil {
			return Metric{}, false, err
		}
		return Metric{Name: fields[0], Value: fields[1], Kind: kind}, true, nil
	default:
		return Metric{}, false, fmt.Errorf("malformed metric line %q", line)
	}
}
