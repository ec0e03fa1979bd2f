package feed

import (
	"testing"

	"github.com/bft-labs/statship/internal/domain"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Metric
		wantOK  bool
		wantErr bool
	}{
		{"statsd counter", "api.hits:1|c", Metric{"api.hits", "1", domain.Counter}, true, false},
		{"statsd timer", "db.query:12.5|ms", Metric{"db.query", "12.5", domain.Timer}, true, false},
		{"statsd name with spaces", "my metric:3|g", Metric{"my metric", "3", domain.Gauge}, true, false},
		{"fields with default kind", "queue.depth 7", Metric{"queue.depth", "7", domain.Gauge}, true, false},
		{"fields with kind", "  jobs 4 counter ", Metric{"jobs", "4", domain.Counter}, true, false},
		{"blank", "   ", Metric{}, false, false},
		{"comment", "# generated by cron", Metric{}, false, false},
		{"unknown kind", "jobs 4 histogram", Metric{}, false, true},
		{"single field", "jobs", Metric{}, false, true},
		{"too many fields", "a b c d", Metric{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseLine(tt.line, domain.Gauge)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLine(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if ok != tt.wantOK {
				t.Errorf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
