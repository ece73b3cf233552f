package report

import (
	"strings"
	"testing"

	"radioscribe/internal/summarizer"
)

func TestFormatCommunication(t *testing.T) {
	speaker := "[Inferred] Tower"
	action := "landing clearance"

	tests := []struct {
		name string
		comm summarizer.Communication
		want string
	}{
		{
			name: "populated fields only",
			comm: summarizer.Communication{Speaker: &speaker, Action: &action},
			want: "Speaker: [Inferred] Tower; Action: landing clearance",
		},
		{
			name: "all nil",
			comm: summarizer.Communication{},
			want: "(no identifiable fields)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCommunication(tt.comm); got != tt.want {
				t.Errorf("formatCommunication() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCommunicationSkipsBlank(t *testing.T) {
	blank := "   "
	heading := "270"
	got := formatCommunication(summarizer.Communication{Recipient: &blank, Heading: &heading})
	if strings.Contains(got, "Recipient") {
		t.Errorf("blank field rendered: %q", got)
	}
	if !strings.Contains(got, "Heading: 270") {
		t.Errorf("populated field missing: %q", got)
	}
}
