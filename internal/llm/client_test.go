package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "bare object",
			raw:  `{"isEmergency": true}`,
			want: `{"isEmergency": true}`,
			ok:   true,
		},
		{
			name: "object with prose",
			raw:  `Here is the classification: {"isEmergency": false} I hope that helps.`,
			want: `{"isEmergency": false}`,
			ok:   true,
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"queryType\": \"service\"}\n```",
			want: `{"queryType": "service"}`,
			ok:   true,
		},
		{
			name: "fenced without language tag",
			raw:  "```\n[{\"planName\": \"Essential Health Plan\"}]\n```",
			want: `[{"planName": "Essential Health Plan"}]`,
			ok:   true,
		},
		{
			name: "array with prose",
			raw:  `Sure! [{"name": "Clinic A"}] Let me know.`,
			want: `[{"name": "Clinic A"}]`,
			ok:   true,
		},
		{
			name: "multi-element array keeps its brackets",
			raw:  `Results: [{"name": "Clinic A"}, {"name": "Clinic B"}]`,
			want: `[{"name": "Clinic A"}, {"name": "Clinic B"}]`,
			ok:   true,
		},
		{
			name: "object with nested array",
			raw:  `{"benefits": ["GP visits", "Emergency care"]}`,
			want: `{"benefits": ["GP visits", "Emergency care"]}`,
			ok:   true,
		},
		{
			name: "no json",
			raw:  "I cannot answer that.",
			want: "",
			ok:   false,
		},
		{
			name: "empty",
			raw:  "",
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ExtractJSON() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
