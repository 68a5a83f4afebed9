package instrumentation

import "testing"

func TestExtractParticipantDomain(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"jane@example.com", "example.com"},
		{"alice@company.com", "company.com"},
		{"admin@company.org", "company.org"},
		{"test@subdomain.example.com", "subdomain.example.com"},
		{"invalid", "unknown"},
		{"", "unknown"},
		{"@", "unknown"},
		{"user@", "unknown"},
		{"@domain.com", "domain.com"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			result := ExtractParticipantDomain(tt.id)
			if result != tt.expected {
				t.Errorf("ExtractParticipantDomain(%q) = %q, want %q", tt.id, result, tt.expected)
			}
		})
	}
}

func TestOperationConstants(t *testing.T) {
	operations := map[string]string{
		OperationCreate:          "create",
		OperationRemove:          "remove",
		OperationReschedule:      "reschedule",
		OperationList:            "list",
		OperationFindSlots:       "find_slots",
		OperationDetectConflicts: "detect_conflicts",
		OperationWorkload:        "workload",
		OperationEffectiveness:   "effectiveness",
		OperationPatterns:        "patterns",
		OperationOptimize:        "optimize",
		OperationAgenda:          "agenda",
	}

	for constant, expected := range operations {
		if constant != expected {
			t.Errorf("Operation constant = %q, want %q", constant, expected)
		}
	}
}
