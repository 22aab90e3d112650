package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hey-rash/PlacementNex/internal/placement"
)

type stubGenerator struct {
	response    string
	err         error
	lastSystem  string
	lastMessage string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, message string) (string, error) {
	s.lastSystem = system
	s.lastMessage = message
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestAdvisorAnswer(t *testing.T) {
	stub := &stubGenerator{response: "  TechNova hired the most students.  "}
	core, logs := observer.New(zapcore.DebugLevel)
	advisor := NewAdvisor(stub, placement.Sample(), zap.New(core), 10)

	answer, err := advisor.Answer(context.Background(), " who hired the most? ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "TechNova hired the most students." {
		t.Fatalf("unexpected answer: %q", answer)
	}
	if stub.lastMessage != "who hired the most?" {
		t.Fatalf("unexpected message: %q", stub.lastMessage)
	}
	if strings.Contains(stub.lastSystem, "{{DATASET_JSON}}") {
		t.Fatalf("dataset placeholder was not replaced")
	}
	for _, want := range []string{`"name":"Aarav Sharma"`, `"company":"TechNova"`, `"arrival_date":"2023-08-20"`} {
		if !strings.Contains(stub.lastSystem, want) {
			t.Fatalf("expected system prompt to contain %s", want)
		}
	}

	entries := logs.FilterMessage("gemini generate content response").All()
	if len(entries) != 1 {
		t.Fatalf("expected one response log entry, got %d", len(entries))
	}
	if preview := entries[0].ContextMap()["response_preview"]; preview != "TechNova h..." {
		t.Fatalf("unexpected preview: %v", preview)
	}
}

func TestAdvisorReview(t *testing.T) {
	stub := &stubGenerator{response: "Add a SQL project."}
	advisor := NewAdvisor(stub, nil, nil, 0)

	advice, err := advisor.Review(context.Background(), "Built a React dashboard.", []string{"react", "SQL", "React"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advice != "Add a SQL project." {
		t.Fatalf("unexpected advice: %q", advice)
	}
	if !strings.Contains(stub.lastSystem, "- REACT\n- SQL") {
		t.Fatalf("expected canonical skill list in prompt, got %q", stub.lastSystem)
	}
	if stub.lastMessage != "Built a React dashboard." {
		t.Fatalf("unexpected message: %q", stub.lastMessage)
	}
}

func TestAdvisorPropagatesErrors(t *testing.T) {
	stub := &stubGenerator{err: errors.New("boom")}
	advisor := NewAdvisor(stub, placement.Sample(), nil, 0)

	if _, err := advisor.Answer(context.Background(), "hi"); err == nil {
		t.Fatal("expected generator error")
	}
	if _, err := advisor.Answer(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty question")
	}
	if _, err := advisor.Review(context.Background(), "", nil); err == nil {
		t.Fatal("expected error for empty resume")
	}
}
