package analyzer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/Kaushal-04/Legal-Email-Assistant/internal/llm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// completionServer returns an httptest server whose completion text is the
// given string.
func completionServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{
					"message":       map[string]string{"role": "assistant", "content": text},
					"finish_reason": "stop",
				},
			},
		})
	}))
}

func liveAnalyzer(serverURL string) *Analyzer {
	client := llm.NewClient("test-key", "test-model")
	client.SetTestTransport(serverURL)
	return New(client, llm.ModeLive, DefaultPrompts(), discardLogger())
}

func TestAnalyze_MockMode(t *testing.T) {
	a := New(nil, llm.ModeMock, DefaultPrompts(), discardLogger())

	got := a.Analyze(context.Background(), "Subject: anything at all")
	want := FallbackAnalysis()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("mock analysis mismatch:\ngot  %+v\nwant %+v", got, want)
	}

	// Output is independent of the input text.
	other := a.Analyze(context.Background(), "a completely different email")
	if !reflect.DeepEqual(other, want) {
		t.Errorf("mock analysis depends on input: %+v", other)
	}
}

func TestAnalyze_MockMode_NoSharedState(t *testing.T) {
	a := New(nil, llm.ModeMock, DefaultPrompts(), discardLogger())

	first := a.Analyze(context.Background(), "email")
	first.Parties[0] = "mutated"
	first.Questions = first.Questions[:0]

	second := a.Analyze(context.Background(), "email")
	if second.Parties[0] != "Acme Technologies Pvt. Ltd." {
		t.Errorf("mutation leaked between calls: %q", second.Parties[0])
	}
	if len(second.Questions) != 2 {
		t.Errorf("expected 2 questions, got %d", len(second.Questions))
	}
}

func TestAnalyze_LiveSuccess(t *testing.T) {
	live := Analysis{
		Intent:       "dispute",
		Parties:      []string{"Foo Corp", "Bar Ltd"},
		Dates:        []string{"1 January 2026"},
		Questions:    []string{"Can we terminate?"},
		PrimaryTopic: "termination",
		Urgency:      "medium",
	}
	raw, _ := json.Marshal(live)

	server := completionServer(t, string(raw))
	defer server.Close()

	got := liveAnalyzer(server.URL).Analyze(context.Background(), "some email")
	if !reflect.DeepEqual(*got, live) {
		t.Errorf("live analysis mismatch:\ngot  %+v\nwant %+v", *got, live)
	}
}

func TestAnalyze_LiveMissingField(t *testing.T) {
	// questions is absent — the whole record must be replaced, not partially kept.
	server := completionServer(t, `{"intent":"dispute","parties":["Foo Corp"],"dates":["1 January 2026"]}`)
	defer server.Close()

	got := liveAnalyzer(server.URL).Analyze(context.Background(), "some email")
	if !reflect.DeepEqual(got, FallbackAnalysis()) {
		t.Errorf("expected fallback for missing field, got %+v", got)
	}
}

func TestAnalyze_LiveNullField(t *testing.T) {
	server := completionServer(t, `{"intent":null,"parties":[],"dates":[],"questions":[]}`)
	defer server.Close()

	got := liveAnalyzer(server.URL).Analyze(context.Background(), "some email")
	if !reflect.DeepEqual(got, FallbackAnalysis()) {
		t.Errorf("expected fallback for null field, got %+v", got)
	}
}

func TestAnalyze_LiveInvalidJSON(t *testing.T) {
	server := completionServer(t, "I'm sorry, I cannot produce JSON today.")
	defer server.Close()

	got := liveAnalyzer(server.URL).Analyze(context.Background(), "some email")
	if !reflect.DeepEqual(got, FallbackAnalysis()) {
		t.Errorf("expected fallback for invalid JSON, got %+v", got)
	}
}

func TestAnalyze_LiveWrongType(t *testing.T) {
	server := completionServer(t, `{"intent":"dispute","parties":"not a list","dates":[],"questions":[]}`)
	defer server.Close()

	got := liveAnalyzer(server.URL).Analyze(context.Background(), "some email")
	if !reflect.DeepEqual(got, FallbackAnalysis()) {
		t.Errorf("expected fallback for mistyped field, got %+v", got)
	}
}

func TestAnalyze_LiveTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	got := liveAnalyzer(server.URL).Analyze(context.Background(), "some email")
	if !reflect.DeepEqual(got, FallbackAnalysis()) {
		t.Errorf("expected fallback on transport failure, got %+v", got)
	}
}

func TestParseAnalysis_ExactValues(t *testing.T) {
	raw := `{"intent":"inquiry","parties":["A","B","C"],"dates":["2 Feb 2024","3 Mar 2024"],"questions":["q1"]}`

	got, err := parseAnalysis(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != "inquiry" {
		t.Errorf("expected intent inquiry, got %q", got.Intent)
	}
	if !reflect.DeepEqual(got.Parties, []string{"A", "B", "C"}) {
		t.Errorf("parties reordered or mutated: %v", got.Parties)
	}
	if !reflect.DeepEqual(got.Dates, []string{"2 Feb 2024", "3 Mar 2024"}) {
		t.Errorf("dates reordered or mutated: %v", got.Dates)
	}
}
