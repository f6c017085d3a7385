package drafter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/Kaushal-04/Legal-Email-Assistant/internal/analyzer"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/clauses"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/llm"
)

// sampleEmail is the documented termination-advice request the mock fixtures
// were derived from.
const sampleEmail = `Subject: Termination of Services under MSA
Dear Counsel,
We refer to the Master Services Agreement dated 10 March 2023 between Acme
Technologies Pvt. Ltd. ("Acme") and Brightwave Solutions LLP ("Brightwave").
Due to ongoing performance issues and repeated delays in delivery, we are considering
termination of the Agreement for cause with effect from 1 December 2025.
Please confirm:
1. Whether we are contractually entitled to terminate for cause on the basis of repeated
delays in delivery;
2. The minimum notice period required.
We would appreciate your advice by 18 November 2025.
Regards,
Priya Sharma
Legal Manager, Acme Technologies Pvt. Ltd.`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDraft_MockMode(t *testing.T) {
	d := New(nil, llm.ModeMock, DefaultPrompts(), discardLogger())

	got := d.Draft(context.Background(), "whatever email text", analyzer.FallbackAnalysis(), clauses.Default())
	if got != FallbackReply() {
		t.Errorf("mock draft mismatch:\ngot  %q\nwant %q", got, FallbackReply())
	}

	// Independent of input.
	other := d.Draft(context.Background(), "different text entirely", &analyzer.Analysis{Intent: "inquiry"}, clauses.Set{})
	if other != FallbackReply() {
		t.Errorf("mock draft depends on input: %q", other)
	}
}

// TestMockPipeline_MatchesDocumentedSample runs the full mock pipeline over
// the sample email and checks both stages reproduce the documented output
// exactly.
func TestMockPipeline_MatchesDocumentedSample(t *testing.T) {
	an := analyzer.New(nil, llm.ModeMock, analyzer.DefaultPrompts(), discardLogger())
	dr := New(nil, llm.ModeMock, DefaultPrompts(), discardLogger())

	analysis := an.Analyze(context.Background(), sampleEmail)

	want := &analyzer.Analysis{
		Intent:       "legal_advice_request",
		Parties:      []string{"Acme Technologies Pvt. Ltd.", "Brightwave Solutions LLP"},
		Dates:        []string{"10 March 2023", "18 November 2025"},
		Questions: []string{
			"Whether we are contractually entitled to terminate for cause on the basis of repeated delays in delivery",
			"The minimum notice period required",
		},
		PrimaryTopic: "termination_for_cause",
		Urgency:      "high",
	}
	if !reflect.DeepEqual(analysis, want) {
		t.Errorf("analysis mismatch:\ngot  %+v\nwant %+v", analysis, want)
	}

	reply := dr.Draft(context.Background(), sampleEmail, analysis, clauses.Default())
	if !strings.HasPrefix(reply, "Dear Ms. Sharma,") {
		t.Errorf("reply does not open as documented: %q", reply)
	}
	if !strings.HasSuffix(reply, "Regards,\nLegal Team") {
		t.Errorf("reply does not close as documented: %q", reply)
	}
	if !strings.Contains(reply, "thirty (30) days' prior written notice") {
		t.Errorf("reply missing notice period: %q", reply)
	}
	if reply != FallbackReply() {
		t.Error("mock pipeline reply is not byte-for-byte the documented fixture")
	}
}

func TestDraft_LiveVerbatim(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []llm.Message `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		gotPrompt = req.Messages[len(req.Messages)-1].Content

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  Dear client,\nhere is the draft.\n"}},
			},
		})
	}))
	defer server.Close()

	client := llm.NewClient("test-key", "test-model")
	client.SetTestTransport(server.URL)
	d := New(client, llm.ModeLive, DefaultPrompts(), discardLogger())

	a := &analyzer.Analysis{
		Intent:    "legal_advice_request",
		Parties:   []string{"Acme Technologies Pvt. Ltd.", "Brightwave Solutions LLP"},
		Dates:     []string{"10 March 2023"},
		Questions: []string{"Can we terminate?"},
	}

	reply := d.Draft(context.Background(), sampleEmail, a, clauses.Default())

	// Free text comes back verbatim — no trimming, no post-validation.
	if reply != "  Dear client,\nhere is the draft.\n" {
		t.Errorf("reply not returned verbatim: %q", reply)
	}

	// The prompt embeds the client, the clause library and the analysis.
	if !strings.Contains(gotPrompt, "Acme Technologies Pvt. Ltd.") {
		t.Error("prompt missing client name")
	}
	if !strings.Contains(gotPrompt, "Repeated failure to meet delivery timelines") {
		t.Error("prompt missing clause text")
	}
	if !strings.Contains(gotPrompt, `"intent": "legal_advice_request"`) {
		t.Error("prompt missing analysis JSON")
	}
	if !strings.Contains(gotPrompt, "Termination of Services under MSA") {
		t.Error("prompt missing the incoming email")
	}
}

func TestDraft_LiveTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := llm.NewClient("test-key", "test-model")
	client.SetTestTransport(server.URL)
	d := New(client, llm.ModeLive, DefaultPrompts(), discardLogger())

	reply := d.Draft(context.Background(), sampleEmail, analyzer.FallbackAnalysis(), clauses.Default())
	if reply != FallbackReply() {
		t.Errorf("expected fallback reply on transport failure, got %q", reply)
	}
}

func TestDraft_LiveNoParties(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []llm.Message `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotPrompt = req.Messages[len(req.Messages)-1].Content

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "draft"}},
			},
		})
	}))
	defer server.Close()

	client := llm.NewClient("test-key", "test-model")
	client.SetTestTransport(server.URL)
	d := New(client, llm.ModeLive, DefaultPrompts(), discardLogger())

	a := &analyzer.Analysis{Intent: "inquiry", Parties: []string{}, Dates: []string{}, Questions: []string{}}
	d.Draft(context.Background(), "an email", a, clauses.Default())

	if !strings.Contains(gotPrompt, "Your Client: the client") {
		t.Error("expected generic client placeholder when parties is empty")
	}
}
