package analyzer

// Analysis is the structured metadata extracted from one inbound email.
// Intent, Parties, Dates and Questions are the validation contract: a live
// response missing any of them, or typing any of them wrongly, is discarded
// wholesale in favour of the fixture record. PrimaryTopic and Urgency are
// best-effort enrichment and carry no such guarantee.
type Analysis struct {
	Intent       string   `json:"intent"`
	Parties      []string `json:"parties"`
	Dates        []string `json:"dates"`
	Questions    []string `json:"questions"`
	PrimaryTopic string   `json:"primary_topic,omitempty"`
	Urgency      string   `json:"urgency,omitempty"`
}

// requiredFields are the keys a live response must carry to be accepted.
var requiredFields = []string{"intent", "parties", "dates", "questions"}
