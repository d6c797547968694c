package command

import "github.com/odyssey-erp/registrar/internal/book"

// Listing is the sequence a command displayed. At most one per result.
type Listing struct {
	Kind    book.Kind
	Records []book.Record
}

// Result is what a command hands back to the front end.
type Result struct {
	Feedback string
	Output   string
	Exit     bool

	listing *Listing
	failed  bool
}

// NewResult builds a plain result.
func NewResult(feedback string) Result {
	return Result{Feedback: feedback}
}

// WithListing builds a result that displays records of kind.
func WithListing(feedback string, kind book.Kind, records []book.Record) Result {
	return Result{Feedback: feedback, listing: &Listing{Kind: kind, Records: records}}
}

// Failure builds a result for a recovered user error.
func Failure(feedback string) Result {
	return Result{Feedback: feedback, failed: true}
}

// WithOutput attaches detail text.
func (r Result) WithOutput(output string) Result {
	r.Output = output
	return r
}

// Listing returns the displayed sequence, if any.
func (r Result) Listing() (Listing, bool) {
	if r.listing == nil {
		return Listing{}, false
	}
	return *r.listing, true
}

// Failed reports whether the command stopped on a user error.
func (r Result) Failed() bool { return r.failed }
