package cli

import (
	"fmt"
	"io"

	"github.com/odyssey-erp/registrar/internal/command"
	"github.com/odyssey-erp/registrar/internal/lastshown"
)

// render prints the numbered listing first, then feedback and detail text.
func render(w io.Writer, res command.Result) {
	if listing, ok := res.Listing(); ok {
		for i, r := range listing.Records {
			fmt.Fprintf(w, "%d. %v\n", i+lastshown.Offset, r)
		}
	}
	if res.Feedback != "" {
		fmt.Fprintln(w, res.Feedback)
	}
	if res.Output != "" {
		fmt.Fprintln(w, res.Output)
	}
}
