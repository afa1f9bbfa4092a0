// Package errors provides structured error types for better observability
// and programmatic error handling across the crawler.
//
// Parsing failures carry one of the measurement codes so callers can decide
// whether to drop a single measurement or a whole ingredient:
//
//	amount, unit, err := parser.Tokenize(text)
//	if errors.HasCode(err, errors.ErrCodeUnparsableAmount) {
//	    // drop this measurement, keep the ingredient
//	}
//
// Wrapping with context:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to fetch search page",
//	    cause,
//	    map[string]any{
//	        "term": term,
//	        "page": page,
//	    },
//	)
package errors
