package models

import "errors"

// Error kinds for the query and ingestion paths. Internal layers return
// wrapped errors; the request boundary maps each kind to a fail-soft
// default answer, so no query-path error ever reaches the end user as a
// protocol failure.
var (
	// ErrModelUnavailable means the embedding or generative model could not
	// be reached at startup. Fatal; never retried per call.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrIngestion means a document's chunk batch could not be committed.
	// The whole batch for that document is abandoned; documents committed
	// in earlier calls are unaffected.
	ErrIngestion = errors.New("ingestion failed")

	// ErrRetrieval means the similarity search failed. The pipeline
	// degrades to an empty result set rather than propagating it.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrSynthesis means the generative model call failed. The boundary
	// maps it to a fixed apologetic answer with confidence 0.
	ErrSynthesis = errors.New("synthesis failed")
)
