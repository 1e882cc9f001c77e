package constvars

const (
	URLParamInstrumentCode = "instrument_code"
	URLParamResultID       = "result_id"
	URLParamEntryID        = "entry_id"
)

// DefaultInstrumentAlias in place of an instrument code resolves to the
// configured default instrument.
const DefaultInstrumentAlias = "default"

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamLimit    = "limit"
)
