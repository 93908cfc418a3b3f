package dhwire

// Reasons passed to Hooks.EntryRejected.
const (
	ReasonCorrupt       = "corrupt"
	ReasonTextDecode    = "text_decode"
	ReasonCodecMismatch = "codec_mismatch"
	ReasonValueDecode   = "value_decode"
)

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
type Hooks interface {
	// An entry was deleted on read because it could not be decoded.
	// reason is one of the Reason* constants.
	EntryRejected(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// Provider returned an error. op ∈ {"get", "set", "del"}.
	ProviderError(op, storageKey string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) EntryRejected(string, string)        {}
func (NopHooks) ProviderSetRejected(string)          {}
func (NopHooks) ProviderError(string, string, error) {}
