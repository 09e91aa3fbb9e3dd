package llm

// BackendKind names a Backend variant in logs and persisted metadata.
type BackendKind string

const (
	KindLocal        BackendKind = "local"
	KindRemote       BackendKind = "remote_api"
	KindUnconfigured BackendKind = "unconfigured"
)

const DefaultTemperature = 0.7

// DefaultMaxTokens caps output tokens on every remote request.
const DefaultMaxTokens = 512

// Backend is a closed set of response backends: LocalBackend, RemoteBackend or
// UnconfiguredBackend. The unexported method keeps other packages from adding variants.
type Backend interface {
	Kind() BackendKind
	sealed()
}

// LocalBackend answers with a synthetic placeholder and never touches the network.
type LocalBackend struct{}

func (LocalBackend) Kind() BackendKind { return KindLocal }
func (LocalBackend) sealed()           {}

// RemoteBackend calls an OpenAI-compatible chat-completions endpoint.
type RemoteBackend struct {
	Domain       string
	Endpoint     string
	APIKey       string
	Model        string
	Temperature  float64
	SystemPrompt string
}

func (RemoteBackend) Kind() BackendKind { return KindRemote }
func (RemoteBackend) sealed()           {}

// UnconfiguredBackend is selected when neither local nor a supported API mode is set.
type UnconfiguredBackend struct{}

func (UnconfiguredBackend) Kind() BackendKind { return KindUnconfigured }
func (UnconfiguredBackend) sealed()           {}

// ModelOf returns the model name a backend will use, if any.
func ModelOf(b Backend) string {
	if r, ok := b.(RemoteBackend); ok {
		return r.Model
	}
	return ""
}
