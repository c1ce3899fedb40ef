package crypto

// DefaultIterations is the PBKDF2 iteration count used in production.
// Provider.Iterations may be lowered (never below MinIterations) for
// fast test suites; it must never be raised implicitly.
const DefaultIterations = 100000

// MinIterations is the floor below which a Provider refuses to derive
// keys, low enough for tests to run quickly, high enough that nobody
// mistakes it for a production setting.
const MinIterations = 1000

const (
	KeySize  = 32 // AES-256
	SaltSize = 32
	IVSize   = 16 // AES block size
)

// Provider bundles every crypto primitive the archive controller needs,
// as an explicit caller-constructed value rather than package-level
// state, so tests can swap iteration counts without touching globals.
type Provider struct {
	// Iterations is the PBKDF2 iteration count DeriveKey uses. Zero
	// means DefaultIterations.
	Iterations int
}

// New returns a Provider configured for production use.
func New() *Provider {
	return &Provider{Iterations: DefaultIterations}
}

func (p *Provider) iterations() int {
	if p.Iterations == 0 {
		return DefaultIterations
	}
	return p.Iterations
}
