package geodesy

// ContextOption customizes a Context at construction time, generalizing
// builder.BuilderOption's "functional option mutates a private config"
// pattern (lvlath/builder) to the Context's asset/chunking knobs.
//
// As a rule, option constructors never panic at runtime and ignore
// meaningless inputs (a non-positive size, an empty path) by leaving the
// prior value in place.
type ContextOption func(cfg *contextConfig)

// contextConfig holds the configurable parameters for a Context:
//   - sharedBaseDir: base directory get_shared_asset resolves against.
//   - privateBaseDir: base directory get_private_asset resolves against.
//   - minionPoolSize: number of scratch-carrying minions in the round-robin
//     chunk dispatch pool (§4.5).
//   - chunkSize: target operand-batch chunk size (§4.5).
type contextConfig struct {
	sharedBaseDir  string
	privateBaseDir string
	minionPoolSize int
	chunkSize      int
}

// defaultMinionPoolSize is the target pool size named in spec.md §4.5.
const defaultMinionPoolSize = 3

// defaultChunkSize is the target chunk size named in spec.md §4.5.
const defaultChunkSize = 1000

// newContextConfig returns a contextConfig initialized with defaults, then
// applies each ContextOption in order; later options override earlier
// ones. Defaults: shared assets under localDataDir() (which already ends
// in "geodesy"), private
// assets under the current working directory, a 3-minion pool, and a
// 1000-operand chunk size.
func newContextConfig(opts ...ContextOption) *contextConfig {
	cfg := &contextConfig{
		sharedBaseDir:  localDataDir(),
		privateBaseDir: ".",
		minionPoolSize: defaultMinionPoolSize,
		chunkSize:      defaultChunkSize,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSharedAssetDir overrides the base directory get_shared_asset
// resolves against. An empty dir is a no-op.
func WithSharedAssetDir(dir string) ContextOption {
	return func(cfg *contextConfig) {
		if dir != "" {
			cfg.sharedBaseDir = dir
		}
	}
}

// WithPrivateAssetDir overrides the base directory get_private_asset
// resolves against. An empty dir is a no-op.
func WithPrivateAssetDir(dir string) ContextOption {
	return func(cfg *contextConfig) {
		if dir != "" {
			cfg.privateBaseDir = dir
		}
	}
}

// WithMinionPoolSize overrides the round-robin minion pool size. A
// non-positive size is a no-op.
func WithMinionPoolSize(n int) ContextOption {
	return func(cfg *contextConfig) {
		if n > 0 {
			cfg.minionPoolSize = n
		}
	}
}

// WithChunkSize overrides the target per-chunk operand count. A
// non-positive size is a no-op.
func WithChunkSize(n int) ContextOption {
	return func(cfg *contextConfig) {
		if n > 0 {
			cfg.chunkSize = n
		}
	}
}
