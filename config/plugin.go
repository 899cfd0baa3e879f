package config

// Naming conventions accepted by `namingConvention`.
const (
	NamingConventionPascalCase = "pascalCase"
	NamingConventionKeep       = "keep"
)

// DocumentModeString is the only supported `documentMode`.
const DocumentModeString = "string"

// RawPluginConfig is the `config` section as written by the user.
// Booleans are pointers so that an absent key can fall back to its default.
type RawPluginConfig struct {
	// Customized the output by enabling/disabling the generated hooks.
	WithHooks *bool `yaml:"withHooks,omitempty"`
	// Customized the output by enabling/disabling the generated requests.
	WithRequests *bool `yaml:"withRequests,omitempty"`
	// Deprecated: additive stale-while-revalidate hooks, implies withRequests.
	WithSWR *bool `yaml:"withSWR,omitempty"`

	PureMagicComment      *bool `yaml:"pureMagicComment,omitempty"`
	OmitOperationSuffix   *bool `yaml:"omitOperationSuffix,omitempty"`
	DedupeOperationSuffix *bool `yaml:"dedupeOperationSuffix,omitempty"`
	OptimizeDocumentNode  *bool `yaml:"optimizeDocumentNode,omitempty"`
	DedupeFragments       *bool `yaml:"dedupeFragments,omitempty"`
	TransformUnderscore   *bool `yaml:"transformUnderscore,omitempty"`

	DocumentMode     string `yaml:"documentMode,omitempty"`
	NamingConvention string `yaml:"namingConvention,omitempty"`

	TypesPrefix            string  `yaml:"typesPrefix,omitempty"`
	TypesSuffix            string  `yaml:"typesSuffix,omitempty"`
	DocumentVariablePrefix string  `yaml:"documentVariablePrefix,omitempty"`
	DocumentVariableSuffix *string `yaml:"documentVariableSuffix,omitempty"`
	FragmentVariablePrefix string  `yaml:"fragmentVariablePrefix,omitempty"`
	FragmentVariableSuffix *string `yaml:"fragmentVariableSuffix,omitempty"`

	// Namespace the operation types are referenced through, e.g. "Operations".
	ImportOperationTypesFrom string `yaml:"importOperationTypesFrom,omitempty"`
	// Module the namespace is imported from. Without it no import line is emitted.
	OperationTypesPath string `yaml:"operationTypesPath,omitempty"`
}

// PluginConfig is the resolved, immutable render configuration.
type PluginConfig struct {
	WithHooks             bool
	WithRequests          bool
	WithSWR               bool
	PureMagicComment      bool
	OmitOperationSuffix   bool
	DedupeOperationSuffix bool
	OptimizeDocumentNode  bool
	DedupeFragments       bool
	TransformUnderscore   bool

	DocumentMode     string
	NamingConvention string

	TypesPrefix            string
	TypesSuffix            string
	DocumentVariablePrefix string
	DocumentVariableSuffix string
	FragmentVariablePrefix string
	FragmentVariableSuffix string

	ImportOperationTypesFrom string
	OperationTypesPath       string
}

// Resolve applies defaults. A nil receiver resolves to the default configuration.
func (r *RawPluginConfig) Resolve() PluginConfig {
	if r == nil {
		r = &RawPluginConfig{}
	}

	cfg := PluginConfig{
		WithHooks:             boolValue(r.WithHooks, true),
		WithRequests:          boolValue(r.WithRequests, false),
		WithSWR:               boolValue(r.WithSWR, false),
		PureMagicComment:      boolValue(r.PureMagicComment, false),
		OmitOperationSuffix:   boolValue(r.OmitOperationSuffix, false),
		DedupeOperationSuffix: boolValue(r.DedupeOperationSuffix, false),
		OptimizeDocumentNode:  boolValue(r.OptimizeDocumentNode, true),
		DedupeFragments:       boolValue(r.DedupeFragments, false),
		TransformUnderscore:   boolValue(r.TransformUnderscore, false),

		DocumentMode:     stringValue(r.DocumentMode, DocumentModeString),
		NamingConvention: stringValue(r.NamingConvention, NamingConventionPascalCase),

		TypesPrefix:            r.TypesPrefix,
		TypesSuffix:            r.TypesSuffix,
		DocumentVariablePrefix: r.DocumentVariablePrefix,
		DocumentVariableSuffix: "Document",
		FragmentVariablePrefix: r.FragmentVariablePrefix,
		FragmentVariableSuffix: "FragmentDoc",

		ImportOperationTypesFrom: r.ImportOperationTypesFrom,
		OperationTypesPath:       r.OperationTypesPath,
	}

	// an explicitly empty suffix is allowed
	if r.DocumentVariableSuffix != nil {
		cfg.DocumentVariableSuffix = *r.DocumentVariableSuffix
	}
	if r.FragmentVariableSuffix != nil {
		cfg.FragmentVariableSuffix = *r.FragmentVariableSuffix
	}

	// SWR hooks fetch through the request functions.
	if cfg.WithSWR {
		cfg.WithRequests = true
	}

	return cfg
}

func boolValue(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func stringValue(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
