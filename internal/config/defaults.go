package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default snapshot file name
	DefaultOutputJSONFile = "test-parameters.json"
	// DefaultOutputJSONDir is the default snapshot directory
	DefaultOutputJSONDir = "storage"
	// DefaultLayout is the default vector layout
	DefaultLayout = LayoutStandard
	// DefaultLogLevel is the default CLI log level
	DefaultLogLevel = "warn"

	// EnvInclude names the environment variable holding the default include pattern
	EnvInclude = "VTP_INCLUDE"
	// EnvFile is the dotenv file loaded from the project path
	EnvFile = ".env"
)

// Vector layouts understood by the CLI
const (
	LayoutStandard = "standard"
	LayoutEOF      = "eof"
)

// DefaultResourceRoots are searched, in order, when resolving relative root paths
var DefaultResourceRoots = []string{
	".",
	"testdata",
	"src/test/resources",
}
