package appconf

// Environment names the operating mode the application was started in.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// Config holds all the configuration settings for the application.
type Config struct {
	Env       Environment
	Port      int
	ApiKeys   []string
	RateLimit int
	Verbose   bool

	// NetworkPath is a JSON network snapshot to load at startup.
	NetworkPath string
	// GTFSSource is an optional GTFS static feed (URL or local file) to
	// build the network from when no snapshot is given.
	GTFSSource string
	// DBPath is the SQLite database used to persist the network.
	DBPath string
}

// EnvFlagToEnvironment maps the -env flag value to an Environment,
// defaulting to Development for unrecognized values.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

// String returns the flag spelling of the environment.
func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}
