package constants

const (
	Version        = `0.1.0`
	AppName        = `lcv`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.lcv/`
	LogFile        = `lcv.log`

	DefaultAPIBase     = `https://api.github.com`
	DefaultRepository  = `Shashidharak89/MY-LEETCODE-SOLUTIONS`
	DefaultConcurrency = 4
	DefaultCacheSizeMB = 16
	DefaultLogLevel    = `info`
)

// Text shown to the user in place of raw errors.
const (
	ListingFailedMessage  = `Failed to load solutions. Please try again later.`
	FileLoadFailedMessage = `Error loading file. Please try again.`
	LoadingMessage        = `Loading...`
	NoResultsMessage      = `No problems match your search.`
)
