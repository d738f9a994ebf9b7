package config

import "time"

// TopLevel wraps the app config so that the config file and env vars can be
// namespaced under "duelboard"
type TopLevel struct {
	Duelboard Duelboard `json:"duelboard" mapstructure:"duelboard"`
}

type Duelboard struct {
	Server App `json:"server" mapstructure:"server"`
}

type App struct {
	BindAddress     string              `json:"bind_address" mapstructure:"bind_address"`
	ShutdownTimeout time.Duration       `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	Elasticsearch   ElasticsearchClient `json:"elasticsearch" mapstructure:"elasticsearch"`
	ApmClient       *ApmClient          `json:"apm,omitempty" mapstructure:"apm"`
	Auth            *Auth               `json:"auth,omitempty" mapstructure:"auth"`
	Logging         *Logging            `json:"logging,omitempty" mapstructure:"logging"`
	Votes           Votes               `json:"votes" mapstructure:"votes"`
	Rankings        Rankings            `json:"rankings" mapstructure:"rankings"`
	Stack           Stack               `json:"stack" mapstructure:"stack"`
}

type Logging struct {
	Json  *bool   `json:"json,omitempty" mapstructure:"json"`
	File  *string `json:"file,omitempty" mapstructure:"file"`
	Level *string `json:"level,omitempty" mapstructure:"level"`
}

type ElasticsearchClient struct {
	Addresses []string       `json:"addresses" mapstructure:"addresses"`
	User      *BasicAuthUser `json:"user,omitempty" mapstructure:"user"`
}

type ApmClient struct {
	Address     *string `json:"address,omitempty" mapstructure:"address"`
	SecretToken *string `json:"secret_token,omitempty" mapstructure:"secret_token"`
}

type Votes struct {
	Defaults VotingDefaults `json:"defaults" mapstructure:"defaults"`
	Archive  VotesArchive   `json:"archive" mapstructure:"archive"`
}

type VotingDefaults struct {
	// How many times a vote commit is re-attempted when it loses against a
	// concurrent writer before the conflict is surfaced to the caller
	VersionConflictRetryTimes uint `json:"version_conflict_retry_times" mapstructure:"version_conflict_retry_times"`
}

// VotesArchive configures the background job that moves old vote events
// into the archive index
type VotesArchive struct {
	Enabled      bool          `json:"enabled" mapstructure:"enabled"`
	RunInterval  time.Duration `json:"run_interval" mapstructure:"run_interval"`
	ArchiveAfter time.Duration `json:"archive_after" mapstructure:"archive_after"`
	ScrollSize   uint          `json:"scroll_size" mapstructure:"scroll_size"`
	ScrollTtl    time.Duration `json:"scroll_ttl" mapstructure:"scroll_ttl"`
}

type Rankings struct {
	// Upper bound on how many entries a single ranking read pulls from the
	// store in one go
	MaxEntries uint `json:"max_entries" mapstructure:"max_entries"`
}

type Stack struct {
	// How many entries a voter is dealt per stack request. The comparison
	// UI wants exactly 2.
	Size uint `json:"size" mapstructure:"size"`
}

type Auth struct {
	BasicAuth []BasicAuthUser `json:"basic_auth" mapstructure:"basic_auth"`
}

type BasicAuthUser struct {
	Name     string `json:"name" mapstructure:"name"`
	Password string `json:"password" mapstructure:"password"`
}
