package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	GitHubClientID      string
	GitHubClientSecret  string
	SessionSecret       string
	CacheKey            string
	DirEntryType        string
)

const (
	DirEntryTypeDir  DirEntryType = "dir"
	DirEntryTypeFile DirEntryType = "file"
)

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubClientSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubClientSecret) String() string {
	return "***********"
}

func (x SessionSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SessionSecret) String() string {
	return "***********"
}
