package types

import "log/slog"

type (
	JobName       string
	BuildNumber   int64
	CIAPIToken    string
	ContainerName string
)

func (x CIAPIToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x CIAPIToken) String() string {
	return "***********"
}
