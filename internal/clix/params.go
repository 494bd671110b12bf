package clix

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/pflag"
)

type OutputParams struct {
	JSON bool
}

func ParseOutput(flags *pflag.FlagSet) OutputParams {
	asJSON, _ := flags.GetBool("json")
	return OutputParams{JSON: asJSON}
}

// RemoteParams says whether to call a running server instead of classifying in-process.
type RemoteParams struct {
	Enabled bool
	URL     string
}

// ParseRemote reads --remote. A bare --remote uses fallbackURL (client.url from config).
func ParseRemote(flags *pflag.FlagSet, fallbackURL string) (RemoteParams, error) {
	if !flags.Changed("remote") {
		return RemoteParams{}, nil
	}
	raw, _ := flags.GetString("remote")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallbackURL
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return RemoteParams{}, fmt.Errorf("invalid --remote URL %q", raw)
	}
	return RemoteParams{Enabled: true, URL: strings.TrimRight(raw, "/")}, nil
}

// JoinArgs rebuilds free text split across positional arguments.
func JoinArgs(args []string) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if a = strings.TrimSpace(a); a != "" {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, " ")
}
