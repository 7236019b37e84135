// Package launch builds the deep link that opens a materialized workspace
// template in the editor extension, and resolves which server it points at.
package launch

import (
	"net/url"
	"os"
	"strings"
)

const (
	// Scheme and Authority identify the editor extension handling the link
	Scheme    = "vscode"
	Authority = "Kodai-Yamamoto-SIW.workspace-launch-by-link"
	StartPath = "/start"

	// EnvServer is consulted when no server is given explicitly
	EnvServer = "WORKSPACE_LAUNCH_SERVER"

	// DefaultServer is used when neither an explicit value nor EnvServer is set
	DefaultServer = "http://localhost:8787"

	// DefaultOwnerID is sent when the caller gives no owner
	DefaultOwnerID = "ownerId"
)

// ResolveServer returns explicit when set, otherwise $WORKSPACE_LAUNCH_SERVER,
// otherwise DefaultServer. An empty environment value counts as unset.
func ResolveServer(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvServer); env != "" {
		return env
	}
	return DefaultServer
}

// LinkOptions are the query values of a start link
type LinkOptions struct {
	Server      string
	WorkspaceID string
	OwnerID     string
	Token       string
}

// BuildLink returns
//
//	vscode://Kodai-Yamamoto-SIW.workspace-launch-by-link/start?server=..&workspaceId=..&ownerId=..&token=..
//
// Parameters keep that order, are query-escaped, and are left out when
// empty. OwnerID falls back to DefaultOwnerID.
func BuildLink(opts LinkOptions) string {
	ownerID := opts.OwnerID
	if ownerID == "" {
		ownerID = DefaultOwnerID
	}

	params := []struct{ key, value string }{
		{"server", opts.Server},
		{"workspaceId", opts.WorkspaceID},
		{"ownerId", ownerID},
		{"token", opts.Token},
	}

	var query []string
	for _, p := range params {
		if p.value == "" {
			continue
		}
		query = append(query, url.QueryEscape(p.key)+"="+url.QueryEscape(p.value))
	}

	link := Scheme + "://" + Authority + StartPath
	if len(query) > 0 {
		link += "?" + strings.Join(query, "&")
	}
	return link
}
