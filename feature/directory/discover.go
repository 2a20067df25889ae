package directory

import (
	"context"
	"errors"
	"net/url"

	"mamoji/core/fetch"
)

// nodeInfoRel is the link relation identifying the NodeInfo 2.0 document.
const nodeInfoRel = "http://nodeinfo.diaspora.software/ns/schema/2.0"

// softwareFamilies is the allow-list mapping self-reported software names to
// backend families. Cherrypick is a Misskey fork with a compatible API.
var softwareFamilies = map[string]Family{
	"mastodon":   FamilyMastodon,
	"misskey":    FamilyMisskey,
	"cherrypick": FamilyMisskey,
}

// ServerInfo is the result of a successful discovery walk.
type ServerInfo struct {
	Name   string
	Family Family
}

type wellKnownDocument struct {
	Links []wellKnownLink `json:"links"`
}

type wellKnownLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type nodeInfoDocument struct {
	Software struct {
		Name string `json:"name"`
	} `json:"software"`
	Metadata struct {
		NodeName string `json:"nodeName"`
	} `json:"metadata"`
}

// validateWellKnown checks the structural shape of a discovery document.
func validateWellKnown(doc *wellKnownDocument) error {
	if doc.Links == nil {
		return errors.New("missing links")
	}
	for _, l := range doc.Links {
		if l.Rel == "" {
			return errors.New("link without rel")
		}
		if l.Href != "" {
			if _, err := url.ParseRequestURI(l.Href); err != nil {
				return errors.New("link with malformed href")
			}
		}
	}
	return nil
}

// Discover classifies a host by walking its nodeinfo chain: the well-known
// discovery document yields the NodeInfo 2.0 link, which yields the software
// name and instance display name. A single failed attempt surfaces
// immediately; retrying is the caller's decision.
func Discover(ctx context.Context, client *fetch.Client, host string) (*ServerInfo, error) {
	var wk wellKnownDocument
	if err := client.GetJSON(ctx, client.HostURL(host, "/.well-known/nodeinfo"), "", &wk); err != nil {
		return nil, &fetch.ConnectivityError{Cause: err}
	}
	if err := validateWellKnown(&wk); err != nil {
		return nil, errNoServerInfo()
	}

	var href string
	for _, l := range wk.Links {
		if l.Rel == nodeInfoRel && l.Href != "" {
			href = l.Href
			break
		}
	}
	if href == "" {
		return nil, errNoServerInfo()
	}

	var ni nodeInfoDocument
	if err := client.GetJSON(ctx, href, "", &ni); err != nil {
		return nil, &fetch.ConnectivityError{Cause: err}
	}
	if ni.Software.Name == "" {
		return nil, errNoServerInfo()
	}
	if ni.Metadata.NodeName == "" {
		return nil, errNoServerName()
	}

	family, ok := softwareFamilies[ni.Software.Name]
	if !ok {
		return nil, errUnsupportedSoftware(ni.Software.Name)
	}

	return &ServerInfo{Name: ni.Metadata.NodeName, Family: family}, nil
}
