package directory_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mamoji/core/fetch"
	"mamoji/feature/directory"

	"github.com/stretchr/testify/assert"
)

func newTestClient() *fetch.Client {
	return fetch.NewClient(fetch.Config{
		TimeoutSeconds: 5,
		UserAgent:      "mamoji-test/1.0",
		Insecure:       true,
	})
}

// fakeInstance serves the nodeinfo discovery chain of a federated server.
func fakeInstance(t *testing.T, software, nodeName string) (*httptest.Server, string) {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/.well-known/nodeinfo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"links":[
			{"rel":"http://nodeinfo.diaspora.software/ns/schema/2.1","href":"%s/nodeinfo/2.1"},
			{"rel":"http://nodeinfo.diaspora.software/ns/schema/2.0","href":"%s/nodeinfo/2.0"}
		]}`, srv.URL, srv.URL)
	})
	mux.HandleFunc("/nodeinfo/2.0", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"software":{"name":"%s","version":"1.0.0"},"metadata":{"nodeName":"%s"}}`,
			software, nodeName)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, strings.TrimPrefix(srv.URL, "http://")
}

func TestDiscoverMastodon(t *testing.T) {
	_, host := fakeInstance(t, "mastodon", "Example Social")

	info, err := directory.Discover(context.Background(), newTestClient(), host)
	assert.NoError(t, err)
	assert.Equal(t, "Example Social", info.Name)
	assert.Equal(t, directory.FamilyMastodon, info.Family)
}

func TestDiscoverMisskeyFamily(t *testing.T) {
	for _, software := range []string{"misskey", "cherrypick"} {
		_, host := fakeInstance(t, software, "Mi Instance")

		info, err := directory.Discover(context.Background(), newTestClient(), host)
		assert.NoError(t, err, software)
		assert.Equal(t, directory.FamilyMisskey, info.Family, software)
	}
}

func TestDiscoverUnsupportedSoftware(t *testing.T) {
	_, host := fakeInstance(t, "pleroma", "Some Instance")

	_, err := directory.Discover(context.Background(), newTestClient(), host)

	var discoveryErr *directory.DiscoveryError
	assert.ErrorAs(t, err, &discoveryErr)
	assert.Equal(t, "pleroma", discoveryErr.Software)
	assert.Contains(t, err.Error(), "server software is not supported (pleroma)")
}

func TestDiscoverMissingNodeInfoLink(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/nodeinfo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"links":[{"rel":"http://nodeinfo.diaspora.software/ns/schema/1.0","href":"http://example.test/nodeinfo/1.0"}]}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	host := strings.TrimPrefix(srv.URL, "http://")

	_, err := directory.Discover(context.Background(), newTestClient(), host)

	var discoveryErr *directory.DiscoveryError
	assert.ErrorAs(t, err, &discoveryErr)
	assert.Contains(t, err.Error(), "server information could not be determined")
}

func TestDiscoverMissingNodeName(t *testing.T) {
	_, host := fakeInstance(t, "mastodon", "")

	_, err := directory.Discover(context.Background(), newTestClient(), host)

	var discoveryErr *directory.DiscoveryError
	assert.ErrorAs(t, err, &discoveryErr)
	assert.Contains(t, err.Error(), "server name could not be determined")
}

func TestDiscoverUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	host := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	_, err := directory.Discover(context.Background(), newTestClient(), host)

	var connErr *fetch.ConnectivityError
	assert.ErrorAs(t, err, &connErr)
	assert.Contains(t, err.Error(), "could not connect to server")
}
