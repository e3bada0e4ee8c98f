package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelmfileRepositoryLookup(t *testing.T) {
	helmfile := Helmfile{
		Repositories: []HelmfileRepository{
			{Name: "jetstack", URL: "https://charts.jetstack.io"},
			{Name: "myrepo", URL: "https://charts.example.com"},
		},
	}

	repo, found := helmfile.Repository("myrepo")
	assert.True(t, found)
	assert.Equal(t, "https://charts.example.com", repo.URL)

	_, found = helmfile.Repository("unknown")
	assert.False(t, found)
}

func TestHelmfileReleaseLookup(t *testing.T) {
	helmfile := Helmfile{
		Releases: []HelmfileRelease{
			{Name: "cert-manager", Chart: "jetstack/cert-manager", Version: "v1.18.2", Namespace: "cert-manager"},
		},
	}

	release, found := helmfile.Release("cert-manager")
	assert.True(t, found)
	assert.Equal(t, "jetstack/cert-manager", release.Chart)
	assert.Equal(t, "v1.18.2", release.Version)

	_, found = helmfile.Release("unknown")
	assert.False(t, found)
}
