package avatarsvc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/student"
)

// Service resolves per-student avatar images: a cached file is streamed back
// directly, otherwise the placeholder service is fetched and the bytes are
// cached opportunistically. Cached files never expire.
type Service struct {
	root   string
	url    string
	client *http.Client
	logger core.Logger
}

var _ student.AvatarStore = (*Service)(nil)

func NewService(conf *core.Config, logger core.Logger) *Service {
	if err := os.MkdirAll(conf.Media.Root, 0o755); err != nil {
		logger.Error(fmt.Sprintf("creating media root %s: %v", conf.Media.Root, err), err)
	}
	return &Service{
		root:   conf.Media.Root,
		url:    conf.Media.AvatarURL,
		client: http.DefaultClient,
		logger: logger,
	}
}

// Resolve returns the avatar image for id. On a cache miss the fetched bytes
// are returned to the caller while a detached goroutine writes the cache
// file; its failure is logged, never surfaced. Concurrent first requests may
// race on the same file - last write wins.
func (svc *Service) Resolve(ctx context.Context, id string) (io.ReadCloser, error) {
	path := svc.path(id)

	// any non-openable cache entry counts as a miss
	if f, err := os.Open(path); err == nil {
		return f, nil
	}

	data, err := svc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	go svc.cache(path, data)
	return ioutil.NopCloser(bytes.NewReader(data)), nil
}

// Remove deletes the cached avatar file for id, if any.
func (svc *Service) Remove(id string) error {
	return os.Remove(svc.path(id))
}

func (svc *Service) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building avatar request for %s", svc.url)
	}
	resp, err := svc.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching avatar from %s", svc.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("avatar service returned %s", resp.Status)
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading avatar response")
	}
	return data, nil
}

func (svc *Service) cache(path string, data []byte) {
	if err := ioutil.WriteFile(path, data, 0o644); err != nil {
		svc.logger.Error(fmt.Sprintf("caching avatar %s: %v", path, err), err)
	}
}

func (svc *Service) path(id string) string {
	return filepath.Join(svc.root, id+".jpg")
}
