// config/manager.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/stopbars/bars/log"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/brunoga/deep"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

// Manager resolves aerodromes to config packages using a Mapping,
// fetching each package the first time one of its aerodromes is asked
// for. It is safe for concurrent use.
type Manager struct {
	sources []Source
	base    string
	s3      *S3Credentials

	cache      *lru.Cache[string, *Config]
	HTTPClient *http.Client

	lg *log.Logger
}

// Packages beyond this many are evicted least-recently-used first.
const maxCachedPackages = 16

func NewManager(m Mapping, local LocalConfig, lg *log.Logger) *Manager {
	cache, err := lru.New[string, *Config](maxCachedPackages)
	if err != nil {
		// Only possible for a non-positive size.
		panic(err)
	}
	return &Manager{
		sources:    m.Config,
		base:       m.Base,
		s3:         local.S3,
		cache:      cache,
		HTTPClient: http.DefaultClient,
		lg:         lg,
	}
}

// Aerodromes returns the ICAO codes of all mapped aerodromes.
func (m *Manager) Aerodromes() []string {
	var icaos []string
	for _, src := range m.sources {
		icaos = append(icaos, src.Aerodromes...)
	}
	slices.Sort(icaos)
	return slices.Compact(icaos)
}

func (m *Manager) source(icao string) (Source, bool) {
	for _, src := range m.sources {
		if slices.Contains(src.Aerodromes, icao) {
			return src, true
		}
	}
	return Source{}, false
}

// Load returns the configuration of the given aerodrome. The result is a
// private copy that the caller may modify.
func (m *Manager) Load(ctx context.Context, icao string) (*Aerodrome, error) {
	src, ok := m.source(icao)
	if !ok {
		m.lg.Warnf("requested aerodrome %s has no mapped config source", icao)
		return nil, fmt.Errorf("%s: %w", icao, ErrNoSource)
	}

	c, err := m.get(ctx, src.Src)
	if err != nil {
		return nil, err
	}

	ad, ok := c.Aerodrome(icao)
	if !ok {
		m.lg.Warnf("%s: loaded config source is missing advertised %s", src.Src, icao)
		return nil, fmt.Errorf("%s: %s: %w", src.Src, icao, ErrNotInSource)
	}

	cp, err := deep.Copy(*ad)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", icao, err)
	}

	m.lg.Debugf("loaded %s from %q", icao, src.Src)
	return &cp, nil
}

// Preload fetches every mapped source that is not already cached.
func (m *Manager) Preload(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, src := range m.sources {
		g.Go(func() error {
			_, err := m.get(ctx, src.Src)
			return err
		})
	}
	return g.Wait()
}

func (m *Manager) get(ctx context.Context, src string) (*Config, error) {
	if c, ok := m.cache.Get(src); ok {
		return c, nil
	}

	m.lg.Debugf("fetching uncached source %q", src)
	b, err := m.fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	c, err := LoadBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	m.cache.Add(src, c)
	return c, nil
}

func (m *Manager) fetch(ctx context.Context, src string) ([]byte, error) {
	if !strings.Contains(src, "://") {
		return os.ReadFile(filepath.Join(m.base, src))
	}

	u, err := url.Parse(src)
	if err != nil {
		return nil, err
	}

	switch u.Scheme {
	case "http", "https":
		return m.fetchHTTP(ctx, src)
	case "gs":
		return fetchGCS(ctx, u.Host, strings.TrimPrefix(u.Path, "/"))
	case "s3":
		return m.fetchS3(ctx, u.Host, strings.TrimPrefix(u.Path, "/"))
	default:
		return nil, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}

func (m *Manager) fetchHTTP(ctx context.Context, src string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}

	resp, err := m.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, MaxDecodedSize))
}

// Config packages in GCS are public, so no credentials are needed.
func fetchGCS(ctx context.Context, bucket, object string) ([]byte, error) {
	client, err := storage.NewClient(ctx, option.WithoutAuthentication())
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(io.LimitReader(r, MaxDecodedSize))
}

func (m *Manager) fetchS3(ctx context.Context, bucket, key string) ([]byte, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if m.s3 != nil {
		if m.s3.Region != "" {
			opts = append(opts, awsconfig.WithRegion(m.s3.Region))
		}
		if m.s3.AccessKeyID != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(m.s3.AccessKeyID, m.s3.SecretAccessKey, "")))
		}
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	out, err := s3.NewFromConfig(cfg).GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(io.LimitReader(out.Body, MaxDecodedSize))
}
