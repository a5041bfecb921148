// Package pokeapi is the remote data gateway: a thin set of read-only HTTP
// calls against the PokeAPI v2 REST endpoints. It performs no caching and no
// retries; callers own resilience.
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokedex/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
)

// FullIndexLimit is the page size used to pull the complete entity index in
// one request. It comfortably exceeds the number of entities the source has.
const FullIndexLimit = 100000

// Endpoint labels, also used for metrics
const (
	endpointPokemon        = "pokemon"
	endpointPokemonList    = "pokemon-list"
	endpointSpecies        = "pokemon-species"
	endpointEvolutionChain = "evolution-chain"
	endpointRegion         = "region"
	endpointRegionList     = "region-list"
	endpointLocation       = "location"
	endpointLocationList   = "location-list"
	endpointLocationArea   = "location-area"
)

// Client defines the interface for remote catalog interactions
type Client interface {
	// GetEntity fetches one entity by lowercase name or numeric id
	GetEntity(ctx context.Context, nameOrID string) (*entities.Entity, error)

	// ListEntities fetches one window of the entity index
	ListEntities(ctx context.Context, limit, offset int) (*entities.Page, error)

	// ListAllEntities fetches the complete entity index in a single request
	ListAllEntities(ctx context.Context) ([]entities.NamedResource, error)

	// GetSpecies fetches the taxonomy record for a species name or id
	GetSpecies(ctx context.Context, nameOrID string) (*entities.Species, error)

	// GetEvolutionChain fetches an evolution chain by the opaque URL found on
	// a taxonomy record
	GetEvolutionChain(ctx context.Context, chainURL string) (*entities.EvolutionChain, error)

	// ListRegions fetches the region index
	ListRegions(ctx context.Context) (*entities.Page, error)

	// GetRegion fetches one region by name
	GetRegion(ctx context.Context, name string) (*entities.Region, error)

	// ListLocations fetches one window of the location index
	ListLocations(ctx context.Context, limit, offset int) (*entities.Page, error)

	// GetLocation fetches one location by name
	GetLocation(ctx context.Context, name string) (*entities.Location, error)

	// GetLocationArea fetches one location area by name
	GetLocationArea(ctx context.Context, name string) (*entities.LocationArea, error)
}

// Config contains configuration options for the gateway.
type Config struct {
	// BaseURL of the API (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the transport; HTTPTimeout is ignored when set
	HTTPClient *http.Client
	// RequestsPerSecond paces outgoing requests; 0 disables pacing
	RequestsPerSecond float64
	// Metrics records request counts and latency (optional)
	Metrics *Metrics
	// Logger (optional, defaults to slog.Default())
	Logger *slog.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://pokeapi.co/api/v2/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	vb := errors.NewValidationBuilder()
	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		vb.Fieldf("BaseURL", "must be an absolute URL, got %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if cfg.RequestsPerSecond < 0 {
		vb.Field("RequestsPerSecond", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *Metrics
	logger     *slog.Logger
}

// New creates a new gateway client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid base URL")
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    limiter,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
	}, nil
}

// normalizeKey lower-cases a name or id path segment
func normalizeKey(nameOrID string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(nameOrID))
	if key == "" {
		return "", errors.InvalidArgument("name or id is required")
	}
	return key, nil
}

func (c *client) resourceURL(resource, key string) string {
	return c.baseURL.JoinPath(resource, url.PathEscape(key)).String()
}

func (c *client) listURL(resource string, limit, offset int) string {
	u := c.baseURL.JoinPath(resource)
	u.RawQuery = url.Values{
		"limit":  []string{strconv.Itoa(limit)},
		"offset": []string{strconv.Itoa(offset)},
	}.Encode()
	return u.String()
}

func validateWindow(limit, offset int) error {
	vb := errors.NewValidationBuilder()
	if limit <= 0 {
		vb.Field("limit", "must be positive")
	}
	if offset < 0 {
		vb.Field("offset", "must not be negative")
	}
	return vb.Build()
}

func (c *client) GetEntity(ctx context.Context, nameOrID string) (*entities.Entity, error) {
	key, err := normalizeKey(nameOrID)
	if err != nil {
		return nil, err
	}

	var resp apiPokemon
	if err := c.getJSON(ctx, endpointPokemon, c.resourceURL("pokemon", key), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get entity %s", key)
	}
	return convertPokemon(&resp), nil
}

func (c *client) ListEntities(ctx context.Context, limit, offset int) (*entities.Page, error) {
	if err := validateWindow(limit, offset); err != nil {
		return nil, err
	}

	var resp apiList
	if err := c.getJSON(ctx, endpointPokemonList, c.listURL("pokemon", limit, offset), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to list entities (limit %d, offset %d)", limit, offset)
	}
	return convertList(&resp), nil
}

func (c *client) ListAllEntities(ctx context.Context) ([]entities.NamedResource, error) {
	c.logger.Info("Fetching full entity index")

	var resp apiList
	if err := c.getJSON(ctx, endpointPokemonList, c.listURL("pokemon", FullIndexLimit, 0), &resp); err != nil {
		return nil, errors.Wrap(err, "failed to list full entity index")
	}

	c.logger.Info("Got full entity index", "count", len(resp.Results))
	return convertList(&resp).Results, nil
}

func (c *client) GetSpecies(ctx context.Context, nameOrID string) (*entities.Species, error) {
	key, err := normalizeKey(nameOrID)
	if err != nil {
		return nil, err
	}

	var resp apiSpecies
	if err := c.getJSON(ctx, endpointSpecies, c.resourceURL("pokemon-species", key), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get species %s", key)
	}
	return convertSpecies(&resp), nil
}

func (c *client) GetEvolutionChain(ctx context.Context, chainURL string) (*entities.EvolutionChain, error) {
	if strings.TrimSpace(chainURL) == "" {
		return nil, errors.InvalidArgument("evolution chain URL is required")
	}

	ref, err := url.Parse(chainURL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid evolution chain URL").
			WithMeta("url", chainURL)
	}
	// Relative references resolve against the base URL; absolute ones are
	// used as given.
	target := c.baseURL.ResolveReference(ref).String()

	var resp apiEvolutionChain
	if err := c.getJSON(ctx, endpointEvolutionChain, target, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to get evolution chain")
	}
	if resp.Chain == nil {
		return nil, errors.DataLossf("evolution chain %d has no root", resp.ID).WithMeta("url", target)
	}
	return convertEvolutionChain(&resp), nil
}

func (c *client) ListRegions(ctx context.Context) (*entities.Page, error) {
	var resp apiList
	if err := c.getJSON(ctx, endpointRegionList, c.baseURL.JoinPath("region").String(), &resp); err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}
	return convertList(&resp), nil
}

func (c *client) GetRegion(ctx context.Context, name string) (*entities.Region, error) {
	key, err := normalizeKey(name)
	if err != nil {
		return nil, err
	}

	var resp apiRegion
	if err := c.getJSON(ctx, endpointRegion, c.resourceURL("region", key), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get region %s", key)
	}
	return convertRegion(&resp), nil
}

func (c *client) ListLocations(ctx context.Context, limit, offset int) (*entities.Page, error) {
	if err := validateWindow(limit, offset); err != nil {
		return nil, err
	}

	var resp apiList
	if err := c.getJSON(ctx, endpointLocationList, c.listURL("location", limit, offset), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to list locations (limit %d, offset %d)", limit, offset)
	}
	return convertList(&resp), nil
}

func (c *client) GetLocation(ctx context.Context, name string) (*entities.Location, error) {
	key, err := normalizeKey(name)
	if err != nil {
		return nil, err
	}

	var resp apiLocation
	if err := c.getJSON(ctx, endpointLocation, c.resourceURL("location", key), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get location %s", key)
	}
	return convertLocation(&resp), nil
}

func (c *client) GetLocationArea(ctx context.Context, name string) (*entities.LocationArea, error) {
	key, err := normalizeKey(name)
	if err != nil {
		return nil, err
	}

	var resp apiLocationArea
	if err := c.getJSON(ctx, endpointLocationArea, c.resourceURL("location-area", key), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get location area %s", key)
	}
	return convertLocationArea(&resp), nil
}

// getJSON issues one GET and decodes a 2xx JSON body into out. Every failure
// comes back as an *errors.Error whose code reflects the cause.
func (c *client) getJSON(ctx context.Context, endpoint, target string, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return transportError(ctx, err).WithMeta("url", target)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build request").
			WithMeta("url", target)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(endpoint, "error", time.Since(start))
		c.logger.Debug("Remote request failed", "endpoint", endpoint, "url", target, "error", err)
		return transportError(ctx, err).WithMeta("url", target)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body fully consumed or discarded
	}()
	c.metrics.observe(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) // nolint:errcheck // draining only
		return errors.Newf(errors.FromHTTPStatus(resp.StatusCode),
			"%s request failed with status %d", endpoint, resp.StatusCode).
			WithMeta("url", target).
			WithMeta("status", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode %s response", endpoint).
			WithMeta("url", target)
	}
	return nil
}

// transportError classifies a failure that happened before any response
func transportError(ctx context.Context, err error) *errors.Error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if stderrors.Is(ctxErr, context.DeadlineExceeded) {
			return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "request deadline exceeded")
		}
		return errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "request timed out")
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, "remote source unavailable")
}
