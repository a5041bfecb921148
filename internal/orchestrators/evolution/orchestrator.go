// Package evolution resolves an entity's evolution chain into a flat,
// ordered list of stages with human-readable transitions, appends any
// alternate forms of the final stage, and drives the step-through simulator.
package evolution

//go:generate mockgen -destination=mock/mock_service.go -package=evolutionmock github.com/KirkDiggler/pokedex/internal/orchestrators/evolution Service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/pkg/sequence"
)

// DefaultFormConcurrency bounds concurrent alternate-form fetches
const DefaultFormConcurrency = 4

// Service defines the interface for the evolution chain resolver
type Service interface {
	// Resolve fetches species, chain and stage entities for the input.
	// A request superseded by a newer one returns Applied=false and leaves
	// the visible state alone.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// State returns the current snapshot
	State() *State
}

// Config holds the dependencies for the evolution resolver
type Config struct {
	Client          pokeapi.Client
	Forms           AlternateForms
	FormConcurrency int
	Logger          *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.FormConcurrency < 0 {
		vb.Field("FormConcurrency", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Forms == nil {
		c.Forms = DefaultAlternateForms()
	}
	if c.FormConcurrency == 0 {
		c.FormConcurrency = DefaultFormConcurrency
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return nil
}

type orchestrator struct {
	client          pokeapi.Client
	forms           AlternateForms
	formConcurrency int
	logger          *slog.Logger
	seq             sequence.Sequencer

	mu    sync.Mutex
	state State
}

// NewOrchestrator creates a new evolution resolver in the idle state
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:          cfg.Client,
		forms:           cfg.Forms,
		formConcurrency: cfg.FormConcurrency,
		logger:          cfg.Logger,
	}, nil
}

func (o *orchestrator) State() *State {
	o.mu.Lock()
	defer o.mu.Unlock()

	snapshot := o.state
	return &snapshot
}

func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	req := ResolveInput{EntityID: input.EntityID, Name: strings.ToLower(strings.TrimSpace(input.Name))}
	if req.EntityID <= 0 && req.Name == "" {
		return nil, errors.InvalidArgument("entity id or name is required")
	}

	o.mu.Lock()
	ticket := o.seq.Next()
	o.state = State{Status: StatusLoading, Request: req}
	o.mu.Unlock()

	res, err := o.resolve(ctx, req)

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.seq.Current(ticket) {
		o.logger.Debug("discarding superseded evolution resolution",
			"entity_id", req.EntityID,
			"name", req.Name)
		return &ResolveOutput{Resolution: res, Applied: false}, nil
	}

	if err != nil {
		o.state = State{Status: StatusFailed, Request: req, Err: err}
		return nil, err
	}

	status := StatusReady
	if res.Empty() {
		status = StatusEmpty
	}
	o.state = State{Status: status, Request: req, Resolution: res}
	return &ResolveOutput{Resolution: res, Applied: true}, nil
}

func (o *orchestrator) resolve(ctx context.Context, req ResolveInput) (*Resolution, error) {
	species, err := o.species(ctx, req)
	if err != nil {
		return nil, err
	}

	res := &Resolution{Species: species, Stages: []Stage{}, AlternateForms: []Stage{}}
	if !species.HasEvolutionChain() {
		return res, nil
	}

	chain, err := o.client.GetEvolutionChain(ctx, species.EvolutionChainURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get evolution chain for %s", species.Name)
	}
	res.ChainID = chain.ID

	stages, err := o.walk(ctx, chain.Chain)
	if err != nil {
		return nil, err
	}
	res.Stages = stages

	if final := res.Final(); final != nil {
		res.AlternateForms = o.alternateForms(ctx, final.Entity.Name)
	}
	return res, nil
}

// species looks the species up by id, or by name when no id is given. When
// that fails, as it does for alternate forms whose names are not species,
// it retries through the base name's entity.
func (o *orchestrator) species(ctx context.Context, req ResolveInput) (*entities.Species, error) {
	key := req.Name
	if req.EntityID > 0 {
		key = strconv.Itoa(req.EntityID)
	}

	species, err := o.client.GetSpecies(ctx, key)
	if err == nil {
		return species, nil
	}
	if errors.IsCanceled(err) {
		return nil, err
	}

	name := req.Name
	if name == "" {
		entity, entityErr := o.client.GetEntity(ctx, key)
		if entityErr != nil {
			return nil, errors.Wrapf(entityErr, "failed to get entity %s", key)
		}
		name = entity.Name
	}

	base := entities.BaseName(name)
	if base == name {
		return nil, errors.Wrapf(err, "failed to get species %s", key)
	}

	o.logger.Debug("retrying species lookup by base name",
		"name", name,
		"base", base)

	baseEntity, err := o.client.GetEntity(ctx, base)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get base entity %s", base)
	}
	species, err = o.client.GetSpecies(ctx, strconv.Itoa(baseEntity.ID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get species for %s", base)
	}
	return species, nil
}

// walk follows the first child at every level, fetching each stage's entity
// in order. Any failure fails the whole walk.
func (o *orchestrator) walk(ctx context.Context, link *entities.ChainLink) ([]Stage, error) {
	stages := []Stage{}
	var transition *Transition

	for link != nil {
		entity, err := o.stageEntity(ctx, link.Species.Name)
		if err != nil {
			return nil, err
		}
		stages = append(stages, Stage{Entity: entity, Transition: transition})

		if len(link.EvolvesTo) == 0 {
			break
		}
		link = link.EvolvesTo[0]
		transition = describe(link.Details)
	}
	return stages, nil
}

// stageEntity fetches the entity for a chain species. Species whose name is
// not itself an entity fall back to the species' default variety.
func (o *orchestrator) stageEntity(ctx context.Context, speciesName string) (*entities.Entity, error) {
	entity, err := o.client.GetEntity(ctx, speciesName)
	if err == nil {
		return entity, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to get stage %s", speciesName)
	}

	species, speciesErr := o.client.GetSpecies(ctx, speciesName)
	if speciesErr != nil {
		return nil, errors.Wrapf(err, "failed to get stage %s", speciesName)
	}
	for _, v := range species.Varieties {
		if v.IsDefault && v.Entity.Name != speciesName {
			entity, err = o.client.GetEntity(ctx, v.Entity.Name)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to get stage %s", v.Entity.Name)
			}
			return entity, nil
		}
	}
	return nil, errors.Wrapf(err, "failed to get stage %s", speciesName)
}

// alternateForms fetches the table entries for name concurrently. Order
// follows the table; failed fetches are dropped.
func (o *orchestrator) alternateForms(ctx context.Context, name string) []Stage {
	forms := o.forms.Forms(name)
	if len(forms) == 0 {
		return []Stage{}
	}

	slots := make([]*entities.Entity, len(forms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.formConcurrency)
	for i, form := range forms {
		i, form := i, form
		g.Go(func() error {
			entity, err := o.client.GetEntity(gctx, form)
			if err != nil {
				o.logger.Warn("dropping alternate form",
					"form", form,
					"error", err)
				return nil
			}
			slots[i] = entity
			return nil
		})
	}
	_ = g.Wait()

	stages := make([]Stage, 0, len(slots))
	for _, entity := range slots {
		if entity == nil {
			continue
		}
		stages = append(stages, Stage{Entity: entity, Transition: megaTransition()})
	}
	return stages
}
