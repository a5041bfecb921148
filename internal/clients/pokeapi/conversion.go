package pokeapi

import (
	"sort"

	"github.com/KirkDiggler/pokedex/internal/entities"
)

func convertNamedResources(in []apiNamedResource) []entities.NamedResource {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.NamedResource, len(in))
	for i, r := range in {
		out[i] = entities.NamedResource{Name: r.Name, URL: r.URL}
	}
	return out
}

func convertList(list *apiList) *entities.Page {
	page := &entities.Page{
		Count:   list.Count,
		Results: convertNamedResources(list.Results),
	}
	if list.Next != nil {
		page.Next = *list.Next
	}
	if list.Previous != nil {
		page.Previous = *list.Previous
	}
	if page.Results == nil {
		page.Results = []entities.NamedResource{}
	}
	return page
}

func convertPokemon(p *apiPokemon) *entities.Entity {
	types := make([]apiPokemonType, len(p.Types))
	copy(types, p.Types)
	sort.SliceStable(types, func(i, j int) bool { return types[i].Slot < types[j].Slot })

	entity := &entities.Entity{
		ID:          p.ID,
		Name:        p.Name,
		Height:      p.Height,
		Weight:      p.Weight,
		SpeciesName: p.Species.Name,
		Types:       make([]string, len(types)),
		Stats:       make([]entities.Stat, len(p.Stats)),
	}
	for i, t := range types {
		entity.Types[i] = t.Type.Name
	}
	for i, s := range p.Stats {
		entity.Stats[i] = entities.Stat{Name: s.Stat.Name, BaseStat: s.BaseStat}
	}
	if p.Sprites.FrontDefault != nil {
		entity.SpriteURL = *p.Sprites.FrontDefault
	}
	if art := p.Sprites.Other.OfficialArtwork.FrontDefault; art != nil {
		entity.ArtworkURL = *art
	}
	return entity
}

func convertSpecies(s *apiSpecies) *entities.Species {
	species := &entities.Species{
		ID:   s.ID,
		Name: s.Name,
	}
	for _, ft := range s.FlavorTextEntries {
		species.Descriptions = append(species.Descriptions, entities.LocalizedText{
			Locale: ft.Language.Name,
			Text:   ft.FlavorText,
		})
	}
	for _, g := range s.Genera {
		species.Genera = append(species.Genera, entities.LocalizedText{
			Locale: g.Language.Name,
			Text:   g.Genus,
		})
	}
	if s.EvolutionChain != nil {
		species.EvolutionChainURL = s.EvolutionChain.URL
	}
	for _, v := range s.Varieties {
		species.Varieties = append(species.Varieties, entities.Variety{
			IsDefault: v.IsDefault,
			Entity:    entities.NamedResource{Name: v.Pokemon.Name, URL: v.Pokemon.URL},
		})
	}
	return species
}

func convertEvolutionChain(c *apiEvolutionChain) *entities.EvolutionChain {
	return &entities.EvolutionChain{
		ID:    c.ID,
		Chain: convertChainLink(c.Chain),
	}
}

func convertChainLink(link *apiChainLink) *entities.ChainLink {
	if link == nil {
		return nil
	}
	out := &entities.ChainLink{
		Species: entities.NamedResource{Name: link.Species.Name, URL: link.Species.URL},
	}
	for _, d := range link.EvolutionDetails {
		out.Details = append(out.Details, convertEvolutionDetail(d))
	}
	for _, child := range link.EvolvesTo {
		if converted := convertChainLink(child); converted != nil {
			out.EvolvesTo = append(out.EvolvesTo, converted)
		}
	}
	return out
}

func convertEvolutionDetail(d apiEvolutionDetail) entities.EvolutionDetail {
	detail := entities.EvolutionDetail{
		TimeOfDay:          d.TimeOfDay,
		NeedsOverworldRain: d.NeedsOverworldRain,
	}
	if d.Trigger != nil {
		detail.Trigger = d.Trigger.Name
	}
	if d.MinLevel != nil {
		detail.MinLevel = *d.MinLevel
	}
	if d.MinHappiness != nil {
		detail.MinHappiness = *d.MinHappiness
	}
	if d.Item != nil {
		detail.Item = d.Item.Name
	}
	if d.KnownMove != nil {
		detail.KnownMove = d.KnownMove.Name
	}
	if d.HeldItem != nil {
		detail.HeldItem = d.HeldItem.Name
	}
	if d.TradeSpecies != nil {
		detail.TradeSpecies = d.TradeSpecies.Name
	}
	return detail
}

func convertNames(names []apiName) []entities.LocalizedText {
	if len(names) == 0 {
		return nil
	}
	out := make([]entities.LocalizedText, len(names))
	for i, n := range names {
		out[i] = entities.LocalizedText{Locale: n.Language.Name, Text: n.Name}
	}
	return out
}

func convertRegion(r *apiRegion) *entities.Region {
	region := &entities.Region{
		ID:            r.ID,
		Name:          r.Name,
		Names:         convertNames(r.Names),
		Locations:     convertNamedResources(r.Locations),
		Pokedexes:     convertNamedResources(r.Pokedexes),
		VersionGroups: convertNamedResources(r.VersionGroups),
	}
	if r.MainGeneration != nil {
		region.MainGeneration = r.MainGeneration.Name
	}
	return region
}

func convertLocation(l *apiLocation) *entities.Location {
	location := &entities.Location{
		ID:    l.ID,
		Name:  l.Name,
		Names: convertNames(l.Names),
		Areas: convertNamedResources(l.Areas),
	}
	if l.Region != nil {
		location.Region = l.Region.Name
	}
	return location
}

func convertLocationArea(a *apiLocationArea) *entities.LocationArea {
	area := &entities.LocationArea{
		ID:        a.ID,
		Name:      a.Name,
		GameIndex: a.GameIndex,
		Location:  a.Location.Name,
	}
	for _, pe := range a.PokemonEncounters {
		encounter := entities.Encounter{
			Entity: entities.NamedResource{Name: pe.Pokemon.Name, URL: pe.Pokemon.URL},
		}
		for _, vd := range pe.VersionDetails {
			version := entities.VersionEncounter{
				Version:   vd.Version.Name,
				MaxChance: vd.MaxChance,
			}
			for _, ed := range vd.EncounterDetails {
				detail := entities.EncounterDetail{
					MinLevel: ed.MinLevel,
					MaxLevel: ed.MaxLevel,
					Chance:   ed.Chance,
					Method:   ed.Method.Name,
				}
				for _, cv := range ed.ConditionValues {
					detail.Conditions = append(detail.Conditions, cv.Name)
				}
				version.Details = append(version.Details, detail)
			}
			encounter.Versions = append(encounter.Versions, version)
		}
		area.Encounters = append(area.Encounters, encounter)
	}
	return area
}
