package evolution

// AlternateForms maps a final-stage entity name to the ordered names of its
// alternate (battle-only) forms
type AlternateForms interface {
	Forms(name string) []string
}

// StaticForms is an in-memory AlternateForms table keyed by exact name
type StaticForms map[string][]string

// Forms returns a copy of the forms listed for name, or nil
func (t StaticForms) Forms(name string) []string {
	forms, ok := t[name]
	if !ok {
		return nil
	}
	out := make([]string, len(forms))
	copy(out, forms)
	return out
}

// DefaultAlternateForms returns the built-in mega evolution and primal
// reversion table
func DefaultAlternateForms() StaticForms {
	return StaticForms{
		"venusaur":   {"venusaur-mega"},
		"charizard":  {"charizard-mega-x", "charizard-mega-y"},
		"blastoise":  {"blastoise-mega"},
		"beedrill":   {"beedrill-mega"},
		"pidgeot":    {"pidgeot-mega"},
		"alakazam":   {"alakazam-mega"},
		"slowbro":    {"slowbro-mega"},
		"gengar":     {"gengar-mega"},
		"kangaskhan": {"kangaskhan-mega"},
		"pinsir":     {"pinsir-mega"},
		"gyarados":   {"gyarados-mega"},
		"aerodactyl": {"aerodactyl-mega"},
		"mewtwo":     {"mewtwo-mega-x", "mewtwo-mega-y"},
		"ampharos":   {"ampharos-mega"},
		"steelix":    {"steelix-mega"},
		"scizor":     {"scizor-mega"},
		"heracross":  {"heracross-mega"},
		"houndoom":   {"houndoom-mega"},
		"tyranitar":  {"tyranitar-mega"},
		"sceptile":   {"sceptile-mega"},
		"blaziken":   {"blaziken-mega"},
		"swampert":   {"swampert-mega"},
		"gardevoir":  {"gardevoir-mega"},
		"sableye":    {"sableye-mega"},
		"mawile":     {"mawile-mega"},
		"aggron":     {"aggron-mega"},
		"medicham":   {"medicham-mega"},
		"manectric":  {"manectric-mega"},
		"sharpedo":   {"sharpedo-mega"},
		"camerupt":   {"camerupt-mega"},
		"altaria":    {"altaria-mega"},
		"banette":    {"banette-mega"},
		"absol":      {"absol-mega"},
		"glalie":     {"glalie-mega"},
		"salamence":  {"salamence-mega"},
		"metagross":  {"metagross-mega"},
		"latias":     {"latias-mega"},
		"latios":     {"latios-mega"},
		"kyogre":     {"kyogre-primal"},
		"groudon":    {"groudon-primal"},
		"rayquaza":   {"rayquaza-mega"},
		"lopunny":    {"lopunny-mega"},
		"garchomp":   {"garchomp-mega"},
		"lucario":    {"lucario-mega"},
		"abomasnow":  {"abomasnow-mega"},
		"gallade":    {"gallade-mega"},
		"audino":     {"audino-mega"},
		"diancie":    {"diancie-mega"},
	}
}
