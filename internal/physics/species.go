package physics

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Species selects the particle whose mass parameterizes a conversion.
type Species int

const (
	Neutron Species = iota
	He3
	He4
)

// ErrUnknownSpecies indicates a species name that did not match any
// recognized alias.
var ErrUnknownSpecies = errors.New("physics: unknown species")

// log receives the ambiguous-isotope advisory. Defaults to a console
// writer on stderr; tests swap it out via SetLogger.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) { log = l }

func (sp Species) String() string {
	switch sp {
	case Neutron:
		return "neutron"
	case He3:
		return "He-3"
	case He4:
		return "He-4"
	default:
		return fmt.Sprintf("Species(%d)", int(sp))
	}
}

// Mass returns the particle mass in kg.
func (sp Species) Mass() float64 {
	switch sp {
	case Neutron:
		return MassNeutron
	case He3:
		return MassHe3
	case He4:
		return MassHe4
	default:
		return math.NaN()
	}
}

// ParseSpecies maps a species name to a Species. Matching is insensitive
// to case, spaces and hyphens: "He-3", "he3" and "3He" are all He3.
// A bare "he" or "helium" resolves to He-4 with a warning, since the
// isotope is ambiguous. Anything else is ErrUnknownSpecies.
//
// The empty string is not an alias; defaulting to the neutron is the
// caller's decision, not the parser's.
func ParseSpecies(name string) (Species, error) {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")

	switch key {
	case "n", "neutron":
		return Neutron, nil
	case "he3", "helium3", "3he", "3helium":
		return He3, nil
	case "he4", "helium4", "4he", "4helium":
		return He4, nil
	case "he", "helium":
		log.Warn().Str("species", name).Msg("ambiguous helium isotope, assuming He-4")
		return He4, nil
	default:
		return 0, fmt.Errorf("%w: %q (known species: neutron, He-3, He-4)", ErrUnknownSpecies, name)
	}
}

// ResolveSpeciesMass parses a species name and returns its mass in kg.
func ResolveSpeciesMass(name string) (float64, error) {
	sp, err := ParseSpecies(name)
	if err != nil {
		return 0, err
	}
	return sp.Mass(), nil
}
