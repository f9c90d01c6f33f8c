package runner

import (
	"fmt"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"

	"github.com/trey314159/tokendist"
)

// Options carries every cost, penalty, and limit flag in the CLI's
// flag table, plus the ambient CLI-only switches (silent, verbose,
// config profile, update check).
type Options struct {
	EditLimit            float64
	NormEditLimit        float64
	DisablePerTokenLimit bool
	NormType             string
	DupeCost             float64
	InsDelCost           float64
	SubstCost            float64
	SwapCost             float64
	DigitChangePenalty   float64
	TokenInitialPenalty  float64
	TokenDeltaPenalty    float64
	TokenSepSubstPenalty float64
	SpaceOnlyCost        float64
	TokenSep             string
	TokenSplit           string
	ConfigFile           string
	Verbose              bool
	Silent               bool
	DisableUpdateCheck   bool
}

// flagArities lists every recognized flag name (long and short) this
// CLI defines, and whether it consumes a following value token. It is
// the ground truth SplitArgs uses to separate flags from positional
// compare targets, since goflags itself has no notion of "positional
// argument" the way the standard library's flag package does.
var flagArities = map[string]bool{
	"l": true, "editLimit": true,
	"p": true, "normEditLimit": true,
	"dp": false, "disablePerTokenLimit": false,
	"n": true, "normType": true,
	"d": true, "dupeCost": true,
	"i": true, "insDelCost": true,
	"s": true, "substCost": true,
	"w": true, "swapCost": true,
	"c": true, "digitChangePenalty": true,
	"t": true, "tokenInitialPenalty": true,
	"T": true, "tokenDeltaPenalty": true,
	"S": true, "tokenSepSubstPenalty": true,
	"P": true, "spaceOnlyCost": true,
	"sep": true, "tokenSep": true,
	"spl": true, "tokenSplit": true,
	"config": true,
	"v": false, "verbose": false,
	"silent": false,
	"duc": false, "disable-update-check": false,
	"up": false, "update": false,
	"version": false,
	"h": false, "help": false,
}

// SplitArgs separates recognized flag tokens (and the value tokens they
// consume) from everything else, which is returned as positional
// arguments: the two-string compare form, or a single pair-file path.
func SplitArgs(args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			positional = append(positional, a)
			continue
		}
		name := strings.TrimLeft(a, "-")
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			flagArgs = append(flagArgs, a)
			continue
		}
		flagArgs = append(flagArgs, a)
		if takesValue, known := flagArities[name]; known && takesValue {
			if i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		}
	}
	return flagArgs, positional
}

// ParseFlags parses flagArgs (already separated from positional compare
// targets by SplitArgs) into Options.
func ParseFlags(flagArgs []string) *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Weighted, token-aware edit distance between two strings.`)

	flagSet.CreateGroup("costs", "Costs & Penalties",
		flagSet.Float64VarP(&opts.InsDelCost, "insDelCost", "i", 1.0, "base cost of inserting or deleting a scalar"),
		flagSet.Float64VarP(&opts.SubstCost, "substCost", "s", 1.0, "base cost of substituting one scalar for another"),
		flagSet.Float64VarP(&opts.SwapCost, "swapCost", "w", 1.25, "cost of transposing two adjacent scalars"),
		flagSet.Float64VarP(&opts.DupeCost, "dupeCost", "d", 0.05, "reduced ins/del cost for a duplicated scalar"),
		flagSet.Float64VarP(&opts.DigitChangePenalty, "digitChangePenalty", "c", 0.33, "added when both endpoints of an edit are digits"),
		flagSet.Float64VarP(&opts.TokenInitialPenalty, "tokenInitialPenalty", "t", 0.25, "added when the edited scalar starts a token"),
		flagSet.Float64VarP(&opts.TokenDeltaPenalty, "tokenDeltaPenalty", "T", 0.25, "multiplied by the absolute token-count difference"),
		flagSet.Float64VarP(&opts.TokenSepSubstPenalty, "tokenSepSubstPenalty", "S", 0.50, "added when a substitution touches the token separator"),
		flagSet.Float64VarP(&opts.SpaceOnlyCost, "spaceOnlyCost", "P", 0.10, "ins/del cost for the separator scalar when inputs are spacelessly equal"),
	)

	flagSet.CreateGroup("limits", "Limits",
		flagSet.Float64VarP(&opts.EditLimit, "editLimit", "l", 2.0, "absolute cost ceiling (0 disables)"),
		flagSet.Float64VarP(&opts.NormEditLimit, "normEditLimit", "p", 0.0, "length-normalized cost ceiling (0 disables)"),
		flagSet.BoolVarP(&opts.DisablePerTokenLimit, "disablePerTokenLimit", "dp", false, "don't enforce limits inside each token"),
		flagSet.StringVarP(&opts.NormType, "normType", "n", "max", "length used to scale normEditLimit: max, min or first"),
	)

	flagSet.CreateGroup("tokenizer", "Tokenizer",
		flagSet.StringVarP(&opts.TokenSep, "tokenSep", "sep", " ", "scalar used as inter-token separator in canonical form"),
		flagSet.StringVarP(&opts.TokenSplit, "tokenSplit", "spl", `[\p{Z}\p{P}\p{S}]+`, "regex used by the default tokenizer to split and trim input"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.ConfigFile, "config", "", "YAML file seeding cost/penalty/limit defaults"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display tokendist version"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update tokendist to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic tokendist update check"),
	)

	prevArgs := os.Args
	os.Args = append([]string{prevArgs[0]}, flagArgs...)
	err := flagSet.Parse()
	os.Args = prevArgs
	if err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("tokendist")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("tokendist version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current tokendist version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

// BuildConfig turns parsed Options into a tokendist.Config, seeding
// from opts.ConfigFile first (if set) and then applying every flag
// value on top of it.
func BuildConfig(opts *Options) (*tokendist.Config, error) {
	builder := tokendist.NewConfigBuilder()
	if opts.ConfigFile != "" {
		var err error
		builder, err = builder.FromYAML(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
	}

	normType, err := tokendist.ParseNormType(opts.NormType)
	if err != nil {
		return nil, err
	}

	sepRunes := []rune(opts.TokenSep)
	if len(sepRunes) != 1 {
		return nil, errorutil.NewWithTag("tokendist", fmt.Sprintf("tokenSep must be exactly one character, got %q", opts.TokenSep))
	}

	builder.
		InsDelCost(opts.InsDelCost).
		SubstCost(opts.SubstCost).
		SwapCost(opts.SwapCost).
		DuplicateCost(opts.DupeCost).
		DigitChangePenalty(opts.DigitChangePenalty).
		TokenInitialPenalty(opts.TokenInitialPenalty).
		TokenDeltaPenalty(opts.TokenDeltaPenalty).
		TokenSepSubstPenalty(opts.TokenSepSubstPenalty).
		SpaceOnlyCost(opts.SpaceOnlyCost).
		PerTokenLimit(!opts.DisablePerTokenLimit).
		DefaultLimit(opts.EditLimit).
		DefaultNormLimit(opts.NormEditLimit).
		NormType(normType).
		TokenSep(sepRunes[0]).
		TokenSplit(opts.TokenSplit)

	return builder.Build()
}

// HasStdin reports whether stdin is piped rather than a terminal.
func HasStdin() bool {
	return fileutil.HasStdin()
}
