package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wippyai/scorer-runtime/encstr"
	"github.com/wippyai/scorer-runtime/hostabi"
	"github.com/wippyai/scorer-runtime/metrics"
	"github.com/wippyai/scorer-runtime/scorer"
)

func main() {
	var (
		pattern     = flag.String("p", "", "Pattern string")
		candidate   = flag.String("c", "", "Candidate string")
		algo        = flag.String("algo", "", "Algorithm (jaro, jarowinkler, indel)")
		cutoff      = flag.Float64("cutoff", 0, "Score cutoff; results below report 0")
		configPath  = flag.String("config", "", "Path to score.yaml")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	cfg, err := LoadOptional(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *algo != "" {
		cfg.Algorithm = *algo
	}
	if *cutoff != 0 {
		cfg.Cutoff = *cutoff
	}

	if *interactive {
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *pattern == "" || *candidate == "" {
		fmt.Fprintln(os.Stderr, "Usage: score -p <pattern> -c <candidate> [-algo name] [-cutoff x]")
		fmt.Fprintln(os.Stderr, "       score -i  (interactive mode)")
		os.Exit(1)
	}

	score, err := runOnce(cfg, *pattern, *candidate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s(%q, %q) = %.6f\n", cfg.Algorithm, *pattern, *candidate, score)
}

// familyFor builds the algorithm family named by the configuration.
func familyFor(cfg Config) (scorer.Family, error) {
	switch cfg.Algorithm {
	case "jaro":
		return metrics.Jaro(), nil
	case "jarowinkler":
		return metrics.JaroWinkler(cfg.prefixWeight()), nil
	case "indel":
		return metrics.Indel(), nil
	}
	return nil, fmt.Errorf("unknown algorithm %q", cfg.Algorithm)
}

// runOnce drives the full ABI path: host objects, validation, zero-copy
// marshaling, scorer lifecycle, error translation.
func runOnce(cfg Config, pattern, candidate string) (float64, error) {
	fam, err := familyFor(cfg)
	if err != nil {
		return 0, err
	}

	host := hostabi.NewLocalRuntime()
	pObj := hostabi.NewLocalBytes([]byte(pattern))
	cObj := hostabi.NewLocalBytes([]byte(candidate))

	if err := hostabi.ValidateString(pObj, "pattern must be a string"); err != nil {
		return 0, err
	}
	if err := hostabi.ValidateString(cObj, "candidate must be a string"); err != nil {
		return 0, err
	}

	pGuard := hostabi.Guard(hostabi.ConvertString(pObj), pObj)
	defer pGuard.Release()
	cGuard := hostabi.Guard(hostabi.ConvertString(cObj), cObj)
	defer cGuard.Release()

	f := scorer.New(host, fam)
	if !f.Init([]encstr.String{pGuard.Str}) {
		return 0, hostError(host)
	}
	defer f.Dtor()

	var score float64
	if !f.CallF64(&cGuard.Str, cfg.Cutoff, &score) {
		return 0, hostError(host)
	}
	return score, nil
}

func hostError(host *hostabi.LocalRuntime) error {
	cat, msg, pending := host.Err()
	if !pending {
		return fmt.Errorf("call failed without a host error")
	}
	return fmt.Errorf("%s error: %s", cat, msg)
}
