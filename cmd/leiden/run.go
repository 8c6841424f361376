package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/leidenkit/graph"
	"github.com/katalvlaran/leidenkit/ioformat"
	"github.com/katalvlaran/leidenkit/optimiser"
	"github.com/katalvlaran/leidenkit/partition"
)

// runConfig holds the resolved command-line inputs for a single invocation.
type runConfig struct {
	inputPath   string
	outputPath  string
	gamma       float64
	seed        int64
	inpFmt      string
	resFmt      string
	quality     string
	maxCommSize int
}

func run(cfg runConfig, logger *log.Logger) error {
	if !strings.EqualFold(cfg.resFmt, "membership") {
		return fmt.Errorf("unsupported --res-fmt %q, only \"membership\" is supported", cfg.resFmt)
	}

	g, err := readGraph(cfg.inputPath, cfg.inpFmt)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.inputPath, err)
	}

	p, err := newPartition(cfg.quality, g, cfg.gamma)
	if err != nil {
		return err
	}

	opt := optimiser.New(
		optimiser.WithSeed(cfg.seed),
		optimiser.WithMaxCommSize(cfg.maxCommSize),
	)
	delta, err := opt.OptimisePartition(p)
	if err != nil {
		return fmt.Errorf("optimising partition: %w", err)
	}
	logger.Printf("quality improved by %.6f, %d communities", delta, p.NCommunities())

	out, closeOut, err := openOutput(cfg.outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := ioformat.WriteMembership(out, p.Membership()); err != nil {
		return fmt.Errorf("writing membership: %w", err)
	}
	return nil
}

func readGraph(path, inpFmt string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format := ioformat.Format(strings.ToUpper(inpFmt))
	if inpFmt == "" {
		format = ioformat.InferFormat(path)
	}

	switch format {
	case ioformat.FormatNSE:
		return ioformat.ReadNSE(f)
	case ioformat.FormatNSA:
		return ioformat.ReadNSA(f)
	case ioformat.FormatNCOL:
		return ioformat.ReadNCOL(f)
	default:
		return nil, fmt.Errorf("unknown input format %q", inpFmt)
	}
}

func newPartition(quality string, g graph.Provider, gamma float64) (partition.Partition, error) {
	switch strings.ToLower(quality) {
	case "modularity":
		return partition.NewModularity(g)
	case "cpm":
		return partition.NewCPM(g, gamma)
	case "rber":
		return partition.NewRBER(g, gamma)
	case "rbconfiguration":
		return partition.NewRBConfiguration(g, gamma)
	case "significance":
		return partition.NewSignificance(g)
	case "surprise":
		return partition.NewSurprise(g)
	default:
		return nil, fmt.Errorf("unknown --quality %q", quality)
	}
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
