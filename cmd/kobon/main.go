// Command kobon drives the search from the terminal: independent annealing
// runs, kick refinement of a known record, symmetry-constrained searches, the
// breather scan, and post-hoc analysis of saved configurations.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/mfujimura/kobon/analysis"
	"github.com/mfujimura/kobon/anneal"
	"github.com/mfujimura/kobon/arrangement"
	"github.com/mfujimura/kobon/dbg"
	"github.com/mfujimura/kobon/record"
)

var (
	app  = kingpin.New("kobon", "Search for line arrangements maximizing Kobon triangles.")
	seed = app.Flag("seed", "Random seed (0 means time-based).").Int64()

	searchCmd   = app.Command("search", "Run independent annealing searches from random starts.")
	searchN     = searchCmd.Flag("lines", "Number of lines.").Short('n').Default("10").Int()
	searchIters = searchCmd.Flag("iterations", "Iterations per run.").Short('i').Default("100000").Int()
	searchRuns  = searchCmd.Flag("runs", "Number of independent runs.").Short('r').Default("20").Int()
	searchTEnd  = searchCmd.Flag("t-end", "Cooling schedule endpoint (lower = deeper cooling).").Default("0.001").Float64()
	searchOut   = searchCmd.Flag("out", "Best-configuration output file.").Short('o').Default("best_kobon.json").String()

	refineCmd     = app.Command("refine", "Kick-refine a saved configuration.")
	refineIn      = refineCmd.Arg("record", "Configuration to refine.").Required().String()
	refineKicks   = refineCmd.Flag("kicks", "Number of kicks.").Default("1000").Int()
	refinePerKick = refineCmd.Flag("per-kick", "Annealing iterations per kick.").Default("5000").Int()
	refineGoal    = refineCmd.Flag("goal", "Stop once this score is reached.").Default("0").Int()
	refineDir     = refineCmd.Flag("out-dir", "Directory for improvements and variants.").Default(".").String()

	symCmd   = app.Command("symmetry", "Symmetry-constrained search from a saved configuration.")
	symIn    = symCmd.Arg("record", "Configuration to start from.").Required().String()
	symMode  = symCmd.Flag("mode", "forced (mirror half the lines) or soft (penalty).").Default("soft").Enum("forced", "soft")
	symSteps = symCmd.Flag("steps", "Annealing steps.").Default("20000").Int()
	symGoal  = symCmd.Flag("goal", "Stop once this score is reached.").Default("0").Int()
	symOut   = symCmd.Flag("out", "Output file.").Short('o').Default("symmetry_result.json").String()

	breatheCmd  = app.Command("breathe", "Sweep a scale factor on the inner lines of a record.")
	breatheIn   = breatheCmd.Arg("record", "Configuration to scan.").Required().String()
	breatheLo   = breatheCmd.Flag("lo", "Sweep start.").Default("0.8").Float64()
	breatheHi   = breatheCmd.Flag("hi", "Sweep end (exclusive).").Default("1.2").Float64()
	breatheStep = breatheCmd.Flag("step", "Sweep step.").Default("0.0005").Float64()
	breathePlot = breatheCmd.Flag("plot", "Score-vs-scale plot file.").Default("breather_scan.png").String()
	breatheOut  = breatheCmd.Flag("out", "Output file for an improved configuration.").Short('o').String()

	rankCmd = app.Command("rank", "Rank saved configurations by symmetry.")
	rankIn  = rankCmd.Arg("records", "Configurations to rank.").Required().Strings()

	classifyCmd = app.Command("classify", "Group saved configurations by intersection-graph topology.")
	classifyIn  = classifyCmd.Arg("records", "Configurations to classify.").Required().Strings()

	showCmd  = app.Command("show", "Render a saved configuration.")
	showIn   = showCmd.Arg("record", "Configuration to render.").Required().String()
	showOut  = showCmd.Flag("out", "PNG output file.").Short('o').Default("kobon_result.png").String()
	showSize = showCmd.Flag("size", "Image size in pixels.").Default("1000").Int()
	showCat  = showCmd.Flag("cat", "Also preview inline in the terminal.").Bool()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	var err error
	switch cmd {
	case searchCmd.FullCommand():
		err = runSearch(rng)
	case refineCmd.FullCommand():
		err = runRefine(rng)
	case symCmd.FullCommand():
		err = runSymmetry(rng)
	case breatheCmd.FullCommand():
		err = runBreathe()
	case rankCmd.FullCommand():
		err = runRank()
	case classifyCmd.FullCommand():
		err = runClassify()
	case showCmd.FullCommand():
		err = runShow()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("error:"), err)
		os.Exit(1)
	}
}

func runSearch(rng *rand.Rand) error {
	fmt.Printf("Searching for N=%d: %d runs x %d iterations\n", *searchN, *searchRuns, *searchIters)

	globalBest := -1
	start := time.Now()
	for run := 0; run < *searchRuns; run++ {
		initial := anneal.RandomLineSet(*searchN, rng)
		best, score, err := anneal.Optimize(initial, *searchIters, 1.0, *searchTEnd, rng)
		if err != nil {
			return err
		}
		if score > globalBest {
			globalBest = score
			fmt.Println(aurora.Green(fmt.Sprintf("run %d: new global best %d", run+1, score)))
			if err := record.Save(*searchOut, best, score); err != nil {
				return err
			}
		} else {
			fmt.Printf("run %d: %d (best %d)\n", run+1, score, globalBest)
		}
	}
	fmt.Printf("done in %s, best %s\n", time.Since(start).Round(time.Second), aurora.Bold(globalBest))
	return nil
}

func runRefine(rng *rand.Rand) error {
	ls, score, err := record.Load(*refineIn)
	if err != nil {
		return err
	}
	fmt.Printf("Refining %s (score %d), %d kicks x %d iterations\n", *refineIn, score, *refineKicks, *refinePerKick)

	ref := &anneal.Refiner{
		Kicks:      *refineKicks,
		PerKick:    *refinePerKick,
		ScoreFloor: score,
		Goal:       *refineGoal,
		RNG:        rng,
		OnImprove: func(best arrangement.LineSet, s int) {
			fmt.Println(aurora.Green(fmt.Sprintf("IMPROVEMENT: %d", s)))
			path := filepath.Join(*refineDir, fmt.Sprintf("record_%d.json", s))
			if err := record.Save(path, best, s); err != nil {
				fmt.Fprintln(os.Stderr, aurora.Red("save failed:"), err)
			}
		},
		OnVariant: func(v arrangement.LineSet, index int) {
			path := filepath.Join(*refineDir, dbg.VariantFile(score, index))
			fmt.Printf("distinct variant #%d -> %s\n", index, path)
			if err := record.Save(path, v, score); err != nil {
				fmt.Fprintln(os.Stderr, aurora.Red("save failed:"), err)
			}
		},
	}
	res, err := ref.Refine(ls, score)
	if err != nil {
		return err
	}
	fmt.Printf("final score %s, %d distinct variants\n", aurora.Bold(res.Score), len(res.Variants))
	return nil
}

func runSymmetry(rng *rand.Rand) error {
	ls, score, err := record.Load(*symIn)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %s (score %d), mode=%s\n", *symIn, score, *symMode)

	switch *symMode {
	case "forced":
		masters := anneal.Symmetrize(ls)
		fmt.Printf("extracted %d master lines\n", len(masters))
		bestMasters, bestScore, err := anneal.OptimizeForcedSymmetry(masters, *symSteps, rng)
		if err != nil {
			return err
		}
		full := anneal.ExpandMirror(bestMasters)
		fmt.Printf("forced-symmetry best: %s\n", aurora.Bold(bestScore))
		return record.Save(*symOut, full, bestScore)
	default:
		res, err := anneal.OptimizeSoftSymmetry(ls, *symSteps, *symGoal, rng)
		if err != nil {
			return err
		}
		fmt.Printf("soft-symmetry best score: %s\n", aurora.Bold(res.BestScore))
		return record.Save(*symOut, res.MostSymmetric, arrangement.Score(res.MostSymmetric))
	}
}

func runBreathe() error {
	ls, score, err := record.Load(*breatheIn)
	if err != nil {
		return err
	}
	fmt.Printf("Scanning %s (score %d) over [%g, %g) step %g\n", *breatheIn, score, *breatheLo, *breatheHi, *breatheStep)

	scales, scores, bestScale, bestScore, err := anneal.BreatherScan(ls, *breatheLo, *breatheHi, *breatheStep)
	if err != nil {
		return err
	}
	fmt.Printf("best score %d at scale %.4f\n", bestScore, bestScale)
	if bestScore > score {
		fmt.Println(aurora.Green(fmt.Sprintf("IMPROVEMENT: %d at scale %.4f", bestScore, bestScale)))
		if *breatheOut != "" {
			if err := record.Save(*breatheOut, anneal.BreatherAt(ls, bestScale), bestScore); err != nil {
				return err
			}
		}
	}
	return anneal.PlotBreatherScan(scales, scores, score, *breathePlot)
}

func runRank() error {
	for _, path := range *rankIn {
		ls, score, err := record.Load(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s (score %d):\n", path, score)
		for _, s := range analysis.RankSymmetries(ls) {
			fmt.Printf("  %-10s %.4f\n", s.Name, s.Error)
		}
	}
	return nil
}

func runClassify() error {
	classes := make(map[string][]string)
	for _, path := range *classifyIn {
		ls, _, err := record.Load(path)
		if err != nil {
			return err
		}
		h := analysis.CanonicalHash(ls)
		classes[h] = append(classes[h], path)
	}
	fmt.Printf("%d topological classes among %d configurations\n", len(classes), len(*classifyIn))
	for h, members := range classes {
		fmt.Printf("%s (%s):\n", h, dbg.Name(h))
		for _, m := range members {
			fmt.Printf("  %s\n", m)
		}
	}
	return nil
}

func runShow() error {
	ls, score, err := record.Load(*showIn)
	if err != nil {
		return err
	}
	tris := arrangement.FindTriangles(ls, nil)
	fmt.Printf("%s: score %d on file, %d triangles evaluated\n", *showIn, score, len(tris))
	if err := arrangement.Draw(ls, tris, *showOut, *showSize); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", *showOut)
	if *showCat {
		arrangement.DrawToTerminal(ls, tris, 600)
	}
	return nil
}
