package main

//
// bio-gsea
//
// A command-line driver for the gsea package's pre-ranked mode: given a
// .rnk ranked gene list and a .gmt gene set collection, it runs gene-set
// shuffling against every set in the collection and writes a TSV report.
//
// Example:
//
//    bio-gsea -rnk diffexp.rnk -gmt hallmark.gmt -nperm 1000 -report out.tsv

import (
	"context"
	"flag"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/gsea"
)

func run(ctx context.Context, rnkPath, gmtPath, reportPath string, nperm int, seed int64, weightExponent float64) {
	names, scores, err := readRnk(ctx, rnkPath)
	if err != nil {
		log.Panicf("read %s: %v", rnkPath, err)
	}
	rankedList, err := gsea.NewRankedList(names, scores, gsea.Descending)
	if err != nil {
		log.Panicf("build ranked list: %v", err)
	}
	log.Printf("Loaded %d ranked features from %s", rankedList.Len(), rnkPath)

	gsets, err := readGmt(ctx, gmtPath)
	if err != nil {
		log.Panicf("read %s: %v", gmtPath, err)
	}
	log.Printf("Loaded %d gene sets from %s", len(gsets), gmtPath)

	cfg := gsea.DefaultConfig
	cfg.MetricParams.WeightExponent = weightExponent
	cfg.Progress = gsea.LogSink{}

	seeds := gsea.NewSeedGenerator(seed)
	db, stats, err := gsea.ExecuteGseaPreranked(rankedList, gsets, nperm, seeds, nil, cfg)
	if err != nil {
		log.Panicf("ExecuteGseaPreranked: %v", err)
	}
	log.Printf("Stats: %+v", *stats)

	if err := writeReport(ctx, reportPath, db); err != nil {
		log.Panicf("write %s: %v", reportPath, err)
	}
	log.Printf("Wrote report for %d gene sets to %s", len(db.Results), reportPath)
}

func main() {
	var (
		rnkPath        = flag.String("rnk", "", "Path to a .rnk pre-ranked gene list (required).")
		gmtPath        = flag.String("gmt", "", "Path to a .gmt gene set collection (required).")
		reportPath     = flag.String("report", "./gsea-report.tsv", "Path to write the TSV enrichment report.")
		nperm          = flag.Int("nperm", 1000, "Number of gene-set shuffling permutations.")
		seed           = flag.Int64("seed", 0, "Master seed for the permutation RNG.")
		weightExponent = flag.Float64("weight-exponent", 1.0, "Weighted-KS exponent p applied to ranking scores.")
	)
	flag.Parse()

	cleanup := grail.Init()
	defer cleanup()

	if *rnkPath == "" || *gmtPath == "" {
		log.Fatal("both -rnk and -gmt are required")
	}

	ctx := vcontext.Background()
	run(ctx, *rnkPath, *gmtPath, *reportPath, *nperm, *seed, *weightExponent)
	log.Printf("All done")
}
