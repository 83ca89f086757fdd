package main

// Minimal ingestion for the two text formats the command line accepts: a
// .rnk pre-ranked gene list and a .gmt gene set collection. This is CLI-layer
// convenience, not a general-purpose file-format reader; callers linking
// against package gsea directly build RankedList and GeneSet values however
// suits them.

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/gsea"
	"github.com/pkg/errors"
)

// readRnk parses a tab-separated "<gene>\t<score>" file, one entry per line,
// into parallel name/score slices suitable for gsea.NewRankedList.
func readRnk(ctx context.Context, path string) ([]gsea.Feature, []float64, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close(ctx) // nolint: errcheck

	var (
		names  []gsea.Feature
		scores []float64
	)
	sc := bufio.NewScanner(f.Reader(ctx))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, nil, errors.Errorf("%s:%d: expected <gene>\\t<score>, got %q", path, lineNo, line)
		}
		score, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s:%d: bad score %q", path, lineNo, fields[1])
		}
		names = append(names, gsea.Feature(fields[0]))
		scores = append(scores, score)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, errors.Wrapf(err, "scan %s", path)
	}
	return names, scores, nil
}

// readGmt parses the Broad-style "<name>\t<description>\t<gene>..." gene set
// collection format into gsea.GeneSet values, one per line.
func readGmt(ctx context.Context, path string) ([]*gsea.GeneSet, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close(ctx) // nolint: errcheck

	var sets []*gsea.GeneSet
	sc := bufio.NewScanner(f.Reader(ctx))
	// Gene set lines can be long (thousands of members); grow the scanner's
	// buffer past bufio.Scanner's 64KiB default line limit.
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, errors.Errorf("%s:%d: expected <name>\\t<description>\\t<gene>..., got %d fields", path, lineNo, len(fields))
		}
		members := make([]gsea.Feature, len(fields)-2)
		for i, g := range fields[2:] {
			members[i] = gsea.Feature(g)
		}
		g, err := gsea.NewGeneSet(fields[0], members)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, lineNo)
		}
		sets = append(sets, g)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "scan %s", path)
	}
	return sets, nil
}

// writeReport dumps one TSV line per gene set: id, raw ES, rank at ES,
// permutation count, and the full raw permutation ES vector (rnd_es),
// comma-joined. It prints exactly what the kernel produced; deriving NES,
// nominal p, FDR, or FWER from rnd_es is left to downstream tooling.
func writeReport(ctx context.Context, path string, db *gsea.EnrichmentDb) error {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	w := bufio.NewWriter(out.Writer(ctx))
	if _, err := w.WriteString("gene_set\tes\trank_at_es\tnperm\trnd_es\n"); err != nil {
		return err
	}
	for _, r := range db.Results {
		if _, err := w.WriteString(r.GeneSet.ID()); err != nil {
			return err
		}
		if _, err := w.WriteString("\t"); err != nil {
			return err
		}
		if _, err := w.WriteString(strconv.FormatFloat(float64(r.Real.MaxDeviation.ES), 'g', 6, 32)); err != nil {
			return err
		}
		if _, err := w.WriteString("\t"); err != nil {
			return err
		}
		if _, err := w.WriteString(strconv.Itoa(r.Real.MaxDeviation.RankAtES)); err != nil {
			return err
		}
		if _, err := w.WriteString("\t"); err != nil {
			return err
		}
		if _, err := w.WriteString(strconv.Itoa(len(r.RndES))); err != nil {
			return err
		}
		if _, err := w.WriteString("\t"); err != nil {
			return err
		}
		if _, err := w.WriteString(formatRndEs(r.RndES)); err != nil {
			return err
		}
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return out.Close(ctx)
}

// formatRndEs renders a gene set's raw permutation ES vector as a
// comma-joined list, in permutation order.
func formatRndEs(rnd []float32) string {
	parts := make([]string, len(rnd))
	for i, v := range rnd {
		parts[i] = strconv.FormatFloat(float64(v), 'g', 6, 32)
	}
	return strings.Join(parts, ",")
}
