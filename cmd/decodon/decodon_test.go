// ===========================================================================
//
//                            PUBLIC DOMAIN NOTICE
//            National Center for Biotechnology Information (NCBI)
//
//  This software/database is a "United States Government Work" under the
//  terms of the United States Copyright Act. It was written as part of
//  the author's official duties as a United States Government employee and
//  thus cannot be copyrighted. This software/database is freely available
//  to the public for use. The National Library of Medicine and the U.S.
//  Government do not place any restriction on its use or reproduction.
//  We would, however, appreciate having the NCBI and the author cited in
//  any work or product based on this material.
//
//  Although all reasonable efforts have been taken to ensure the accuracy
//  and reliability of the software and data, the NLM and the U.S.
//  Government do not and cannot warrant the performance or results that
//  may be obtained by using this software or data. The NLM and the U.S.
//  Government disclaim all warranties, express or implied, including
//  warranties of performance, merchantability or fitness for any particular
//  purpose.
//
// ===========================================================================
//
// File Name:  decodon_test.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hatch-lab/decodon/codons"
	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArguments(t *testing.T) {

	tests := []struct {
		name string
		args []string
		num  int
		seqs []string
	}{
		{"defaults", []string{"ATGGCTTGA"}, 1, []string{"ATGGCTTGA"}},
		{"equals form", []string{"--N=3", "ATG"}, 3, []string{"ATG"}},
		{"separate value", []string{"--N", "2", "ATG"}, 2, []string{"ATG"}},
		{"short flag after sequence", []string{"ATG", "-n", "4"}, 4, []string{"ATG"}},
		{"several sequences", []string{"-N", "2", "ATG", "GCT"}, 2, []string{"ATG", "GCT"}},
		{"no arguments", nil, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArguments(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.num, opts.num)
			assert.Equal(t, tt.seqs, opts.sequences)
			assert.Equal(t, 1, opts.genCode)
			assert.Equal(t, codons.TableFormat, opts.format.Format)
		})
	}
}

func TestParseArgumentsOptions(t *testing.T) {

	opts, err := parseArguments([]string{"-proc", "2", "-heap", "4", "-input", "genes.fsa", "-gzip", "-timer",
		"-code", "2", "-fasta", "-width", "30", "-verify", "-summary"})
	require.NoError(t, err)

	assert.Equal(t, 2, opts.numProcs)
	assert.Equal(t, 4, opts.heapSize)
	assert.Equal(t, "genes.fsa", opts.fileName)
	assert.True(t, opts.zipp)
	assert.True(t, opts.timer)
	assert.Equal(t, 2, opts.genCode)
	assert.Equal(t, codons.FASTAFormat, opts.format.Format)
	assert.Equal(t, 30, opts.format.LineLen)
	assert.True(t, opts.verify)
	assert.True(t, opts.summary)

	opts, err = parseArguments([]string{"-stats"})
	require.NoError(t, err)
	assert.True(t, opts.statsOnly)

	opts, err = parseArguments([]string{"-serv", "2", "-printgcodes", "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "-printgcodes", opts.docCmd)
}

func TestParseArgumentsErrors(t *testing.T) {

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"zero count", []string{"--N=0", "ATG"}, "-N must be greater than 0"},
		{"bad count", []string{"-N", "two", "ATG"}, "-N (two) is not an integer"},
		{"missing count", []string{"ATG", "-N"}, "-N argument is missing"},
		{"misplaced input", []string{"ATG", "-input", "genes.fsa"}, "Misplaced -input command"},
		{"misplaced gzip", []string{"-fasta", "-gzip"}, "Misplaced -gzip command"},
		{"unknown option", []string{"-frobnicate"}, "Unrecognized option '-frobnicate'"},
		{"both inputs", []string{"-input", "genes.fsa", "ATG"}, "Sequences supplied on both the command line and in -input file"},
		{"missing file name", []string{"-input"}, "Input file name is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArguments(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := parseArguments([]string{"-N", "0"})
	assert.ErrorIs(t, err, codons.ErrInvalidCount)
}

func TestCheckInput(t *testing.T) {

	// piped stdin needs no arguments
	assert.NoError(t, checkInput(decodonOptions{}, true, false))

	assert.NoError(t, checkInput(decodonOptions{sequences: []string{"ATG"}}, false, true))
	assert.NoError(t, checkInput(decodonOptions{fileName: "genes.fsa"}, false, true))

	err := checkInput(decodonOptions{}, true, true)
	assert.EqualError(t, err, "No command-line arguments supplied to decodon")

	err = checkInput(decodonOptions{num: 2}, false, true)
	assert.EqualError(t, err, "No sequence supplied on the command line, in -input file, or on stdin")
}

// runPipeline mirrors main from argument parsing through output
func runPipeline(t *testing.T, args []string, stdin io.Reader) string {

	opts, err := parseArguments(args)
	require.NoError(t, err)
	require.NoError(t, checkInput(opts, len(args) < 1, false))

	gc, err := codons.NewGeneticCode(opts.genCode)
	require.NoError(t, err)

	recs, release, err := openRecords(opts, stdin)
	require.NoError(t, err)
	defer release()

	dargs := codons.DecodonArgs{Code: gc, Num: opts.num, Verify: true}
	results, err := codons.ResultsToSlice(codons.CreateDecodonUnshuffler(codons.CreateDecodonServers(dargs, recs)))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, _, err = writeResults(&buf, opts, results)
	require.NoError(t, err)

	return buf.String()
}

func TestPipedStdinWithoutArguments(t *testing.T) {

	out := runPipeline(t, nil, strings.NewReader("ATGGCTTGA\n"))
	assert.Equal(t, "Sequence (Score)\nATGGCCTAG (3)\n", out)
}

func TestCommandLineSequences(t *testing.T) {

	out := runPipeline(t, []string{"--N=2", "ATGGCTTGA", "ATG"}, nil)

	want := "Sequence (Score)\n" +
		"ATGGCCTAG (3)\n" +
		"ATGGCATAA (2)\n" +
		"\n" +
		"Sequence (Score)\n" +
		"ATG (0)\n" +
		"ATG (0)\n"
	assert.Equal(t, want, out)
}

func TestInputFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "genes.fsa")
	require.NoError(t, os.WriteFile(path, []byte(">hbb\nATGGCTTGA\n"), 0o644))

	out := runPipeline(t, []string{"-input", path, "-fasta"}, nil)
	assert.Equal(t, ">hbb_1 score=3 identity=66.7%\nATGGCCTAG\n", out)

	_, _, err := openRecords(decodonOptions{fileName: filepath.Join(t.TempDir(), "missing.fsa")}, nil)
	assert.Error(t, err)
}

func TestWriteResultsCompressed(t *testing.T) {

	opts, err := parseArguments([]string{"-gzip", "ATGGCTTGA"})
	require.NoError(t, err)

	recs, release, err := openRecords(opts, nil)
	require.NoError(t, err)
	defer release()

	dargs := codons.DecodonArgs{Code: codons.StandardCode(), Num: 1}
	results, err := codons.ResultsToSlice(codons.CreateDecodonUnshuffler(codons.CreateDecodonServers(dargs, recs)))
	require.NoError(t, err)

	var buf bytes.Buffer
	recordCount, byteCount, err := writeResults(&buf, opts, results)
	require.NoError(t, err)
	assert.Equal(t, 1, recordCount)
	assert.Equal(t, 9, byteCount)

	zpr, err := pgzip.NewReader(&buf)
	require.NoError(t, err)
	data, err := io.ReadAll(zpr)
	require.NoError(t, err)
	assert.Equal(t, "Sequence (Score)\nATGGCCTAG (3)\n", string(data))
}

func TestLowerCaseBasesRemoved(t *testing.T) {

	out := runPipeline(t, nil, strings.NewReader(">soft masked\natgGCT\n"))
	assert.Equal(t, ">soft masked\nSequence (Score)\nGCC (1)\n", out)
}
