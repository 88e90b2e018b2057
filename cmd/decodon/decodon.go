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
// File Name:  decodon.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package main

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/hatch-lab/decodon/codons"
	"github.com/klauspost/pgzip"
	"io"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
)

const decodonHelp = `
Given a DNA coding sequence, print the most divergent sequences that
produce the same polypeptide.

Usage:
  decodon [options] SEQUENCE...
  decodon [options] -input FILE
  decodon [options] < FILE

Sequence Options:
  -n, -N, --N=<int>  Number of divergent sequences to print [default: 1]
  -code <int>        NCBI genetic code [default: 1]
  -verify            Translate every output and confirm the polypeptide
  -summary           Print score range and identity for each record to stderr

Output Formats:
  -fasta             FASTA records with score and percent identity
  -diff              Changed bases shown beneath the original
  -color             Highlight changed bases in the default table
  -width <int>       FASTA line length [default: 60]
  -gzip              Compress output

Input:
  -input FILE        Read FASTA or plain sequence from file, gzip detected

Performance and Debugging:
  -proc <int>        Number of processors
  -serv <int>        Concurrent record servers
  -chan <int>        Communication channel depth
  -heap <int>        Unshuffler heap size
  -stats             Print tuning parameters
  -timer             Print processing time

Documentation:
  -help, -version, -printgcodes, -synonyms

Characters other than upper case A, C, G, and T are removed from the
input, including lower case letters. The cleaned sequence must have a
length that is a positive multiple of 3.
`

// decodonOptions holds everything read from the command line
type decodonOptions struct {
	// performance arguments
	numProcs  int
	numServe  int
	chanDepth int
	heapSize  int

	// read data from file instead of stdin
	fileName string

	// debugging
	stats     bool
	statsOnly bool
	timer     bool

	// compress output
	zipp bool

	// documentation command, run instead of decodon
	docCmd string

	num       int
	genCode   int
	verify    bool
	synonyms  bool
	summary   bool
	format    codons.FormatArgs
	sequences []string
}

// exit after printing error
func fail(err error) {

	codons.PrintError(os.Stderr, err)
	os.Exit(1)
}

// parseCount rejects output counts below 1
func parseCount(str string) (int, error) {

	num, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("-N (%s) is not an integer", str)
	}
	if num < 1 {
		return 0, fmt.Errorf("-N must be greater than 0: %w", codons.ErrInvalidCount)
	}

	return num, nil
}

// parseArguments reads tuning, input, and debugging flags first, then either
// a documentation command or the sequence options and positional sequences
func parseArguments(args []string) (decodonOptions, error) {

	opts := decodonOptions{
		num:     1,
		genCode: 1,
		format:  codons.FormatArgs{Format: codons.TableFormat, LineLen: 60},
	}

	// get tuning, input, and debugging flags in any order
	for len(args) > 0 {

		inSwitch := true
		var err error

		switch args[0] {

		// performance tuning flags
		case "-proc":
			opts.numProcs, err = codons.GetNumericArg(args, "Number of processors", 0, 1, 0)
			args = args[1:]
		case "-serv":
			opts.numServe, err = codons.GetNumericArg(args, "Concurrent server count", 0, 1, 128)
			args = args[1:]
		case "-chan":
			opts.chanDepth, err = codons.GetNumericArg(args, "Communication channel depth", 0, 1, 128)
			args = args[1:]
		case "-heap":
			opts.heapSize, err = codons.GetNumericArg(args, "Unshuffler heap size", 0, 1, 64)
			args = args[1:]

		// read data from file
		case "-input":
			opts.fileName, err = codons.GetStringArg(args, "Input file name")
			// skip past first of two arguments
			args = args[1:]

		case "-gzip":
			opts.zipp = true

		// debugging flags
		case "-stats", "-stat":
			opts.stats = true
		case "-timer":
			opts.timer = true

		default:
			// if not any of the controls, set flag to break out of for loop
			inSwitch = false
		}

		if err != nil {
			return opts, err
		}

		if !inSwitch {
			break
		}

		// skip past argument
		args = args[1:]
	}

	// -stats prints number of CPUs and performance tuning values if no other arguments
	if opts.stats && len(args) < 1 {
		opts.statsOnly = true
		return opts, nil
	}

	// DOCUMENTATION COMMANDS

	if len(args) > 0 {
		switch args[0] {
		case "-version", "-help", "help", "--help", "-h", "-printgcodes":
			opts.docCmd = args[0]
			return opts, nil
		}
	}

	// SEQUENCE OPTIONS

	for len(args) > 0 {

		var err error

		switch args[0] {
		case "-n", "-N", "-num", "--N":
			if len(args) < 2 {
				return opts, errors.New("-N argument is missing")
			}
			opts.num, err = parseCount(args[1])
			args = args[1:]
		case "-code", "-gencode":
			opts.genCode, err = codons.GetNumericArg(args, "Genetic code number", 1, 1, 0)
			args = args[1:]
		case "-verify":
			opts.verify = true
		case "-synonyms":
			opts.synonyms = true
		case "-summary":
			opts.summary = true
		case "-fasta":
			opts.format.Format = codons.FASTAFormat
		case "-diff":
			opts.format.Format = codons.DiffFormat
		case "-color", "-colors":
			opts.format.Highlight = true
		case "-width":
			opts.format.LineLen, err = codons.GetNumericArg(args, "FASTA line length", 60, 10, 0)
			args = args[1:]
		case "-input", "-gzip", "-stats", "-timer":
			err = fmt.Errorf("Misplaced %s command", args[0])
		default:
			str := args[0]
			if strings.HasPrefix(str, "--N=") {
				opts.num, err = parseCount(str[4:])
			} else if strings.HasPrefix(str, "-") {
				err = fmt.Errorf("Unrecognized option '%s'", str)
			} else {
				opts.sequences = append(opts.sequences, str)
			}
		}

		if err != nil {
			return opts, err
		}

		args = args[1:]
	}

	if len(opts.sequences) > 0 && opts.fileName != "" {
		return opts, errors.New("Sequences supplied on both the command line and in -input file")
	}

	return opts, nil
}

// checkInput fails only when there is nothing to read, so piped stdin needs
// no arguments at all
func checkInput(opts decodonOptions, noArgs, isTerm bool) error {

	if !isTerm || len(opts.sequences) > 0 || opts.fileName != "" {
		return nil
	}
	if noArgs {
		return errors.New("No command-line arguments supplied to decodon")
	}

	return errors.New("No sequence supplied on the command line, in -input file, or on stdin")
}

// openRecords selects command-line sequences, the -input file, or stdin, and
// returns a record channel and a function that releases the input
func openRecords(opts decodonOptions, stdin io.Reader) (<-chan codons.FASTARecord, func(), error) {

	if len(opts.sequences) > 0 {
		return codons.SliceToChan(opts.sequences), func() {}, nil
	}

	in := stdin
	var inFile *os.File

	if opts.fileName != "" {

		var err error
		inFile, err = os.Open(opts.fileName)
		if err != nil {
			return nil, nil, fmt.Errorf("Unable to open input file '%s'", opts.fileName)
		}

		// use indicated file instead of stdin
		in = inFile
	}

	rdr, err := codons.OpenInput(in)
	if err != nil {
		if inFile != nil {
			inFile.Close()
		}
		return nil, nil, err
	}

	release := func() {
		rdr.Close()
		if inFile != nil {
			inFile.Close()
		}
	}

	return codons.FASTAConverter(rdr), release, nil
}

// writeResults prints every record in the selected format, compressing when
// requested, and returns record and base counts for -timer
func writeResults(w io.Writer, opts decodonOptions, results []codons.DecodonResult) (int, int, error) {

	var zpr *pgzip.Writer

	if opts.zipp {

		var err error
		zpr, err = pgzip.NewWriterLevel(w, pgzip.BestSpeed)
		if err != nil {
			return 0, 0, errors.New("Unable to create compressor")
		}

		w = zpr
	}

	wrtr := bufio.NewWriter(w)

	recordCount := 0
	byteCount := 0

	for _, res := range results {

		if res.Index > 1 {
			wrtr.WriteString("\n")
		}

		wrtr.WriteString(codons.FormatResult(res, opts.format))

		recordCount++
		byteCount += len(res.Original)
	}

	if err := wrtr.Flush(); err != nil {
		return recordCount, byteCount, err
	}

	// close compressor when all records have been written
	if zpr != nil {
		if err := zpr.Close(); err != nil {
			return recordCount, byteCount, err
		}
	}

	return recordCount, byteCount, nil
}

// MAIN FUNCTION

func main() {

	// skip past executable name
	args := os.Args[1:]

	opts, err := parseArguments(args)
	if err != nil {
		fail(err)
	}

	codons.SetTunings(opts.numProcs, opts.numServe, opts.chanDepth, opts.heapSize)

	if opts.statsOnly {

		codons.PrintStats(os.Stderr)

		return
	}

	switch opts.docCmd {
	case "-version":
		fmt.Printf("%s\n", codons.DecodonVersion)
		return
	case "-help", "help", "--help", "-h":
		fmt.Printf("decodon %s\n%s\n", codons.DecodonVersion, decodonHelp)
		return
	case "-printgcodes":
		// print tab-delimited table of all genetic codes
		codons.PrintGeneticCodeTables(os.Stdout)
		return
	}

	gc, err := codons.NewGeneticCode(opts.genCode)
	if err != nil {
		fail(err)
	}

	if opts.synonyms {
		fmt.Fprintf(os.Stdout, "%d\t%s\n", gc.ID(), gc.Name())
		gc.PrintSynonyms(os.Stdout)
		return
	}

	// SELECT INPUT

	fi, err := os.Stdin.Stat()
	isTerm := err == nil && (fi.Mode()&os.ModeCharDevice) != 0

	if err := checkInput(opts, len(args) < 1, isTerm); err != nil {
		fail(err)
	}

	recs, release, err := openRecords(opts, os.Stdin)
	if err != nil {
		fail(err)
	}

	defer release()

	// RUN DECODON ON EVERY RECORD

	dargs := codons.DecodonArgs{Code: gc, Num: opts.num, Verify: opts.verify}

	srvr := codons.CreateDecodonServers(dargs, recs)
	unsq := codons.CreateDecodonUnshuffler(srvr)

	results, err := codons.ResultsToSlice(unsq)

	if err != nil {
		// report every failed record, print no sequences
		for _, res := range results {
			if res.Err != nil {
				codons.PrintError(os.Stderr, res.Err)
			}
		}
		os.Exit(1)
	}

	if len(results) < 1 {
		fail(codons.ErrEmptySequence)
	}

	// PRINT RESULTS

	recordCount, byteCount, err := writeResults(os.Stdout, opts, results)
	if err != nil {
		fail(err)
	}

	if opts.summary {
		for _, res := range results {
			name := res.SeqID
			if name == "" {
				name = fmt.Sprintf("sequence %d", res.Index)
			}
			codons.PrintSummary(os.Stderr, name, codons.Summarize(res.Original, res.Outputs))
		}
	}

	debug.FreeOSMemory()

	if opts.timer {
		codons.PrintDuration(os.Stderr, "sequence", recordCount, byteCount)
	}
}
