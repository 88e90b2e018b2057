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
// File Name:  fasta.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons

import (
	"bufio"
	"fmt"
	"github.com/klauspost/pgzip"
	"io"
	"os"
	"strings"
)

// FASTARecord contains parsed data from FASTA format. Index is the
// record's position in the input, starting at 1, and is used to restore
// order after concurrent processing.
type FASTARecord struct {
	Index    int
	SeqID    string
	Title    string
	Length   int
	Sequence string
}

type readCloser struct {
	io.Reader
	close func() error
}

func (rc readCloser) Close() error {

	if rc.close == nil {
		return nil
	}

	return rc.close()
}

// OpenInput wraps a reader, transparently decompressing gzip data detected
// by its magic number
func OpenInput(inp io.Reader) (io.ReadCloser, error) {

	if inp == nil {
		return nil, fmt.Errorf("input reader is missing")
	}

	brd := bufio.NewReaderSize(inp, 65536)

	magic, err := brd.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}

	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		zpr, err := pgzip.NewReader(brd)
		if err != nil {
			return nil, fmt.Errorf("unable to create decompressor: %w", err)
		}
		return readCloser{Reader: zpr, close: zpr.Close}, nil
	}

	return readCloser{Reader: brd}, nil
}

// FASTAConverter partitions a FASTA set and sends records down a channel.
// Text before the first defline, or input with no defline at all, becomes
// a record with an empty identifier.
func FASTAConverter(inp io.Reader) <-chan FASTARecord {

	if inp == nil {
		return nil
	}

	out := make(chan FASTARecord, chanDepth)
	if out == nil {
		fmt.Fprintf(os.Stderr, "\nERROR: Unable to create FASTA converter channel\n")
		os.Exit(1)
	}

	// fastaStreamer sends FASTA records down a channel
	fastaStreamer := func(inp io.Reader, out chan<- FASTARecord) {

		// close channel when all records have been processed
		defer close(out)

		brd := bufio.NewReaderSize(inp, 65536)

		idx := 0
		seqid := ""
		title := ""
		inRecord := false

		var fasta []string

		sendFasta := func() {

			seq := strings.Join(fasta, "")

			if inRecord || len(seq) > 0 {
				idx++
				out <- FASTARecord{Index: idx, SeqID: seqid, Title: title, Length: len(seq), Sequence: seq}
			}

			seqid = ""
			title = ""
			inRecord = false
			// reset sequence accumulator
			fasta = nil
		}

		for {

			line, err := brd.ReadString('\n')

			if line != "" {

				line = strings.TrimRight(line, "\r\n")

				if strings.HasPrefix(line, ">") {

					// send current record, clear sequence buffer
					sendFasta()

					seqid, title = SplitInTwoLeft(line[1:], " ")
					inRecord = true

				} else {

					// letters only, case is preserved for CleanSequence to decide
					line = strings.Map(func(c rune) rune {
						if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
							return c
						}
						return -1
					}, line)

					fasta = append(fasta, line)
				}
			}

			if err != nil {
				if err != io.EOF {
					fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err.Error())
				}
				break
			}
		}

		// send final record
		sendFasta()
	}

	// launch single fasta streamer goroutine
	go fastaStreamer(inp, out)

	return out
}

// SplitInTwoLeft splits a string at the first occurrence of a separator
func SplitInTwoLeft(str, chr string) (string, string) {

	slash := strings.SplitN(str, chr, 2)
	if len(slash) > 1 {
		return slash[0], strings.TrimSpace(slash[1])
	}

	return str, ""
}
