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
// File Name:  summary.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons

import (
	"fmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
)

// Summary reports the spread of scores across one record's outputs
type Summary struct {
	Outputs  int
	Length   int
	MinScore int
	MaxScore int
	Identity []float64
}

// Summarize collects score range and percent identity to the original for
// each output
func Summarize(seq CodingSequence, outputs []Output) Summary {

	sm := Summary{Outputs: len(outputs), Length: len(seq)}

	for k, out := range outputs {
		if k == 0 || out.Score < sm.MinScore {
			sm.MinScore = out.Score
		}
		if k == 0 || out.Score > sm.MaxScore {
			sm.MaxScore = out.Score
		}
		sm.Identity = append(sm.Identity, Identity(string(seq), out.Sequence))
	}

	return sm
}

// PrintSummary writes a one-line summary, with digit grouping, for a record
func PrintSummary(w io.Writer, name string, sm Summary) {

	p := message.NewPrinter(language.English)

	p.Fprintf(w, "%s: %d %s, %d %s, score %d to %d", name,
		sm.Outputs, Noun(sm.Outputs, "output"), sm.Length, Noun(sm.Length, "base"),
		sm.MinScore, sm.MaxScore)

	if len(sm.Identity) > 0 {
		lo, hi := sm.Identity[0], sm.Identity[0]
		for _, id := range sm.Identity[1:] {
			if id < lo {
				lo = id
			}
			if id > hi {
				hi = id
			}
		}
		p.Fprintf(w, ", identity %.1f%% to %.1f%%", lo, hi)
	}

	fmt.Fprintf(w, "\n")
}
