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

package codons

import "strings"

// Output is one assembled sequence and its total distance from the original
type Output struct {
	Sequence string
	Score    int
}

// Decodon builds num sequences that encode the same polypeptide as seq.
// Output k takes the k-th ranked synonym at every codon position, so output
// 0 is the most divergent choice position by position. The result is not
// re-sorted and is not a global optimum over the whole sequence.
func Decodon(gc *GeneticCode, seq CodingSequence, num int) ([]Output, error) {

	return DecodonCodons(gc, seq.Codons(), num)
}

// DecodonCodons is Decodon for callers that already hold codons. An empty
// codon list produces num empty outputs.
func DecodonCodons(gc *GeneticCode, cdns []Codon, num int) ([]Output, error) {

	if gc == nil {
		return nil, ErrNoGeneticCode
	}
	if num < 1 {
		return nil, ErrInvalidCount
	}

	seqs := make([]strings.Builder, num)
	scores := make([]int, num)

	for k := range seqs {
		seqs[k].Grow(3 * len(cdns))
	}

	// codons must be visited left to right, outputs grow by appending
	for _, cdn := range cdns {

		ranked, err := RankAlternatives(gc, cdn, num)
		if err != nil {
			return nil, err
		}

		for k, alt := range ranked {
			seqs[k].WriteString(string(alt.Codon))
			scores[k] += alt.Distance
		}
	}

	outputs := make([]Output, num)
	for k := range outputs {
		outputs[k] = Output{Sequence: seqs[k].String(), Score: scores[k]}
	}

	return outputs, nil
}
