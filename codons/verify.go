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
// File Name:  verify.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons

import (
	"errors"
	"fmt"
)

// ErrNotSynonymous is returned when an output translates to a different polypeptide
var ErrNotSynonymous = errors.New("output does not encode the original polypeptide")

// ErrScoreMismatch is returned when an output score is not its distance from the original
var ErrScoreMismatch = errors.New("output score does not match its distance")

// VerifyOutputs translates the original and every output, and recomputes
// each score as the whole-sequence Hamming distance
func VerifyOutputs(gc *GeneticCode, seq CodingSequence, outputs []Output) error {

	if gc == nil {
		return ErrNoGeneticCode
	}

	prot, err := gc.Translate(seq.Codons())
	if err != nil {
		return err
	}

	for k, out := range outputs {

		alt, err := NewCodingSequence(out.Sequence)
		if err != nil || string(alt) != out.Sequence {
			return fmt.Errorf("output %d: %w", k+1, ErrNotSynonymous)
		}

		trans, err := gc.Translate(alt.Codons())
		if err != nil {
			return fmt.Errorf("output %d: %w", k+1, err)
		}
		if trans != prot {
			return fmt.Errorf("output %d: %w", k+1, ErrNotSynonymous)
		}

		dist, err := Distance(string(seq), out.Sequence)
		if err != nil {
			return fmt.Errorf("output %d: %w: %v", k+1, ErrNotSynonymous, err)
		}
		if dist != out.Score {
			return fmt.Errorf("output %d: %w: score %d, distance %d", k+1, ErrScoreMismatch, out.Score, dist)
		}
	}

	return nil
}

// Identity returns the percentage of positions at which two equal-length
// sequences agree
func Identity(a, b string) float64 {

	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	dist, _ := Distance(a, b)

	return 100.0 * float64(len(a)-dist) / float64(len(a))
}
