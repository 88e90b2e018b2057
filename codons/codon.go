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
// File Name:  codon.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons

import (
	"errors"
	"strings"
)

// ErrEmptySequence is returned when no nucleotides remain after cleaning
var ErrEmptySequence = errors.New("sequence contains no A, C, G, or T")

// ErrNotCodonLength is returned when the cleaned length is not a multiple of 3
var ErrNotCodonLength = errors.New("sequence length is not a multiple of 3")

// Codon is a nucleotide triplet
type Codon string

// IsValid reports whether the codon is three upper-case A, C, G, or T letters
func (c Codon) IsValid() bool {

	if len(c) != 3 {
		return false
	}

	for i := 0; i < 3; i++ {
		switch c[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}

	return true
}

// CodingSequence is a cleaned nucleotide string whose length is a positive
// multiple of 3. Values are only produced by NewCodingSequence.
type CodingSequence string

// CleanSequence keeps only upper case A, C, G, and T. Every other
// character, including lower case bases, IUPAC ambiguity codes, digits,
// gaps, and white space, is removed.
func CleanSequence(str string) string {

	return strings.Map(func(c rune) rune {
		switch c {
		case 'A', 'C', 'G', 'T':
			return c
		}
		return -1
	}, str)
}

// NewCodingSequence cleans raw input and checks that it can be split into codons
func NewCodingSequence(str string) (CodingSequence, error) {

	str = CleanSequence(str)

	if len(str) == 0 {
		return "", ErrEmptySequence
	}
	if len(str)%3 != 0 {
		return "", ErrNotCodonLength
	}

	return CodingSequence(str), nil
}

// Codons splits the sequence into consecutive non-overlapping triplets
func (s CodingSequence) Codons() []Codon {

	num := len(s) / 3
	cdns := make([]Codon, num)

	for i := 0; i < num; i++ {
		cdns[i] = Codon(s[3*i : 3*i+3])
	}

	return cdns
}

// NumCodons returns the number of triplets in the sequence
func (s CodingSequence) NumCodons() int {

	return len(s) / 3
}

// String returns the nucleotides
func (s CodingSequence) String() string {

	return string(s)
}
