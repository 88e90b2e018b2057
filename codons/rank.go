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
// File Name:  rank.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidCount is returned when fewer than one output is requested
var ErrInvalidCount = errors.New("number of outputs must be greater than 0")

// ErrNoGeneticCode is returned when a nil genetic code is supplied
var ErrNoGeneticCode = errors.New("genetic code is missing")

// RankedAlternative is a synonymous codon and its distance from the original
type RankedAlternative struct {
	Codon    Codon
	Distance int
}

// RankAlternatives returns exactly num synonyms of cdn, most distant first.
// Equally distant synonyms keep their order in the genetic code. When the
// residue has fewer than num codons, the list is padded by repeating the
// first entry, so every output position always receives a codon.
func RankAlternatives(gc *GeneticCode, cdn Codon, num int) ([]RankedAlternative, error) {

	if gc == nil {
		return nil, ErrNoGeneticCode
	}
	if num < 1 {
		return nil, ErrInvalidCount
	}

	aa, err := gc.Residue(cdn)
	if err != nil {
		return nil, err
	}

	// list includes the original codon at distance 0
	alts := gc.synonyms[aa]

	ranked := make([]RankedAlternative, 0, len(alts))
	for _, alt := range alts {
		dist, err := Distance(string(cdn), string(alt))
		if err != nil {
			return nil, fmt.Errorf("codon %s: %w", cdn, err)
		}
		ranked = append(ranked, RankedAlternative{Codon: alt, Distance: dist})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Distance > ranked[j].Distance })

	if len(ranked) > num {
		ranked = ranked[:num]
	}

	for len(ranked) < num {
		ranked = append(ranked, ranked[0])
	}

	return ranked, nil
}
