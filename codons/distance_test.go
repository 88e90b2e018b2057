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
// File Name:  distance_test.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons_test

import (
	"testing"

	"github.com/hatch-lab/decodon/codons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func everyCodon() []string {

	const bases = "ACGT"

	var arry []string
	for _, a := range bases {
		for _, b := range bases {
			for _, c := range bases {
				arry = append(arry, string([]rune{a, b, c}))
			}
		}
	}

	return arry
}

func TestDistance(t *testing.T) {

	cases := []struct {
		a, b string
		want int
	}{
		{"GCT", "GCT", 0},
		{"GCT", "GCA", 1},
		{"TGA", "TAA", 1},
		{"TGA", "TAG", 2},
		{"AAA", "TTT", 3},
		{"", "", 0},
		{"GAGCCT", "CATCGT", 4},
	}

	for _, c := range cases {
		got, err := codons.Distance(c.a, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%s %s", c.a, c.b)
	}
}

func TestDistanceProperties(t *testing.T) {

	all := everyCodon()
	require.Len(t, all, 64)

	for _, a := range all {

		self, err := codons.Distance(a, a)
		require.NoError(t, err)
		assert.Zero(t, self)

		for _, b := range all {
			ab, err := codons.Distance(a, b)
			require.NoError(t, err)
			ba, err := codons.Distance(b, a)
			require.NoError(t, err)

			assert.Equal(t, ab, ba)
			assert.GreaterOrEqual(t, ab, 0)
			assert.LessOrEqual(t, ab, 3)
		}
	}
}

func TestDistanceLengthMismatch(t *testing.T) {

	_, err := codons.Distance("ACG", "AC")
	assert.Error(t, err)
}
