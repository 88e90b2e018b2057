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
// File Name:  farm_test.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/hatch-lab/decodon/codons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServersRestoreOrder(t *testing.T) {

	codons.SetTunings(4, 8, 4, 2)
	defer codons.SetTunings(0, 0, 0, 0)

	gc := codons.StandardCode()
	rnd := rand.New(rand.NewSource(7))

	var seqs []string
	for i := 0; i < 300; i++ {
		seqs = append(seqs, string(randomCoding(rnd, 1+rnd.Intn(100))))
	}

	args := codons.DecodonArgs{Code: gc, Num: 3, Verify: true}

	unsq := codons.CreateDecodonUnshuffler(codons.CreateDecodonServers(args, codons.SliceToChan(seqs)))

	results, err := codons.ResultsToSlice(unsq)
	require.NoError(t, err)
	require.Len(t, results, len(seqs))

	for i, res := range results {
		assert.Equal(t, i+1, res.Index)
		assert.Equal(t, seqs[i], string(res.Original))

		want, err := codons.Decodon(gc, res.Original, 3)
		require.NoError(t, err)
		assert.Equal(t, want, res.Outputs)
	}
}

func TestServersReportErrors(t *testing.T) {

	gc := codons.StandardCode()
	args := codons.DecodonArgs{Code: gc, Num: 2}

	fsa := ">ok\nATGGCT\n>bad\nATGG\n>none\n\n>fine\nTGA\n"

	srvr := codons.CreateDecodonServers(args, codons.FASTAConverter(strings.NewReader(fsa)))
	results, err := codons.ResultsToSlice(codons.CreateDecodonUnshuffler(srvr))

	require.Error(t, err)
	assert.ErrorIs(t, err, codons.ErrNotCodonLength)
	assert.Contains(t, err.Error(), "bad")

	require.Len(t, results, 4)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, codons.ErrNotCodonLength)
	assert.ErrorIs(t, results[2].Err, codons.ErrEmptySequence)
	assert.NoError(t, results[3].Err)
	assert.Len(t, results[3].Outputs, 2)
}

func TestDecodonRecordLabels(t *testing.T) {

	args := codons.DecodonArgs{Code: codons.StandardCode(), Num: 1}

	res := codons.DecodonRecord(args, codons.FASTARecord{Index: 5, Sequence: "AC"})
	require.Error(t, res.Err)
	assert.Equal(t, fmt.Sprintf("sequence 5: %s", codons.ErrNotCodonLength), res.Err.Error())

	res = codons.DecodonRecord(codons.DecodonArgs{Num: 1}, codons.FASTARecord{Index: 1, Sequence: "ATG"})
	assert.ErrorIs(t, res.Err, codons.ErrNoGeneticCode)
}

func TestNilChannels(t *testing.T) {

	args := codons.DecodonArgs{Code: codons.StandardCode(), Num: 1}

	assert.Nil(t, codons.CreateDecodonServers(args, nil))
	assert.Nil(t, codons.CreateDecodonUnshuffler(nil))
	assert.Nil(t, codons.SliceToChan(nil))

	results, err := codons.ResultsToSlice(nil)
	assert.Nil(t, results)
	assert.NoError(t, err)
}
