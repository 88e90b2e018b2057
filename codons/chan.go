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
// File Name:  chan.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons

// SliceToChan sends sequence strings down a channel as numbered records
func SliceToChan(values []string) <-chan FASTARecord {

	if values == nil {
		return nil
	}

	out := make(chan FASTARecord, chanDepth)

	bufferRecordChannel := func(values []string, out chan<- FASTARecord) {

		// close channel when all records have been processed
		defer close(out)

		for i, str := range values {
			out <- FASTARecord{Index: i + 1, Length: len(str), Sequence: str}
		}
	}

	// launch single buffering goroutine
	go bufferRecordChannel(values, out)

	return out
}

// ResultsToSlice drains a result channel, returning every result and the
// first error received
func ResultsToSlice(inp <-chan DecodonResult) ([]DecodonResult, error) {

	if inp == nil {
		return nil, nil
	}

	var arry []DecodonResult
	var first error

	for res := range inp {
		if res.Err != nil && first == nil {
			first = res.Err
		}
		arry = append(arry, res)
	}

	return arry, first
}
