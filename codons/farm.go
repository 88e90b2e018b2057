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
// File Name:  farm.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons

import (
	"container/heap"
	"fmt"
	"sync"
)

// DecodonResult holds the outputs for one input record. Err is set instead
// of Outputs when the record could not be processed.
type DecodonResult struct {
	Index    int
	SeqID    string
	Title    string
	Original CodingSequence
	Outputs  []Output
	Err      error
}

// DecodonArgs are the per-run settings shared by every server
type DecodonArgs struct {
	Code   *GeneticCode
	Num    int
	Verify bool
}

// DecodonRecord runs the accumulator on a single record
func DecodonRecord(args DecodonArgs, rec FASTARecord) DecodonResult {

	res := DecodonResult{Index: rec.Index, SeqID: rec.SeqID, Title: rec.Title}

	label := rec.SeqID
	if label == "" {
		label = fmt.Sprintf("sequence %d", rec.Index)
	}

	seq, err := NewCodingSequence(rec.Sequence)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", label, err)
		return res
	}
	res.Original = seq

	outputs, err := Decodon(args.Code, seq, args.Num)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", label, err)
		return res
	}

	if args.Verify {
		if err := VerifyOutputs(args.Code, seq, outputs); err != nil {
			res.Err = fmt.Errorf("%s: %w", label, err)
			return res
		}
	}

	res.Outputs = outputs

	return res
}

// CreateDecodonServers processes records on NumServe concurrent goroutines.
// Results arrive in completion order, pass them through the unshuffler to
// restore input order.
func CreateDecodonServers(args DecodonArgs, inp <-chan FASTARecord) <-chan DecodonResult {

	if inp == nil {
		return nil
	}

	out := make(chan DecodonResult, chanDepth)

	// decodonServer reads records from channel and runs each one independently
	decodonServer := func(wg *sync.WaitGroup, inp <-chan FASTARecord, out chan<- DecodonResult) {

		// report when this server has no more records to process
		defer wg.Done()

		for rec := range inp {
			// send even if failed to get all record counts for reordering
			out <- DecodonRecord(args, rec)
		}
	}

	var wg sync.WaitGroup

	// launch multiple server goroutines
	for i := 0; i < numServe; i++ {
		wg.Add(1)
		go decodonServer(&wg, inp, out)
	}

	// launch separate anonymous goroutine to wait until all servers are done
	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// UNSHUFFLER USES HEAP TO RESTORE OUTPUT OF MULTIPLE SERVERS TO ORIGINAL RECORD ORDER

type resultHeap []DecodonResult

// methods that satisfy heap.Interface
func (h resultHeap) Len() int {
	return len(h)
}
func (h resultHeap) Less(i, j int) bool {
	return h[i].Index < h[j].Index
}
func (h resultHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}
func (h *resultHeap) Push(x interface{}) {
	*h = append(*h, x.(DecodonResult))
}
func (h *resultHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// CreateDecodonUnshuffler releases results in the same order as the
// original records, which are numbered consecutively from 1
func CreateDecodonUnshuffler(inp <-chan DecodonResult) <-chan DecodonResult {

	if inp == nil {
		return nil
	}

	out := make(chan DecodonResult, chanDepth)

	// decodonUnshuffler restores original order with heap
	decodonUnshuffler := func(inp <-chan DecodonResult, out chan<- DecodonResult) {

		// close channel when all records have been processed
		defer close(out)

		// initialize empty heap
		hp := &resultHeap{}
		heap.Init(hp)

		// index of next desired result
		next := 1

		delay := 0

		for res := range inp {

			heap.Push(hp, res)

			// read several values before checking whether the next record is ready
			if delay < heapSize {
				delay++
				continue
			}

			delay = 0

			for hp.Len() > 0 {

				curr := heap.Pop(hp).(DecodonResult)

				if curr.Index > next {
					// record should be printed later, push back onto heap
					heap.Push(hp, curr)
					break
				}

				out <- curr
				next++
			}
		}

		// flush remainder of heap to output
		for hp.Len() > 0 {
			curr := heap.Pop(hp).(DecodonResult)

			out <- curr
		}
	}

	// launch single unshuffler goroutine
	go decodonUnshuffler(inp, out)

	return out
}
