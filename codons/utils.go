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
// File Name:  utils.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/gedex/inflector"
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
	"runtime"
	"strconv"
	"time"
)

// DecodonVersion is the current release number
const DecodonVersion = "1.2"

// PERFORMANCE PARAMETERS

// Tuning variables apply to the concurrent record farm only. A single
// sequence is always processed on one goroutine.
var (
	chanDepth int
	heapSize  int
	numServe  int
	nCPU      int
	numProcs  int
)

// program execution timer
var (
	startTime time.Time
)

// diagnostic prefixes
var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
)

// SetTunings sets performance parameters, zero selects the default
func SetTunings(nmProcs, nmServe, chnDepth, hepSize int) {

	nCPU = runtime.NumCPU()
	if nCPU < 1 {
		nCPU = 1
	}

	// records are short, so one server per physical core is plenty
	if nmProcs < 1 {
		nmProcs = nCPU
		if cpuid.CPU.ThreadsPerCore > 1 {
			nmProcs = nCPU / cpuid.CPU.ThreadsPerCore
		}
	}
	if nmProcs > nCPU {
		nmProcs = nCPU
	}
	if nmProcs < 1 {
		nmProcs = 1
	}

	numProcs = nmProcs

	// allow servers to run on separate threads
	runtime.GOMAXPROCS(numProcs)

	if nmServe < 1 {
		nmServe = numProcs
	}
	if nmServe > 128 {
		nmServe = 128
	}

	numServe = nmServe

	if chnDepth < 1 || chnDepth > 128 {
		chnDepth = numServe
	}

	chanDepth = chnDepth

	if hepSize < 1 || hepSize > 64 {
		hepSize = 8
	}

	heapSize = hepSize
}

// ChanDepth returns the communication channel depth
func ChanDepth() int {

	return chanDepth
}

// NumServe returns the number of concurrent servers
func NumServe() int {

	return numServe
}

// GetTunings returns performance parameter values
func GetTunings() (nmProcs, nmServe, chnDepth, hepSize int) {

	return numProcs, numServe, chanDepth, heapSize
}

// GetNumericArg returns the integer following an option name, limited to
// between min and max when those are positive. A value below 1 returns zer.
func GetNumericArg(args []string, name string, zer, min, max int) (int, error) {

	if len(args) < 2 {
		return 0, fmt.Errorf("%s is missing", name)
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("%s (%s) is not an integer", name, args[1])
	}

	// special case for argument value of 0
	if value < 1 {
		return zer, nil
	}
	if value < min && min > 0 {
		return min, nil
	}
	if value > max && max > 0 {
		return max, nil
	}
	return value, nil
}

// GetStringArg returns the string following an option name
func GetStringArg(args []string, name string) (string, error) {

	if len(args) < 2 {
		return "", fmt.Errorf("%s is missing", name)
	}
	return args[1], nil
}

// PrintError writes an ERROR line, colored when the writer is a terminal
func PrintError(w io.Writer, err error) {

	fmt.Fprintf(w, "\n%s %s\n", errorColor.Sprint("ERROR:"), err.Error())
}

// PrintWarning writes a WARNING line
func PrintWarning(w io.Writer, format string, args ...interface{}) {

	fmt.Fprintf(w, "%s %s\n", warnColor.Sprint("WARNING:"), fmt.Sprintf(format, args...))
}

// Noun returns name in singular or plural form to agree with count
func Noun(count int, name string) string {

	if count == 1 {
		return name
	}

	return inflector.Pluralize(name)
}

// PrintDuration prints processing rate and program duration
func PrintDuration(w io.Writer, name string, recordCount, byteCount int) {

	stopTime := time.Now()
	duration := stopTime.Sub(startTime)
	seconds := float64(duration.Nanoseconds()) / 1e9

	// used for adding commas every 3 digits
	p := message.NewPrinter(language.English)

	prec := 3
	if seconds >= 100 {
		prec = 1
	} else if seconds >= 10 {
		prec = 2
	}

	if recordCount > 0 {
		p.Fprintf(w, "\nProcessed %d %s in %.*f seconds", recordCount, Noun(recordCount, name), prec, seconds)
	} else {
		p.Fprintf(w, "\nProcessing completed in %.*f seconds", prec, seconds)
	}

	if seconds >= 0.001 && recordCount > 0 {
		rate := int(float64(recordCount) / seconds)
		p.Fprintf(w, " (%d %s/second", rate, Noun(rate, name))
		if byteCount > 0 {
			rate := int(float64(byteCount) / seconds)
			if rate >= 1000000 {
				p.Fprintf(w, ", %d megabytes/second", rate/1000000)
			} else if rate >= 1000 {
				p.Fprintf(w, ", %d kilobytes/second", rate/1000)
			} else {
				p.Fprintf(w, ", %d bytes/second", rate)
			}
		}
		fmt.Fprintf(w, ")")
	}

	fmt.Fprintf(w, "\n\n")
}

// PrintStats prints performance tuning parameters
func PrintStats(w io.Writer) {

	fmt.Fprintf(w, "Thrd %d\n", nCPU)
	if cpuid.CPU.ThreadsPerCore > 0 {
		fmt.Fprintf(w, "Core %d\n", nCPU/cpuid.CPU.ThreadsPerCore)
	}
	if cpuid.CPU.LogicalCores > 0 {
		fmt.Fprintf(w, "Sock %d\n", nCPU/cpuid.CPU.LogicalCores)
	}
	fmt.Fprintf(w, "Mmry %d\n", memory.TotalMemory()/(1024*1024*1024))

	fmt.Fprintf(w, "Proc %d\n", numProcs)
	fmt.Fprintf(w, "Serv %d\n", numServe)
	fmt.Fprintf(w, "Chan %d\n", chanDepth)
	fmt.Fprintf(w, "Heap %d\n", heapSize)

	fmt.Fprintf(w, "\n")
}

func init() {

	startTime = time.Now()

	// initialize performance tuning variables with default values
	SetTunings(0, 0, 0, 0)
}
