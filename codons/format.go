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
// File Name:  format.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons

import (
	"fmt"
	"github.com/fatih/color"
	"strings"
	"unicode"
)

// output formats
const (
	TableFormat = "table"
	FASTAFormat = "fasta"
	DiffFormat  = "diff"
)

// FormatArgs selects how results are printed
type FormatArgs struct {
	Format    string
	Highlight bool
	LineLen   int
}

var changeColor = newChangeColor()

func newChangeColor() *color.Color {

	c := color.New(color.FgRed, color.Bold)
	// explicitly requested, so ignore terminal detection
	c.EnableColor()

	return c
}

// FormatResult renders one record's outputs
func FormatResult(res DecodonResult, args FormatArgs) string {

	switch args.Format {
	case FASTAFormat:
		return FormatFASTA(res, args.LineLen)
	case DiffFormat:
		return FormatDiff(res)
	}

	return FormatTable(res, args.Highlight)
}

// FormatTable prints a "Sequence (Score)" heading followed by one line per
// output. A defline is printed first when the record has an identifier.
func FormatTable(res DecodonResult, highlight bool) string {

	var buffer strings.Builder

	if res.SeqID != "" {
		buffer.WriteString(">")
		buffer.WriteString(res.SeqID)
		if res.Title != "" {
			buffer.WriteString(" ")
			buffer.WriteString(res.Title)
		}
		buffer.WriteString("\n")
	}

	buffer.WriteString("Sequence (Score)\n")

	for _, out := range res.Outputs {
		seq := out.Sequence
		if highlight {
			seq = Highlight(string(res.Original), seq)
		}
		fmt.Fprintf(&buffer, "%s (%d)\n", seq, out.Score)
	}

	return buffer.String()
}

// FormatFASTA prints each output as a FASTA record with its score and
// percent identity to the original in the defline
func FormatFASTA(res DecodonResult, lineLen int) string {

	if lineLen < 1 {
		lineLen = 60
	}

	base := res.SeqID
	if base == "" {
		base = fmt.Sprintf("seq%d", res.Index)
	}

	var buffer strings.Builder

	for k, out := range res.Outputs {

		ident := Identity(string(res.Original), out.Sequence)
		fmt.Fprintf(&buffer, ">%s_%d score=%d identity=%.1f%%\n", base, k+1, out.Score, ident)

		seq := out.Sequence
		for len(seq) > lineLen {
			buffer.WriteString(seq[:lineLen])
			buffer.WriteString("\n")
			seq = seq[lineLen:]
		}
		if seq != "" {
			buffer.WriteString(seq)
			buffer.WriteString("\n")
		}
	}

	return buffer.String()
}

// FormatDiff prints each output beneath the original in blocks of 50
// bases. Matching bases are lower case in the top line and blank below,
// changed bases are upper case in both lines.
func FormatDiff(res DecodonResult) string {

	var buffer strings.Builder

	name := res.SeqID
	if name == "" {
		name = fmt.Sprintf("seq%d", res.Index)
	}

	for k, out := range res.Outputs {
		fmt.Fprintf(&buffer, "%s_%d score=%d\n", name, k+1, out.Score)
		writeFastaPairs(&buffer, string(res.Original), out.Sequence)
		buffer.WriteString("\n")
	}

	return buffer.String()
}

func writeFastaPairs(buffer *strings.Builder, frst, scnd string) {

	frst = strings.ToLower(frst)
	scnd = strings.ToLower(scnd)

	mx := len(frst)
	if len(scnd) > mx {
		mx = len(scnd)
	}

	// positions past the end of the shorter sequence read as spaces
	at := func(str string, i int) rune {
		if i >= len(str) {
			return ' '
		}
		return rune(str[i])
	}

	fs := make([]rune, 0, mx)
	sc := make([]rune, 0, mx)

	for i := 0; i < mx; i++ {
		f, s := at(frst, i), at(scnd, i)
		if f == s {
			fs = append(fs, f)
			sc = append(sc, ' ')
		} else {
			fs = append(fs, unicode.ToUpper(f))
			sc = append(sc, unicode.ToUpper(s))
		}
	}

	// print in blocks of 50 bases
	for i := 0; i < mx; i += 50 {
		dl := 50
		if mx-i < 50 {
			dl = mx - i
		}
		lf := string(fs[i : i+dl])
		rt := strings.TrimRight(string(sc[i:i+dl]), " ")
		fmt.Fprintf(buffer, "%-50s %6d\n%s\n", lf, i+dl, rt)
	}
}

// Highlight colors the bases of alt that differ from orig
func Highlight(orig, alt string) string {

	var buffer strings.Builder

	i := 0
	for i < len(alt) {
		j := i
		if i < len(orig) && orig[i] == alt[i] {
			for j < len(alt) && j < len(orig) && orig[j] == alt[j] {
				j++
			}
			buffer.WriteString(alt[i:j])
		} else {
			for j < len(alt) && (j >= len(orig) || orig[j] != alt[j]) {
				j++
			}
			buffer.WriteString(changeColor.Sprint(alt[i:j]))
		}
		i = j
	}

	return buffer.String()
}
