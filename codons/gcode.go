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
// File Name:  gcode.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package codons

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnknownCodon is returned for a triplet that has no entry in the genetic code
var ErrUnknownCodon = errors.New("codon not in code table")

// ErrUnknownGenCode is returned for an NCBI genetic code number without a table
var ErrUnknownGenCode = errors.New("genetic code does not exist")

// ErrBadGeneticCode reports a table that does not cover the 64 codons exactly once
var ErrBadGeneticCode = errors.New("genetic code table is inconsistent")

// The standard code is declared by hand. Within each residue the order of
// the codons is fixed, and ranking uses it to break ties between synonyms
// that are equally distant from the original codon.

const stdResidues = "ARNDCQEGHILKMFPSTWYV*"

var stdCodons = map[byte][]Codon{
	'A': {"GCT", "GCC", "GCA", "GCG"},
	'R': {"CGT", "CGC", "CGA", "CGG", "AGA", "AGG"},
	'N': {"AAT", "AAC"},
	'D': {"GAT", "GAC"},
	'C': {"TGT", "TGC"},
	'Q': {"CAA", "CAG"},
	'E': {"GAA", "GAG"},
	'G': {"GGT", "GGC", "GGA", "GGG"},
	'H': {"CAT", "CAC"},
	'I': {"ATT", "ATC", "ATA"},
	'L': {"TTA", "TTG", "CTT", "CTC", "CTA", "CTG"},
	'K': {"AAA", "AAG"},
	'M': {"ATG"},
	'F': {"TTT", "TTC"},
	'P': {"CCT", "CCC", "CCA", "CCG"},
	'S': {"TCT", "TCC", "TCA", "TCG", "AGT", "AGC"},
	'T': {"ACT", "ACC", "ACA", "ACG"},
	'W': {"TGG"},
	'Y': {"TAT", "TAC"},
	'V': {"GTT", "GTC", "GTA", "GTG"},
	'*': {"TAA", "TGA", "TAG"},
}

// Base
//    1  TTTTTTTTTTTTTTTTCCCCCCCCCCCCCCCCAAAAAAAAAAAAAAAAGGGGGGGGGGGGGGGG
//    2  TTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGG
//    3  TCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAG

const tcagBases = "TCAG"

var ncbieaaCode = map[int]string{
	1:  "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	2:  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
	3:  "FFLLSSSSYY**CCWWTTTTPPPPHHQQRRRRIIMMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	4:  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	5:  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSSSVVVVAAAADDEEGGGG",
	6:  "FFLLSSSSYYQQCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	9:  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
	10: "FFLLSSSSYY**CCCWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	11: "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	12: "FFLLSSSSYY**CC*WLLLSPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	13: "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSGGVVVVAAAADDEEGGGG",
	14: "FFLLSSSSYYY*CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
	15: "FFLLSSSSYY*QCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	16: "FFLLSSSSYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	21: "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
	22: "FFLLSS*SYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	23: "FF*LSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	24: "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSSKVVVVAAAADDEEGGGG",
	25: "FFLLSSSSYY**CCGWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	26: "FFLLSSSSYY**CC*WLLLAPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	27: "FFLLSSSSYYQQCCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	28: "FFLLSSSSYYQQCCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	29: "FFLLSSSSYYYYCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	30: "FFLLSSSSYYEECC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	31: "FFLLSSSSYYEECCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	32: "FFLLSSSSYY*WCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	33: "FFLLSSSSYYY*CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSSKVVVVAAAADDEEGGGG",
}

var genCodeNames = map[int]string{
	1:  "Standard",
	2:  "Vertebrate Mitochondrial",
	3:  "Yeast Mitochondrial",
	4:  "Mold Mitochondrial; Protozoan Mitochondrial; Coelenterate Mitochondrial; Mycoplasma; Spiroplasma",
	5:  "Invertebrate Mitochondrial",
	6:  "Ciliate Nuclear; Dasycladacean Nuclear; Hexamita Nuclear",
	9:  "Echinoderm Mitochondrial; Flatworm Mitochondrial",
	10: "Euplotid Nuclear",
	11: "Bacterial, Archaeal and Plant Plastid",
	12: "Alternative Yeast Nuclear",
	13: "Ascidian Mitochondrial",
	14: "Alternative Flatworm Mitochondrial",
	15: "Blepharisma Macronuclear",
	16: "Chlorophycean Mitochondrial",
	21: "Trematode Mitochondrial",
	22: "Scenedesmus obliquus Mitochondrial",
	23: "Thraustochytrium Mitochondrial",
	24: "Rhabdopleuridae Mitochondrial",
	25: "Candidate Division SR1 and Gracilibacteria",
	26: "Pachysolen tannophilus Nuclear",
	27: "Karyorelict Nuclear",
	28: "Condylostoma Nuclear",
	29: "Mesodinium Nuclear",
	30: "Peritrich Nuclear",
	31: "Blastocrithidia Nuclear",
	32: "Balanophoraceae Plastid",
	33: "Cephalodiscidae Mitochondrial",
}

// tcagCodon returns the codon at offset idx of an ncbieaa string
func tcagCodon(idx int) Codon {

	return Codon([]byte{tcagBases[idx/16], tcagBases[(idx/4)%4], tcagBases[idx%4]})
}

func correctGenCode(genCode int) int {

	switch genCode {
	case 0:
		genCode = 1
	case 7:
		genCode = 4
	case 8:
		genCode = 1
	}

	return genCode
}

// GenCodeName returns full name of genetic code
func GenCodeName(genCode int) string {

	genCode = correctGenCode(genCode)

	return genCodeNames[genCode]
}

// GeneticCode maps each residue to its synonymous codons, in declaration
// order, and each of the 64 codons back to its residue. A GeneticCode is
// never modified after construction and may be shared between goroutines.
type GeneticCode struct {
	id       int
	name     string
	residues []byte
	synonyms map[byte][]Codon
	residue  map[Codon]byte
}

// StandardCode returns the standard genetic code (NCBI table 1)
func StandardCode() *GeneticCode {

	gc, err := NewGeneticCode(1)
	if err != nil {
		// the hand-written table is checked by the tests
		panic(err)
	}

	return gc
}

// NewGeneticCode builds the table for an NCBI genetic code number. Codes
// other than the standard code start from the standard declaration order.
// A codon that changes residue is removed from its old list and appended to
// the end of its new list, visiting codons in TCAG order.
func NewGeneticCode(genCode int) (*GeneticCode, error) {

	genCode = correctGenCode(genCode)

	ncbieaa, ok := ncbieaaCode[genCode]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGenCode, genCode)
	}
	if len(ncbieaa) != 64 {
		return nil, fmt.Errorf("%w: code %d length mismatch", ErrBadGeneticCode, genCode)
	}

	residues := []byte(stdResidues)
	synonyms := make(map[byte][]Codon, len(stdCodons))
	owner := make(map[Codon]byte, 64)

	for _, aa := range residues {
		lst := stdCodons[aa]
		synonyms[aa] = append([]Codon(nil), lst...)
		for _, cdn := range lst {
			owner[cdn] = aa
		}
	}

	for i := 0; i < 64; i++ {

		cdn := tcagCodon(i)
		aa := ncbieaa[i]
		old, ok := owner[cdn]
		if !ok || old == aa {
			continue
		}

		// remove from previous residue
		prev := synonyms[old]
		for j, c := range prev {
			if c == cdn {
				prev = append(prev[:j:j], prev[j+1:]...)
				break
			}
		}
		synonyms[old] = prev

		if _, ok := synonyms[aa]; !ok {
			residues = append(residues, aa)
		}
		synonyms[aa] = append(synonyms[aa], cdn)
		owner[cdn] = aa
	}

	// drop residues that lost every codon
	kept := residues[:0]
	for _, aa := range residues {
		if len(synonyms[aa]) > 0 {
			kept = append(kept, aa)
		} else {
			delete(synonyms, aa)
		}
	}

	return buildGeneticCode(genCode, genCodeNames[genCode], kept, synonyms)
}

// buildGeneticCode derives the reverse lookup and checks that every one of
// the 64 ACGT triplets appears exactly once
func buildGeneticCode(id int, name string, residues []byte, synonyms map[byte][]Codon) (*GeneticCode, error) {

	gc := &GeneticCode{
		id:       id,
		name:     name,
		residues: residues,
		synonyms: synonyms,
		residue:  make(map[Codon]byte, 64),
	}

	if len(residues) != len(synonyms) {
		return nil, fmt.Errorf("%w: %d residues, %d codon lists", ErrBadGeneticCode, len(residues), len(synonyms))
	}

	for _, aa := range residues {
		lst, ok := synonyms[aa]
		if !ok || len(lst) == 0 {
			return nil, fmt.Errorf("%w: residue '%c' has no codons", ErrBadGeneticCode, aa)
		}
		for _, cdn := range lst {
			if !cdn.IsValid() {
				return nil, fmt.Errorf("%w: '%s' is not a codon", ErrBadGeneticCode, cdn)
			}
			if prev, dup := gc.residue[cdn]; dup {
				return nil, fmt.Errorf("%w: %s assigned to '%c' and '%c'", ErrBadGeneticCode, cdn, prev, aa)
			}
			gc.residue[cdn] = aa
		}
	}

	if len(gc.residue) != 64 {
		return nil, fmt.Errorf("%w: %d of 64 codons assigned", ErrBadGeneticCode, len(gc.residue))
	}

	return gc, nil
}

// ID returns the NCBI genetic code number
func (gc *GeneticCode) ID() int {

	return gc.id
}

// Name returns the NCBI genetic code name
func (gc *GeneticCode) Name() string {

	return gc.name
}

// Residues returns the residue symbols in declaration order
func (gc *GeneticCode) Residues() []byte {

	return append([]byte(nil), gc.residues...)
}

// Synonyms returns the codons for a residue in declaration order, or nil if
// the residue is not encoded
func (gc *GeneticCode) Synonyms(aa byte) []Codon {

	lst := gc.synonyms[aa]
	if lst == nil {
		return nil
	}

	return append([]Codon(nil), lst...)
}

// Residue returns the amino acid, or '*' for stop, encoded by a codon
func (gc *GeneticCode) Residue(cdn Codon) (byte, error) {

	aa, ok := gc.residue[cdn]
	if !ok {
		return 0, fmt.Errorf("%w: '%s'", ErrUnknownCodon, cdn)
	}

	return aa, nil
}

// Translate returns the one-letter residue string for a run of codons
func (gc *GeneticCode) Translate(cdns []Codon) (string, error) {

	var buffer strings.Builder
	buffer.Grow(len(cdns))

	for i, cdn := range cdns {
		aa, err := gc.Residue(cdn)
		if err != nil {
			return "", fmt.Errorf("codon %d: %w", i+1, err)
		}
		buffer.WriteByte(aa)
	}

	return buffer.String(), nil
}

// PrintGeneticCodeTables prints a tab-delimited table of all genetic codes
func PrintGeneticCodeTables(w io.Writer) {

	var keys []int
	for ky := range ncbieaaCode {
		keys = append(keys, ky)
	}
	sort.Ints(keys)

	for _, id := range keys {
		fmt.Fprintf(w, "%d\t%s\t%s\n", id, ncbieaaCode[id], genCodeNames[id])
	}
}

// PrintSynonyms writes one line per residue with its codons in ranking order
func (gc *GeneticCode) PrintSynonyms(w io.Writer) {

	for _, aa := range gc.residues {
		var arry []string
		for _, cdn := range gc.synonyms[aa] {
			arry = append(arry, string(cdn))
		}
		fmt.Fprintf(w, "%c\t%s\n", aa, strings.Join(arry, " "))
	}
}
