package percolation

import (
	"errors"
	"strings"

	da "github.com/lintang-b-s/Percolatorx/pkg/datastructure"
	"github.com/lintang-b-s/Percolatorx/pkg/util"
)

var (
	ErrInvalidSideLength  = errors.New("percolation: side length must be greater than 0")
	ErrSideLengthTooLarge = errors.New("percolation: side length too large")
	ErrInvalidTrials      = errors.New("percolation: number of trials must be greater than 0")
	ErrSiteOutOfRange     = errors.New("percolation: site out of range")
)

const (
	virtualTop da.Index = 0

	// n*n+1, the virtual bottom, must fit in a da.Index
	MAX_SIDE_LENGTH = 1<<16 - 1
)

/*
Percolation. n-by-n grid of sites, each either open or blocked. sites are addressed by (row, col), both 1-indexed,
and mapped to the linear index (row-1)*n + col, so index 0 and index n*n+1 are free for the virtual top and virtual bottom.

two union-find structures are kept:
  - ufFull over {0..n*n}: top-row sites are unioned with the virtual top, nothing is ever unioned with the virtual bottom.
    answers IsFull.
  - ufPerc over {0..n*n+1}: additionally bottom-row sites are unioned with the virtual bottom. answers Percolates.

with a single structure every open bottom-row site shares a set with the virtual bottom, so once the system
percolates all of them would report full even when they have no open path to the top (backwash).
scanning the bottom row instead would make Percolates O(n).
*/
type Percolation struct {
	sideLength    int
	size          int
	virtualBottom da.Index
	ufFull        *da.WeightedQuickUnion
	ufPerc        *da.WeightedQuickUnion
	openMask      []bool // openMask[0] is unused
	openedSites   int
}

func NewPercolation(n int) (*Percolation, error) {
	if err := validateSideLength(n); err != nil {
		return nil, err
	}
	size := n * n
	return &Percolation{
		sideLength:    n,
		size:          size,
		virtualBottom: da.Index(size + 1),
		ufFull:        da.NewWeightedQuickUnion(size + 1),
		ufPerc:        da.NewWeightedQuickUnion(size + 2),
		openMask:      make([]bool, size+1),
	}, nil
}

func validateSideLength(n int) error {
	if n <= 0 {
		return util.WrapErrorf(ErrInvalidSideLength, util.ErrBadParamInput, "side length must be greater than 0, got %d", n)
	}
	if n > MAX_SIDE_LENGTH {
		return util.WrapErrorf(ErrSideLengthTooLarge, util.ErrBadParamInput, "side length must be at most %d, got %d", MAX_SIDE_LENGTH, n)
	}
	return nil
}

// Open. opens site (row, col) if it is not open already.
func (p *Percolation) Open(row, col int) error {
	if err := p.validate(row, col); err != nil {
		return err
	}
	cur := p.toIndex(row, col)
	if p.openMask[cur] {
		return nil
	}

	p.openMask[cur] = true
	p.openedSites++

	// up
	if row == 1 {
		p.ufFull.Union(cur, virtualTop)
		p.ufPerc.Union(cur, virtualTop)
	} else if p.isOpen(row-1, col) {
		p.union(cur, p.toIndex(row-1, col))
	}

	// left
	if col > 1 && p.isOpen(row, col-1) {
		p.union(cur, p.toIndex(row, col-1))
	}

	// right
	if col < p.sideLength && p.isOpen(row, col+1) {
		p.union(cur, p.toIndex(row, col+1))
	}

	// down. the virtual bottom only lives in ufPerc.
	if row == p.sideLength {
		p.ufPerc.Union(cur, p.virtualBottom)
	}
	if row < p.sideLength && p.isOpen(row+1, col) {
		p.union(cur, p.toIndex(row+1, col))
	}
	return nil
}

func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}
	return p.isOpen(row, col), nil
}

// IsFull. true if site (row, col) is connected to the top row through open sites.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}
	return p.ufFull.Connected(p.toIndex(row, col), virtualTop), nil
}

func (p *Percolation) NumberOfOpenSites() int {
	return p.openedSites
}

func (p *Percolation) Percolates() bool {
	return p.ufPerc.Connected(virtualTop, p.virtualBottom)
}

func (p *Percolation) SideLength() int {
	return p.sideLength
}

// OpenFraction. fraction of the n*n sites that are open.
func (p *Percolation) OpenFraction() float64 {
	return float64(p.openedSites) / float64(p.size)
}

// ToIndex. linear index (row-1)*n + col of site (row, col), in [1, n*n].
func (p *Percolation) ToIndex(row, col int) (int, error) {
	if err := p.validate(row, col); err != nil {
		return 0, err
	}
	return int(p.toIndex(row, col)), nil
}

// FromIndex. inverse of ToIndex.
func (p *Percolation) FromIndex(idx int) (int, int, error) {
	if idx < 1 || idx > p.size {
		return 0, 0, util.WrapErrorf(ErrSiteOutOfRange, util.ErrBadParamInput, "index %d is not between 1 and %d", idx, p.size)
	}
	return (idx-1)/p.sideLength + 1, (idx-1)%p.sideLength + 1, nil
}

// String. the open mask row by row, '#' for open and '.' for blocked.
func (p *Percolation) String() string {
	return strings.Join(p.Rows(), "\n")
}

func (p *Percolation) Rows() []string {
	rows := make([]string, 0, p.sideLength)
	var sb strings.Builder
	for row := 1; row <= p.sideLength; row++ {
		sb.Reset()
		sb.Grow(p.sideLength)
		for col := 1; col <= p.sideLength; col++ {
			if p.isOpen(row, col) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func (p *Percolation) union(a, b da.Index) {
	p.ufFull.Union(a, b)
	p.ufPerc.Union(a, b)
}

func (p *Percolation) isOpen(row, col int) bool {
	return p.openMask[p.toIndex(row, col)]
}

func (p *Percolation) toIndex(row, col int) da.Index {
	return da.Index((row-1)*p.sideLength + col)
}

func (p *Percolation) validate(row, col int) error {
	if row < 1 || row > p.sideLength {
		return util.WrapErrorf(ErrSiteOutOfRange, util.ErrBadParamInput, "row %d is not between 1 and %d", row, p.sideLength)
	}
	if col < 1 || col > p.sideLength {
		return util.WrapErrorf(ErrSiteOutOfRange, util.ErrBadParamInput, "col %d is not between 1 and %d", col, p.sideLength)
	}
	return nil
}
