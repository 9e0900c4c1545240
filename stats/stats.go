// Package stats writes the optional statistics file of a parse run.
package stats

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Kind selects one statistic.
type Kind int

const (
	// Comments is the number of lines that carried a comment.
	Comments Kind = iota
	// Loc is the number of instructions.
	Loc
)

func (k Kind) String() string {
	switch k {
	case Comments:
		return "comments"
	case Loc:
		return "loc"
	}
	return fmt.Sprintf("stat(%d)", int(k))
}

// ErrUnwritable wraps any failure to create or write the statistics file.
var ErrUnwritable = errors.New("cannot write statistics")

// Values are the totals of a finished run.
type Values struct {
	Comments     int
	Instructions int
}

// Get returns the value of one statistic.
func (v Values) Get(k Kind) int {
	if k == Comments {
		return v.Comments
	}
	return v.Instructions
}

// Request names the destination file and the statistics to write, in order.
type Request struct {
	Path  string
	Order []Kind
}

// Add appends k unless it was already requested.
func (r *Request) Add(k Kind) {
	for _, have := range r.Order {
		if have == k {
			return
		}
	}
	r.Order = append(r.Order, k)
}

// Write creates the file and stores one value per line.
func Write(req Request, v Values) error {
	f, err := os.Create(req.Path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnwritable, err)
	}

	w := bufio.NewWriter(f)
	for _, k := range req.Order {
		w.WriteString(strconv.Itoa(v.Get(k)))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrUnwritable, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnwritable, err)
	}
	return nil
}
