// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package robdd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
)

// Snapshot is a summary of the state of a BDD: size of the node table, number
// of garbage collections and cache usage. Counters about the unique table are
// only updated when the library is compiled with the debug build tag.
type Snapshot struct {
	Varnum       int // Number of declared variables
	Nodes        int // Size of the node table
	Free         int // Number of free slots in the node table
	Produced     int // Total number of nodes ever built
	GCs          int // Number of garbage collections
	OpHit        int // Entries found in the operator caches
	OpMiss       int // Entries not found in the operator caches
	UniqueAccess int // Accesses to the unique table
	UniqueHit    int // Entries found in the unique table
	UniqueMiss   int // Entries not found in the unique table
}

// Snapshot returns the current statistics of b. The result is the zero value
// if b is closed.
func (b *BDD) Snapshot() Snapshot {
	if b.closed {
		return Snapshot{}
	}
	b.delrefs()
	return Snapshot{
		Varnum:       int(b.varnum),
		Nodes:        len(b.nodes),
		Free:         b.freenum,
		Produced:     b.produced,
		GCs:          len(b.gcstat.history),
		OpHit:        b.opHit,
		OpMiss:       b.opMiss,
		UniqueAccess: b.uniqueAccess,
		UniqueHit:    b.uniqueHit,
		UniqueMiss:   b.uniqueMiss,
	}
}

// Stats returns information about the BDD: the node table, garbage
// collections and, in debug mode, cache usage.
func (b *BDD) Stats() string {
	if b.closed {
		return "closed BDD"
	}
	s := b.Snapshot()
	res := fmt.Sprintf("Varnum:     %d\n", s.Varnum)
	res += fmt.Sprintf("Allocated:  %d\n", s.Nodes)
	res += fmt.Sprintf("Produced:   %d\n", s.Produced)
	r := (float64(s.Free) / float64(s.Nodes)) * 100
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", s.Free, r)
	res += fmt.Sprintf("Used:       %d  (%.3g %%)\n", s.Nodes-s.Free, (100.0 - r))
	res += fmt.Sprintf("# of GC:    %d", s.GCs)
	if _DEBUG {
		allocated := int(atomic.LoadUint64(&(b.setfinalizers)))
		reclaimed := int(atomic.LoadUint64(&(b.calledfinalizers)))
		for _, g := range b.gcstat.history {
			allocated += g.setfinalizers
			reclaimed += g.calledfinalizers
		}
		res += fmt.Sprintf("\nExt. refs:  %d\n", allocated)
		res += fmt.Sprintf("Reclaimed:  %d\n", reclaimed)
		res += b.cacheStat.String()
	}
	return res
}

// ************************************************************

// Print returns a one-line description of node n.
func (b *BDD) Print(n Node) string {
	if err := b.checkptr(n); err != nil {
		return fmt.Sprintf("Error (%s)", err)
	}
	if n.id == 0 {
		return "False"
	}
	if n.id == 1 {
		return "True"
	}
	return fmt.Sprintf("(%d[%d] ? %d : %d)", n.id, b.level(n.id), b.low(n.id), b.high(n.id))
}

// PrintSet writes a textual representation of the set of paths leading to True
// in n. We print one line for each path, with the literals in ascending order
// of variables, separated by a space. Variable i is written xi and its negation
// -xi. The constant False is printed as F and True as T.
func (b *BDD) PrintSet(w io.Writer, n Node) error {
	if err := b.checkptr(n); err != nil {
		return b.seterrorf(err, "wrong operand in call to PrintSet")
	}
	bw := bufio.NewWriter(w)
	switch n.id {
	case 0:
		fmt.Fprintln(bw, "F")
	case 1:
		fmt.Fprintln(bw, "T")
	default:
		b.printset(bw, n.id, make([]string, 0, b.varnum))
	}
	return bw.Flush()
}

func (b *BDD) printset(w *bufio.Writer, n int, path []string) {
	if n == 0 {
		return
	}
	if n == 1 {
		fmt.Fprintln(w, strings.Join(path, " "))
		return
	}
	level := b.level(n)
	b.printset(w, b.low(n), append(path, fmt.Sprintf("-x%d", level)))
	b.printset(w, b.high(n), append(path, fmt.Sprintf("x%d", level)))
}

// SetString returns the result of PrintSet as a string, without the final
// newline. The result is empty if there is an error.
func (b *BDD) SetString(n Node) string {
	var sb strings.Builder
	if err := b.PrintSet(&sb, n); err != nil {
		return ""
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// ************************************************************

// logTable outputs the whole node table at debug level.
func (b *BDD) logTable() {
	for k, n := range b.nodes {
		if n.low == -1 {
			continue
		}
		refs := fmt.Sprint(n.refcou)
		if n.refcou == _MAXREFCOUNT {
			refs = "+"
		}
		b.log.Debugf("%-3d ( %-3d ,  %-3d ,  %-3d) |hash:  %-3d  |next:  %-3d | %s", k, n.level&_MAXVAR, n.low, n.high, n.hash, n.next, refs)
	}
}
