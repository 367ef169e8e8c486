package types

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Structures, enumerations and handle annotations compare by identity, not
// by name (spec §4.1 testable property 1: mangling is injective iff
// IsSame(ref_matters=true, const_matters=true) holds). Two distinct
// Structure values named the same way (e.g. "Point" declared in two
// different modules) must mangle differently, so each gets a process-wide
// unique id the first time it is mangled.

var (
	nextStructID atomic.Uint64
	structIDs    sync.Map // *Structure -> uint64
	nextEnumID   atomic.Uint64
	enumIDs      sync.Map // *Enumeration -> uint64
	nextHandleID atomic.Uint64
	handleIDs    sync.Map // HandleAnnotation -> uint64
)

func idFor(m *sync.Map, counter *atomic.Uint64, key any) uint64 {
	if v, ok := m.Load(key); ok {
		return v.(uint64)
	}
	id := counter.Add(1)
	actual, _ := m.LoadOrStore(key, id)
	return actual.(uint64)
}

// MangledName returns a deterministic string key for t. It includes a
// "#const" prefix if t is constant, a tag per base type, mangled children
// for compound kinds, a "#ref" suffix if t is a reference, and one "#N" per
// Dim entry (spec §4.1).
func (t *TypeDecl) MangledName() string {
	var sb strings.Builder
	if t.Constant {
		sb.WriteString("#const")
	}
	sb.WriteString(t.Base.mangleTag())

	switch t.Base {
	case TStructure:
		sb.WriteString("{")
		sb.WriteString(strconv.FormatUint(idFor(&structIDs, &nextStructID, t.StructType), 10))
		sb.WriteString(":")
		sb.WriteString(t.StructType.Name)
		sb.WriteString("}")
	case TEnumeration:
		sb.WriteString("{")
		sb.WriteString(strconv.FormatUint(idFor(&enumIDs, &nextEnumID, t.Enum), 10))
		sb.WriteString(":")
		sb.WriteString(t.Enum.Name)
		sb.WriteString("}")
	case THandle:
		sb.WriteString("{")
		sb.WriteString(strconv.FormatUint(idFor(&handleIDs, &nextHandleID, t.Annotation), 10))
		sb.WriteString(":")
		sb.WriteString(t.Annotation.Name())
		sb.WriteString("}")
	default:
		if t.FirstType != nil {
			sb.WriteString("<")
			sb.WriteString(t.FirstType.MangledName())
			sb.WriteString(">")
		}
		if t.SecondType != nil {
			sb.WriteString(",")
			sb.WriteString(t.SecondType.MangledName())
		}
		if len(t.ArgTypes) > 0 {
			parts := make([]string, len(t.ArgTypes))
			for i, a := range t.ArgTypes {
				if a == nil {
					parts[i] = "_"
					continue
				}
				parts[i] = a.MangledName()
			}
			sb.WriteString("(")
			sb.WriteString(strings.Join(parts, ";"))
			sb.WriteString(")")
		}
	}

	if t.Ref {
		sb.WriteString("#ref")
	}
	for _, d := range t.Dim {
		fmt.Fprintf(&sb, "#%d", d)
	}
	return sb.String()
}
