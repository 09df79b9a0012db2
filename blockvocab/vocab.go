// Package blockvocab holds the opaque block-ID vocabulary that the cell
// library and layout extraction collaborators (spec.md §6) express their
// block IDs against. The core engine treats block IDs as small integers;
// this package is the one place a caller names them.
//
// The name<->ID registration pattern is grounded on the teacher's
// confignew.NameIDBinding, generalized from register/port names to block
// material names.
package blockvocab

import "fmt"

// Block is a closed variant naming what a voxel contains. Interior grids
// stay plain int16 for locality, per the design note in spec.md §9.
// Catalog loading, layout extraction and persistence in this module work
// on the int16 IDs directly; none of them converts to or from Block, and
// BlockCell carries no block ID.
type Block int

const (
	BlockEmpty Block = iota
	BlockConductor
	BlockSubstrate
	BlockCell
)

func (b Block) String() string {
	switch b {
	case BlockEmpty:
		return "Empty"
	case BlockConductor:
		return "Conductor"
	case BlockSubstrate:
		return "Substrate"
	case BlockCell:
		return "Cell"
	default:
		return fmt.Sprintf("Block(%d)", int(b))
	}
}

// Well-known vocabulary entries required by spec.md §6 as external
// collaborator input: the conductor and substrate IDs used by the
// violation model, and the two Y-conditioned substrate variants used by
// Extract (§4.12).
const (
	NameConductor      = "redstone_wire"
	NameSubstrate      = "stone"
	NameSubstrateUpper = "planks"     // painted beneath a y==4 path voxel, raw id 5
	NameSubstrateLower = "stone_slab" // painted beneath a y==1 path voxel, raw id 1
)

// Vocabulary is a two-way binding between block names and opaque integer
// IDs. It is built once per run and treated as read-only thereafter,
// mirroring the Cell Catalog's lifecycle.
type Vocabulary struct {
	nameToID map[string]int16
	idToName map[int16]string
}

// NewVocabulary returns a Vocabulary pre-populated with the block IDs
// spec.md §6 calls out by name: the conductor (55), the default
// substrate (1) and the two raw extract constants (5, 1) under their own
// names so callers can still register their own materials without
// colliding.
func NewVocabulary() *Vocabulary {
	v := &Vocabulary{
		nameToID: make(map[string]int16),
		idToName: make(map[int16]string),
	}
	v.Register(NameConductor, 55)
	v.Register(NameSubstrate, 1)
	v.Register(NameSubstrateUpper, 5)
	v.Register(NameSubstrateLower, 1)
	return v
}

// Register binds a name to an opaque block ID. Re-registering an
// existing name overwrites its ID; re-registering an existing ID under a
// new name adds an alias (the reverse idToName mapping keeps the most
// recent name).
func (v *Vocabulary) Register(name string, id int16) {
	v.nameToID[name] = id
	v.idToName[id] = name
}

// Lookup returns the ID registered for name.
func (v *Vocabulary) Lookup(name string) (int16, bool) {
	id, ok := v.nameToID[name]
	return id, ok
}

// Name returns the name registered for id, if any.
func (v *Vocabulary) Name(id int16) (string, bool) {
	name, ok := v.idToName[id]
	return name, ok
}

// MustLookup panics if name is not registered. Used internally where the
// vocabulary is known to have been constructed with NewVocabulary.
func (v *Vocabulary) MustLookup(name string) int16 {
	id, ok := v.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("blockvocab: unregistered name %q", name))
	}
	return id
}

// Conductor returns the registered conductor block ID (e.g. redstone
// wire): the ID written at every path voxel by the violation model.
func (v *Vocabulary) Conductor() int16 {
	return v.MustLookup(NameConductor)
}

// Substrate returns the registered substrate block ID: the ID written
// directly beneath every path voxel by the violation model.
func (v *Vocabulary) Substrate() int16 {
	return v.MustLookup(NameSubstrate)
}

// SubstrateUpper returns the block ID Extract paints directly beneath a
// path voxel at y==4 (spec.md §6).
func (v *Vocabulary) SubstrateUpper() int16 {
	return v.MustLookup(NameSubstrateUpper)
}

// SubstrateLower returns the block ID Extract paints directly beneath a
// path voxel at y==1 (spec.md §6).
func (v *Vocabulary) SubstrateLower() int16 {
	return v.MustLookup(NameSubstrateLower)
}
